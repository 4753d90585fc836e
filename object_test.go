package fixjson_test

import (
	"fmt"
	"testing"

	"github.com/alxarch/fixjson"
	"github.com/alxarch/fixjson/fixjsontest"
	"github.com/stretchr/testify/require"
)

var claims = fixjson.ObjectOf(
	fixjson.StringField("sub", "1234567890"),
	fixjson.StringField("name", "John Doe"),
	fixjson.NumberField("iat", 1516239022),
	fixjson.BoolField("something", false),
	fixjson.NullField("null_thing"),
)

var objects = map[string]fixjson.Object{
	"empty":   fixjson.ObjectOf(),
	"claims":  claims,
	"escapes": fixjson.ObjectOf(fixjson.StringField("q\"k", "line\nbreak\ttab\\/"), fixjson.StringField("", "")),
	"numbers": fixjson.ObjectOf(
		fixjson.NumberField("zero", 0),
		fixjson.NumberField("nine", 9),
		fixjson.NumberField("min", -9223372036854775808),
		fixjson.NumberField("max", 9223372036854775807),
	),
	"literals": fixjson.ObjectOf(
		fixjson.BoolField("t", true),
		fixjson.BoolField("f", false),
		fixjson.NullField("n"),
	),
	"duplicates": fixjson.ObjectOf(
		fixjson.NumberField("a", 1),
		fixjson.NumberField("a", 2),
	),
}

func TestObjectRoundTrip(t *testing.T) {
	for name, obj := range objects {
		t.Run(name, fixjsontest.RoundTrip(obj))
		t.Run(name+"/arena", fixjsontest.RoundTrip(obj, fixjsontest.Arena()))
		t.Run(name+"/grow", fixjsontest.RoundTrip(obj, fixjsontest.Growable()))
		t.Run(name+"/grow-arena", fixjsontest.RoundTrip(obj, fixjsontest.Growable(), fixjsontest.Arena()))
	}
}

func TestObjectResume(t *testing.T) {
	for name, obj := range objects {
		t.Run(name, fixjsontest.Resume(obj))
		for _, size := range []int{1, 2, 7, 64} {
			t.Run(fmt.Sprintf("%s/short-%d", name, size), fixjsontest.ShortWrites(obj, size))
		}
	}
}

func TestObjectCapacity(t *testing.T) {
	for name, obj := range objects {
		t.Run(name, fixjsontest.Capacity(obj))
		t.Run(name+"/arena", fixjsontest.Capacity(obj, fixjsontest.Arena()))
	}
}

func TestObjectIncremental(t *testing.T) {
	data := []byte(` { "sub" : "1234567890", "name":"John Doe","iat":1516239022,"something":false,"null_thing":null}`)
	t.Run("fixed", fixjsontest.Incremental(data, claims))
	t.Run("arena", fixjsontest.Incremental(data, claims, fixjsontest.Arena()))
	t.Run("grow", fixjsontest.Incremental(data, claims, fixjsontest.Growable()))
}

func TestObjectPush(t *testing.T) {
	obj := fixjson.WrapObject(make([]fixjson.Field, 2))
	require.Equal(t, 0, obj.Len())
	require.Equal(t, 2, obj.Cap())
	require.NoError(t, obj.PushField("a", fixjson.Number(1)))
	require.NoError(t, obj.Push(fixjson.StringField("b", "x")))
	require.ErrorIs(t, obj.Push(fixjson.NullField("c")), fixjson.FieldBufferTooSmall)
	require.Equal(t, 2, obj.Len())
	require.Equal(t, `{"a":1,"b":"x"}`, obj.String())

	f, ok := obj.Pop()
	require.True(t, ok)
	require.Equal(t, fixjson.StringField("b", "x"), f)
	require.Equal(t, `{"a":1}`, obj.String())
	require.NoError(t, obj.Push(fixjson.NullField("c")))
	require.Equal(t, `{"a":1,"c":null}`, obj.String())

	obj.Reset()
	require.Equal(t, 0, obj.Len())
	_, ok = obj.Pop()
	require.False(t, ok)
}

func TestObjectGet(t *testing.T) {
	v, ok := claims.Get("iat")
	require.True(t, ok)
	n, ok := v.ToInt()
	require.True(t, ok)
	require.Equal(t, int64(1516239022), n)

	v, ok = claims.Get("null_thing")
	require.True(t, ok)
	require.True(t, v.IsNull())

	_, ok = claims.Get("missing")
	require.False(t, ok)

	v, _ = objects["duplicates"].Get("a")
	require.Equal(t, fixjson.Number(1), v)
}

func TestObjectEqual(t *testing.T) {
	a := fixjson.ObjectOf(fixjson.NumberField("a", 1), fixjson.NumberField("b", 2))
	b := fixjson.ObjectOf(fixjson.NumberField("b", 2), fixjson.NumberField("a", 1))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(fixjson.ObjectOf()))

	// Uninitialized slots do not take part in equality.
	c := fixjson.WrapObject(make([]fixjson.Field, 8))
	require.NoError(t, c.PushField("a", fixjson.Number(1)))
	require.NoError(t, c.PushField("b", fixjson.Number(2)))
	require.True(t, a.Equal(c))
}

func TestObjectParse(t *testing.T) {
	obj := fixjson.WrapObject(make([]fixjson.Field, 50))
	escape := make([]byte, 256)
	data := []byte(claims.String())
	n, err := obj.Parse(data, escape)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.True(t, claims.Equal(obj))

	n, err = obj.Parse([]byte(`{"a":1,"b":tru}`), escape)
	require.ErrorIs(t, err, fixjson.InvalidBooleanField)
	require.Equal(t, 14, n)
	require.Equal(t, 0, obj.Len())
}

func TestObjectParseGrow(t *testing.T) {
	obj := fixjson.WrapObject(make([]fixjson.Field, 1))
	n, err := obj.ParseGrow([]byte(`{"a":1,"b":2,"c":3}`), make([]byte, 3))
	require.NoError(t, err)
	require.Equal(t, 19, n)
	require.Equal(t, 3, obj.Len())
	require.Equal(t, 3, obj.Cap())
	require.Equal(t, `{"a":1,"b":2,"c":3}`, fmt.Sprint(obj))

	_, err = obj.ParseGrow([]byte(`{"d":4}`), make([]byte, 1))
	require.NoError(t, err)
	require.Equal(t, 1, obj.Len())
	require.Equal(t, 3, obj.Cap())
}

func TestObjectParseArena(t *testing.T) {
	arena := fixjson.NewArena(8)
	var objs []fixjson.Object
	for _, data := range []string{
		`{"first":"one"}`,
		`{"second":"two","third":"three"}`,
		`{"fourth":"a string longer than a chunk"}`,
	} {
		obj := fixjson.WrapObject(make([]fixjson.Field, 2))
		_, err := obj.ParseArena([]byte(data), arena)
		require.NoError(t, err)
		objs = append(objs, obj)
	}
	require.Equal(t, `{"first":"one"}`, objs[0].String())
	require.Equal(t, `{"second":"two","third":"three"}`, objs[1].String())
	require.Equal(t, `{"fourth":"a string longer than a chunk"}`, objs[2].String())
	require.Equal(t, 8, arena.Len())
}

func TestObjectFormat(t *testing.T) {
	require.Equal(t, `{"a":"b"}`, fmt.Sprintf("%v", fixjson.ObjectOf(fixjson.StringField("a", "b"))))
	require.Equal(t, `{}`, fmt.Sprintf("%s", fixjson.ObjectOf()))
	bad := fixjson.ObjectOf(fixjson.StringField("a", "\x80"))
	require.Equal(t, `%!v(fixjson: invalid string)`, fmt.Sprintf("%v", bad))
	require.Equal(t, `%!s(fixjson: invalid string)`, bad.String())
}

func TestObjectAppendJSON(t *testing.T) {
	data, err := claims.AppendJSON(make([]byte, 0, claims.Size()))
	require.NoError(t, err)
	require.Equal(t, claims.Size(), len(data))
	require.Equal(t, claims.String(), string(data))
}
