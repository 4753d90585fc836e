package fixjson

import (
	"testing"
)

func TestType_String(t *testing.T) {
	for expect, typ := range map[string]Type{
		"Null":        TypeNull,
		"String":      TypeString,
		"Number":      TypeNumber,
		"Boolean":     TypeBoolean,
		"InvalidType": Type(42),
	} {
		if actual := typ.String(); actual != expect {
			t.Errorf("Invalid string %s != %s", actual, expect)
		}
	}
}

func TestValueZero(t *testing.T) {
	var v Value
	assertEqual(t, TypeNull, v.Type())
	assertEqual(t, true, v.IsNull())
	assertEqual(t, Null(), v)
	assertEqual(t, NullField(""), Field{})
}

func TestValueAccessors(t *testing.T) {
	if s, ok := String("foo").ToString(); !ok || s != "foo" {
		t.Errorf("Invalid string %q %t", s, ok)
	}
	if _, ok := Number(1).ToString(); ok {
		t.Errorf("Number converted to string")
	}
	if n, ok := Number(-3).ToInt(); !ok || n != -3 {
		t.Errorf("Invalid number %d %t", n, ok)
	}
	if _, ok := Bool(true).ToInt(); ok {
		t.Errorf("Boolean converted to number")
	}
	if b, ok := Bool(true).ToBool(); !ok || !b {
		t.Errorf("Invalid boolean %t %t", b, ok)
	}
	if b, ok := Bool(false).ToBool(); !ok || b {
		t.Errorf("Invalid boolean %t %t", b, ok)
	}
	if _, ok := Null().ToBool(); ok {
		t.Errorf("Null converted to boolean")
	}
}

func TestValueOf(t *testing.T) {
	for _, tc := range []struct {
		x    interface{}
		want Value
		ok   bool
	}{
		{nil, Null(), true},
		{"s", String("s"), true},
		{42, Number(42), true},
		{int64(-1), Number(-1), true},
		{true, Bool(true), true},
		{Bool(false), Bool(false), true},
		{1.5, Value{}, false},
		{[]int{}, Value{}, false},
	} {
		v, ok := ValueOf(tc.x)
		if ok != tc.ok || v != tc.want {
			t.Errorf("ValueOf(%#v) = %#v %t", tc.x, v, ok)
		}
	}
}

func TestValueGoString(t *testing.T) {
	assertEqual(t, `fixjson.String("a\n")`, String("a\n").GoString())
	assertEqual(t, `fixjson.Number(-7)`, Number(-7).GoString())
	assertEqual(t, `fixjson.Bool(true)`, Bool(true).GoString())
	assertEqual(t, `fixjson.Null()`, Null().GoString())
}
