// Package fixjsontest provides property checks for fixjson objects and arrays.
//
// Each check returns a func(t *testing.T) to be used with t.Run.
package fixjsontest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/alxarch/fixjson"
	"github.com/stretchr/testify/require"
)

// T is a test case for fixjson.
type T struct {
	escapeSize int
	arena      bool
	growable   bool
}

func newT(data []byte, options []Option) (t T) {
	// Unescaped strings are never longer than their escaped input.
	t.escapeSize = len(data)
	for _, option := range options {
		if option != nil {
			option.set(&t)
		}
	}
	return
}

// parseObject parses data with the configured storage and returns the object.
func (tc *T) parseObject(data []byte, capacity int) (int, fixjson.Object, error) {
	obj := fixjson.WrapObject(make([]fixjson.Field, capacity))
	if tc.growable {
		obj = fixjson.WrapObject(nil)
	}
	var (
		n   int
		err error
	)
	switch {
	case tc.arena && tc.growable:
		n, err = obj.ParseGrowArena(data, fixjson.NewArena(0))
	case tc.arena:
		n, err = obj.ParseArena(data, fixjson.NewArena(0))
	case tc.growable:
		n, err = obj.ParseGrow(data, make([]byte, tc.escapeSize))
	default:
		n, err = obj.Parse(data, make([]byte, tc.escapeSize))
	}
	return n, obj, err
}

func (tc *T) parseArray(data []byte, capacity int) (int, fixjson.Array, error) {
	arr := fixjson.WrapArray(make([]fixjson.Value, capacity))
	if tc.growable {
		arr = fixjson.WrapArray(nil)
	}
	var (
		n   int
		err error
	)
	switch {
	case tc.arena && tc.growable:
		n, err = arr.ParseGrowArena(data, fixjson.NewArena(0))
	case tc.arena:
		n, err = arr.ParseArena(data, fixjson.NewArena(0))
	case tc.growable:
		n, err = arr.ParseGrow(data, make([]byte, tc.escapeSize))
	default:
		n, err = arr.Parse(data, make([]byte, tc.escapeSize))
	}
	return n, arr, err
}

// RoundTrip checks that obj parses back from its own serialization.
func RoundTrip(obj fixjson.Object, options ...Option) func(t *testing.T) {
	return func(t *testing.T) {
		data, err := obj.AppendJSON(nil)
		require.NoError(t, err)
		require.Equal(t, obj.Size(), len(data), "size of %s", data)
		tc := newT(data, options)
		n, parsed, err := tc.parseObject(data, obj.Len())
		require.NoError(t, err, "parse %s", data)
		require.Equal(t, len(data), n)
		require.True(t, obj.Equal(parsed), "expect: %s\nactual: %s", obj, parsed)

		expect, err := DecodeObject(data)
		require.NoError(t, err, "oracle decode %s", data)
		require.True(t, expect.Equal(parsed), "oracle: %s\nactual: %s", expect, parsed)
	}
}

// RoundTripArray checks that arr parses back from its own serialization.
func RoundTripArray(arr fixjson.Array, options ...Option) func(t *testing.T) {
	return func(t *testing.T) {
		data, err := arr.AppendJSON(nil)
		require.NoError(t, err)
		require.Equal(t, arr.Size(), len(data), "size of %s", data)
		tc := newT(data, options)
		n, parsed, err := tc.parseArray(data, arr.Len())
		require.NoError(t, err, "parse %s", data)
		require.Equal(t, len(data), n)
		require.True(t, arr.Equal(parsed), "expect: %s\nactual: %s", arr, parsed)

		expect, err := DecodeArray(data)
		require.NoError(t, err, "oracle decode %s", data)
		require.True(t, expect.Equal(parsed), "oracle: %s\nactual: %s", expect, parsed)
	}
}

// Resume checks that resuming at every offset writes the matching suffix.
func Resume(obj fixjson.Object) func(t *testing.T) {
	return func(t *testing.T) {
		full, err := obj.AppendJSON(nil)
		require.NoError(t, err)
		for k := 0; k <= len(full)+1; k++ {
			var buf bytes.Buffer
			n, err := obj.SerializeResume(&buf, k)
			require.NoError(t, err, "resume at %d", k)
			expect := []byte{}
			if k < len(full) {
				expect = full[k:]
			}
			require.Equal(t, len(expect), n, "resume at %d", k)
			require.Equal(t, string(expect), buf.String(), "resume at %d", k)
		}
	}
}

// ShortWrites checks that writing obj through a sink accepting size bytes per
// call and resuming after every failure reproduces the full output.
func ShortWrites(obj fixjson.Object, size int) func(t *testing.T) {
	return func(t *testing.T) {
		full, err := obj.AppendJSON(nil)
		require.NoError(t, err)
		var out []byte
		buf := make([]byte, size)
		for off := 0; ; {
			w := fixjson.NewSliceWriter(buf)
			n, err := obj.SerializeResume(w, off)
			require.Equal(t, n, w.Len())
			out = append(out, w.Bytes()...)
			off += n
			if err == nil {
				break
			}
			require.ErrorIs(t, err, fixjson.ErrSinkFull)
			require.NotZero(t, n, "no progress at offset %d", off)
		}
		require.Equal(t, string(full), string(out))
	}
}

// Incremental checks that every strict prefix of data is Incomplete and that
// the full input parses to expect.
func Incremental(data []byte, expect fixjson.Object, options ...Option) func(t *testing.T) {
	return func(t *testing.T) {
		tc := newT(data, options)
		for k := 0; k < len(data); k++ {
			_, _, err := tc.parseObject(data[:k], expect.Len())
			require.ErrorIs(t, err, fixjson.Incomplete, "prefix %q", data[:k])
		}
		n, obj, err := tc.parseObject(data, expect.Len())
		require.NoError(t, err)
		require.Equal(t, len(data), n)
		require.True(t, expect.Equal(obj), "expect: %s\nactual: %s", expect, obj)
	}
}

// IncrementalArray checks that every strict prefix of data is Incomplete and
// that the full input parses to expect.
func IncrementalArray(data []byte, expect fixjson.Array, options ...Option) func(t *testing.T) {
	return func(t *testing.T) {
		tc := newT(data, options)
		for k := 0; k < len(data); k++ {
			_, _, err := tc.parseArray(data[:k], expect.Len())
			require.ErrorIs(t, err, fixjson.Incomplete, "prefix %q", data[:k])
		}
		n, arr, err := tc.parseArray(data, expect.Len())
		require.NoError(t, err)
		require.Equal(t, len(data), n)
		require.True(t, expect.Equal(arr), "expect: %s\nactual: %s", expect, arr)
	}
}

// Capacity checks that the serialization of obj parses into exactly Len()
// fields and fails with FieldBufferTooSmall for one less.
func Capacity(obj fixjson.Object, options ...Option) func(t *testing.T) {
	return func(t *testing.T) {
		data, err := obj.AppendJSON(nil)
		require.NoError(t, err)
		tc := newT(data, options)
		tc.growable = false
		_, parsed, err := tc.parseObject(data, obj.Len())
		require.NoError(t, err)
		require.Equal(t, obj.Len(), parsed.Len())
		if obj.Len() == 0 {
			return
		}
		_, _, err = tc.parseObject(data, obj.Len()-1)
		require.ErrorIs(t, err, fixjson.FieldBufferTooSmall, fmt.Sprintf("capacity %d", obj.Len()-1))
	}
}
