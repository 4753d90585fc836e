package fixjson

import (
	"strings"
	"testing"
)

func TestArenaPush(t *testing.T) {
	a := NewArena(16)
	var strs []string
	var expect []string
	for i := 0; i < 100; i++ {
		s := strings.Repeat(string(rune('a'+i%26)), i%20)
		expect = append(expect, s)
		strs = append(strs, a.Push(s))
	}
	// Earlier strings must survive later chunk allocations.
	assertEqual(t, expect, strs)
	assertEqual(t, 100, a.Len())
	size := 0
	for _, s := range expect {
		size += len(s)
	}
	assertEqual(t, size, a.Size())
}

func TestArenaCopies(t *testing.T) {
	a := NewArena(0)
	buf := []byte("mutable")
	s := a.Push(string(buf))
	copy(buf, "XXXXXXX")
	assertEqual(t, "mutable", s)
	assertEqual(t, 1, len(a.chunks))
	assertEqual(t, DefaultArenaChunkSize, cap(a.chunks[0]))
}

func TestArenaRetry(t *testing.T) {
	a := NewArena(0)
	var fields [2]Field
	data := []byte(`{"key":"value","other":"x"}`)
	for k := 0; k < len(data); k++ {
		if _, _, err := ParseObject(data[:k], Fixed[Field](fields[:]), a); err != Incomplete {
			t.Fatalf("Expected incomplete at %d: %v", k, err)
		}
	}
	_, count, err := ParseObject(data, Fixed[Field](fields[:]), a)
	assertNoError(t, err)
	assertEqual(t, 2, count)
	assertEqual(t, StringField("key", "value"), fields[0])
	assertEqual(t, StringField("other", "x"), fields[1])
}

func TestEscapeBuffer(t *testing.T) {
	b := NewEscapeBuffer(make([]byte, 4))
	var fields [2]Field
	_, _, err := ParseObject([]byte(`{"ab":"cd"}`), Fixed[Field](fields[:]), b)
	assertNoError(t, err)
	assertEqual(t, 4, b.Len())
	assertEqual(t, 4, b.Cap())
	_, _, err = ParseObject([]byte(`{"e":1}`), Fixed[Field](fields[:]), b)
	assertEqual(t, error(EscapeBufferTooSmall), err)
	b.Reset()
	_, _, err = ParseObject([]byte(`{"e":1}`), Fixed[Field](fields[:]), b)
	assertNoError(t, err)
	assertEqual(t, NumberField("e", 1), fields[0])
}
