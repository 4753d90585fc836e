package strjson

import (
	"testing"
)

func TestEscapeSequence(t *testing.T) {
	for c, e := range map[byte]string{
		'"':  `\"`,
		'\\': `\\`,
		'/':  `\/`,
		'\b': `\b`,
		'\f': `\f`,
		'\n': `\n`,
		'\r': `\r`,
		'\t': `\t`,
	} {
		got, ok := EscapeSequence(c)
		if !ok || got != e {
			t.Errorf("Invalid escape for %q: %q", c, got)
		}
		u, ok := UnescapeByte(e[1])
		if !ok || u != c {
			t.Errorf("Invalid unescape for %q: %q", e, u)
		}
	}
	for _, c := range []byte{'a', ' ', 0x01, 0x7f, 0x80, 0xff} {
		if e, ok := EscapeSequence(c); ok {
			t.Errorf("Unexpected escape for %q: %q", c, e)
		}
	}
	for _, c := range []byte{'u', 'x', '0', 0x80} {
		if u, ok := UnescapeByte(c); ok {
			t.Errorf("Unexpected unescape for %q: %q", c, u)
		}
	}
}

func TestAppendEscaped(t *testing.T) {
	test := func(u, s string) {
		t.Helper()
		if b := AppendEscaped(nil, s); string(b) != u {
			t.Errorf("Invalid escape:\nexpect: %s\nactual: %s", u, b)
		}
		if n := EscapedLen(s); n != len(u) {
			t.Errorf("Invalid escaped length %d != %d", n, len(u))
		}
	}
	test("", "")
	test("goo", "goo")
	test("goo\\n", "goo\n")
	test("\\r", "\r")
	test("\\t", "\t")
	test("\\f", "\f")
	test("\\b", "\b")
	test("\\\\", "\\")
	test("\\\"", "\"")
	test("\\/", "/")
	test(`v\"v`, `v"v`)
	test("goo\x02!", "goo\x02!")
	test(`<p>Foo<\/p>`, "<p>Foo</p>")
}

func TestAppendQuoted(t *testing.T) {
	if b := AppendQuoted([]byte("x:"), `a"b`); string(b) != `x:"a\"b"` {
		t.Errorf("Invalid quoted string %s", b)
	}
}

func TestIndexNonASCII(t *testing.T) {
	if i := IndexNonASCII("foo"); i != -1 {
		t.Errorf("Invalid index %d", i)
	}
	if i := IndexNonASCII("fooùÑû"); i != 3 {
		t.Errorf("Invalid index %d", i)
	}
}

func BenchmarkAppendEscaped(b *testing.B) {
	buf := make([]byte, 64)
	s := "\"Hello\nThis should be\tescaped\""
	e := `\"Hello\nThis should be\tescaped\"`
	buf = AppendEscaped(buf[:0], s)
	if string(buf) != e {
		b.Errorf("Invalid escape %s", string(buf))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AppendEscaped(buf[:0], s)
	}
}
