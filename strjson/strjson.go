// Package strjson implements the fixed JSON escape table used by fixjson.
//
// Only the eight named escapes of RFC 8259 are supported. Unicode (\uXXXX)
// escapes are not decoded and non-ASCII bytes are never valid string content.
package strjson

import "unicode/utf8"

const (
	delimEscape = '\\'
	delimString = '"'
)

// escapes maps a literal ASCII byte to its escape sequence.
var escapes = [utf8.RuneSelf]string{
	'"':  `\"`,
	'\\': `\\`,
	'/':  `\/`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// unescapes maps the byte following a '\' to its literal value.
var unescapes = [utf8.RuneSelf]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// EscapeSequence returns the two byte escape sequence for c.
// It returns false if c is written literally.
func EscapeSequence(c byte) (string, bool) {
	if c < utf8.RuneSelf {
		if e := escapes[c]; e != "" {
			return e, true
		}
	}
	return "", false
}

// UnescapeByte maps the byte following a '\' to the literal byte it stands for.
func UnescapeByte(c byte) (byte, bool) {
	if c < utf8.RuneSelf {
		if u := unescapes[c]; u != 0 {
			return u, true
		}
	}
	return 0, false
}

// IsASCII reports whether c is a 7-bit byte.
func IsASCII(c byte) bool {
	return c < utf8.RuneSelf
}

// IndexNonASCII returns the index of the first non-ASCII byte in s or -1.
func IndexNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}
