//go:build !appengine

package fixjson

import "unsafe"

// Flag to indicate unsafe byte operations
const safebytes = false

// b2s returns a string sharing memory with b.
// b must not be modified while the string is in use.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// s2b returns the bytes of s without copying. The result must not be modified.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
