// Package numjson handles the integer-only number grammar of fixjson.
//
// A number is an optional '-' followed by one or more ASCII digits and must
// fit in an int64. Fractions and exponents are not part of the grammar.
package numjson

import (
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

// MaxIntLen is the size of the longest int64 in base 10 ("-9223372036854775808").
const MaxIntLen = 20

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ScanDigits returns the end of the run of digits in s starting at pos.
func ScanDigits(s []byte, pos int) int {
	for ; pos < len(s) && IsDigit(s[pos]); pos++ {
	}
	return pos
}

// ParseInt64 parses an integer literal.
// It returns a *strconv.NumError with strconv.ErrRange if s overflows int64.
func ParseInt64(s string) (int64, error) {
	return fastfloat.ParseInt64(s)
}

// Buffer is scratch space for formatting an int64 without allocations.
type Buffer [MaxIntLen]byte

// Format renders n in canonical base 10 into buf.
func (buf *Buffer) Format(n int64) []byte {
	return strconv.AppendInt(buf[:0], n, 10)
}

// AppendInt appends the canonical base 10 representation of n.
func AppendInt(dst []byte, n int64) []byte {
	return strconv.AppendInt(dst, n, 10)
}
