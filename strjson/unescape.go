package strjson

import "errors"

var (
	errInvalidEscape = errors.New("strjson: invalid escape sequence")
	errNonASCII      = errors.New("strjson: non-ASCII byte in string")
	errTrailing      = errors.New("strjson: unterminated escape sequence")
)

// Unescape appends the unescaped content of a JSON string literal body
// (without the surrounding quotes) to dst.
func Unescape(dst []byte, s string) ([]byte, error) {
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case !IsASCII(c):
			return dst, errNonASCII
		case escaped:
			u, ok := UnescapeByte(c)
			if !ok {
				return dst, errInvalidEscape
			}
			dst = append(dst, u)
			escaped = false
		case c == delimEscape:
			escaped = true
		default:
			dst = append(dst, c)
		}
	}
	if escaped {
		return dst, errTrailing
	}
	return dst, nil
}

// Unescaped returns the unescaped content of a JSON string literal body.
func Unescaped(s string) (string, error) {
	b, err := Unescape(make([]byte, 0, len(s)), s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
