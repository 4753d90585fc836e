package strjson

// EscapedLen returns the size of s after escaping, without quotes.
// Non-ASCII bytes are counted as is.
func EscapedLen(s string) (n int) {
	for i := 0; i < len(s); i++ {
		if _, ok := EscapeSequence(s[i]); ok {
			n += 2
			continue
		}
		n++
	}
	return
}

// AppendEscaped appends escaped s to dst.
// Callers must reject non-ASCII input beforehand, it is copied through.
func AppendEscaped(dst []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		e, ok := EscapeSequence(s[i])
		if !ok {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		dst = append(dst, e...)
		start = i + 1
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return dst
}

// AppendQuoted appends the JSON string literal of s to dst.
func AppendQuoted(dst []byte, s string) []byte {
	dst = append(dst, delimString)
	dst = AppendEscaped(dst, s)
	return append(dst, delimString)
}
