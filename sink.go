package fixjson

import (
	"fmt"
	"strings"
)

// SliceWriter is an io.Writer over a fixed byte slice.
// Writes past the end of the slice are truncated and fail with ErrSinkFull.
type SliceWriter struct {
	buf []byte
	n   int
}

// NewSliceWriter creates a writer filling buf.
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf}
}

func (w *SliceWriter) Write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	if n < len(p) {
		return n, ErrSinkFull
	}
	return n, nil
}

// Bytes returns the bytes written so far.
func (w *SliceWriter) Bytes() []byte {
	return w.buf[:w.n]
}

func (w *SliceWriter) Len() int {
	return w.n
}

// Reset rewinds the writer to the start of its slice.
func (w *SliceWriter) Reset() {
	w.n = 0
}

// Format implements fmt.Formatter writing o as JSON for any verb.
func (o Object) Format(f fmt.State, verb rune) {
	if _, err := o.Serialize(f); err != nil {
		formatError(f, verb, err)
	}
}

func (o Object) String() string {
	var b strings.Builder
	b.Grow(o.Size())
	if _, err := o.Serialize(&b); err != nil {
		return fmt.Sprintf("%%!s(%s)", err)
	}
	return b.String()
}

// Format implements fmt.Formatter writing a as JSON for any verb.
func (a Array) Format(f fmt.State, verb rune) {
	if _, err := a.Serialize(f); err != nil {
		formatError(f, verb, err)
	}
}

func (a Array) String() string {
	var b strings.Builder
	b.Grow(a.Size())
	if _, err := a.Serialize(&b); err != nil {
		return fmt.Sprintf("%%!s(%s)", err)
	}
	return b.String()
}

func formatError(f fmt.State, verb rune, err error) {
	fmt.Fprintf(f, "%%!%c(%s)", verb, err)
}
