package fixjson

// StringBuffer is a destination for unescaped strings.
// It is implemented by *EscapeBuffer and *Arena.
type StringBuffer interface {
	// begin drops any bytes left over by an unfinished string.
	begin()
	writeByte(c byte) error
	// commit completes the pending string and returns it.
	commit() string
}

var (
	_ StringBuffer = (*EscapeBuffer)(nil)
	_ StringBuffer = (*Arena)(nil)
	_ StringBuffer = discard{}
)

// EscapeBuffer unescapes strings into a fixed caller owned byte slice.
//
// Returned strings share memory with the slice; they stay valid as long as the
// slice is not reused. Once full, writes fail with EscapeBufferTooSmall.
type EscapeBuffer struct {
	buf   []byte
	start int
	pos   int
}

// NewEscapeBuffer creates an escape buffer over buf.
func NewEscapeBuffer(buf []byte) *EscapeBuffer {
	return &EscapeBuffer{buf: buf}
}

func (b *EscapeBuffer) begin() {
	b.pos = b.start
}

func (b *EscapeBuffer) writeByte(c byte) error {
	if 0 <= b.pos && b.pos < len(b.buf) {
		b.buf[b.pos] = c
		b.pos++
		return nil
	}
	return EscapeBufferTooSmall
}

func (b *EscapeBuffer) commit() string {
	s := b2s(b.buf[b.start:b.pos:b.pos])
	b.start = b.pos
	return s
}

// Len returns the number of bytes used.
func (b *EscapeBuffer) Len() int {
	return b.pos
}

// Cap returns the size of the underlying slice.
func (b *EscapeBuffer) Cap() int {
	return len(b.buf)
}

// Reset rewinds the buffer. Strings returned so far must no longer be used.
func (b *EscapeBuffer) Reset() {
	b.start, b.pos = 0, 0
}

type discard struct{}

func (discard) begin()                {}
func (discard) writeByte(byte) error { return nil }
func (discard) commit() string       { return "" }
