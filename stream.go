package fixjson

import (
	"errors"
	"io"
)

// Reader reads consecutive JSON objects or arrays from an io.Reader.
//
// Bytes are accumulated in a caller owned buffer and the parse is replayed
// from the start of the pending value each time more bytes arrive. A value
// must fit in the buffer.
type Reader struct {
	r        io.Reader
	buf      []byte
	end      int
	consumed int
	eof      bool
}

// NewReader creates a reader buffering input from r into buf.
func NewReader(r io.Reader, buf []byte) *Reader {
	return &Reader{r: r, buf: buf}
}

// ReadObject reads the next object into obj unescaping strings into escape.
//
// It returns io.EOF if the input ends before a value starts and
// io.ErrUnexpectedEOF if it ends inside one. Other parse failures are
// returned as *ParseError.
func (r *Reader) ReadObject(obj *Object, escape []byte) error {
	return r.read(func(data []byte) (int, error) {
		return obj.Parse(data, escape)
	})
}

// ReadObjectArena reads the next object into obj interning strings in arena.
// Strings from abandoned partial parses also remain in the arena.
func (r *Reader) ReadObjectArena(obj *Object, arena *Arena) error {
	return r.read(func(data []byte) (int, error) {
		return obj.ParseArena(data, arena)
	})
}

// ReadArray reads the next array into arr unescaping strings into escape.
func (r *Reader) ReadArray(arr *Array, escape []byte) error {
	return r.read(func(data []byte) (int, error) {
		return arr.Parse(data, escape)
	})
}

// Buffered returns the bytes read but not yet consumed by a value.
func (r *Reader) Buffered() []byte {
	return r.buf[r.consumed:r.end]
}

func (r *Reader) shift() {
	if r.consumed > 0 {
		r.end = copy(r.buf, r.buf[r.consumed:r.end])
		r.consumed = 0
	}
}

func (r *Reader) read(parse func(data []byte) (int, error)) error {
	r.shift()
	for {
		r.dropSpace()
		if r.end > 0 {
			n, err := parse(r.buf[:r.end])
			if err == nil {
				r.consumed = n
				return nil
			}
			if !IsIncomplete(err) {
				return parseError(n, err)
			}
		}
		if r.eof {
			if isBlank(r.buf[:r.end]) {
				return io.EOF
			}
			return io.ErrUnexpectedEOF
		}
		if r.end == len(r.buf) {
			return ErrReadBufferFull
		}
		n, err := r.r.Read(r.buf[r.end:])
		r.end += n
		switch {
		case errors.Is(err, io.EOF):
			r.eof = true
		case err != nil:
			return err
		}
	}
}

// dropSpace discards whitespace before the pending value so it does not
// take up room in the buffer.
func (r *Reader) dropSpace() {
	n := 0
	for n < r.end && isSpace(r.buf[n]) {
		n++
	}
	if n > 0 {
		r.end = copy(r.buf, r.buf[n:r.end])
	}
}

func isBlank(data []byte) bool {
	for _, c := range data {
		if !isSpace(c) {
			return false
		}
	}
	return true
}

// Encoder writes objects and arrays to an io.Writer that may accept partial writes.
//
// When a write fails the encoder remembers how much of the value was written.
// Calling it again with the same value continues from that offset.
type Encoder struct {
	w   io.Writer
	off int
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// EncodeObject writes obj resuming a previous failed write of the same object.
func (e *Encoder) EncodeObject(obj Object) error {
	return e.done(obj.SerializeResume(e.w, e.off))
}

// EncodeArray writes arr resuming a previous failed write of the same array.
func (e *Encoder) EncodeArray(arr Array) error {
	return e.done(arr.SerializeResume(e.w, e.off))
}

// Offset returns the bytes of the pending value already written.
func (e *Encoder) Offset() int {
	return e.off
}

// Reset abandons a pending value.
func (e *Encoder) Reset() {
	e.off = 0
}

func (e *Encoder) done(n int, err error) error {
	if err != nil {
		e.off += n
		return err
	}
	e.off = 0
	return nil
}

// ScanJSON is a bufio.SplitFunc that splits input into flat JSON objects or arrays.
// Whitespace between values is skipped.
func ScanJSON(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	if start == len(data) {
		return start, nil, nil
	}
	n, _, err := Validate(data[start:])
	switch {
	case err == nil:
		return start + n, data[start : start+n], nil
	case IsIncomplete(err):
		if atEOF {
			return 0, nil, io.ErrUnexpectedEOF
		}
		return start, nil, nil
	default:
		return 0, nil, parseError(start+n, err)
	}
}
