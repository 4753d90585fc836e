package fixjson

import (
	"io"

	"github.com/alxarch/fixjson/numjson"
	"github.com/alxarch/fixjson/strjson"
)

// SerializeObject writes fields as a JSON object to w.
// It returns the number of bytes written.
func SerializeObject(w io.Writer, fields []Field) (int, error) {
	return SerializeObjectResume(w, fields, 0)
}

// SerializeObjectResume writes the JSON object of fields to w, skipping the
// first from bytes of the output.
//
// The skipped bytes are counted but not written. It returns the number of
// bytes written to w on both success and failure, so a failed write can be
// resumed from from+n. Resuming at or past the end of the output writes nothing.
// A negative from writes the whole output.
//
// Strings containing non-ASCII bytes fail with InvalidStringField before
// anything is written.
func SerializeObjectResume(w io.Writer, fields []Field, from int) (int, error) {
	if err := checkFields(fields); err != nil {
		return 0, err
	}
	t := newTracker(w, from)
	t.writeString("{")
	for i := range fields {
		if i > 0 {
			t.writeString(",")
		}
		t.quoted(fields[i].Key)
		t.writeString(":")
		t.value(fields[i].Value)
	}
	t.writeString("}")
	return t.written(), t.err
}

// SerializeArray writes values as a JSON array to w.
// It returns the number of bytes written.
func SerializeArray(w io.Writer, values []Value) (int, error) {
	return SerializeArrayResume(w, values, 0)
}

// SerializeArrayResume is the array counterpart of SerializeObjectResume.
func SerializeArrayResume(w io.Writer, values []Value, from int) (int, error) {
	if err := checkValues(values); err != nil {
		return 0, err
	}
	t := newTracker(w, from)
	t.writeString("[")
	for i := range values {
		if i > 0 {
			t.writeString(",")
		}
		t.value(values[i])
	}
	t.writeString("]")
	return t.written(), t.err
}

// AppendObject appends the JSON object of fields to dst.
func AppendObject(dst []byte, fields []Field) ([]byte, error) {
	w := appendWriter{buf: dst}
	_, err := SerializeObject(&w, fields)
	return w.buf, err
}

// AppendArray appends the JSON array of values to dst.
func AppendArray(dst []byte, values []Value) ([]byte, error) {
	w := appendWriter{buf: dst}
	_, err := SerializeArray(&w, values)
	return w.buf, err
}

// ObjectSize returns the size of the JSON object of fields.
func ObjectSize(fields []Field) int {
	n := 2
	for i := range fields {
		if i > 0 {
			n++
		}
		n += quotedSize(fields[i].Key) + 1 + valueSize(fields[i].Value)
	}
	return n
}

// ArraySize returns the size of the JSON array of values.
func ArraySize(values []Value) int {
	n := 2
	for i := range values {
		if i > 0 {
			n++
		}
		n += valueSize(values[i])
	}
	return n
}

func quotedSize(s string) int {
	return 2 + strjson.EscapedLen(s)
}

func valueSize(v Value) int {
	switch v.typ {
	case TypeString:
		return quotedSize(v.str)
	case TypeNumber:
		var buf numjson.Buffer
		return len(buf.Format(v.num))
	case TypeBoolean:
		if v.num != 0 {
			return len(strTrue)
		}
		return len(strFalse)
	default:
		return len(strNull)
	}
}

func checkString(s string) error {
	if strjson.IndexNonASCII(s) != -1 {
		return InvalidStringField
	}
	return nil
}

func checkFields(fields []Field) error {
	for i := range fields {
		if err := checkString(fields[i].Key); err != nil {
			return err
		}
		if err := checkString(fields[i].Value.str); err != nil {
			return err
		}
	}
	return nil
}

func checkValues(values []Value) error {
	for i := range values {
		if err := checkString(values[i].str); err != nil {
			return err
		}
	}
	return nil
}

// tracker counts the logical output and writes only what lies past from.
type tracker struct {
	w    io.Writer
	n    int
	from int
	err  error
}

// newTracker treats a negative from as 0.
func newTracker(w io.Writer, from int) tracker {
	if from < 0 {
		from = 0
	}
	return tracker{w: w, from: from}
}

func (t *tracker) write(p []byte) {
	if t.err != nil || len(p) == 0 {
		return
	}
	end := t.n + len(p)
	if end <= t.from {
		t.n = end
		return
	}
	if t.n < t.from {
		p = p[t.from-t.n:]
		t.n = t.from
	}
	n, err := t.w.Write(p)
	if n > len(p) {
		n = len(p)
	}
	t.n += n
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	t.err = err
}

func (t *tracker) writeString(s string) {
	t.write(s2b(s))
}

func (t *tracker) written() int {
	if t.n < t.from {
		return 0
	}
	return t.n - t.from
}

func (t *tracker) quoted(s string) {
	t.writeString(`"`)
	start := 0
	for i := 0; i < len(s); i++ {
		e, ok := strjson.EscapeSequence(s[i])
		if !ok {
			continue
		}
		t.writeString(s[start:i])
		t.writeString(e)
		start = i + 1
	}
	t.writeString(s[start:])
	t.writeString(`"`)
}

func (t *tracker) value(v Value) {
	switch v.typ {
	case TypeString:
		t.quoted(v.str)
	case TypeNumber:
		var buf numjson.Buffer
		t.write(buf.Format(v.num))
	case TypeBoolean:
		if v.num != 0 {
			t.writeString(strTrue)
		} else {
			t.writeString(strFalse)
		}
	default:
		t.writeString(strNull)
	}
}

type appendWriter struct {
	buf []byte
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}
