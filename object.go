package fixjson

import "io"

// Object is a JSON object of terminal values backed by a caller owned slice.
//
// Only the first Len() fields are initialized; the rest of the slice is
// scratch space that is never exposed. Field order is preserved.
type Object struct {
	fields []Field
	n      int
}

// WrapObject wraps buf considering none of its fields initialized.
// The capacity of the object is len(buf).
func WrapObject(buf []Field) Object {
	return Object{fields: buf}
}

// ObjectOf wraps fields considering all of them initialized.
func ObjectOf(fields ...Field) Object {
	return Object{fields: fields, n: len(fields)}
}

// Len returns the number of initialized fields.
func (o Object) Len() int {
	return o.n
}

// Cap returns the maximum number of fields before Push or Parse fail.
func (o Object) Cap() int {
	return len(o.fields)
}

// Fields returns the initialized fields.
func (o Object) Fields() []Field {
	return o.fields[:o.n:o.n]
}

// Get returns the value of the first field with key.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether both objects have the same fields in the same order.
func (o Object) Equal(other Object) bool {
	if o.n != other.n {
		return false
	}
	a, b := o.Fields(), other.Fields()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Push appends a field. It fails with FieldBufferTooSmall if the object is full.
func (o *Object) Push(f Field) error {
	if err := Fixed[Field](o.fields).Put(o.n, f); err != nil {
		return err
	}
	o.n++
	return nil
}

// PushField appends a field with key and value.
func (o *Object) PushField(key string, v Value) error {
	return o.Push(Field{Key: key, Value: v})
}

// Pop removes the last field.
func (o *Object) Pop() (Field, bool) {
	if o.n == 0 {
		return Field{}, false
	}
	o.n--
	f := o.fields[o.n]
	o.fields[o.n] = Field{}
	return f, true
}

// Reset marks all fields uninitialized.
func (o *Object) Reset() {
	o.n = 0
}

// Parse parses a JSON object from data replacing the fields of o.
//
// Strings are unescaped into escape and share its memory. It returns the
// number of bytes consumed. On failure o is left empty and the returned
// offset is where parsing stopped.
func (o *Object) Parse(data []byte, escape []byte) (int, error) {
	return o.setParsed(ParseObject(data, Fixed[Field](o.fields), NewEscapeBuffer(escape)))
}

// ParseArena is like Parse but interns strings in arena.
func (o *Object) ParseArena(data []byte, arena *Arena) (int, error) {
	return o.setParsed(ParseObject(data, Fixed[Field](o.fields), arena))
}

// ParseGrow is like Parse but grows the field buffer as needed.
func (o *Object) ParseGrow(data []byte, escape []byte) (int, error) {
	return o.setParsed(ParseObject(data, Grow(&o.fields), NewEscapeBuffer(escape)))
}

// ParseGrowArena grows the field buffer as needed and interns strings in arena.
func (o *Object) ParseGrowArena(data []byte, arena *Arena) (int, error) {
	return o.setParsed(ParseObject(data, Grow(&o.fields), arena))
}

func (o *Object) setParsed(end, n int, err error) (int, error) {
	if err != nil {
		o.n = 0
		return end, err
	}
	o.n = n
	return end, nil
}

// Serialize writes o as JSON to w and returns the number of bytes written.
func (o Object) Serialize(w io.Writer) (int, error) {
	return SerializeObject(w, o.Fields())
}

// SerializeResume writes o as JSON to w starting at offset from of the output.
// See SerializeObjectResume.
func (o Object) SerializeResume(w io.Writer, from int) (int, error) {
	return SerializeObjectResume(w, o.Fields(), from)
}

// AppendJSON appends o as JSON to dst.
func (o Object) AppendJSON(dst []byte) ([]byte, error) {
	return AppendObject(dst, o.Fields())
}

// Size returns the size of the JSON output of o.
func (o Object) Size() int {
	return ObjectSize(o.Fields())
}
