package fixjson

import "io"

// Array is a JSON array of terminal values backed by a caller owned slice.
//
// Only the first Len() values are initialized.
type Array struct {
	values []Value
	n      int
}

// WrapArray wraps buf considering none of its values initialized.
func WrapArray(buf []Value) Array {
	return Array{values: buf}
}

// ArrayOf wraps values considering all of them initialized.
func ArrayOf(values ...Value) Array {
	return Array{values: values, n: len(values)}
}

func (a Array) Len() int {
	return a.n
}

func (a Array) Cap() int {
	return len(a.values)
}

// Values returns the initialized values.
func (a Array) Values() []Value {
	return a.values[:a.n:a.n]
}

// Get returns the value at index i.
func (a Array) Get(i int) (Value, bool) {
	if 0 <= i && i < a.n {
		return a.values[i], true
	}
	return Value{}, false
}

// Equal reports whether both arrays have the same values in the same order.
func (a Array) Equal(other Array) bool {
	if a.n != other.n {
		return false
	}
	x, y := a.Values(), other.Values()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Push appends a value. It fails with FieldBufferTooSmall if the array is full.
func (a *Array) Push(v Value) error {
	if err := Fixed[Value](a.values).Put(a.n, v); err != nil {
		return err
	}
	a.n++
	return nil
}

func (a *Array) Pop() (Value, bool) {
	if a.n == 0 {
		return Value{}, false
	}
	a.n--
	v := a.values[a.n]
	a.values[a.n] = Value{}
	return v, true
}

func (a *Array) Reset() {
	a.n = 0
}

// Parse parses a JSON array from data replacing the values of a.
// See Object.Parse.
func (a *Array) Parse(data []byte, escape []byte) (int, error) {
	return a.setParsed(ParseArray(data, Fixed[Value](a.values), NewEscapeBuffer(escape)))
}

func (a *Array) ParseArena(data []byte, arena *Arena) (int, error) {
	return a.setParsed(ParseArray(data, Fixed[Value](a.values), arena))
}

func (a *Array) ParseGrow(data []byte, escape []byte) (int, error) {
	return a.setParsed(ParseArray(data, Grow(&a.values), NewEscapeBuffer(escape)))
}

func (a *Array) ParseGrowArena(data []byte, arena *Arena) (int, error) {
	return a.setParsed(ParseArray(data, Grow(&a.values), arena))
}

func (a *Array) setParsed(end, n int, err error) (int, error) {
	if err != nil {
		a.n = 0
		return end, err
	}
	a.n = n
	return end, nil
}

func (a Array) Serialize(w io.Writer) (int, error) {
	return SerializeArray(w, a.Values())
}

func (a Array) SerializeResume(w io.Writer, from int) (int, error) {
	return SerializeArrayResume(w, a.Values(), from)
}

func (a Array) AppendJSON(dst []byte) ([]byte, error) {
	return AppendArray(dst, a.Values())
}

func (a Array) Size() int {
	return ArraySize(a.Values())
}
