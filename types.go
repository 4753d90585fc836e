package fixjson

import "fmt"

// Type is the type of a terminal JSON value.
type Type byte

// The zero Type is TypeNull so that the zero Value is a JSON null.
const (
	TypeNull Type = iota
	TypeString
	TypeNumber
	TypeBoolean
)

const (
	strFalse = "false"
	strTrue  = "true"
	strNull  = "null"
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	default:
		return "InvalidType"
	}
}

// Value is a terminal JSON value: a string, an integer number, a boolean or null.
//
// String values reference memory owned by the caller (an escape buffer, an
// Arena or a Go string); a Value never owns storage.
// Values are comparable with ==.
type Value struct {
	typ Type
	str string
	num int64
}

// String creates a string value.
func String(s string) Value {
	return Value{typ: TypeString, str: s}
}

// Number creates a number value.
func Number(n int64) Value {
	return Value{typ: TypeNumber, num: n}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{typ: TypeBoolean, num: 1}
	}
	return Value{typ: TypeBoolean}
}

// Null returns the null value. It is the zero Value.
func Null() Value {
	return Value{}
}

// ValueOf converts a Go value to a Value.
// Supported types are string, int, int64, bool and nil.
func ValueOf(x interface{}) (Value, bool) {
	switch x := x.(type) {
	case nil:
		return Null(), true
	case string:
		return String(x), true
	case int64:
		return Number(x), true
	case int:
		return Number(int64(x)), true
	case bool:
		return Bool(x), true
	case Value:
		return x, true
	default:
		return Value{}, false
	}
}

func (v Value) Type() Type {
	return v.typ
}

func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// ToString returns the string of a string value.
func (v Value) ToString() (string, bool) {
	if v.typ == TypeString {
		return v.str, true
	}
	return "", false
}

// ToInt returns the integer of a number value.
func (v Value) ToInt() (int64, bool) {
	if v.typ == TypeNumber {
		return v.num, true
	}
	return 0, false
}

// ToBool returns the boolean of a boolean value.
func (v Value) ToBool() (bool, bool) {
	if v.typ == TypeBoolean {
		return v.num != 0, true
	}
	return false, false
}

// GoString helps test failures print readable values.
func (v Value) GoString() string {
	switch v.typ {
	case TypeString:
		return fmt.Sprintf("fixjson.String(%q)", v.str)
	case TypeNumber:
		return fmt.Sprintf("fixjson.Number(%d)", v.num)
	case TypeBoolean:
		return fmt.Sprintf("fixjson.Bool(%t)", v.num != 0)
	default:
		return "fixjson.Null()"
	}
}

// Field is a key/value pair of a JSON object.
//
// The zero Field (empty key, null value) marks an unused slot.
type Field struct {
	Key   string
	Value Value
}

func NewField(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

func StringField(key, s string) Field {
	return Field{Key: key, Value: String(s)}
}

func NumberField(key string, n int64) Field {
	return Field{Key: key, Value: Number(n)}
}

func BoolField(key string, b bool) Field {
	return Field{Key: key, Value: Bool(b)}
}

func NullField(key string) Field {
	return Field{Key: key}
}
