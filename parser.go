package fixjson

import (
	"github.com/alxarch/fixjson/numjson"
	"github.com/alxarch/fixjson/strjson"
)

const (
	delimString         = '"'
	delimEscape         = '\\'
	delimBeginObject    = '{'
	delimEndObject      = '}'
	delimBeginArray     = '['
	delimEndArray       = ']'
	delimNameSeparator  = ':'
	delimValueSeparator = ','
	delimMinus          = '-'
)

// ParseObject parses the fields of a JSON object at the start of data.
//
// Fields are put into fields and unescaped strings are written to esc.
// On success it returns the number of bytes consumed (up to and including the
// closing '}') and the number of fields parsed. Trailing bytes are not read.
//
// The error is always a Failure. If it is Incomplete the caller can retry with
// a longer prefix of the same input, replaying from the start of data with
// esc reset. On failure the returned offset is where scanning stopped.
func ParseObject[S Store[Field], E StringBuffer](data []byte, fields S, esc E) (int, int, error) {
	s := scanner[E]{data: data, esc: esc}
	if err := s.skipSpace(); err != nil {
		return s.pos, 0, err
	}
	if data[s.pos] != delimBeginObject {
		return s.pos, 0, InvalidStructure
	}
	s.pos++
	numFields := 0
	for {
		if err := s.skipSpace(); err != nil {
			return s.pos, numFields, err
		}
		if data[s.pos] == delimEndObject {
			return s.pos + 1, numFields, nil
		}
		if numFields > 0 {
			if data[s.pos] != delimValueSeparator {
				return s.pos, numFields, InvalidStructure
			}
			s.pos++
			if err := s.skipSpace(); err != nil {
				return s.pos, numFields, err
			}
		}
		if data[s.pos] != delimString {
			return s.pos, numFields, InvalidStructure
		}
		key, err := s.readString()
		if err != nil {
			return s.pos, numFields, err
		}
		if err := s.skipSpace(); err != nil {
			return s.pos, numFields, err
		}
		if data[s.pos] != delimNameSeparator {
			return s.pos, numFields, InvalidStructure
		}
		s.pos++
		if err := s.skipSpace(); err != nil {
			return s.pos, numFields, err
		}
		v, err := s.readValue(delimEndObject)
		if err != nil {
			return s.pos, numFields, err
		}
		if err := fields.Put(numFields, Field{Key: key, Value: v}); err != nil {
			return s.pos, numFields, err
		}
		numFields++
	}
}

// ParseArray parses the values of a JSON array at the start of data.
//
// It behaves like ParseObject for arrays of terminal values.
func ParseArray[S Store[Value], E StringBuffer](data []byte, values S, esc E) (int, int, error) {
	s := scanner[E]{data: data, esc: esc}
	if err := s.skipSpace(); err != nil {
		return s.pos, 0, err
	}
	if data[s.pos] != delimBeginArray {
		return s.pos, 0, InvalidStructure
	}
	s.pos++
	numValues := 0
	for {
		if err := s.skipSpace(); err != nil {
			return s.pos, numValues, err
		}
		if data[s.pos] == delimEndArray {
			return s.pos + 1, numValues, nil
		}
		if numValues > 0 {
			if data[s.pos] != delimValueSeparator {
				return s.pos, numValues, InvalidStructure
			}
			s.pos++
			if err := s.skipSpace(); err != nil {
				return s.pos, numValues, err
			}
		}
		v, err := s.readValue(delimEndArray)
		if err != nil {
			return s.pos, numValues, err
		}
		if err := values.Put(numValues, v); err != nil {
			return s.pos, numValues, err
		}
		numValues++
	}
}

// ParseValue parses a single terminal value at the start of data.
//
// Numbers need a terminating byte (space, ',', '}' or ']') so a number at the
// end of data is Incomplete.
func ParseValue[E StringBuffer](data []byte, esc E) (int, Value, error) {
	s := scanner[E]{data: data, esc: esc}
	if err := s.skipSpace(); err != nil {
		return s.pos, Value{}, err
	}
	v, err := s.readValue(0)
	return s.pos, v, err
}

// Validate checks that data starts with a well formed object or array.
// It returns the bytes consumed and the number of entries without storing anything.
func Validate(data []byte) (int, int, error) {
	s := scanner[discard]{data: data}
	if err := s.skipSpace(); err != nil {
		return s.pos, 0, err
	}
	switch data[s.pos] {
	case delimBeginObject:
		return ParseObject(data, Discard[Field]{}, discard{})
	case delimBeginArray:
		return ParseArray(data, Discard[Value]{}, discard{})
	default:
		return s.pos, 0, InvalidStructure
	}
}

type scanner[E StringBuffer] struct {
	data []byte
	pos  int
	esc  E
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// skipSpace advances to the next non space byte.
func (s *scanner[E]) skipSpace() error {
	for ; s.pos < len(s.data); s.pos++ {
		if !isSpace(s.data[s.pos]) {
			return nil
		}
	}
	return Incomplete
}

// readValue reads a terminal value. end is the closing delimiter of the
// enclosing container or 0 if there is none.
func (s *scanner[E]) readValue(end byte) (Value, error) {
	switch c := s.data[s.pos]; c {
	case delimString:
		str, err := s.readString()
		return String(str), err
	case 't':
		return Bool(true), s.readLiteral(strTrue, InvalidBooleanField)
	case 'f':
		return Bool(false), s.readLiteral(strFalse, InvalidBooleanField)
	case 'n':
		return Null(), s.readLiteral(strNull, InvalidNullField)
	default:
		if c == delimMinus || numjson.IsDigit(c) {
			return s.readNumber(end)
		}
		return Value{}, InvalidStructure
	}
}

// readString reads a quoted string unescaping it into s.esc.
func (s *scanner[E]) readString() (string, error) {
	if s.data[s.pos] != delimString {
		return "", InvalidStringField
	}
	s.pos++
	s.esc.begin()
	escaped := false
	for ; s.pos < len(s.data); s.pos++ {
		c := s.data[s.pos]
		switch {
		case !strjson.IsASCII(c):
			return "", InvalidStringField
		case escaped:
			u, ok := strjson.UnescapeByte(c)
			if !ok {
				return "", InvalidStringField
			}
			if err := s.esc.writeByte(u); err != nil {
				return "", err
			}
			escaped = false
		case c == delimEscape:
			escaped = true
		case c == delimString:
			s.pos++
			return s.esc.commit(), nil
		default:
			if err := s.esc.writeByte(c); err != nil {
				return "", err
			}
		}
	}
	return "", Incomplete
}

// readLiteral matches lit byte by byte.
func (s *scanner[E]) readLiteral(lit string, fail Failure) error {
	for i := 0; i < len(lit); i++ {
		if s.pos == len(s.data) {
			return Incomplete
		}
		if s.data[s.pos] != lit[i] {
			return fail
		}
		s.pos++
	}
	return nil
}

func (s *scanner[E]) readNumber(end byte) (Value, error) {
	start := s.pos
	if s.data[s.pos] == delimMinus {
		s.pos++
	}
	digits := s.pos
	if s.pos = numjson.ScanDigits(s.data, s.pos); s.pos == len(s.data) {
		return Value{}, Incomplete
	}
	if s.pos == digits || !isNumberEnd(s.data[s.pos], end) {
		return Value{}, InvalidNumericField
	}
	n, err := numjson.ParseInt64(b2s(s.data[start:s.pos]))
	if err != nil {
		return Value{}, NumberParseError
	}
	return Number(n), nil
}

func isNumberEnd(c, end byte) bool {
	switch c {
	case delimValueSeparator:
		return true
	case delimEndObject, delimEndArray:
		return end == 0 || c == end
	default:
		return isSpace(c)
	}
}
