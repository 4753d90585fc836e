package fixjson

import (
	"errors"
	"fmt"
)

// Failure is the reason a parse did not succeed.
//
// Failures are plain values and returning one as an error does not allocate.
// Use errors.Is or AsFailure to inspect wrapped failures.
type Failure uint8

const (
	_ Failure = iota
	// Incomplete signals the input ended before the object or array was closed.
	// It is the only retriable failure.
	Incomplete
	// FieldBufferTooSmall signals a fixed field or value buffer is full.
	FieldBufferTooSmall
	// EscapeBufferTooSmall signals a fixed escape buffer is full.
	EscapeBufferTooSmall
	// InvalidStructure signals a misplaced or missing delimiter.
	InvalidStructure
	// InvalidStringField signals an invalid escape or a non-ASCII byte in a string.
	InvalidStringField
	// InvalidNumericField signals a malformed number.
	InvalidNumericField
	// NumberParseError signals a well formed number that does not fit in an int64.
	NumberParseError
	// InvalidBooleanField signals a malformed true or false literal.
	InvalidBooleanField
	// InvalidNullField signals a malformed null literal.
	InvalidNullField
)

func (f Failure) String() string {
	switch f {
	case Incomplete:
		return "Incomplete"
	case FieldBufferTooSmall:
		return "FieldBufferTooSmall"
	case EscapeBufferTooSmall:
		return "EscapeBufferTooSmall"
	case InvalidStructure:
		return "InvalidStructure"
	case InvalidStringField:
		return "InvalidStringField"
	case InvalidNumericField:
		return "InvalidNumericField"
	case NumberParseError:
		return "NumberParseError"
	case InvalidBooleanField:
		return "InvalidBooleanField"
	case InvalidNullField:
		return "InvalidNullField"
	default:
		return fmt.Sprintf("Failure(%d)", uint8(f))
	}
}

func (f Failure) Error() string {
	switch f {
	case Incomplete:
		return "fixjson: incomplete input"
	case FieldBufferTooSmall:
		return "fixjson: field buffer too small"
	case EscapeBufferTooSmall:
		return "fixjson: escape buffer too small"
	case InvalidStructure:
		return "fixjson: invalid structure"
	case InvalidStringField:
		return "fixjson: invalid string"
	case InvalidNumericField:
		return "fixjson: invalid number"
	case NumberParseError:
		return "fixjson: number out of range"
	case InvalidBooleanField:
		return "fixjson: invalid boolean"
	case InvalidNullField:
		return "fixjson: invalid null"
	default:
		return "fixjson: " + f.String()
	}
}

// Retriable reports whether parsing a longer prefix of the same input can succeed.
func (f Failure) Retriable() bool {
	return f == Incomplete
}

// Fatal reports whether the input is not valid JSON for this grammar.
// Capacity failures are neither retriable nor fatal.
func (f Failure) Fatal() bool {
	return f >= InvalidStructure
}

// AsFailure extracts the Failure of err.
func AsFailure(err error) (Failure, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f, true
	}
	return 0, false
}

// IsIncomplete reports whether err signals incomplete input.
func IsIncomplete(err error) bool {
	return errors.Is(err, Incomplete)
}

// ParseError is a Failure at a position of the input.
type ParseError struct {
	Failure Failure
	Pos     int
}

func (e *ParseError) Error() string {
	if e == nil {
		return fmt.Sprintf("%v", error(nil))
	}
	return fmt.Sprintf("%s at position %d", e.Failure.Error(), e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Failure
}

func parseError(pos int, err error) error {
	if f, ok := err.(Failure); ok {
		return &ParseError{Failure: f, Pos: pos}
	}
	return err
}

// ErrSinkFull is returned by SliceWriter when its buffer has no room left.
var ErrSinkFull = errors.New("fixjson: sink is full")

// ErrReadBufferFull is returned by Reader when a value does not fit in its buffer.
var ErrReadBufferFull = errors.New("fixjson: read buffer is full")
