package starlarkfixjson

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
)

var errLeftover = errors.New("leftover text after parsing JSON")

type ValueError struct {
	msg string
	err error
}

func newValueError(fn *starlark.Builtin, err error) error {
	return &ValueError{
		msg: methodError(fn, "%s", err),
		err: err,
	}
}

func (e *ValueError) Error() string {
	return "ValueError: " + e.msg
}

func (e *ValueError) Unwrap() error {
	return e.err
}

type TypeError string

func (e TypeError) Error() string {
	return "TypeError: " + string(e)
}

func methodError(method *starlark.Builtin, format string, args ...interface{}) string {
	args = append([]interface{}{method.Name()}, args...)
	return fmt.Sprintf("%s(): "+format, args...)
}
