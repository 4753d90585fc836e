// Package starlarkfixjson provides flat JSON support for Starlark
package starlarkfixjson

import (
	"strings"

	"github.com/alxarch/fixjson"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

const (
	keyThreadLocalArena = "fixjson.arena"
	defaultMaxFields    = 64
)

// Module is the fixjson Starlark module.
//
//	fixjson.parse(data, max_fields=64) parses a flat object to a dict or a flat array to a list
//	fixjson.encode(x) encodes a dict or a list of str, int, bool and None values
//	fixjson.validate(data) returns the number of entries of a flat object or array
var Module = starlarkstruct.Module{
	Name: "fixjson",
	Members: starlark.StringDict{
		"parse":    starlark.NewBuiltin("parse", Parse),
		"encode":   starlark.NewBuiltin("encode", Encode),
		"validate": starlark.NewBuiltin("validate", Validate),
	},
}

func Parse(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		input     string
		maxFields = defaultMaxFields
	)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "data", &input, "max_fields?", &maxFields); err != nil {
		return nil, err
	}
	if maxFields < 0 {
		return nil, TypeError(methodError(fn, "max_fields must not be negative"))
	}
	arena := arenaFromThread(thread)
	if arena == nil {
		arena = fixjson.NewArena(0)
		thread.SetLocal(keyThreadLocalArena, arena)
	}
	data := []byte(input)
	trimmed := strings.TrimLeft(input, " \t\r\n\f")
	var (
		v   starlark.Value
		n   int
		err error
	)
	if strings.HasPrefix(trimmed, "[") {
		arr := fixjson.WrapArray(make([]fixjson.Value, maxFields))
		n, err = arr.ParseArena(data, arena)
		v = List(arr)
	} else {
		obj := fixjson.WrapObject(make([]fixjson.Field, maxFields))
		n, err = obj.ParseArena(data, arena)
		v = Dict(obj)
	}
	if err != nil {
		return nil, newValueError(fn, err)
	}
	if tail := strings.TrimSpace(input[n:]); tail != "" {
		return nil, newValueError(fn, errLeftover)
	}
	return v, nil
}

func arenaFromThread(thread *starlark.Thread) *fixjson.Arena {
	if arena, ok := thread.Local(keyThreadLocalArena).(*fixjson.Arena); ok {
		return arena
	}
	return nil
}

func Encode(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	switch x := x.(type) {
	case starlark.IterableMapping:
		var obj fixjson.Object
		if obj, err = Object(x); err != nil {
			return nil, TypeError(methodError(fn, "%s", err))
		}
		data, err = obj.AppendJSON(nil)
	case starlark.Iterable:
		var arr fixjson.Array
		if arr, err = Array(x); err != nil {
			return nil, TypeError(methodError(fn, "%s", err))
		}
		data, err = arr.AppendJSON(nil)
	default:
		return nil, TypeError(methodError(fn, "cannot encode %s", x.Type()))
	}
	if err != nil {
		return nil, newValueError(fn, err)
	}
	return starlark.String(data), nil
}

func Validate(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var input string
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &input); err != nil {
		return nil, err
	}
	_, count, err := fixjson.Validate([]byte(input))
	if err != nil {
		return nil, newValueError(fn, err)
	}
	return starlark.MakeInt(count), nil
}
