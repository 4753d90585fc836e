package starlarkfixjson

import (
	"fmt"

	"github.com/alxarch/fixjson"
	"go.starlark.net/starlark"
)

// Value converts a terminal value to Starlark.
func Value(v fixjson.Value) starlark.Value {
	switch v.Type() {
	case fixjson.TypeString:
		s, _ := v.ToString()
		return starlark.String(s)
	case fixjson.TypeNumber:
		n, _ := v.ToInt()
		return starlark.MakeInt64(n)
	case fixjson.TypeBoolean:
		b, _ := v.ToBool()
		return starlark.Bool(b)
	default:
		return starlark.None
	}
}

// Dict converts an object to a Starlark dict.
// Duplicate keys keep the last value.
func Dict(obj fixjson.Object) *starlark.Dict {
	d := starlark.NewDict(obj.Len())
	for _, f := range obj.Fields() {
		// String keys are always hashable.
		_ = d.SetKey(starlark.String(f.Key), Value(f.Value))
	}
	return d
}

// List converts an array to a Starlark list.
func List(arr fixjson.Array) *starlark.List {
	elems := make([]starlark.Value, 0, arr.Len())
	for _, v := range arr.Values() {
		elems = append(elems, Value(v))
	}
	return starlark.NewList(elems)
}

// ToValue converts a Starlark str, int, bool or None to a terminal value.
func ToValue(x starlark.Value) (fixjson.Value, error) {
	switch x := x.(type) {
	case starlark.String:
		return fixjson.String(string(x)), nil
	case starlark.Int:
		n, ok := x.Int64()
		if !ok {
			return fixjson.Value{}, fmt.Errorf("int %s overflows int64", x)
		}
		return fixjson.Number(n), nil
	case starlark.Bool:
		return fixjson.Bool(bool(x)), nil
	case starlark.NoneType:
		return fixjson.Null(), nil
	default:
		return fixjson.Value{}, fmt.Errorf("cannot encode %s value", x.Type())
	}
}

// Object converts a mapping with string keys to an object preserving iteration order.
func Object(m starlark.IterableMapping) (fixjson.Object, error) {
	items := m.Items()
	obj := fixjson.WrapObject(make([]fixjson.Field, len(items)))
	for _, item := range items {
		key, ok := item[0].(starlark.String)
		if !ok {
			return fixjson.Object{}, fmt.Errorf("invalid dict key %s", item[0])
		}
		v, err := ToValue(item[1])
		if err != nil {
			return fixjson.Object{}, fmt.Errorf("key %s: %w", key, err)
		}
		if err := obj.PushField(string(key), v); err != nil {
			return fixjson.Object{}, err
		}
	}
	return obj, nil
}

// Array converts an iterable to an array.
func Array(it starlark.Iterable) (fixjson.Array, error) {
	var values []fixjson.Value
	iter := it.Iterate()
	defer iter.Done()
	var el starlark.Value
	for iter.Next(&el) {
		v, err := ToValue(el)
		if err != nil {
			return fixjson.Array{}, fmt.Errorf("index %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return fixjson.ArrayOf(values...), nil
}
