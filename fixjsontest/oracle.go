package fixjsontest

import (
	"errors"
	"fmt"

	"github.com/alxarch/fixjson"
	jsoniter "github.com/json-iterator/go"
)

var errNested = errors.New("fixjsontest: nested values are not supported")

// DecodeObject decodes a flat JSON object with json-iterator preserving field order.
// It is used as an independent reference for the fixjson parser.
func DecodeObject(data []byte) (fixjson.Object, error) {
	var (
		fields []fixjson.Field
		err    error
	)
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		var v fixjson.Value
		if v, err = readValue(it); err != nil {
			return false
		}
		fields = append(fields, fixjson.NewField(key, v))
		return true
	})
	if err != nil {
		return fixjson.Object{}, err
	}
	if iter.Error != nil {
		return fixjson.Object{}, iter.Error
	}
	return fixjson.ObjectOf(fields...), nil
}

// DecodeArray decodes a flat JSON array with json-iterator.
func DecodeArray(data []byte) (fixjson.Array, error) {
	var (
		values []fixjson.Value
		err    error
	)
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		var v fixjson.Value
		if v, err = readValue(it); err != nil {
			return false
		}
		values = append(values, v)
		return true
	})
	if err != nil {
		return fixjson.Array{}, err
	}
	if iter.Error != nil {
		return fixjson.Array{}, iter.Error
	}
	return fixjson.ArrayOf(values...), nil
}

func readValue(it *jsoniter.Iterator) (fixjson.Value, error) {
	switch next := it.WhatIsNext(); next {
	case jsoniter.StringValue:
		return fixjson.String(it.ReadString()), nil
	case jsoniter.NumberValue:
		return fixjson.Number(it.ReadInt64()), nil
	case jsoniter.BoolValue:
		return fixjson.Bool(it.ReadBool()), nil
	case jsoniter.NilValue:
		it.ReadNil()
		return fixjson.Null(), nil
	case jsoniter.ObjectValue, jsoniter.ArrayValue:
		it.Skip()
		return fixjson.Value{}, errNested
	default:
		return fixjson.Value{}, fmt.Errorf("fixjsontest: invalid value type %v", next)
	}
}
