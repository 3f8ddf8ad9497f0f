package jsonquery

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// DecodeJSON parses a JSON document into values Compile understands. Objects become
// an Object so the order of their keys survives, arrays become []interface{} and
// numbers are kept verbatim as json.Number.
func DecodeJSON(data []byte) (interface{}, error) {
	value, dataType, offset, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not read json document")
	}
	if len(bytes.TrimSpace(data[offset:])) > 0 {
		return nil, errors.Errorf("unexpected data after json document")
	}

	return decodeJSONValue(value, dataType, "$")
}

func decodeJSONValue(value []byte, dataType jsonparser.ValueType, path string) (interface{}, error) {
	switch dataType {
	case jsonparser.Null:
		return nil, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid boolean at %s", path)
		}
		return b, nil

	case jsonparser.Number:
		return json.Number(string(value)), nil

	case jsonparser.String:
		str, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid string at %s", path)
		}
		return str, nil

	case jsonparser.Array:
		list := []interface{}{}
		var itemErr error
		index := 0

		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, offset int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}

			decoded, err := decodeJSONValue(item, itemType, path+"["+strconv.Itoa(index)+"]")
			if err != nil {
				itemErr = err
				return
			}
			list = append(list, decoded)
			index++
		})
		if itemErr != nil {
			return nil, itemErr
		}
		if err != nil {
			return nil, errors.Wrapf(err, "invalid array at %s", path)
		}
		return list, nil

	case jsonparser.Object:
		obj := Object{}

		err := jsonparser.ObjectEach(value, func(key []byte, field []byte, fieldType jsonparser.ValueType, offset int) error {
			name := string(key)

			decoded, err := decodeJSONValue(field, fieldType, path+"."+name)
			if err != nil {
				return err
			}

			// a repeated key keeps its first position and its last value
			obj.Set(name, decoded)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "invalid object at %s", path)
		}
		return obj, nil
	}

	return nil, errors.Errorf("unsupported json value at %s", path)
}
