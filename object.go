package jsonquery

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Field is a single key and its value inside of an Object
type Field struct {
	Key   string
	Value interface{}
}

// Object is a mapping that remembers the order its keys were added in. Every place
// that accepts a mapping also accepts plain go maps, whose keys are visited in sorted
// order instead.
type Object []Field

// Get returns the value stored under the given key
func (o Object) Get(key string) (interface{}, bool) {
	for _, field := range o {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key or appends it if the key is new
func (o *Object) Set(key string, value interface{}) {
	for i, field := range *o {
		if field.Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Field{Key: key, Value: value})
}

// Keys returns the keys of the object in order
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, field := range o {
		keys = append(keys, field.Key)
	}
	return keys
}

// asObject returns the value as an ordered mapping if it is one
func asObject(value interface{}) (Object, bool) {
	switch value := value.(type) {
	case nil:
		return nil, false
	case Object:
		return value, true
	case *Object:
		if value == nil {
			return nil, false
		}
		return *value, true
	case map[string]interface{}:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		obj := make(Object, 0, len(keys))
		for _, key := range keys {
			obj = append(obj, Field{Key: key, Value: value[key]})
		}
		return obj, true
	}

	// any other map keyed by strings
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	obj := make(Object, 0, len(keys))
	for _, key := range keys {
		obj = append(obj, Field{Key: key.String(), Value: rv.MapIndex(key).Interface()})
	}
	return obj, true
}

// asList returns the value as a sequence if it is one. byte slices are strings, not lists.
func asList(value interface{}) ([]interface{}, bool) {
	switch value := value.(type) {
	case nil, []byte, json.RawMessage:
		return nil, false
	case []interface{}:
		return value, true
	case []Object:
		list := make([]interface{}, 0, len(value))
		for _, item := range value {
			list = append(list, item)
		}
		return list, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	// Object is itself a slice
	if rv.Type() == reflect.TypeOf(Object{}) {
		return nil, false
	}

	list := make([]interface{}, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		list = append(list, rv.Index(i).Interface())
	}
	return list, true
}

// isFalsy reports whether a scalar value counts as empty: nil, the empty string,
// false, or any kind of numeric zero
func isFalsy(value interface{}) bool {
	switch value := value.(type) {
	case nil:
		return true
	case bool:
		return !value
	case string:
		return value == ""
	case json.Number:
		f, err := strconv.ParseFloat(string(value), 64)
		return err == nil && f == 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// NaN is falsy too
		return f == 0 || f != f
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// stringify renders a loosely typed value that should have been a string
func stringify(value interface{}) string {
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprint(value)
}
