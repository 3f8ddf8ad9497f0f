package jsonquery

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Variable is an argument value that refers to an operation variable. It renders as $name.
type Variable string

// Enum is an argument value that renders as a bare enum name instead of a quoted string.
type Enum string

// EncodeArgument renders a value using the GraphQL argument literal syntax. Mappings
// and sequences are encoded recursively; they are never treated as field selections.
func EncodeArgument(value interface{}) string {
	var b strings.Builder
	encodeArgument(&b, value)
	return b.String()
}

// encodeArguments renders the name: value pairs of a mapping separated by a comma
func encodeArguments(b *strings.Builder, args Object) {
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Key)
		b.WriteString(": ")
		encodeArgument(b, arg.Value)
	}
}

func encodeArgument(b *strings.Builder, value interface{}) {
	switch value := value.(type) {
	case nil:
		b.WriteString("null")
		return
	case Variable:
		b.WriteString("$" + string(value))
		return
	case Enum:
		b.WriteString(string(value))
		return
	case string:
		encodeString(b, value)
		return
	case []byte:
		encodeString(b, string(value))
		return
	case bool:
		b.WriteString(strconv.FormatBool(value))
		return
	case json.Number:
		b.WriteString(value.String())
		return
	case float64:
		b.WriteString(formatFloat(value, 64))
		return
	case float32:
		b.WriteString(formatFloat(float64(value), 32))
		return
	case int:
		b.WriteString(strconv.Itoa(value))
		return
	}

	if obj, ok := asObject(value); ok {
		b.WriteString("{")
		encodeArguments(b, obj)
		b.WriteString("}")
		return
	}

	if list, ok := asList(value); ok {
		b.WriteString("[")
		for i, item := range list {
			if i > 0 {
				b.WriteString(", ")
			}
			encodeArgument(b, item)
		}
		b.WriteString("]")
		return
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(formatFloat(rv.Float(), rv.Type().Bits()))
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(rv.Bool()))
	case reflect.String:
		encodeString(b, rv.String())
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			b.WriteString("null")
			return
		}
		encodeArgument(b, rv.Elem().Interface())
	default:
		encodeString(b, fmt.Sprint(value))
	}
}

// formatFloat writes floats without an exponent unless they are too large or too small
// to be read comfortably. Non-finite values have no literal so they become null.
func formatFloat(f float64, bits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

const hexDigits = "0123456789abcdef"

// encodeString writes a double quoted GraphQL string
func encodeString(b *strings.Builder, str string) {
	b.WriteByte('"')
	for _, r := range str {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
