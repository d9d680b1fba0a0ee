package rules

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const nullValue = "`NULL`"

// Stringify renders a value the way it appears in messages:
// strings are quoted, numbers are bare and an absent value is `NULL`.
func Stringify(value any) string {
	return stringify(value, true)
}

func stringify(value any, top bool) string {
	switch v := value.(type) {
	case nil:
		return nullValue
	case string:
		return strconv.Quote(v)
	case json.Number:
		return v.String()
	case bool:
		if v {
			return wrap("TRUE", top)
		}
		return wrap("FALSE", top)
	case float32:
		return formatNumber(float64(v))
	case float64:
		return formatNumber(v)
	case []byte:
		return strconv.Quote(string(v))
	case fmt.Stringer:
		return strconv.Quote(v.String())
	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, k := range sortedKeys(v) {
			parts = append(parts, strconv.Quote(k)+": "+stringify(v[k], false))
		}
		return wrap("{ "+strings.Join(parts, ", ")+" }", top)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringify(rv.Index(i).Interface(), false)
		}
		return wrap("{ "+strings.Join(parts, ", ")+" }", top)
	case reflect.Pointer:
		if rv.IsNil() {
			return nullValue
		}
		return stringify(rv.Elem().Interface(), top)
	default:
		return wrap(fmt.Sprintf("[%T]", value), top)
	}
}

func wrap(s string, top bool) string {
	if top {
		return "`" + s + "`"
	}
	return s
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFloat reads numbers and numeric strings.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && strings.TrimSpace(v) != ""
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case bool, nil:
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// toText reads scalars as text. Lists, maps and nil are not text.
func toText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float32, float64:
		f, _ := toFloat(v)
		return formatNumber(f), true
	case bool, nil:
		return "", false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return stringify(value, false), true
	default:
		return "", false
	}
}
