package rules

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// NumericVal accepts numbers and numeric strings.
func NumericVal() Rule {
	return newRule("numericVal",
		"{{name}} must be numeric",
		"{{name}} must not be numeric",
		nil,
		func(value any) bool {
			_, ok := toFloat(value)
			return ok
		},
	)
}

// IntVal accepts integers and integer strings.
func IntVal() Rule {
	return newRule("intVal",
		"{{name}} must be an integer number",
		"{{name}} must not be an integer number",
		nil,
		isInteger,
	)
}

func isInteger(value any) bool {
	switch v := value.(type) {
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return err == nil
	case json.Number:
		_, err := v.Int64()
		return err == nil
	case float32, float64:
		f, _ := toFloat(v)
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	case nil, bool:
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Positive accepts numbers greater than zero.
func Positive() Rule {
	return newRule("positive",
		"{{name}} must be positive",
		"{{name}} must not be positive",
		nil,
		compare(func(f float64) bool { return f > 0 }),
	)
}

// Negative accepts numbers lower than zero.
func Negative() Rule {
	return newRule("negative",
		"{{name}} must be negative",
		"{{name}} must not be negative",
		nil,
		compare(func(f float64) bool { return f < 0 }),
	)
}

// Between accepts numbers in [min, max].
func Between(min, max float64) Rule {
	return newRule("between",
		"{{name}} must be between {{minValue}} and {{maxValue}}",
		"{{name}} must not be between {{minValue}} and {{maxValue}}",
		map[string]string{"minValue": formatNumber(min), "maxValue": formatNumber(max)},
		compare(func(f float64) bool { return f >= min && f <= max }),
	)
}

// Min accepts numbers greater than or equal to min.
func Min(min float64) Rule {
	return newRule("min",
		"{{name}} must be greater than or equal to {{compareTo}}",
		"{{name}} must be less than {{compareTo}}",
		map[string]string{"compareTo": formatNumber(min)},
		compare(func(f float64) bool { return f >= min }),
	)
}

// Max accepts numbers lower than or equal to max.
func Max(max float64) Rule {
	return newRule("max",
		"{{name}} must be less than or equal to {{compareTo}}",
		"{{name}} must be greater than {{compareTo}}",
		map[string]string{"compareTo": formatNumber(max)},
		compare(func(f float64) bool { return f <= max }),
	)
}

func compare(ok func(float64) bool) func(any) bool {
	return func(value any) bool {
		f, isNum := toFloat(value)
		return isNum && !math.IsNaN(f) && ok(f)
	}
}
