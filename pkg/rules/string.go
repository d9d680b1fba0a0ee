package rules

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length checks the length of a string (in runes) or of a list or map, inclusive.
func Length(min, max int) Rule {
	return newRule("length",
		"{{name}} must have a length between {{minValue}} and {{maxValue}}",
		"{{name}} must not have a length between {{minValue}} and {{maxValue}}",
		map[string]string{"minValue": strconv.Itoa(min), "maxValue": strconv.Itoa(max)},
		func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n >= min && n <= max
		},
	)
}

// MinLength checks that the length is at least min.
func MinLength(min int) Rule {
	return newRule("length",
		"{{name}} must have a length greater than or equal to {{minValue}}",
		"{{name}} must not have a length greater than or equal to {{minValue}}",
		map[string]string{"minValue": strconv.Itoa(min)},
		func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n >= min
		},
	)
}

// MaxLength checks that the length is at most max.
func MaxLength(max int) Rule {
	return newRule("length",
		"{{name}} must have a length lower than or equal to {{maxValue}}",
		"{{name}} must not have a length lower than or equal to {{maxValue}}",
		map[string]string{"maxValue": strconv.Itoa(max)},
		func(value any) bool {
			n, ok := lengthOf(value)
			return ok && n <= max
		},
	)
}

func lengthOf(value any) (int, bool) {
	if s, ok := toText(value); ok {
		return utf8.RuneCountInString(s), true
	}
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// StringType checks that the value is a string.
func StringType() Rule {
	return newRule("stringType",
		"{{name}} must be a string",
		"{{name}} must not be a string",
		nil,
		func(value any) bool {
			_, ok := value.(string)
			return ok
		},
	)
}

// Alpha accepts non-empty text made of letters only.
func Alpha() Rule {
	return newRule("alpha",
		"{{name}} must contain only letters (a-z)",
		"{{name}} must not contain letters (a-z)",
		nil,
		textOf(func(r rune) bool { return unicode.IsLetter(r) }),
	)
}

// Alnum accepts non-empty text made of letters and digits.
func Alnum() Rule {
	return newRule("alnum",
		"{{name}} must contain only letters (a-z) and digits (0-9)",
		"{{name}} must not contain letters (a-z) or digits (0-9)",
		nil,
		textOf(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }),
	)
}

// Digit accepts non-empty text made of digits.
func Digit() Rule {
	return newRule("digit",
		"{{name}} must contain only digits (0-9)",
		"{{name}} must not contain digits (0-9)",
		nil,
		textOf(func(r rune) bool { return r >= '0' && r <= '9' }),
	)
}

func textOf(allowed func(rune) bool) func(any) bool {
	return func(value any) bool {
		s, ok := toText(value)
		if !ok || s == "" {
			return false
		}
		for _, r := range s {
			if !allowed(r) {
				return false
			}
		}
		return true
	}
}

// NoWhitespace rejects text containing whitespace. An absent value passes.
func NoWhitespace() Rule {
	return newRule("noWhitespace",
		"{{name}} must not contain whitespace",
		"{{name}} must not accept whitespace",
		nil,
		func(value any) bool {
			if value == nil {
				return true
			}
			s, ok := toText(value)
			return ok && !strings.ContainsFunc(s, unicode.IsSpace)
		},
	)
}

// NotEmpty rejects nil, blank strings, false and empty lists or maps.
func NotEmpty() Rule {
	return newRule("notEmpty",
		"{{name}} must not be empty",
		"{{name}} must be empty",
		nil,
		func(value any) bool {
			switch v := value.(type) {
			case nil:
				return false
			case string:
				return strings.TrimSpace(v) != ""
			case bool:
				return v
			}
			if n, ok := lengthOf(value); ok {
				return n > 0
			}
			return true
		},
	)
}
