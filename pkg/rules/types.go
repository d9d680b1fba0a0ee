package rules

import (
	"encoding/json"
	"reflect"
	"strings"
)

// BoolVal accepts booleans and their common textual forms.
func BoolVal() Rule {
	return newRule("boolVal",
		"{{name}} must be a boolean value",
		"{{name}} must not be a boolean value",
		nil,
		func(value any) bool {
			switch v := value.(type) {
			case bool:
				return true
			case json.Number:
				return v == "0" || v == "1"
			case string:
				switch strings.ToLower(strings.TrimSpace(v)) {
				case "1", "0", "true", "false", "on", "off", "yes", "no":
					return true
				}
			}
			return false
		},
	)
}

// ArrayType accepts lists.
func ArrayType() Rule {
	return newRule("arrayType",
		"{{name}} must be of type array",
		"{{name}} must not be of type array",
		nil,
		func(value any) bool {
			if value == nil {
				return false
			}
			if _, ok := value.([]byte); ok {
				return false
			}
			k := reflect.ValueOf(value).Kind()
			return k == reflect.Slice || k == reflect.Array
		},
	)
}
