package rules

import (
	"maps"
	"reflect"
	"slices"

	"github.com/dmitrymomot/reqguard/pkg/validation"
)

// All runs every validator and reports every failure in order.
func All(validators ...validation.Validator) validation.Validator {
	return validation.ValidatorFunc(func(value any) []validation.Failure {
		var failures []validation.Failure
		for _, v := range validators {
			failures = append(failures, v.Validate(value)...)
		}
		return failures
	})
}

// First runs validators in order and stops at the first one that fails.
func First(validators ...validation.Validator) validation.Validator {
	return validation.ValidatorFunc(func(value any) []validation.Failure {
		for _, v := range validators {
			if failures := v.Validate(value); len(failures) > 0 {
				return failures
			}
		}
		return nil
	})
}

// Optional accepts an absent value or an empty string and delegates anything else.
func Optional(v validation.Validator) validation.Validator {
	return validation.ValidatorFunc(func(value any) []validation.Failure {
		if isUndefined(value) {
			return nil
		}
		return v.Validate(value)
	})
}

// Named renders {{name}} as name and reports every failure of v under name.
func Named(name string, v validation.Validator) validation.Validator {
	return validation.ValidatorFunc(func(value any) []validation.Failure {
		failures := v.Validate(value)
		for i, f := range failures {
			if f.Template == "" {
				f.Rule = name
				failures[i] = f
				continue
			}
			params := maps.Clone(f.Params)
			if params == nil {
				params = make(map[string]string, 1)
			}
			params["name"] = name
			failures[i] = validation.NewFailure(name, f.Template, params)
		}
		return failures
	})
}

// Each validates every element of a list or map with v.
// Values that are not iterable fail the "each" rule.
func Each(v validation.Validator) validation.Validator {
	notIterable := newRule("each", "{{name}} must be iterable", "{{name}} must not be iterable", nil, func(any) bool {
		return false
	})
	return validation.ValidatorFunc(func(value any) []validation.Failure {
		items, ok := elements(value)
		if !ok {
			return notIterable.Validate(value)
		}
		var failures []validation.Failure
		for _, item := range items {
			failures = append(failures, v.Validate(item)...)
		}
		return failures
	})
}

func isUndefined(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func elements(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case map[string]any:
		out := make([]any, 0, len(v))
		for _, key := range sortedKeys(v) {
			out = append(out, v[key])
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
