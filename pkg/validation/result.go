package validation

import (
	"encoding/json"
	"maps"
	"slices"
)

// Errors is the flat, wire-level error map: dotted field path -> rule name -> message.
type Errors map[string]map[string]string

// fieldErrors keeps the rules of one field in reporting order.
type fieldErrors struct {
	rules    []string
	messages map[string]string
}

// Result is the outcome of one Validate call. It is never modified after Validate returns.
type Result struct {
	fields []string
	byPath map[string]*fieldErrors
}

func newResult() *Result {
	return &Result{byPath: make(map[string]*fieldErrors)}
}

// add records a message for path under rule.
// A repeated rule keeps its first position and takes the newest message.
func (r *Result) add(path FieldPath, rule, message string) {
	key := path.String()
	fe, ok := r.byPath[key]
	if !ok {
		fe = &fieldErrors{messages: make(map[string]string)}
		r.byPath[key] = fe
		r.fields = append(r.fields, key)
	}
	if _, seen := fe.messages[rule]; !seen {
		fe.rules = append(fe.rules, rule)
	}
	fe.messages[rule] = message
}

// HasErrors reports whether any field failed.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.fields) > 0
}

// Len returns the number of failed fields.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns the failed field paths in walk order.
func (r *Result) Fields() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.fields)
}

// Has reports whether the field at path failed.
func (r *Result) Has(path string) bool {
	if r == nil {
		return false
	}
	_, ok := r.byPath[path]
	return ok
}

// Rules returns the failed rule names of a field in reporting order.
func (r *Result) Rules(path string) []string {
	if r == nil {
		return nil
	}
	fe, ok := r.byPath[path]
	if !ok {
		return nil
	}
	return slices.Clone(fe.rules)
}

// Message returns the stored message for a field and rule.
func (r *Result) Message(path, rule string) string {
	if r == nil {
		return ""
	}
	fe, ok := r.byPath[path]
	if !ok {
		return ""
	}
	return fe.messages[rule]
}

// Errors returns a copy of the flat error map. It is empty, never nil.
func (r *Result) Errors() Errors {
	out := make(Errors, r.Len())
	if r == nil {
		return out
	}
	for path, fe := range r.byPath {
		out[path] = maps.Clone(fe.messages)
	}
	return out
}

// Err returns nil for a passing result, otherwise an *Error wrapping ErrValidationFailed.
func (r *Result) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &Error{Result: r}
}

// MarshalJSON encodes the flat error map.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Errors())
}
