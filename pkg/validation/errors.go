package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSpec is returned when a validator tree cannot be built.
	ErrInvalidSpec = errors.New("invalid validator spec")

	// ErrValidationFailed is wrapped by *Error when at least one field failed.
	ErrValidationFailed = errors.New("validation failed")
)

// Error carries a failed Result through code paths that speak error.
type Error struct {
	Result *Result
}

func (e *Error) Error() string {
	if e.Result == nil || !e.Result.HasErrors() {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, e.Result.Len())
	for _, field := range e.Result.Fields() {
		rules := e.Result.Rules(field)
		if len(rules) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Result.Message(field, rules[0])))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return ErrValidationFailed
}

// specError builds a construction error bound to a field path.
func specError(path FieldPath, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if len(path) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalidSpec, path, msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, msg)
}
