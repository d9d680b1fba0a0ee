package rules

import "errors"

// ErrInvalidTag is returned when a validator tag cannot be parsed.
var ErrInvalidTag = errors.New("invalid validator tag")
