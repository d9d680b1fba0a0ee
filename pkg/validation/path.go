package validation

import "strings"

// PathSeparator joins FieldPath segments in error keys.
const PathSeparator = "."

// FieldPath addresses a location in both the validator tree and the parameter tree.
type FieldPath []string

// String renders the path as a dotted key, e.g. "email.sub.finally".
func (p FieldPath) String() string {
	return strings.Join(p, PathSeparator)
}

// Child returns a new path extended by name. The receiver is never modified.
func (p FieldPath) Child(name string) FieldPath {
	out := make(FieldPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// ParsePath splits a dotted key back into segments.
func ParsePath(s string) FieldPath {
	if s == "" {
		return nil
	}
	return FieldPath(strings.Split(s, PathSeparator))
}
