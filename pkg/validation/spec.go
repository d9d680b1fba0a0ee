package validation

import (
	"maps"
	"slices"
	"strings"
)

// Validator checks a single extracted value.
// It returns nil when the value is accepted, otherwise one Failure per failed sub-rule
// in the order the validator evaluated them.
type Validator interface {
	Validate(value any) []Failure
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(value any) []Failure

func (f ValidatorFunc) Validate(value any) []Failure {
	return f(value)
}

// node is either a leaf validator or a branch holding a nested Spec.
type node struct {
	name      string
	validator Validator
	children  *Spec
}

func (n node) isBranch() bool {
	return n.children != nil
}

// Spec is an immutable, ordered tree of named validators.
// Build it with NewSpec or SpecFromMap; the zero value validates nothing.
type Spec struct {
	nodes []node
}

// Entry declares one field of a Spec.
type Entry struct {
	name      string
	validator Validator
	entries   []Entry
	nested    *Spec
	group     bool
}

// Field declares a leaf field validated by v.
func Field(name string, v Validator) Entry {
	return Entry{name: name, validator: v}
}

// Group declares a nested object whose fields are validated by entries.
func Group(name string, entries ...Entry) Entry {
	return Entry{name: name, entries: entries, group: true}
}

// Nested declares a nested object validated by an already built Spec.
func Nested(name string, spec *Spec) Entry {
	return Entry{name: name, nested: spec, group: true}
}

// NewSpec builds a Spec from entries, keeping their declaration order.
// Malformed declarations are reported immediately, wrapped in ErrInvalidSpec.
func NewSpec(entries ...Entry) (*Spec, error) {
	return buildSpec(nil, entries)
}

// MustSpec is like NewSpec but panics on a malformed declaration.
func MustSpec(entries ...Entry) *Spec {
	s, err := NewSpec(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

func buildSpec(prefix FieldPath, entries []Entry) (*Spec, error) {
	s := &Spec{nodes: make([]node, 0, len(entries))}
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if err := checkFieldName(prefix, e.name); err != nil {
			return nil, err
		}
		path := prefix.Child(e.name)
		if _, dup := seen[e.name]; dup {
			return nil, specError(path, "duplicate field")
		}
		seen[e.name] = struct{}{}

		switch {
		case e.group && e.nested != nil:
			if e.nested.Len() == 0 {
				return nil, specError(path, "empty group")
			}
			s.nodes = append(s.nodes, node{name: e.name, children: e.nested})
		case e.group:
			if len(e.entries) == 0 {
				return nil, specError(path, "empty group")
			}
			child, err := buildSpec(path, e.entries)
			if err != nil {
				return nil, err
			}
			s.nodes = append(s.nodes, node{name: e.name, children: child})
		default:
			if isNilValidator(e.validator) {
				return nil, specError(path, "nil validator")
			}
			s.nodes = append(s.nodes, node{name: e.name, validator: e.validator})
		}
	}

	return s, nil
}

// SpecFromMap builds a Spec from a loosely typed declaration.
// Values may be a Validator, a nested map[string]any, a map[string]Validator or a *Spec.
// Keys are taken in sorted order so error ordering is reproducible.
func SpecFromMap(decl map[string]any) (*Spec, error) {
	entries, err := entriesFromMap(nil, decl)
	if err != nil {
		return nil, err
	}
	return NewSpec(entries...)
}

func entriesFromMap(prefix FieldPath, decl map[string]any) ([]Entry, error) {
	keys := slices.Sorted(maps.Keys(decl))
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		path := prefix.Child(k)
		switch v := decl[k].(type) {
		case *Spec:
			if v == nil {
				return nil, specError(path, "nil nested spec")
			}
			entries = append(entries, Nested(k, v))
		case Validator:
			entries = append(entries, Field(k, v))
		case map[string]any:
			children, err := entriesFromMap(path, v)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Group(k, children...))
		case map[string]Validator:
			m := make(map[string]any, len(v))
			for ck, cv := range v {
				m[ck] = cv
			}
			children, err := entriesFromMap(path, m)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Group(k, children...))
		case nil:
			return nil, specError(path, "nil validator")
		default:
			return nil, specError(path, "unsupported rule type %T", v)
		}
	}
	return entries, nil
}

func checkFieldName(prefix FieldPath, name string) error {
	if name == "" {
		return specError(prefix, "empty field name")
	}
	// "." is reserved for flattened error keys
	if strings.Contains(name, PathSeparator) {
		return specError(prefix, "field name %q contains %q", name, PathSeparator)
	}
	return nil
}

func isNilValidator(v Validator) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(ValidatorFunc); ok && f == nil {
		return true
	}
	return false
}

// Len returns the number of top-level fields.
func (s *Spec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Paths lists every leaf path in declaration order, depth first.
func (s *Spec) Paths() []FieldPath {
	var out []FieldPath
	s.walk(nil, func(path FieldPath, _ Validator) {
		out = append(out, path)
	})
	return out
}

// Has reports whether path names a leaf validator in s.
func (s *Spec) Has(path FieldPath) bool {
	return slices.ContainsFunc(s.Paths(), func(p FieldPath) bool {
		return slices.Equal(p, path)
	})
}

func (s *Spec) walk(prefix FieldPath, fn func(FieldPath, Validator)) {
	if s == nil {
		return
	}
	for _, n := range s.nodes {
		path := prefix.Child(n.name)
		if n.isBranch() {
			n.children.walk(path, fn)
			continue
		}
		fn(path, n.validator)
	}
}
