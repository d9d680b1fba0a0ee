package rules

import (
	"maps"

	"github.com/dmitrymomot/reqguard/pkg/validation"
)

// Rule is a single check with a message template.
// The {{name}} placeholder renders the validated value; other placeholders
// come from the rule's own parameters.
type Rule struct {
	name     string
	template string
	negated  string
	params   map[string]string
	check    func(value any) bool
}

func newRule(name, template, negated string, params map[string]string, check func(any) bool) Rule {
	return Rule{
		name:     name,
		template: template,
		negated:  negated,
		params:   params,
		check:    check,
	}
}

// Name returns the key failures of this rule are reported under.
func (r Rule) Name() string {
	return r.name
}

// Template returns the untranslated message template.
func (r Rule) Template() string {
	return r.template
}

// WithTemplate returns a copy of r reporting a custom template.
func (r Rule) WithTemplate(template string) Rule {
	r.template = template
	return r
}

// Validate implements validation.Validator.
func (r Rule) Validate(value any) []validation.Failure {
	if r.check(value) {
		return nil
	}
	return []validation.Failure{r.failure(value, r.template)}
}

func (r Rule) failure(value any, template string) validation.Failure {
	params := make(map[string]string, len(r.params)+1)
	maps.Copy(params, r.params)
	params["name"] = Stringify(value)
	return validation.NewFailure(r.name, template, params)
}

// Not inverts r. The failure is reported under "not" + the capitalized rule name.
func Not(r Rule) Rule {
	negated := r.negated
	if negated == "" {
		negated = "{{name}} must not be valid"
	}
	return Rule{
		name:     "not" + capitalize(r.name),
		template: negated,
		negated:  r.template,
		params:   r.params,
		check: func(value any) bool {
			return !r.check(value)
		},
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
