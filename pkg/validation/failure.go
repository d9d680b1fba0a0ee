package validation

import (
	"maps"
	"regexp"
)

// Failure is a single failed sub-rule reported by a Validator.
type Failure struct {
	// Rule is the key the failure is stored under, e.g. "length".
	Rule string
	// Template is the untranslated message with {{placeholder}} tokens.
	// Empty when the validator only produces final text.
	Template string
	// Params holds placeholder values, already rendered for display.
	Params map[string]string
	// Message is the interpolated, untranslated text.
	Message string
}

// NewFailure builds a Failure and renders its Message from template and params.
func NewFailure(rule, template string, params map[string]string) Failure {
	return Failure{
		Rule:     rule,
		Template: template,
		Params:   maps.Clone(params),
		Message:  Interpolate(template, params),
	}
}

// Translate returns the final message for f.
// Templates are translated before interpolation so a catalog can be keyed by the
// original template text; plain messages are passed to tr as they are.
func (f Failure) Translate(tr Translator) string {
	if tr == nil {
		tr = Identity
	}
	if f.Template == "" {
		return tr(f.Message)
	}
	return Interpolate(tr(f.Template), f.Params)
}

var placeholderRegex = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Interpolate replaces {{key}} tokens with values from params.
// Unknown placeholders are left untouched.
func Interpolate(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderRegex.FindStringSubmatch(match)[1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
