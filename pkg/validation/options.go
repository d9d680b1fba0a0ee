package validation

import (
	"log/slog"
	"net/http"
)

// Extractor builds the parameter tree for a request.
type Extractor func(r *http.Request) (map[string]any, error)

// ErrorResponder writes the response for a request that failed validation.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, res *Result)

// Option configures a Middleware.
type Option func(*Middleware)

// WithTranslator sets the translator used for every request.
func WithTranslator(tr Translator) Option {
	return func(m *Middleware) {
		if tr != nil {
			m.SetTranslator(tr)
		}
	}
}

// WithTranslatorFunc picks a translator per request, e.g. by the negotiated locale.
// It takes precedence over the static translator when it returns non-nil.
func WithTranslatorFunc(fn func(r *http.Request) Translator) Option {
	return func(m *Middleware) {
		m.translatorFunc = fn
	}
}

// WithStatusCode sets the status of the default error response. Default is 400.
func WithStatusCode(code int) Option {
	return func(m *Middleware) {
		if code >= http.StatusBadRequest && code <= 599 {
			m.statusCode = code
		}
	}
}

// WithErrorResponse replaces the default JSON error response.
func WithErrorResponse(fn ErrorResponder) Option {
	return func(m *Middleware) {
		if fn != nil {
			m.respond = fn
		}
	}
}

// WithExtractor replaces the default request extractor.
func WithExtractor(fn Extractor) Option {
	return func(m *Middleware) {
		if fn != nil {
			m.extract = fn
		}
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(m *Middleware) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPassThrough never short-circuits: the result is stored in the request
// context and the next handler decides what to do with it.
func WithPassThrough() Option {
	return func(m *Middleware) {
		m.passThrough = true
	}
}
