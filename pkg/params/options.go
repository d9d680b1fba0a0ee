package params

import "net/http"

const (
	// DefaultMaxMemory is the in-memory limit for multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
	// DefaultMaxJSONSize is the maximum accepted JSON body (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxXMLSize is the maximum accepted XML body (1MB).
	DefaultMaxXMLSize = 1 << 20
)

// PathParamsFunc returns the route parameters matched for r.
type PathParamsFunc func(r *http.Request) map[string]string

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxMemory sets the multipart in-memory limit.
func WithMaxMemory(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxMemory = n
		}
	}
}

// WithMaxJSONSize sets the JSON body limit.
func WithMaxJSONSize(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxJSONSize = n
		}
	}
}

// WithMaxXMLSize sets the XML body limit.
func WithMaxXMLSize(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxXMLSize = n
		}
	}
}

// WithPathParams sets the route parameter source.
func WithPathParams(fn PathParamsFunc) Option {
	return func(e *Extractor) {
		e.pathParams = fn
	}
}
