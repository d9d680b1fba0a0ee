package validation

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/dmitrymomot/reqguard/pkg/logger"
	"github.com/dmitrymomot/reqguard/pkg/params"
	"github.com/dmitrymomot/reqguard/pkg/requestid"
)

// snapshot is the replaceable part of the middleware configuration.
// It is swapped as a whole so a request never sees a half-updated pair.
type snapshot struct {
	spec       *Spec
	translator Translator
}

// Middleware validates requests against a Spec before they reach the next handler.
type Middleware struct {
	state          atomic.Pointer[snapshot]
	translatorFunc func(r *http.Request) Translator
	extract        Extractor
	respond        ErrorResponder
	statusCode     int
	passThrough    bool
	logger         *slog.Logger
}

// New creates a Middleware for spec. A nil spec validates nothing.
func New(spec *Spec, opts ...Option) *Middleware {
	m := &Middleware{
		statusCode: http.StatusBadRequest,
		logger:     slog.New(slog.DiscardHandler),
		extract:    params.New(params.WithPathParams(params.ChiPathParams)).Extract,
	}
	m.state.Store(&snapshot{spec: spec, translator: Identity})

	for _, opt := range opts {
		opt(m)
	}

	if m.respond == nil {
		m.respond = JSONErrorResponse(m.statusCode)
	}
	return m
}

// Validators returns the current spec.
func (m *Middleware) Validators() *Spec {
	return m.state.Load().spec
}

// SetValidators replaces the spec for subsequent requests.
func (m *Middleware) SetValidators(spec *Spec) {
	for {
		old := m.state.Load()
		next := &snapshot{spec: spec, translator: old.translator}
		if m.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// Translator returns the current static translator.
func (m *Middleware) Translator() Translator {
	return m.state.Load().translator
}

// SetTranslator replaces the static translator for subsequent requests.
// A nil translator resets it to Identity.
func (m *Middleware) SetTranslator(tr Translator) {
	if tr == nil {
		tr = Identity
	}
	for {
		old := m.state.Load()
		next := &snapshot{spec: old.spec, translator: tr}
		if m.state.CompareAndSwap(old, next) {
			return
		}
	}
}

// Check extracts and validates r without touching the response.
func (m *Middleware) Check(r *http.Request) *Result {
	snap := m.state.Load()

	tr := snap.translator
	if m.translatorFunc != nil {
		if perRequest := m.translatorFunc(r); perRequest != nil {
			tr = perRequest
		}
	}

	tree, err := m.extract(r)
	if err != nil {
		m.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to extract request parameters",
			logger.Component("validation"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)
		tree = nil
	}

	return Validate(snap.spec, tree, tr)
}

// Handler wraps next with request validation.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := m.Check(r)
		r = r.WithContext(WithResult(r.Context(), res))

		if !res.HasErrors() {
			next.ServeHTTP(w, r)
			return
		}

		m.logger.LogAttrs(r.Context(), slog.LevelDebug, "request failed validation",
			logger.Component("validation"),
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Count("failed_fields", res.Len()),
			slog.Bool("pass_through", m.passThrough),
		)

		if m.passThrough {
			next.ServeHTTP(w, r)
			return
		}
		m.respond(w, r, res)
	})
}
