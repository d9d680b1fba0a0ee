package params

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ChiPathParams reads route parameters matched by a chi router.
func ChiPathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}

	out := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		// catch-all "*" is not a named parameter
		if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}

// StdPathParams reads the named wildcards of a net/http ServeMux pattern.
func StdPathParams(names ...string) PathParamsFunc {
	return func(r *http.Request) map[string]string {
		out := make(map[string]string, len(names))
		for _, name := range names {
			if v := r.PathValue(name); v != "" {
				out[name] = v
			}
		}
		return out
	}
}
