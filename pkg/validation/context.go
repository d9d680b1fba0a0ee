package validation

import "context"

type resultContextKey struct{}

// WithResult stores a validation result in ctx.
func WithResult(ctx context.Context, res *Result) context.Context {
	return context.WithValue(ctx, resultContextKey{}, res)
}

// ResultFromContext returns the result stored by the middleware, if any.
func ResultFromContext(ctx context.Context) (*Result, bool) {
	if ctx == nil {
		return nil, false
	}
	res, ok := ctx.Value(resultContextKey{}).(*Result)
	return res, ok && res != nil
}
