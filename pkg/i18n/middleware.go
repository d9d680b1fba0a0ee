package i18n

import (
	"net/http"
)

// Middleware stores the language chosen by extr in the request context.
// A nil extr uses DefaultLangExtractor; an empty result falls back to DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// RequestFunc returns the message rewriter for the language stored by Middleware.
// It plugs into validation.WithTranslatorFunc.
func (t *Translator) RequestFunc(r *http.Request) func(string) string {
	return t.Func(GetLocale(r.Context()))
}
