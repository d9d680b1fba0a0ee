package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// ExtractorConfig configures DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	HeaderName     string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor looks at the "lang" cookie, the "lang" query parameter,
// the "Language" header and finally Accept-Language, in that order.
// With supported languages configured, only a supported language (or its base
// language) is returned; otherwise the first well-formed value wins.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
		HeaderName:     "Language",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var resolve func(pref string) string
	if len(cfg.SupportedLangs) > 0 {
		m := newMatcher("", cfg.SupportedLangs)
		resolve = func(pref string) string {
			return match(m, "", cfg.SupportedLangs, pref)
		}
	} else {
		resolve = func(pref string) string {
			tags := parsePreference(pref)
			if len(tags) == 0 {
				return ""
			}
			return strings.ToLower(tags[0].String())
		}
	}

	explicit := func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" || len(v) > maxLangCodeLength {
			return ""
		}
		return resolve(v)
	}

	return func(r *http.Request) string {
		if c, err := r.Cookie(cfg.CookieName); err == nil {
			if lang := explicit(c.Value); lang != "" {
				return lang
			}
		}
		if lang := explicit(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
			return lang
		}
		if lang := explicit(r.Header.Get(cfg.HeaderName)); lang != "" {
			return lang
		}
		return resolve(r.Header.Get("Accept-Language"))
	}
}
