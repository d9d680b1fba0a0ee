package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/reqguard/pkg/logger"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = "en"

// Translator serves messages per language. It is immutable after New and safe
// for concurrent use.
type Translator struct {
	translations  Translations
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger

	langs   []string
	matcher language.Matcher
}

// New loads translations through adapter.
func New(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if messages == nil {
			return nil, fmt.Errorf("nil translations map for language %q", lang)
		}
	}
	t.translations = translations

	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		t.langs = append(t.langs, lang)
	}
	slices.Sort(t.langs)
	t.matcher = newMatcher(t.defaultLang, t.langs)

	t.logger.InfoContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.langs),
	)
	return t, nil
}

// Languages returns the loaded language codes, sorted.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether lang has a message for key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T returns the message for key in lang with %{name} placeholders substituted
// from args given as name, value pairs. Missing messages fall back to the key
// unless WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	msg, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found",
				logger.Component("i18n"),
				logger.Lang(lang),
				slog.String("key", key),
			)
		}
		if !t.fallbackToKey {
			return ""
		}
		msg = key
	}
	return substitute(msg, args)
}

// Func returns a message rewriter for lang, suitable as a validation translator.
// Unknown messages pass through unchanged.
func (t *Translator) Func(lang string) func(string) string {
	lang = t.Match(lang)
	return func(message string) string {
		if msg, ok := t.lookup(lang, message); ok {
			return msg
		}
		return message
	}
}

// Match returns the best loaded language for the given preferences, which may be
// BCP 47 tags or a raw Accept-Language header. It falls back to the default language.
func (t *Translator) Match(prefs ...string) string {
	return match(t.matcher, t.defaultLang, t.langs, prefs...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	// message templates are keys too, so try the literal key before dotted traversal
	if v, ok := messages[key]; ok {
		s, isString := v.(string)
		return s, isString
	}
	v, ok := nested(messages, key)
	if !ok {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

func nested(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if current, ok = v.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with values from args (name, value, ...).
// An odd trailing argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
