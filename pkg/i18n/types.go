package i18n

import (
	"context"
	"net/http"
)

// Translations maps a language code to its messages.
// Message values are strings or nested maps addressed with dotted keys.
type Translations map[string]map[string]any

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (Translations, error)
}

// LangExtractor returns the preferred language of a request, or "".
type LangExtractor func(r *http.Request) string
