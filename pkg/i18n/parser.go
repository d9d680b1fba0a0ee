package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a translation file. The top-level keys are language codes.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Translations, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension. It returns nil for unknown extensions.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
