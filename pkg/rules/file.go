package rules

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrymomot/reqguard/pkg/params"
)

// FileVal accepts an uploaded file no larger than maxSize bytes whose sniffed
// content type is one of mimeTypes. An empty mimeTypes list accepts any type.
func FileVal(maxSize int64, mimeTypes ...string) Rule {
	allowed := make([]string, len(mimeTypes))
	for i, m := range mimeTypes {
		allowed[i] = strings.ToLower(strings.TrimSpace(m))
	}
	return newRule("fileVal",
		"This field must be correct file with parameters",
		"This field must not be a file with parameters",
		map[string]string{
			"maxSize":   strconv.FormatInt(maxSize, 10),
			"mimeTypes": strings.Join(allowed, ", "),
		},
		func(value any) bool {
			content, size, ok := fileContent(value)
			if !ok || size == 0 || (maxSize > 0 && size > maxSize) {
				return false
			}
			if len(allowed) == 0 {
				return true
			}
			detected := mimetype.Detect(content)
			// walk up so "text/plain" also admits e.g. detected "text/csv"
			for m := detected; m != nil; m = m.Parent() {
				if slices.ContainsFunc(allowed, m.Is) {
					return true
				}
			}
			return false
		},
	)
}

func fileContent(value any) ([]byte, int64, bool) {
	switch v := value.(type) {
	case *params.FileUpload:
		if v == nil {
			return nil, 0, false
		}
		return v.Content, v.Size, true
	case []byte:
		return v, int64(len(v)), true
	default:
		return nil, 0, false
	}
}
