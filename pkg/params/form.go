package params

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

func parseQuery(raw string) (url.Values, error) {
	return url.ParseQuery(raw)
}

func (e *Extractor) urlencoded(r *http.Request) (map[string]any, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}
	// PostForm holds body values only; the query string is handled separately
	return expandValues(r.PostForm), nil
}

func (e *Extractor) multipart(r *http.Request, contentType string) (map[string]any, error) {
	_, mediaParams, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
	}
	boundary, ok := mediaParams["boundary"]
	if !ok || !validBoundary(boundary) {
		return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
	}

	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(e.maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
	}
	if r.MultipartForm == nil {
		return map[string]any{}, nil
	}

	tree := expandValues(r.MultipartForm.Value)
	files, err := expandFiles(r.MultipartForm.File)
	if err != nil {
		return nil, err
	}
	merge(tree, files)
	return tree, nil
}

// validBoundary checks the RFC 2046 boundary grammar.
func validBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	for i := 0; i < len(boundary); i++ {
		c := boundary[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '\'' || c == '(' || c == ')' || c == '+' || c == '_' || c == ',' ||
			c == '-' || c == '.' || c == '/' || c == ':' || c == '=' || c == '?':
		case c == ' ' && i != len(boundary)-1:
		default:
			return false
		}
	}
	return true
}
