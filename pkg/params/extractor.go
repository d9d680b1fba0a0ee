package params

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Extractor builds a parameter tree from an HTTP request.
// It is safe for concurrent use.
type Extractor struct {
	maxMemory   int64
	maxJSONSize int64
	maxXMLSize  int64
	pathParams  PathParamsFunc
}

// New returns an Extractor with the given options applied.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxMemory:   DefaultMaxMemory,
		maxJSONSize: DefaultMaxJSONSize,
		maxXMLSize:  DefaultMaxXMLSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract merges route parameters, query string, body and uploaded files into one tree.
// Later sources win on key clashes: route < query < body < files.
// Unknown content types contribute no body parameters.
func (e *Extractor) Extract(r *http.Request) (map[string]any, error) {
	tree := make(map[string]any)

	if e.pathParams != nil {
		for k, v := range e.pathParams(r) {
			tree[k] = v
		}
	}

	query, err := e.query(r)
	if err != nil {
		return nil, err
	}
	merge(tree, query)

	body, err := e.body(r)
	if err != nil {
		return nil, err
	}
	merge(tree, body)

	return tree, nil
}

func (e *Extractor) query(r *http.Request) (map[string]any, error) {
	if r.URL == nil || r.URL.RawQuery == "" {
		return nil, nil
	}
	values, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
	}
	return expandValues(values), nil
}

func (e *Extractor) body(r *http.Request) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, nil
	}
	mediaType := mediaTypeOf(contentType)

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		body, err := readBody(r, e.maxJSONSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}
		return decodeJSON(body)

	case mediaType == "application/xml" || mediaType == "text/xml" || strings.HasSuffix(mediaType, "+xml"):
		body, err := readBody(r, e.maxXMLSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseXML, err)
		}
		return decodeXML(body)

	case mediaType == "application/x-www-form-urlencoded":
		return e.urlencoded(r)

	case mediaType == "multipart/form-data":
		return e.multipart(r, contentType)

	default:
		return nil, nil
	}
}

func mediaTypeOf(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = contentType[:idx]
		}
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
