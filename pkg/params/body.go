package params

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// readBody reads at most limit bytes and puts the body back so the next
// handler can read it again. An oversized body is put back whole: the bytes
// already read are replayed before the rest of the original stream.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	orig := r.Body
	body, err := io.ReadAll(io.LimitReader(orig, limit+1))
	if err != nil {
		_ = orig.Close()
		return nil, err
	}

	if int64(len(body)) > limit {
		r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(body), orig), Closer: orig}
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}

	_ = orig.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

type replayBody struct {
	io.Reader
	io.Closer
}

// decodeJSON decodes an object body. Numbers are kept as json.Number so the
// original representation reaches the validators untouched.
func decodeJSON(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrFailedToParseJSON)
	}

	switch obj := v.(type) {
	case map[string]any:
		return obj, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("%w: expected object, got %T", ErrFailedToParseJSON, v)
	}
}

// decodeXML maps the children of the root element to a tree.
// Elements with children become nested trees, leaf elements become their
// trimmed text, repeated siblings become []any. Attributes are ignored.
func decodeXML(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseXML, err)
		}

		if _, ok := tok.(xml.StartElement); !ok {
			continue
		}

		root, err := decodeElement(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseXML, err)
		}
		if tree, ok := root.(map[string]any); ok {
			return tree, nil
		}
		return map[string]any{}, nil
	}
}

func decodeElement(dec *xml.Decoder) (any, error) {
	var (
		text     strings.Builder
		children = make(map[string]any)
		lists    = make(map[string]bool)
		nested   bool
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			nested = true
			v, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			name := t.Name.Local
			existing, seen := children[name]
			switch {
			case !seen:
				children[name] = v
			case lists[name]:
				children[name] = append(existing.([]any), v)
			default:
				children[name] = []any{existing, v}
				lists[name] = true
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if nested {
				return children, nil
			}
			return strings.TrimSpace(text.String()), nil
		}
	}
}
