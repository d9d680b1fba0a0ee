// Package params builds a loosely typed parameter tree from an HTTP request.
//
// The tree is what request validators consume: a map[string]any whose values are
// strings, json.Number, bool, []any, *FileUpload or nested map[string]any.
// No coercion happens here, so the native representation of each source is preserved.
//
// # Sources
//
// Sources are merged in a fixed order, later sources overwriting earlier ones on key clashes:
//
//   - route parameters (see WithPathParams, ChiPathParams, StdPathParams)
//   - the query string
//   - the body: application/json, application/xml, text/xml, urlencoded and multipart forms
//   - uploaded files
//
// Query and form keys use bracket notation for nesting:
//
//	email[name]=john&tags[]=a&tags[]=b
//
// becomes
//
//	{"email": {"name": "john"}, "tags": ["a", "b"]}
//
// JSON bodies must be objects and are decoded with json.Decoder.UseNumber.
// For XML bodies the root element is dropped, child elements become keys,
// repeated siblings become lists and leaf text is kept as a trimmed string.
//
// # Usage
//
//	ex := params.New(
//	    params.WithPathParams(params.ChiPathParams),
//	    params.WithMaxJSONSize(512<<10),
//	)
//	tree, err := ex.Extract(r)
//	if errors.Is(err, params.ErrBodyTooLarge) {
//	    // ...
//	}
//
// JSON and XML bodies are restored on the request after reading so the next handler
// can decode them again.
package params
