package params

import "errors"

// Extraction errors. Each is wrapped with the underlying cause.
var (
	ErrFailedToParseJSON  = errors.New("failed to parse JSON request body")
	ErrFailedToParseXML   = errors.New("failed to parse XML request body")
	ErrFailedToParseForm  = errors.New("failed to parse form data")
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")
	ErrFailedToReadFile   = errors.New("failed to read uploaded file")
	ErrBodyTooLarge       = errors.New("request body too large")
)
