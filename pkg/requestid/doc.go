// Package requestid attaches a correlation id to every HTTP request.
//
// A client supplied "X-Request-ID" is reused when it is at most 128 characters of
// [a-zA-Z0-9_-]; otherwise a random UUID is generated. The id is stored in the request
// context and echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.New(requestid.WithGenerator(func() string {
//	    return uuid.Must(uuid.NewV7()).String()
//	})))
//
// LoggerExtractor plugs the id into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
