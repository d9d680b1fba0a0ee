// Package validation validates HTTP request parameters against a declared tree of
// named validators and reports failures as a flat map keyed by dotted field path.
//
// # Declaring validators
//
// A Spec is an ordered tree. Leaves hold a Validator, branches hold a nested Spec:
//
//	spec := validation.MustSpec(
//	    validation.Field("username", rules.All(rules.Alnum(), rules.NoWhitespace(), rules.Length(1, 15))),
//	    validation.Group("email",
//	        validation.Field("id", rules.All(rules.NumericVal(), rules.Positive(), rules.Between(1, 20))),
//	        validation.Field("name", rules.Length(1, 5)),
//	    ),
//	)
//
// Field names must not be empty or contain ".", which is reserved for error keys.
// Malformed declarations fail at construction with ErrInvalidSpec.
//
// # Validating
//
// Validate walks the Spec in declaration order. A field missing from the parameters
// is passed to its validator as nil, so every field is required unless its validator
// accepts nil (see rules.Optional). A branch applied to a non-object degrades to an
// empty object. The result maps each failed field to rule -> message:
//
//	{
//	    "username":   {"length": "\"davidepastore\" must have a length between 1 and 15"},
//	    "email.name": {"length": "\"rq3r\" must have a length between 1 and 2"}
//	}
//
// # Translation
//
// A Translator rewrites messages. When a Failure carries a template, the translator
// receives the untranslated template and placeholders are filled afterwards, so a
// catalog is keyed by text such as "{{name}} must be numeric". Unknown messages
// should be returned unchanged; whatever the translator returns is stored as is.
//
// # Middleware
//
//	mw := validation.New(spec,
//	    validation.WithTranslator(validation.MapTranslator(catalog)),
//	    validation.WithStatusCode(http.StatusUnprocessableEntity),
//	    validation.WithLogger(log),
//	)
//	r.With(mw.Handler).Post("/users", createUser)
//
// The middleware extracts parameters with pkg/params, attaches the Result to the
// request context and either calls the next handler or writes a JSON error:
//
//	{"error": {"code": "validation_error", "message": "validation failed", "details": {...}}}
//
// WithPassThrough always calls the next handler, which reads the outcome with
// ResultFromContext. SetValidators and SetTranslator swap configuration atomically;
// requests already in flight keep the snapshot they started with.
package validation
