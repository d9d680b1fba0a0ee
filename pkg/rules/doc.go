// Package rules is a catalog of request validators for pkg/validation.
//
// Every rule reports failures under a stable key with a message template, e.g.
//
//	rules.Length(1, 5)   // "length": {{name}} must have a length between {{minValue}} and {{maxValue}}
//	rules.Between(1, 60) // "between": {{name}} must be between {{minValue}} and {{maxValue}}
//
// {{name}} renders the offending value: strings are quoted, numbers are bare,
// and an absent value renders as `NULL`. Because templates travel with the failure,
// a translator can be keyed by the template text.
//
// Rules compose:
//
//	spec := validation.MustSpec(
//	    validation.Field("username", rules.All(rules.Alnum(), rules.NoWhitespace(), rules.Length(1, 15))),
//	    validation.Field("age", rules.All(rules.NumericVal(), rules.Positive(), rules.Between(1, 100))),
//	    validation.Field("nickname", rules.Optional(rules.Alpha())),
//	    validation.Group("message",
//	        validation.Field("title", rules.Named("title", rules.All(rules.StringType(), rules.MinLength(1)))),
//	    ),
//	)
//
// All collects every failure, First stops at the first one. Named replaces both the
// {{name}} rendering and the error key. Optional skips absent values and empty strings.
//
// Tag based rules from go-playground/validator are available through a Catalog
// built around an explicit *validator.Validate:
//
//	catalog := rules.NewCatalog(validator.New())
//	validation.Field("email", catalog.Email())
//	validation.Field("score", catalog.MustTag("gte=0,lte=100"))
//
// Tag reports an unknown tag as ErrInvalidTag when the rule is built.
package rules
