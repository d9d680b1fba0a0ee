// Package logger builds slog loggers for the request validation stack.
//
// New returns a *slog.Logger whose handler is wrapped by ContextHandler, so
// attributes carried by the request context (the request id, for one) are added
// to every record logged with a *Context method:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "reqguard"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(r.Context(), "request failed validation",
//		logger.Component("validation"),
//		logger.Field("email.name"),
//		logger.Rule("length"),
//	)
//
// Environment presets pick format and level: development logs text at debug,
// staging and production log JSON at info. WithLevelName overrides the level
// from configuration.
//
// The attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
