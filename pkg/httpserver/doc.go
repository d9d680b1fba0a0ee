// Package httpserver runs an http.Server with graceful shutdown.
//
// Run binds the listener, logs the actual address, and blocks until the
// context is cancelled or SIGINT/SIGTERM arrives. Shutdown then drains
// in-flight requests within Config.ShutdownTimeout. Startup and shutdown
// failures wrap ErrStart and ErrShutdown.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
