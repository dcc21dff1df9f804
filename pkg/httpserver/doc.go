// Package httpserver runs an http.Handler with configurable timeouts and a
// graceful shutdown, and provides liveness/readiness handlers.
//
// Run blocks until its context is cancelled (typically by
// signal.NotifyContext in main) or Shutdown is called, then drains in-flight
// requests for at most the shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
