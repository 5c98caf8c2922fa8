// Package httpserver runs the safeinput HTTP API with graceful shutdown.
//
// Server wraps net/http: Run blocks until the context is cancelled or the process
// receives SIGINT/SIGTERM, then calls http.Server.Shutdown bounded by the shutdown
// timeout. Failures are wrapped with ErrStart and ErrShutdown. A Server runs once.
//
// Servers are built with New and Option helpers (WithAddr, WithReadTimeout,
// WithLogger, ...) or from an env-tagged Config via NewFromConfig:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness probes.
package httpserver
