package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/safeinput/pkg/api"
	"github.com/dmitrymomot/safeinput/pkg/config"
	"github.com/dmitrymomot/safeinput/pkg/httpserver"
	"github.com/dmitrymomot/safeinput/pkg/logger"
	"github.com/dmitrymomot/safeinput/pkg/requestid"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

type serveConfig struct {
	HTTP             httpserver.Config
	MaxBodySize      int64 `env:"API_MAX_BODY_SIZE" envDefault:"1048576"`
	BatchConcurrency int   `env:"API_BATCH_CONCURRENCY" envDefault:"8"`
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(c *cli.Context) error {
			var app config.App
			if err := config.Load(&app); err != nil {
				return err
			}
			var sc serveConfig
			if err := config.Load(&sc); err != nil {
				return err
			}

			log := logger.New(
				logger.WithEnvironment(app.Env, app.Name),
				logger.WithLevelName(app.LogLevel),
				logger.WithOutput(c.App.ErrWriter),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			cfg, err := securityConfig(c)
			if err != nil {
				return err
			}
			registry := validator.DefaultRegistry()
			log.Info("rules loaded",
				"forbidden_chars", len(cfg.ForbiddenChars()),
				"blocked_patterns", len(cfg.BlockedPatterns()),
				"validators", registry.Names(),
			)

			h := api.New(registry, cfg,
				api.WithLogger(log),
				api.WithMaxBodySize(sc.MaxBodySize),
				api.WithBatchConcurrency(sc.BatchConcurrency),
				api.WithReadinessChecks(func(ctx context.Context) error {
					_, err := registry.Lookup("email")
					return err
				}),
			)

			return httpserver.NewFromConfig(sc.HTTP, httpserver.WithLogger(log)).Run(c.Context, h.Router())
		},
	}
}
