package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dmitrymomot/reqguard/pkg/config"
	"github.com/dmitrymomot/reqguard/pkg/httpserver"
	"github.com/dmitrymomot/reqguard/pkg/i18n"
	"github.com/dmitrymomot/reqguard/pkg/logger"
	"github.com/dmitrymomot/reqguard/pkg/requestid"
)

//go:embed translations/*.yaml
var translationFiles embed.FS

func main() {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("APP_"), config.WithOptionalEnvFiles(".env")); err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	dir, err := fs.Sub(translationFiles, "translations")
	if err != nil {
		return err
	}
	tr, err := i18n.New(ctx, i18n.NewFSAdapter(dir, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(cfg, tr, log))
}
