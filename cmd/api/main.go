// Command api runs the task management REST API.
//
// Configuration comes from the environment, optionally seeded from a .env
// file. The process stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/taskapi/locales"
	"github.com/dmitrymomot/taskapi/modules/auth"
	"github.com/dmitrymomot/taskapi/modules/tasks"
	"github.com/dmitrymomot/taskapi/pkg/config"
	"github.com/dmitrymomot/taskapi/pkg/httpserver"
	"github.com/dmitrymomot/taskapi/pkg/i18n"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
	"github.com/dmitrymomot/taskapi/pkg/logger"
	"github.com/dmitrymomot/taskapi/pkg/pg"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg, config.WithEnvFiles(".env")); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(logger.StringExtractor("request_id", middleware.GetReqID)),
	)

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		append(cfg.I18n.Options(), i18n.WithLogger(log))...,
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	tokens, err := jwt.New(cfg.JWT)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	router := newRouter(deps{
		log:        log,
		translator: translator,
		tokens:     tokens,
		users:      auth.NewPGUserRepository(pool),
		tasks:      tasks.NewPGTaskRepository(pool),
		tags:       tasks.NewPGTagRepository(pool),
		projects:   tasks.NewPGProjectRepository(pool),
		ready:      []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
