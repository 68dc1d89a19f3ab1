package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/config"
	"github.com/muhammad-hassn/portfolio/internal/bootstrap"
	"github.com/muhammad-hassn/portfolio/internal/githubapi"
	"github.com/muhammad-hassn/portfolio/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.App)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{Config: &cfg.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	store, closeCache, err := bootstrap.OpenCache(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open cache")
	}
	defer closeCache()

	github := githubapi.NewClient(githubapi.Options{
		BaseURL:   cfg.GitHub.BaseURL,
		Account:   cfg.GitHub.Account,
		Token:     cfg.GitHub.Token,
		Timeout:   cfg.GitHub.Timeout,
		UserAgent: cfg.App.ServiceName + "/" + cfg.App.Version,
	})

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  store,
		GitHub: github,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("env", cfg.App.Environment).
			Str("github_account", cfg.GitHub.Account).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
