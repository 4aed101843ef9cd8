// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/geckofeed/internal/api"
	"github.com/tomtom215/geckofeed/internal/config"
	"github.com/tomtom215/geckofeed/internal/encryption"
	"github.com/tomtom215/geckofeed/internal/feed"
	"github.com/tomtom215/geckofeed/internal/logging"
	"github.com/tomtom215/geckofeed/internal/selfstats"
	"github.com/tomtom215/geckofeed/internal/supervisor"
	"github.com/tomtom215/geckofeed/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("config", cfg.String()).
		Bool("encryption_available", encryption.Available).
		Msg("Starting geckofeed")

	if cfg.Geckoboard.APIKey == "" {
		logging.Warn().Msg("GECKOBOARD_API_KEY is empty: feeds accept requests without credentials")
	}

	var defaults []feed.Option
	if cfg.Geckoboard.EncryptFeeds {
		defaults = append(defaults, feed.Encrypted())
	}
	feeds := feed.New(feed.Config{
		APIKey:   cfg.Geckoboard.APIKey,
		Password: cfg.Geckoboard.Password,
	}, defaults...)

	sampler := selfstats.NewSampler(selfstats.DefaultInterval, selfstats.DefaultHistory)
	views := selfstats.NewViews(sampler, selfstats.NewTraffic(nil))

	health := api.NewHealthHandler(version)
	router := api.NewRouter(cfg, health)
	if err := selfstats.Mount(router, feeds, views); err != nil {
		logging.Fatal().Err(err).Msg("Failed to mount built-in feeds")
	}
	logging.Info().Strs("feeds", router.FeedNames()).Msg("Built-in feeds mounted")

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	httpService := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
	health.AddCheck("http", httpService.Ready)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddStatsService(sampler)
	tree.AddAPIService(httpService)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
