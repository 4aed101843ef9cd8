// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/tomtom215/geckofeed/internal/metrics"
)

// TreeConfig holds supervisor tree configuration.
type TreeConfig struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay in seconds.
	// Default: 30
	FailureDecay float64

	// FailureBackoff is the duration to wait when threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration

	// ShutdownTimeout is the maximum time to wait for each service to stop.
	// Default: 10s
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns suture's own defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// SupervisorTree is the supervisor hierarchy of the geckofeed process:
//
//	geckofeed
//	├── stats-layer: runtime sampler feeding the built-in views
//	└── api-layer:   HTTP server
//
// A sampler crash never takes the HTTP server down; the built-in feeds keep
// serving the last snapshot until it is restarted.
type SupervisorTree struct {
	root   *suture.Supervisor
	stats  *suture.Supervisor
	api    *suture.Supervisor
	logger *slog.Logger
	config TreeConfig
}

// NewSupervisorTree creates a new supervisor tree with the given configuration.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) (*SupervisorTree, error) {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5.0
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = 30.0
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = 15 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	// MustHook has a pointer receiver.
	handler := &sutureslog.Handler{Logger: logger}

	rootSpec := suture.Spec{
		EventHook:        countingHook(handler.MustHook()),
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	// Children inherit the root EventHook when added.
	childSpec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New("geckofeed", rootSpec)
	stats := suture.New("stats-layer", childSpec)
	api := suture.New("api-layer", childSpec)

	root.Add(stats)
	root.Add(api)

	return &SupervisorTree{
		root:   root,
		stats:  stats,
		api:    api,
		logger: logger,
		config: config,
	}, nil
}

// countingHook records every supervisor event in Prometheus before passing
// it to next.
func countingHook(next suture.EventHook) suture.EventHook {
	return func(e suture.Event) {
		metrics.RecordSupervisorEvent(eventTypeName(e.Type()))
		if next != nil {
			next(e)
		}
	}
}

func eventTypeName(t suture.EventType) string {
	switch t {
	case suture.EventTypeStopTimeout:
		return "stop_timeout"
	case suture.EventTypeServicePanic:
		return "service_panic"
	case suture.EventTypeServiceTerminate:
		return "service_terminate"
	case suture.EventTypeBackoff:
		return "backoff"
	case suture.EventTypeResume:
		return "resume"
	default:
		return "unknown"
	}
}

// Root returns the root supervisor.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// AddStatsService adds a service to the stats layer.
func (t *SupervisorTree) AddStatsService(svc suture.Service) suture.ServiceToken {
	return t.stats.Add(svc)
}

// AddAPIService adds a service to the API layer.
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.api.Add(svc)
}

// Serve starts the supervisor tree and blocks until the context is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground starts the supervisor tree in a background goroutine.
// The returned channel receives the error (or nil) when the tree stops.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport returns the services that failed to stop within
// the shutdown timeout.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
