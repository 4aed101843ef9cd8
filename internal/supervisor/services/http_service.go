// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/geckofeed/internal/logging"
)

// ErrNotServing is reported by Ready while the server is stopped, starting
// over after a crash, or draining connections.
var ErrNotServing = errors.New("http server is not serving")

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server as a suture service. Serve blocks in
// ListenAndServe until the context is canceled, then drains connections
// for up to shutdownTimeout.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
	serving         atomic.Bool
}

// NewHTTPServerService creates the service. A non-positive shutdownTimeout
// defaults to 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service. http.ErrServerClosed is not an error;
// a graceful stop returns the context error so suture does not restart.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	h.serving.Store(true)
	defer h.serving.Store(false)
	logging.Info().Str("service", h.name).Msg("HTTP server started")

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Str("service", h.name).Msg("HTTP server failed")
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.serving.Store(false)
		logging.Info().
			Str("service", h.name).
			Dur("timeout", h.shutdownTimeout).
			Msg("HTTP server shutting down")

		// The serve context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		logging.Info().Str("service", h.name).Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// Ready is an api.ReadinessCheck: it fails while the server is not serving.
func (h *HTTPServerService) Ready(context.Context) error {
	if !h.serving.Load() {
		return ErrNotServing
	}
	return nil
}

// String implements fmt.Stringer. Suture uses it in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
