// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package api provides the HTTP layer of the geckofeed host process.

Routes:

  - /feeds/<name>: Geckoboard custom widget feeds (GET and POST)
  - /api/v1/feeds: index of mounted feeds (API key required when configured)
  - /api/v1/health/live: liveness check
  - /api/v1/health/ready: readiness check, 503 while any check fails
  - /metrics: Prometheus metrics

Middleware:

Every route passes through request ID assignment, chi's RealIP and
Recoverer, go-chi/cors and Prometheus instrumentation. Feed routes are
rate limited per client IP with go-chi/httprate using the configured
limits; health routes use a permissive fixed limit.

Responses:

Feed handlers write raw widget payloads. Everything else, including feed
errors, uses the APIResponse envelope:

	{"success":false,"error":{"code":"INTERNAL_ERROR","message":"..."},"meta":{...}}

Usage:

	router := api.NewRouter(cfg, api.NewHealthHandler(version))
	if err := router.MountFeed("visitors", handler); err != nil {
	    return err
	}
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
