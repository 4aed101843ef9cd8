// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package middleware provides HTTP middleware shared by every route.

  - RequestID: request and correlation IDs (X-Request-ID, X-Correlation-ID)
    stored in the context for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern

Both have the standard func(http.Handler) http.Handler shape and are
installed with chi's Router.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
