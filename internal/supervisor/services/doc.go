// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

// Package services provides suture.Service wrappers for geckofeed
// components. HTTPServerService translates http.Server's blocking
// ListenAndServe into suture's context-aware Serve with graceful shutdown,
// and doubles as the readiness check for the health endpoint.
package services
