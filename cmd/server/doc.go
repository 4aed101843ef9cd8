// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package main is the entry point for the geckofeed server.

The server publishes the built-in self-monitoring feeds of package selfstats
as Geckoboard custom widget endpoints under /feeds/<name>, one per widget
type.

# Application Architecture

	RootSupervisor ("geckofeed")
	├── StatsSupervisor ("stats-layer")
	│   └── Runtime sampler
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Feeds: widget feed factory with the Geckoboard API key and password
 4. Sampler: runtime snapshots for the built-in views
 5. Router: Chi router with feed, health and metrics routes
 6. Supervisor Tree: Suture v4 process supervision

# Configuration

Environment variables (highest priority), then config.yaml, then defaults:

	GECKOBOARD_API_KEY        Basic auth username Geckoboard sends (empty: no auth)
	GECKOBOARD_PASSWORD       passphrase for encrypted feeds
	GECKOBOARD_ENCRYPT_FEEDS  encrypt every built-in feed
	HTTP_HOST, HTTP_PORT      listen address (default 0.0.0.0:8080)
	LOG_LEVEL, LOG_FORMAT     zerolog level and json|console

# Build Tags

	go build -tags noencryption ./cmd/server   # drop feed encryption support

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT before exiting.

# Example Usage

	export GECKOBOARD_API_KEY=your-api-key
	./geckofeed

Point a Geckoboard custom widget at http://host:8080/feeds/goroutines with the
same API key.
*/
package main
