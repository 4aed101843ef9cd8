// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package logging provides the zerolog-based global logger used across
geckofeed.

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("addr", addr).Msg("Server listening")
	logging.Ctx(r.Context()).Error().Err(err).Str("feed", name).Msg("View failed")

Ctx adds the request_id and correlation_id stored in the context by the
request ID middleware. NewSlogLogger exposes the same logger as a
*slog.Logger for the supervisor's event hook.

# Configuration

  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Always terminate log chains with .Msg() or .Send(); an unterminated event
is never written.
*/
package logging
