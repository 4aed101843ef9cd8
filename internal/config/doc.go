// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package config loads geckofeed configuration with Koanf.

Sources are layered, later ones overriding earlier ones:

 1. Built-in defaults
 2. YAML config file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/geckofeed/config.yaml or /etc/geckofeed/config.yml
 3. Environment variables

Example config.yaml:

	geckoboard:
	  api_key: "0123456789abcdef"
	  password: "widget-password"
	  encrypt_feeds: true
	server:
	  port: 8080
	security:
	  cors_origins: ["https://app.geckoboard.com"]
	logging:
	  level: debug

Environment Variables:

  - GECKOBOARD_API_KEY, GECKOBOARD_PASSWORD, GECKOBOARD_ENCRYPT_FEEDS
  - HTTP_HOST, HTTP_PORT (default: 8080), HTTP_READ_TIMEOUT,
    HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - RATE_LIMIT_REQUESTS (default: 60), RATE_LIMIT_WINDOW (default: 1m),
    DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list (default: *)
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Load validates the merged configuration with the validation package and
fails when, for example, encryption is enabled without a password.
*/
package config
