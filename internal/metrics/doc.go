// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package metrics defines the Prometheus collectors exported on /metrics.

Collectors are registered with the default registry through promauto:

  - geckofeed_feed_requests_total{widget,outcome}
  - geckofeed_feed_duration_seconds{widget}
  - geckofeed_feed_response_bytes{widget}
  - geckofeed_auth_failures_total{reason}
  - geckofeed_encryptions_total{result}
  - geckofeed_http_requests_total{method,endpoint,status_code}
  - geckofeed_http_request_duration_seconds{method,endpoint}
  - geckofeed_http_active_requests
  - geckofeed_supervisor_events_total{type}

Use the Record helpers rather than the collectors directly:

	metrics.RecordFeed("number", metrics.OutcomeSuccess, time.Since(start), len(body))
*/
package metrics
