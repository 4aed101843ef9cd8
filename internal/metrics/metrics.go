// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeForbidden = "forbidden"
	OutcomeError     = "error"
)

var (
	// Feed Metrics
	FeedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geckofeed_feed_requests_total",
			Help: "Total number of widget feed requests",
		},
		[]string{"widget", "outcome"}, // outcome: success, forbidden, error
	)

	FeedDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geckofeed_feed_duration_seconds",
			Help:    "Time spent producing a widget feed, view included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"widget"},
	)

	FeedResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geckofeed_feed_response_bytes",
			Help:    "Size of widget feed response bodies",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8), // 64B .. 1MB
		},
		[]string{"widget"},
	)

	// Authentication Metrics
	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geckofeed_auth_failures_total",
			Help: "Total number of rejected Geckoboard API key checks",
		},
		[]string{"reason"}, // "no_credentials", "invalid_credentials"
	)

	// Encryption Metrics
	EncryptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geckofeed_encryptions_total",
			Help: "Total number of encrypted feed bodies",
		},
		[]string{"result"}, // "success", "error"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geckofeed_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geckofeed_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geckofeed_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Supervisor Metrics
	SupervisorEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geckofeed_supervisor_events_total",
			Help: "Total number of supervisor events (service failures, restarts, backoff)",
		},
		[]string{"type"},
	)
)

// RecordFeed records the outcome of one feed request.
func RecordFeed(widget, outcome string, duration time.Duration, bodySize int) {
	FeedRequestsTotal.WithLabelValues(widget, outcome).Inc()
	FeedDuration.WithLabelValues(widget).Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		FeedResponseBytes.WithLabelValues(widget).Observe(float64(bodySize))
	}
}

// RecordAuthFailure records a rejected API key check.
func RecordAuthFailure(reason string) {
	AuthFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordEncryption records one encryption attempt.
func RecordEncryption(err error) {
	if err != nil {
		EncryptionsTotal.WithLabelValues("error").Inc()
		return
	}
	EncryptionsTotal.WithLabelValues("success").Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSupervisorEvent counts a supervisor event by type.
func RecordSupervisorEvent(eventType string) {
	SupervisorEventsTotal.WithLabelValues(eventType).Inc()
}
