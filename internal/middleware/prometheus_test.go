// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/geckofeed/internal/metrics"
)

func TestPrometheusMetrics_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/test-feeds/{name}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/test-feeds/{name}", "403")
	before := testutil.ToFloat64(counter)

	for _, name := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-feeds/"+name, nil))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	}

	if d := testutil.ToFloat64(counter) - before; d != 3 {
		t.Errorf("counter delta = %v, want 3", d)
	}
}

func TestPrometheusMetrics_DefaultStatus(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodPost, "unmatched", "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/anything", nil))

	if d := testutil.ToFloat64(counter) - before; d != 1 {
		t.Errorf("counter delta = %v, want 1", d)
	}
	if got := testutil.ToFloat64(metrics.APIActiveRequests); got != 0 {
		t.Errorf("APIActiveRequests = %v after request, want 0", got)
	}
}

func TestMetricsResponseWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	rw.WriteHeader(http.StatusInternalServerError)
	rw.WriteHeader(http.StatusOK)

	if rw.statusCode != http.StatusInternalServerError {
		t.Errorf("statusCode = %d, want 500", rw.statusCode)
	}
	if rw.Unwrap() != rec {
		t.Error("Unwrap() should return the wrapped writer")
	}
}
