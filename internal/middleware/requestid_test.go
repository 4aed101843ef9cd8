// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/geckofeed/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	var capturedID, capturedCorrelation string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = logging.RequestIDFromContext(r.Context())
		capturedCorrelation = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/feeds/number", nil)
	rec := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rec, req)

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("Response X-Request-ID is not a valid UUID: %v", err)
	}
	if capturedID != responseID {
		t.Errorf("Context ID (%s) doesn't match response header ID (%s)", capturedID, responseID)
	}
	if len(capturedCorrelation) != 8 || rec.Header().Get(CorrelationIDHeader) != capturedCorrelation {
		t.Errorf("correlation ID = %q, header %q", capturedCorrelation, rec.Header().Get(CorrelationIDHeader))
	}
}

func TestRequestID_PreservesUpstreamIDs(t *testing.T) {
	t.Parallel()

	var capturedID, capturedCorrelation string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedID = logging.RequestIDFromContext(r.Context())
		capturedCorrelation = logging.CorrelationIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-request-123")
	req.Header.Set(CorrelationIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	RequestID(handler).ServeHTTP(rec, req)

	if capturedID != "upstream-request-123" || rec.Header().Get(RequestIDHeader) != "upstream-request-123" {
		t.Errorf("request ID = %q, header %q", capturedID, rec.Header().Get(RequestIDHeader))
	}
	if capturedCorrelation != "trace-abc" {
		t.Errorf("correlation ID = %q, want trace-abc", capturedCorrelation)
	}
}

func TestRequestID_RejectsUnsafeUpstreamIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{name: "too long", id: strings.Repeat("a", maxIDLength+1)},
		{name: "contains space", id: "id with spaces"},
		{name: "control character", id: "id\x01"},
		{name: "non ascii", id: "idé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[RequestIDHeader] = []string{tt.id}
			rec := httptest.NewRecorder()
			RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if got == tt.id {
				t.Errorf("unsafe ID %q was reused", tt.id)
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Errorf("replacement ID %q is not a UUID", got)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request ID %s", id)
		}
		seen[id] = true
	}
}
