// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package middleware

import (
	"net/http"

	"github.com/tomtom215/geckofeed/internal/logging"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// CorrelationIDHeader carries the correlation ID in both directions.
	CorrelationIDHeader = "X-Correlation-ID"

	// maxIDLength bounds IDs accepted from upstream proxies.
	maxIDLength = 128
)

// RequestID assigns every request a request ID and a correlation ID. IDs
// sent by an upstream proxy are reused when they look sane. Both are echoed
// in the response headers and stored in the context for logging.Ctx.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := headerID(r, RequestIDHeader)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		correlationID := headerID(r, CorrelationIDHeader)
		if correlationID == "" {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// headerID returns the header value if it is short and printable ASCII.
func headerID(r *http.Request, header string) string {
	id := r.Header.Get(header)
	if id == "" || len(id) > maxIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}
	return id
}
