// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// correlationIDKey is the context key for correlation IDs.
	correlationIDKey contextKey = "correlation_id"

	// requestIDKey is the context key for HTTP request IDs.
	requestIDKey contextKey = "request_id"
)

// GenerateCorrelationID creates a new correlation ID: the first 8
// characters of a UUID.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID creates a new request ID (a full UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithCorrelationID returns a new context with the given correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext retrieves the correlation ID from context.
// Returns empty string if not present.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Ctx returns the global logger with correlation_id and request_id added
// when the context carries them.
//
//	logging.Ctx(r.Context()).Warn().Str("feed", name).Msg("Rejected poll")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := CtxWith(ctx).Logger()
	return &logger
}

// CtxWith returns a logger context builder with the context fields already
// set, for adding more fields.
func CtxWith(ctx context.Context) zerolog.Context {
	logCtx := With()

	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}

	return logCtx
}

// WithComponent creates a child logger with a component field.
//
//	supervisorLogger := logging.WithComponent("supervisor")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
