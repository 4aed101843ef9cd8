// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/geckofeed/internal/logging"
)

// APIResponse is the response wrapper for every non-feed endpoint and for
// feed errors. Successful feed responses are raw widget payloads and never
// use this envelope.
type APIResponse struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Data contains the response payload (null on error)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details (null on success)
	Error *APIError `json:"error,omitempty"`

	// Meta contains optional metadata about the response
	Meta *APIMeta `json:"meta,omitempty"`
}

// APIError represents an error response.
type APIError struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains additional error details (optional)
	Details interface{} `json:"details,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}

// APIMeta contains optional response metadata.
type APIMeta struct {
	// RequestID is the unique request identifier for tracing
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp"`

	// Duration is the request processing time in milliseconds
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// ResponseWriter provides methods for writing standardized API responses.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter creates a new response writer.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{
		w:         w,
		r:         r,
		startTime: time.Now(),
	}
}

// Success writes a 200 response with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.write(http.StatusOK, true, data)
}

// Status writes a response with data and an explicit status code. Health
// endpoints use it to report 503 alongside their check results.
func (rw *ResponseWriter) Status(statusCode int, data interface{}) {
	rw.write(statusCode, statusCode < http.StatusBadRequest, data)
}

func (rw *ResponseWriter) write(statusCode int, success bool, data interface{}) {
	response := APIResponse{
		Success: success,
		Data:    data,
		Meta:    rw.meta(),
	}
	rw.writeJSON(statusCode, response)
}

// Error writes an error response with the given status code.
func (rw *ResponseWriter) Error(statusCode int, code, message string) {
	rw.ErrorWithDetails(statusCode, code, message, nil)
}

// ErrorWithDetails writes an error response with additional details.
func (rw *ResponseWriter) ErrorWithDetails(statusCode int, code, message string, details interface{}) {
	meta := rw.meta()

	response := APIResponse{
		Success: false,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: meta.RequestID,
		},
		Meta: meta,
	}

	rw.writeJSON(statusCode, response)
}

// Forbidden writes a 403 Forbidden error.
func (rw *ResponseWriter) Forbidden(message string) {
	rw.Error(http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound writes a 404 Not Found error.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

// MethodNotAllowed writes a 405 Method Not Allowed error.
func (rw *ResponseWriter) MethodNotAllowed(message string) {
	rw.Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, message)
}

// TooManyRequests writes a 429 Too Many Requests error.
func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, message)
}

// InternalError writes a 500 Internal Server Error.
func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable writes a 503 Service Unavailable error.
func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

func (rw *ResponseWriter) meta() *APIMeta {
	return &APIMeta{
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
		Timestamp:  time.Now(),
		DurationMs: time.Since(rw.startTime).Milliseconds(),
	}
}

// writeJSON writes JSON response with proper headers.
func (rw *ResponseWriter) writeJSON(statusCode int, data interface{}) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)

	if err := json.NewEncoder(rw.w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteSuccess is a convenience function for writing success responses.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	NewResponseWriter(w, r).Success(data)
}

// WriteInternalError is a convenience function for 500 errors.
func WriteInternalError(w http.ResponseWriter, r *http.Request, message string) {
	NewResponseWriter(w, r).InternalError(message)
}
