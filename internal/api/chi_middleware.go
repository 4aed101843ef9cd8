// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/geckofeed/internal/config"
	"github.com/tomtom215/geckofeed/internal/logging"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc
	RateLimitOnLimit  http.HandlerFunc
}

// DefaultChiMiddlewareConfig returns the default configuration. CORS
// origins default to empty, which rejects every cross-origin request until
// origins are configured.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		CORSAllowedHeaders:   []string{"Content-Type", "Authorization"},
		CORSExposedHeaders:   []string{"X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,

		RateLimitRequests: 60,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: false,
	}
}

// NewChiMiddlewareConfig builds a middleware configuration from the
// security section of the application config.
func NewChiMiddlewareConfig(sec config.SecurityConfig) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	c.CORSAllowedOrigins = sec.CORSOrigins
	c.RateLimitRequests = sec.RateLimitReqs
	c.RateLimitWindow = sec.RateLimitWindow
	c.RateLimitDisabled = sec.RateLimitDisabled
	return c
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   config.CORSAllowedMethods,
		AllowedHeaders:   config.CORSAllowedHeaders,
		ExposedHeaders:   config.CORSExposedHeaders,
		AllowCredentials: config.CORSAllowCredentials,
		MaxAge:           config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the go-chi/cors middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the configured rate limiter for feed routes.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitConfig{
		Requests: m.config.RateLimitRequests,
		Window:   m.config.RateLimitWindow,
	})
}

// RateLimitConfig defines rate limiting parameters for a route group.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// RateLimitHealth is permissive so monitoring can poll frequently.
var RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute}

// RateLimitCustom returns a rate limiter with custom limits. It is a no-op
// when rate limiting is disabled.
func (m *ChiMiddleware) RateLimitCustom(limit RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	onLimit := m.config.RateLimitOnLimit
	if onLimit == nil {
		onLimit = rateLimited
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(onLimit),
	)
}

// RateLimitHealth returns the rate limiter for health endpoints.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	logging.Ctx(r.Context()).Warn().
		Str("path", r.URL.Path).
		Str("remote_addr", r.RemoteAddr).
		Msg("Rate limit exceeded")
	NewResponseWriter(w, r).TooManyRequests("Rate limit exceeded")
}

// APISecurityHeaders adds security headers to API responses.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// HSTS only over TLS
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
