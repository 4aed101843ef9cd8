// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package api

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/geckofeed/internal/auth"
	"github.com/tomtom215/geckofeed/internal/config"
	"github.com/tomtom215/geckofeed/internal/logging"
	"github.com/tomtom215/geckofeed/internal/middleware"
)

// FeedsPrefix is the path prefix every feed is mounted under.
const FeedsPrefix = "/feeds"

var feedNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Router holds the feeds and handlers served by the host process.
type Router struct {
	chiMiddleware *ChiMiddleware
	authenticator *auth.APIKeyAuthenticator
	health        *HealthHandler
	feeds         map[string]http.Handler
}

// NewRouter creates a router from the application config. health may be
// nil, in which case a handler without readiness checks is used.
func NewRouter(cfg *config.Config, health *HealthHandler) *Router {
	if health == nil {
		health = NewHealthHandler("")
	}
	return &Router{
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security)),
		authenticator: auth.NewAPIKeyAuthenticator(cfg.Geckoboard.APIKey),
		health:        health,
		feeds:         make(map[string]http.Handler),
	}
}

// MountFeed registers a feed handler at /feeds/<name> for GET and POST.
// Names are lowercase letters, digits, '-' and '_'.
func (router *Router) MountFeed(name string, h http.Handler) error {
	if !feedNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFeedName, name)
	}
	if h == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, name)
	}
	if _, exists := router.feeds[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFeed, name)
	}
	router.feeds[name] = h
	return nil
}

// FeedNames returns the mounted feed names in sorted order.
func (router *Router) FeedNames() []string {
	names := make([]string, 0, len(router.feeds))
	for name := range router.feeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetupChi configures all HTTP routes. Feeds must be mounted before it is
// called.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed("Method not allowed")
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.health.HealthLive)
		r.Get("/ready", router.health.HealthReady)
	})

	// ========================
	// Feed Index
	// ========================
	r.Route("/api/v1/feeds", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(RequireAPIKey(router.authenticator))
		r.Get("/", router.listFeeds)
	})

	// ========================
	// Geckoboard Feeds
	// ========================
	// Geckoboard polls with GET or POST; both reach the same handler.
	r.Route(FeedsPrefix, func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		for _, name := range router.FeedNames() {
			h := router.feeds[name]
			r.Method(http.MethodGet, "/"+name, h)
			r.Method(http.MethodPost, "/"+name, h)
		}
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	logging.Info().
		Int("feeds", len(router.feeds)).
		Msg("HTTP routes configured")

	return r
}

// FeedInfo describes one mounted feed in the feed index.
type FeedInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (router *Router) listFeeds(w http.ResponseWriter, r *http.Request) {
	names := router.FeedNames()
	feeds := make([]FeedInfo, 0, len(names))
	for _, name := range names {
		feeds = append(feeds, FeedInfo{Name: name, Path: FeedsPrefix + "/" + name})
	}
	WriteSuccess(w, r, feeds)
}

// RequireAPIKey rejects requests that fail the Geckoboard API key check
// with a 403 JSON envelope. It passes every request through when no key is
// configured.
func RequireAPIKey(a *auth.APIKeyAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := a.Authenticate(r); err != nil {
				logging.Ctx(r.Context()).Warn().
					Err(err).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("Access denied: API key required")
				NewResponseWriter(w, r).Forbidden("Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
