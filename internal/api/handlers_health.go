// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package api

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"
)

// ReadinessCheck reports whether one dependency is ready to serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HealthHandler serves Kubernetes-style liveness and readiness checks.
type HealthHandler struct {
	startTime time.Time
	version   string

	mu     sync.RWMutex
	checks map[string]ReadinessCheck
}

// NewHealthHandler creates a health handler. The uptime reported by the
// checks is measured from this call.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		version:   version,
		checks:    make(map[string]ReadinessCheck),
	}
}

// AddCheck registers a readiness check under name, replacing any check
// already registered under that name.
func (h *HealthHandler) AddCheck(name string, check ReadinessCheck) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// HealthLive returns 200 OK while the process is alive, regardless of
// readiness checks.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive":   true,
		"version": h.version,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady runs every readiness check and returns 200 OK only when all
// of them pass, 503 otherwise.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	results, ready := h.runChecks(r.Context())

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).Status(statusCode, map[string]interface{}{
		"ready":   ready,
		"checks":  results,
		"version": h.version,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// CheckResult is the outcome of one readiness check.
type CheckResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *HealthHandler) runChecks(ctx context.Context) ([]CheckResult, bool) {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	checks := make(map[string]ReadinessCheck, len(h.checks))
	for name, check := range h.checks {
		checks[name] = check
	}
	h.mu.RUnlock()

	sort.Strings(names)

	ready := true
	results := make([]CheckResult, 0, len(names))
	for _, name := range names {
		result := CheckResult{Name: name, OK: true}
		if err := checks[name](ctx); err != nil {
			result.OK = false
			result.Error = err.Error()
			ready = false
		}
		results = append(results, result)
	}
	return results, ready
}
