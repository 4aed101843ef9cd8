// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package feed

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/geckofeed/internal/api"
	"github.com/tomtom215/geckofeed/internal/auth"
	"github.com/tomtom215/geckofeed/internal/logging"
	"github.com/tomtom215/geckofeed/internal/metrics"
	"github.com/tomtom215/geckofeed/internal/render"
	"github.com/tomtom215/geckofeed/internal/widget"
)

// Messages written in the 500 envelope. The underlying error is logged and
// never sent to the client.
const (
	msgViewFailed   = "Feed view failed"
	msgInvalidShape = "Feed data does not match the widget format"
	msgRenderFailed = "Failed to render feed"
)

var errView = errors.New("view failed")

// handler serves one feed. All fields are set at construction and only
// read while serving.
type handler[T any] struct {
	kind          widget.Kind
	view          View[T]
	normalize     func(T) (*widget.Payload, error)
	authenticator *auth.APIKeyAuthenticator
	options       Options
	password      string
}

func (h *handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logging.Ctx(r.Context()).With().
		Str("widget", h.kind.String()).
		Str("path", r.URL.Path).
		Logger()

	if err := h.authenticator.Authenticate(r); err != nil {
		reason := authFailureReason(err)
		log.Warn().
			Str("reason", reason).
			Str("remote_addr", r.RemoteAddr).
			Msg("Feed request rejected")
		metrics.RecordAuthFailure(reason)
		metrics.RecordFeed(h.kind.String(), metrics.OutcomeForbidden, time.Since(start), 0)
		w.WriteHeader(http.StatusForbidden)
		return
	}

	body, err := h.respond(r)
	if err != nil {
		log.Error().Err(err).Msg("Feed request failed")
		metrics.RecordFeed(h.kind.String(), metrics.OutcomeError, time.Since(start), 0)
		api.WriteInternalError(w, r, publicMessage(err))
		return
	}

	w.Header().Set("Content-Type", render.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Debug().Err(err).Msg("Failed to write feed response")
	}

	duration := time.Since(start)
	metrics.RecordFeed(h.kind.String(), metrics.OutcomeSuccess, duration, len(body))
	log.Debug().
		Int("bytes", len(body)).
		Bool("encrypted", h.options.encrypted).
		Dur("duration", duration).
		Msg("Feed served")
}

// respond runs view, normalizer, merge, serializer and the optional
// encryption step. Nothing is written until all of them succeed.
func (h *handler[T]) respond(r *http.Request) ([]byte, error) {
	result, err := h.view(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errView, err)
	}

	payload, err := h.normalize(result)
	if err != nil {
		return nil, err
	}

	if h.options.extras != nil {
		payload = widget.Merge(h.options.extras, payload)
	}

	body, _, err := render.JSON(payload)
	if err != nil {
		return nil, err
	}

	if !h.options.encrypted {
		return body, nil
	}

	body, err = render.Encrypted(body, h.password)
	metrics.RecordEncryption(err)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// publicMessage maps a respond error to the message the client sees.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, errView):
		return msgViewFailed
	case errors.Is(err, widget.ErrShape):
		return msgInvalidShape
	default:
		return msgRenderFailed
	}
}

func authFailureReason(err error) string {
	if errors.Is(err, auth.ErrNoCredentials) {
		return "no_credentials"
	}
	return "invalid_credentials"
}
