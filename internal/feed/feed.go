// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package feed

import (
	"net/http"

	"github.com/tomtom215/geckofeed/internal/auth"
	"github.com/tomtom215/geckofeed/internal/encryption"
	"github.com/tomtom215/geckofeed/internal/logging"
	"github.com/tomtom215/geckofeed/internal/widget"
)

// View produces the data for one feed response. It receives the incoming
// request unchanged.
type View[T any] func(r *http.Request) (T, error)

// Config holds the Geckoboard account settings shared by all feeds.
type Config struct {
	// APIKey is expected as the Basic auth username. Empty disables the check.
	APIKey string
	// Password is the passphrase for encrypted feeds.
	Password string
}

// Feeds builds feed handlers that share one Config.
type Feeds struct {
	cfg           Config
	authenticator *auth.APIKeyAuthenticator
	defaults      []Option
}

// New creates a feed factory. defaults apply to every feed before the
// options given to each constructor.
func New(cfg Config, defaults ...Option) *Feeds {
	return &Feeds{
		cfg:           cfg,
		authenticator: auth.NewAPIKeyAuthenticator(cfg.APIKey),
		defaults:      defaults,
	}
}

// build validates the options and returns the handler for one feed.
func build[T any](f *Feeds, kind widget.Kind, view View[T], normalize func(T) (*widget.Payload, error), opts []Option) (http.Handler, error) {
	if view == nil {
		return nil, &ConfigurationError{Widget: kind.String(), Reason: "view is nil"}
	}

	options := buildOptions(f.defaults, opts)
	if options.encrypted {
		if !encryption.Available {
			return nil, &ConfigurationError{Widget: kind.String(), Reason: "encryption requested but not available in this build"}
		}
		if f.cfg.Password == "" {
			return nil, &ConfigurationError{Widget: kind.String(), Reason: "encryption requested but no password configured"}
		}
	}

	if options.format != "" {
		logging.Debug().
			Str("widget", kind.String()).
			Str("format", options.format).
			Msg("Ignoring feed format option, responses are always JSON")
	}

	logging.Debug().
		Str("widget", kind.String()).
		Bool("encrypted", options.IsEncrypted()).
		Strs("extras", options.Extras()).
		Msg("Feed built")

	return &handler[T]{
		kind:          kind,
		view:          view,
		normalize:     normalize,
		authenticator: f.authenticator,
		options:       options,
		password:      f.cfg.Password,
	}, nil
}

// Number builds a number widget feed.
func (f *Feeds) Number(view View[widget.NumberResult], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindNumber, view, widget.NormalizeNumber, opts)
}

// RAG builds a red/amber/green widget feed.
func (f *Feeds) RAG(view View[widget.RAGResult], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindRAG, view, widget.NormalizeRAG, opts)
}

// Text builds a text widget feed.
func (f *Feeds) Text(view View[widget.TextResult], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindText, view, widget.NormalizeText, opts)
}

// PieChart builds a pie chart widget feed.
func (f *Feeds) PieChart(view View[widget.PieChartResult], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindPieChart, view, widget.NormalizePieChart, opts)
}

// LineChartLegacy builds a feed in the original line chart format.
func (f *Feeds) LineChartLegacy(view View[widget.LineChartLegacy], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindLineChartLegacy, view, widget.NormalizeLineChartLegacy, opts)
}

// LineChart builds a series-based line chart widget feed.
func (f *Feeds) LineChart(view View[widget.LineChart], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindLineChart, view, widget.NormalizeLineChart, opts)
}

// BarChart builds a series-based bar chart widget feed.
func (f *Feeds) BarChart(view View[widget.BarChart], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindBarChart, view, widget.NormalizeBarChart, opts)
}

// GeckOMeter builds a gauge widget feed.
func (f *Feeds) GeckOMeter(view View[widget.GeckOMeter], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindGeckOMeter, view, widget.NormalizeGeckOMeter, opts)
}

// Funnel builds a funnel widget feed.
func (f *Feeds) Funnel(view View[widget.Funnel], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindFunnel, view, widget.NormalizeFunnel, opts)
}

// Bullet builds a bullet graph widget feed.
func (f *Feeds) Bullet(view View[widget.BulletResult], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindBullet, view, widget.NormalizeBullet, opts)
}

// Leaderboard builds a leaderboard widget feed.
func (f *Feeds) Leaderboard(view View[widget.Leaderboard], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindLeaderboard, view, widget.NormalizeLeaderboard, opts)
}

// Custom builds a feed whose view returns the finished payload.
func (f *Feeds) Custom(view View[*widget.Payload], opts ...Option) (http.Handler, error) {
	return build(f, widget.KindCustom, view, widget.NormalizeCustom, opts)
}
