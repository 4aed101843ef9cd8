// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package feed

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/geckofeed/internal/api"
	"github.com/tomtom215/geckofeed/internal/metrics"
	"github.com/tomtom215/geckofeed/internal/widget"
)

const testKey = "abc123"

func numberView(n any) View[widget.NumberResult] {
	return func(*http.Request) (widget.NumberResult, error) {
		return widget.NumberScalar(n), nil
	}
}

func serve(t *testing.T, h http.Handler, method string, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/feeds/test", nil)
	if withKey {
		req.SetBasicAuth(testKey, "X")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// mustHandler fails the test when a constructor returns an error. Use it
// as mustHandler(t)(feeds.Number(view)).
func mustHandler(t *testing.T) func(http.Handler, error) http.Handler {
	t.Helper()
	return func(h http.Handler, err error) http.Handler {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor error = %v", err)
		}
		return h
	}
}

func TestFeed_Forbidden(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	feeds := New(Config{APIKey: testKey})
	h := mustHandler(t)(feeds.Number(func(*http.Request) (widget.NumberResult, error) {
		calls.Add(1)
		return widget.NumberScalar(1), nil
	}))

	tests := []struct {
		name string
		user string
		pass string
	}{
		{"no credentials", "", ""},
		{"wrong key", "nope", "X"},
		{"wrong password", testKey, "secret"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/feeds/test", nil)
		if tt.user != "" {
			req.SetBasicAuth(tt.user, tt.pass)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("%s: status = %d, want 403", tt.name, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("%s: body = %q, want empty", tt.name, rec.Body.String())
		}
	}

	if n := calls.Load(); n != 0 {
		t.Errorf("view called %d times, want 0", n)
	}
}

func TestFeed_GETAndPOST(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)(New(Config{APIKey: testKey}).Number(numberView(42)))

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := serve(t, h, method, true)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", method, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: Content-Type = %q, want application/json", method, ct)
		}
		if got := rec.Body.String(); got != `{"item":[{"value":42}]}` {
			t.Errorf("%s: body = %s", method, got)
		}
	}
}

func TestFeed_NoAPIKeyAcceptsAll(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)(New(Config{}).Number(numberView(1)))

	rec := serve(t, h, http.MethodGet, false)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestFeed_ViewReceivesRequest(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)(New(Config{}).Text(func(r *http.Request) (widget.TextResult, error) {
		return widget.TextMessage(r.URL.Query().Get("msg")), nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/feeds/test?msg=hello", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Body.String(); got != `{"item":[{"text":"hello","type":0}]}` {
		t.Errorf("body = %s", got)
	}
}

func TestFeed_MergeOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		defaults []Option
		opts     []Option
		want     string
	}{
		{
			name: "static keys first, view wins in place",
			opts: []Option{With("absolute", "true"), With("item", "ignored")},
			want: `{"absolute":"true","item":[{"value":5}]}`,
		},
		{
			name: "repeated option keeps first position",
			opts: []Option{With("a", 1), With("b", 2), With("a", 3)},
			want: `{"a":3,"b":2,"item":[{"value":5}]}`,
		},
		{
			name:     "constructor options override defaults",
			defaults: []Option{With("source", "default"), With("team", "ops")},
			opts:     []Option{With("source", "feed")},
			want:     `{"source":"feed","team":"ops","item":[{"value":5}]}`,
		},
		{
			name: "format is ignored",
			opts: []Option{Format("xml")},
			want: `{"item":[{"value":5}]}`,
		},
		{
			name: "nil option is skipped",
			opts: []Option{nil},
			want: `{"item":[{"value":5}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			feeds := New(Config{}, tt.defaults...)
			h := mustHandler(t)(feeds.Number(numberView(5), tt.opts...))

			rec := serve(t, h, http.MethodGet, false)
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFeed_OptionsNotSharedBetweenFeeds(t *testing.T) {
	t.Parallel()

	feeds := New(Config{}, With("shared", 1))
	a := mustHandler(t)(feeds.Number(numberView(1), With("only_a", true)))
	b := mustHandler(t)(feeds.Number(numberView(2)))

	_ = serve(t, a, http.MethodGet, false)
	rec := serve(t, b, http.MethodGet, false)

	if got := rec.Body.String(); got != `{"shared":1,"item":[{"value":2}]}` {
		t.Errorf("body = %s", got)
	}
}

func TestFeed_Errors(t *testing.T) {
	t.Parallel()

	feeds := New(Config{})

	viewFailure := mustHandler(t)(feeds.Number(func(*http.Request) (widget.NumberResult, error) {
		return nil, errors.New("database unavailable")
	}))
	shapeFailure := mustHandler(t)(feeds.Number(func(*http.Request) (widget.NumberResult, error) {
		return widget.NumberResult{}, nil
	}))
	funnelFailure := mustHandler(t)(feeds.Funnel(func(*http.Request) (widget.Funnel, error) {
		return widget.Funnel{}, nil
	}))

	tests := []struct {
		name        string
		handler     http.Handler
		wantMessage string
		hidden      string
	}{
		{"view error", viewFailure, msgViewFailed, "database unavailable"},
		{"number shape", shapeFailure, msgInvalidShape, "expected 1 to 3 items"},
		{"funnel shape", funnelFailure, msgInvalidShape, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, tt.handler, http.MethodGet, false)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			var resp api.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("body is not an error envelope: %q", rec.Body.String())
			}
			if resp.Success || resp.Error == nil {
				t.Fatalf("response = %+v, want error envelope", resp)
			}
			if resp.Error.Code != api.ErrCodeInternalError {
				t.Errorf("Code = %q, want %q", resp.Error.Code, api.ErrCodeInternalError)
			}
			if resp.Error.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", resp.Error.Message, tt.wantMessage)
			}
			if strings.Contains(rec.Body.String(), tt.hidden) {
				t.Errorf("body %s leaks the underlying error text %q", rec.Body.String(), tt.hidden)
			}
		})
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	shape := &widget.ShapeError{Kind: widget.KindNumber, Reason: "bad"}
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"view", fmt.Errorf("%w: %w", errView, errors.New("timeout")), msgViewFailed},
		{"view returning a shape error", fmt.Errorf("%w: %w", errView, shape), msgViewFailed},
		{"shape", shape, msgInvalidShape},
		{"encryption", errors.New("cipher failure"), msgRenderFailed},
	}

	for _, tt := range tests {
		if got := publicMessage(tt.err); got != tt.want {
			t.Errorf("%s: publicMessage() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFeed_NilView(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}).Number(nil)

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Error("errors.Is(err, ErrConfiguration) = false")
	}
	if cfgErr.Widget != "number" {
		t.Errorf("Widget = %q, want number", cfgErr.Widget)
	}
}

func TestFeed_Constructors(t *testing.T) {
	t.Parallel()

	feeds := New(Config{})

	build := func(h http.Handler, err error) http.Handler { return mustHandler(t)(h, err) }

	tests := []struct {
		name    string
		handler http.Handler
		wantKey string
	}{
		{"number", build(feeds.Number(numberView(1))), "item"},
		{"rag", build(feeds.RAG(func(*http.Request) (widget.RAGResult, error) {
			return widget.RAGResult{widget.RAGValue(1), widget.RAGText(2, "amber"), widget.RAGValue(nil)}, nil
		})), "item"},
		{"text", build(feeds.Text(func(*http.Request) (widget.TextResult, error) {
			return widget.TextMessage("hi"), nil
		})), "item"},
		{"pie chart", build(feeds.PieChart(func(*http.Request) (widget.PieChartResult, error) {
			return widget.PieChartResult{{Value: 1, Label: "a"}}, nil
		})), "item"},
		{"line chart legacy", build(feeds.LineChartLegacy(func(*http.Request) (widget.LineChartLegacy, error) {
			return widget.LineChartLegacy{Values: []float64{1, 2}}, nil
		})), "settings"},
		{"line chart", build(feeds.LineChart(func(*http.Request) (widget.LineChart, error) {
			return widget.LineChart{Series: []widget.Series{{Data: []any{1, 2}}}}, nil
		})), "series"},
		{"bar chart", build(feeds.BarChart(func(*http.Request) (widget.BarChart, error) {
			return widget.BarChart{Series: []widget.Series{{Data: []any{3}}}}, nil
		})), "series"},
		{"geck-o-meter", build(feeds.GeckOMeter(func(*http.Request) (widget.GeckOMeter, error) {
			return widget.GeckOMeter{Value: 5, Min: widget.Bound(0), Max: widget.Bound(10)}, nil
		})), "max"},
		{"funnel", build(feeds.Funnel(func(*http.Request) (widget.Funnel, error) {
			return widget.Funnel{Items: []widget.FunnelItem{{Value: 10, Label: "visits"}}}, nil
		})), "percentage"},
		{"bullet", build(feeds.Bullet(func(*http.Request) (widget.BulletResult, error) {
			return widget.BulletResult{{Label: "Sales", AxisPoints: []float64{0, 100}, Current: widget.BulletValue(50)}}, nil
		})), "orientation"},
		{"leaderboard", build(feeds.Leaderboard(func(*http.Request) (widget.Leaderboard, error) {
			return widget.Leaderboard{Items: []widget.LeaderboardItem{{Label: "a", Value: 1}}}, nil
		})), "items"},
		{"custom", build(feeds.Custom(func(*http.Request) (*widget.Payload, error) {
			return widget.PayloadOf(widget.Field{Key: "anything", Value: true}), nil
		})), "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, tt.handler, http.MethodGet, false)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			var doc map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
				t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
			}
			if _, ok := doc[tt.wantKey]; !ok {
				t.Errorf("body %s has no %q key", rec.Body.String(), tt.wantKey)
			}
		})
	}
}

func TestFeed_Idempotent(t *testing.T) {
	t.Parallel()

	h := mustHandler(t)(New(Config{}).Funnel(func(*http.Request) (widget.Funnel, error) {
		return widget.Funnel{
			Items: []widget.FunnelItem{{Value: 1, Label: "a"}, {Value: 3, Label: "b"}},
			Sort:  true,
		}, nil
	}, With("title", "signups")))

	first := serve(t, h, http.MethodGet, false).Body.String()
	second := serve(t, h, http.MethodGet, false).Body.String()
	if first != second {
		t.Errorf("responses differ:\n%s\n%s", first, second)
	}
}

// Not parallel: reads global Prometheus counters.
func TestFeed_Metrics(t *testing.T) {
	feeds := New(Config{APIKey: testKey})

	ok := mustHandler(t)(feeds.Leaderboard(func(*http.Request) (widget.Leaderboard, error) {
		return widget.Leaderboard{}, nil
	}))
	failing := mustHandler(t)(feeds.Leaderboard(func(*http.Request) (widget.Leaderboard, error) {
		return widget.Leaderboard{}, errors.New("boom")
	}))

	success := metrics.FeedRequestsTotal.WithLabelValues("leaderboard", metrics.OutcomeSuccess)
	forbidden := metrics.FeedRequestsTotal.WithLabelValues("leaderboard", metrics.OutcomeForbidden)
	failed := metrics.FeedRequestsTotal.WithLabelValues("leaderboard", metrics.OutcomeError)
	noCreds := metrics.AuthFailuresTotal.WithLabelValues("no_credentials")
	badCreds := metrics.AuthFailuresTotal.WithLabelValues("invalid_credentials")

	beforeSuccess := testutil.ToFloat64(success)
	beforeForbidden := testutil.ToFloat64(forbidden)
	beforeFailed := testutil.ToFloat64(failed)
	beforeNoCreds := testutil.ToFloat64(noCreds)
	beforeBadCreds := testutil.ToFloat64(badCreds)

	serve(t, ok, http.MethodGet, true)
	serve(t, ok, http.MethodPost, true)
	serve(t, ok, http.MethodGet, false)
	serve(t, failing, http.MethodGet, true)

	req := httptest.NewRequest(http.MethodGet, "/feeds/test", nil)
	req.SetBasicAuth("wrong", "X")
	ok.ServeHTTP(httptest.NewRecorder(), req)

	checks := []struct {
		name   string
		got    float64
		before float64
		delta  float64
	}{
		{"success", testutil.ToFloat64(success), beforeSuccess, 2},
		{"forbidden", testutil.ToFloat64(forbidden), beforeForbidden, 2},
		{"error", testutil.ToFloat64(failed), beforeFailed, 1},
		{"no_credentials", testutil.ToFloat64(noCreds), beforeNoCreds, 1},
		{"invalid_credentials", testutil.ToFloat64(badCreds), beforeBadCreds, 1},
	}
	for _, c := range checks {
		if c.got-c.before != c.delta {
			t.Errorf("%s: delta = %v, want %v", c.name, c.got-c.before, c.delta)
		}
	}
}
