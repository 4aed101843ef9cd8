// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/geckofeed/internal/feed"
)

type recordingMounter struct {
	names    []string
	handlers map[string]http.Handler
	fail     string
}

func (m *recordingMounter) MountFeed(name string, h http.Handler) error {
	if name == m.fail {
		return errors.New("rejected")
	}
	if m.handlers == nil {
		m.handlers = make(map[string]http.Handler)
	}
	m.names = append(m.names, name)
	m.handlers[name] = h
	return nil
}

func TestMount(t *testing.T) {
	t.Parallel()

	m := &recordingMounter{}
	views := NewViews(NewSampler(time.Hour, 5), nil)

	if err := Mount(m, feed.New(feed.Config{}), views); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	if got, want := strings.Join(m.names, ","), strings.Join(FeedNames(), ","); got != want {
		t.Errorf("mounted %s, want %s", got, want)
	}

	for _, name := range m.names {
		req := httptest.NewRequest(http.MethodGet, "/feeds/"+name, nil)
		rec := httptest.NewRecorder()
		m.handlers[name].ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200, body %s", name, rec.Code, rec.Body.String())
		}
	}
}

func TestMount_EncryptedWithoutPassword(t *testing.T) {
	t.Parallel()

	m := &recordingMounter{}
	views := NewViews(NewSampler(time.Hour, 5), nil)

	err := Mount(m, feed.New(feed.Config{}), views, feed.Encrypted())
	if !errors.Is(err, feed.ErrConfiguration) {
		t.Fatalf("Mount() error = %v, want ErrConfiguration", err)
	}
	if len(m.names) != 0 {
		t.Errorf("mounted %v before failing", m.names)
	}
}

func TestMount_MounterError(t *testing.T) {
	t.Parallel()

	m := &recordingMounter{fail: "memory"}
	views := NewViews(NewSampler(time.Hour, 5), nil)

	err := Mount(m, feed.New(feed.Config{}), views)
	if err == nil || !strings.Contains(err.Error(), "failed to mount memory feed") {
		t.Fatalf("Mount() error = %v", err)
	}
}

func TestFeedNamesUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, name := range FeedNames() {
		if seen[name] {
			t.Errorf("duplicate feed name %q", name)
		}
		seen[name] = true
	}
	if len(seen) != 12 {
		t.Errorf("len(FeedNames()) = %d, want 12", len(seen))
	}
}
