// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/geckofeed/internal/feed"
)

// Mounter registers a named feed handler. *api.Router satisfies it.
type Mounter interface {
	MountFeed(name string, h http.Handler) error
}

type builtin struct {
	name  string
	build func(f *feed.Feeds, v *Views, opts []feed.Option) (http.Handler, error)
}

var builtins = []builtin{
	{"goroutines", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Number(v.Goroutines, o...) }},
	{"heap", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.GeckOMeter(v.Heap, o...) }},
	{"memory", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.PieChart(v.Memory, o...) }},
	{"uptime", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Text(v.Uptime, o...) }},
	{"heap-history", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.LineChart(v.HeapHistory, o...) }},
	{"goroutine-history", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) {
		return f.LineChartLegacy(v.GoroutineHistory, o...)
	}},
	{"gc-cycles", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.BarChart(v.GCCycles, o...) }},
	{"gc-pause", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Bullet(v.GCPause, o...) }},
	{"feed-traffic", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Leaderboard(v.FeedTraffic, o...) }},
	{"feed-outcomes", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.RAG(v.FeedOutcomes, o...) }},
	{"feed-funnel", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Funnel(v.FeedFunnel, o...) }},
	{"runtime", func(f *feed.Feeds, v *Views, o []feed.Option) (http.Handler, error) { return f.Custom(v.Runtime, o...) }},
}

// FeedNames returns the names Mount registers, in registration order.
func FeedNames() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.name)
	}
	return names
}

// Mount builds every built-in feed with opts and registers it on m.
func Mount(m Mounter, feeds *feed.Feeds, v *Views, opts ...feed.Option) error {
	for _, b := range builtins {
		h, err := b.build(feeds, v, opts)
		if err != nil {
			return fmt.Errorf("failed to build %s feed: %w", b.name, err)
		}
		if err := m.MountFeed(b.name, h); err != nil {
			return fmt.Errorf("failed to mount %s feed: %w", b.name, err)
		}
	}
	return nil
}
