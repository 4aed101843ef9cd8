// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestTraffic_Collect(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: FeedRequestsMetric,
		Help: "test",
	}, []string{"widget", "outcome"})
	other := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geckofeed_other_total",
		Help: "test",
	})
	reg.MustRegister(requests, other)

	requests.WithLabelValues("text", "success").Add(3)
	requests.WithLabelValues("text", "forbidden").Inc()
	requests.WithLabelValues("funnel", "error").Add(2)
	requests.WithLabelValues("funnel", "unknown").Add(100)
	other.Add(50)

	counts, err := NewTraffic(reg).Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := map[string]Outcomes{
		"funnel": {Error: 2},
		"text":   {Success: 3, Forbidden: 1},
	}
	if len(counts.ByWidget) != len(want) {
		t.Fatalf("ByWidget = %v, want %v", counts.ByWidget, want)
	}
	for name, o := range want {
		if counts.ByWidget[name] != o {
			t.Errorf("ByWidget[%s] = %+v, want %+v", name, counts.ByWidget[name], o)
		}
	}

	if got := counts.Widgets(); len(got) != 2 || got[0] != "funnel" || got[1] != "text" {
		t.Errorf("Widgets() = %v", got)
	}
	if all := counts.All(); all.Total() != 6 {
		t.Errorf("All().Total() = %v, want 6", all.Total())
	}
}

func TestTraffic_NilReportsNothing(t *testing.T) {
	t.Parallel()

	var traffic *Traffic
	counts, err := traffic.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(counts.ByWidget) != 0 {
		t.Errorf("ByWidget = %v, want empty", counts.ByWidget)
	}
}

type failingGatherer struct{}

func (failingGatherer) Gather() ([]*dto.MetricFamily, error) {
	return nil, errors.New("registry broken")
}

func TestTraffic_GatherError(t *testing.T) {
	t.Parallel()

	_, err := NewTraffic(failingGatherer{}).Collect()
	if err == nil {
		t.Fatal("Collect() error = nil, want error")
	}
}

func TestNewTraffic_DefaultGatherer(t *testing.T) {
	t.Parallel()

	if NewTraffic(nil).gatherer != prometheus.DefaultGatherer {
		t.Error("nil gatherer should fall back to prometheus.DefaultGatherer")
	}
}
