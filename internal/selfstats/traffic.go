// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/tomtom215/geckofeed/internal/metrics"
)

// FeedRequestsMetric is the counter family Traffic reads.
const FeedRequestsMetric = "geckofeed_feed_requests_total"

// Outcomes counts feed requests by outcome.
type Outcomes struct {
	Success   float64
	Forbidden float64
	Error     float64
}

// Total returns the number of requests of every outcome.
func (o Outcomes) Total() float64 {
	return o.Success + o.Forbidden + o.Error
}

func (o *Outcomes) add(outcome string, v float64) {
	switch outcome {
	case metrics.OutcomeSuccess:
		o.Success += v
	case metrics.OutcomeForbidden:
		o.Forbidden += v
	case metrics.OutcomeError:
		o.Error += v
	}
}

// Counts holds feed request counters keyed by widget type.
type Counts struct {
	ByWidget map[string]Outcomes
}

// Widgets returns the widget types seen, sorted by name.
func (c Counts) Widgets() []string {
	names := make([]string, 0, len(c.ByWidget))
	for name := range c.ByWidget {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All sums the outcomes of every widget type.
func (c Counts) All() Outcomes {
	var all Outcomes
	for _, o := range c.ByWidget {
		all.Success += o.Success
		all.Forbidden += o.Forbidden
		all.Error += o.Error
	}
	return all
}

// Traffic reads feed request counters back from a Prometheus gatherer.
type Traffic struct {
	gatherer prometheus.Gatherer
}

// NewTraffic creates a Traffic reading from g. A nil g reads
// prometheus.DefaultGatherer, where package metrics registers.
func NewTraffic(g prometheus.Gatherer) *Traffic {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return &Traffic{gatherer: g}
}

// Collect gathers the current counters. A nil Traffic reports no requests.
func (t *Traffic) Collect() (Counts, error) {
	counts := Counts{ByWidget: make(map[string]Outcomes)}
	if t == nil {
		return counts, nil
	}

	families, err := t.gatherer.Gather()
	if err != nil {
		return counts, fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != FeedRequestsMetric || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			w, outcome := labelValue(m, "widget"), labelValue(m, "outcome")
			o := counts.ByWidget[w]
			o.add(outcome, m.GetCounter().GetValue())
			counts.ByWidget[w] = o
		}
	}
	return counts, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
