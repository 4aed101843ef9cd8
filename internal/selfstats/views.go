// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"fmt"
	"math"
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/geckofeed/internal/widget"
)

// GoroutineWarnThreshold adds a warning to the uptime text feed.
const GoroutineWarnThreshold = 10000

const (
	mebibyte   = 1 << 20
	timeLayout = "15:04:05"
)

// Views are the feed views built on a Sampler and the Prometheus registry.
type Views struct {
	sampler *Sampler
	traffic *Traffic
	now     func() time.Time
}

// NewViews creates the views. traffic may be nil, in which case the feed
// traffic views report zero requests.
func NewViews(sampler *Sampler, traffic *Traffic) *Views {
	return &Views{
		sampler: sampler,
		traffic: traffic,
		now:     time.Now,
	}
}

// Goroutines is a number view: current count with the previous sample as
// the secondary stat.
func (v *Views) Goroutines(*http.Request) (widget.NumberResult, error) {
	latest, previous := v.sampler.Latest(), v.sampler.Previous()
	return widget.NumberPair(latest.Goroutines, previous.Goroutines), nil
}

// Heap is a gauge view of allocated heap between zero and the heap
// obtained from the OS, in MiB.
func (v *Views) Heap(*http.Request) (widget.GeckOMeter, error) {
	s := v.sampler.Latest()
	return widget.GeckOMeter{
		Value: mib(s.HeapAlloc),
		Min:   widget.BoundText(0, "MiB"),
		Max:   widget.BoundText(mib(s.HeapSys), "MiB"),
	}, nil
}

// Memory is a pie chart view of memory obtained from the OS.
func (v *Views) Memory(*http.Request) (widget.PieChartResult, error) {
	s := v.sampler.Latest()

	var other uint64
	if used := s.HeapInuse + s.StackInuse; s.Sys > used {
		other = s.Sys - used
	}

	return widget.PieChartResult{
		{Value: mib(s.HeapInuse), Label: "Heap in use", Colour: "00A0DC"},
		{Value: mib(s.StackInuse), Label: "Stacks", Colour: "F5A623"},
		{Value: mib(other), Label: "Other", Colour: "9B9B9B"},
	}, nil
}

// Uptime is a text view with the process uptime, plus a warning when the
// goroutine count is above GoroutineWarnThreshold.
func (v *Views) Uptime(*http.Request) (widget.TextResult, error) {
	started := v.sampler.Started()
	uptime := v.now().Sub(started).Truncate(time.Second)

	result := widget.TextResult{{
		Text: fmt.Sprintf("Up %s since %s (%s)", uptime, started.UTC().Format(time.RFC3339), runtime.Version()),
		Type: widget.TextInfo,
	}}

	if n := v.sampler.Latest().Goroutines; n > GoroutineWarnThreshold {
		result = append(result, widget.TextItem{
			Text: fmt.Sprintf("%d goroutines running", n),
			Type: widget.TextWarn,
		})
	}
	return result, nil
}

// HeapHistory is a line chart view of allocated heap over the recorded
// samples.
func (v *Views) HeapHistory(*http.Request) (widget.LineChart, error) {
	history := v.sampler.History()

	data := make([]any, 0, len(history))
	labels := make([]string, 0, len(history))
	for _, s := range history {
		data = append(data, mib(s.HeapAlloc))
		labels = append(labels, s.Time.UTC().Format(timeLayout))
	}

	return widget.LineChart{
		Series: []widget.Series{{Name: "Heap allocated", Data: data}},
		XAxis:  &widget.Axis{Labels: labels},
		YAxis:  &widget.Axis{Format: "decimal", Unit: "MiB"},
	}, nil
}

// GoroutineHistory is a legacy line chart view of the goroutine count.
func (v *Views) GoroutineHistory(*http.Request) (widget.LineChartLegacy, error) {
	history := v.sampler.History()

	values := make([]float64, 0, len(history))
	lo, hi := math.MaxInt, 0
	for _, s := range history {
		values = append(values, float64(s.Goroutines))
		lo = min(lo, s.Goroutines)
		hi = max(hi, s.Goroutines)
	}

	first, last := history[0], history[len(history)-1]
	return widget.LineChartLegacy{
		Values: values,
		XAxis:  []string{first.Time.UTC().Format(timeLayout), last.Time.UTC().Format(timeLayout)},
		YAxis:  []string{fmt.Sprint(lo), fmt.Sprint(hi)},
		Colour: "00A0DC",
	}, nil
}

// GCCycles is a bar chart view of garbage collections completed between
// consecutive samples.
func (v *Views) GCCycles(*http.Request) (widget.BarChart, error) {
	history := v.sampler.History()

	data := make([]any, 0, len(history))
	labels := make([]string, 0, len(history))
	for i := 1; i < len(history); i++ {
		data = append(data, history[i].NumGC-history[i-1].NumGC)
		labels = append(labels, history[i].Time.UTC().Format(timeLayout))
	}

	return widget.BarChart{
		Series: []widget.Series{{Name: "GC cycles", Data: data}},
		XAxis:  &widget.Axis{Labels: labels},
	}, nil
}

// GCPause is a bullet view of the latest GC pause in microseconds, against
// the longest pause in the recorded history. The comparative marker is the
// history average.
func (v *Views) GCPause(*http.Request) (widget.BulletResult, error) {
	history := v.sampler.History()

	var longest, total time.Duration
	for _, s := range history {
		longest = max(longest, s.LastPause)
		total += s.LastPause
	}

	top := math.Ceil(micros(longest))
	if top < 100 {
		top = 100
	}
	avg := micros(total / time.Duration(len(history)))

	return widget.BulletResult{{
		Label:       "GC pause",
		Sublabel:    "microseconds",
		AxisPoints:  []float64{0, top / 4, top / 2, 3 * top / 4, top},
		Current:     widget.BulletValue(micros(v.sampler.Latest().LastPause)),
		Comparative: widget.Ptr(avg),
	}}, nil
}

// FeedTraffic is a leaderboard view of feed requests per widget type.
func (v *Views) FeedTraffic(*http.Request) (widget.Leaderboard, error) {
	counts, err := v.traffic.Collect()
	if err != nil {
		return widget.Leaderboard{}, err
	}

	items := make([]widget.LeaderboardItem, 0, len(counts.ByWidget))
	for _, name := range counts.Widgets() {
		items = append(items, widget.LeaderboardItem{Label: name, Value: counts.ByWidget[name].Total()})
	}
	return widget.Leaderboard{Items: items}, nil
}

// FeedOutcomes is a RAG view of feed responses: errors, rejected and
// served requests.
func (v *Views) FeedOutcomes(*http.Request) (widget.RAGResult, error) {
	counts, err := v.traffic.Collect()
	if err != nil {
		return widget.RAGResult{}, err
	}
	all := counts.All()
	return widget.RAGResult{
		widget.RAGText(all.Error, "Errors"),
		widget.RAGText(all.Forbidden, "Rejected"),
		widget.RAGText(all.Success, "Served"),
	}, nil
}

// FeedFunnel is a funnel view from received to authorized to served
// requests.
func (v *Views) FeedFunnel(*http.Request) (widget.Funnel, error) {
	counts, err := v.traffic.Collect()
	if err != nil {
		return widget.Funnel{}, err
	}
	all := counts.All()
	return widget.Funnel{
		Items: []widget.FunnelItem{
			{Value: all.Total(), Label: "Received"},
			{Value: all.Total() - all.Forbidden, Label: "Authorized"},
			{Value: all.Success, Label: "Served"},
		},
	}, nil
}

// Runtime is a custom view describing the Go runtime.
func (v *Views) Runtime(*http.Request) (*widget.Payload, error) {
	s := v.sampler.Latest()
	return widget.PayloadOf(
		widget.Field{Key: "go_version", Value: runtime.Version()},
		widget.Field{Key: "os", Value: runtime.GOOS},
		widget.Field{Key: "arch", Value: runtime.GOARCH},
		widget.Field{Key: "num_cpu", Value: runtime.NumCPU()},
		widget.Field{Key: "gomaxprocs", Value: runtime.GOMAXPROCS(0)},
		widget.Field{Key: "goroutines", Value: s.Goroutines},
		widget.Field{Key: "sampled_at", Value: s.Time.UTC().Format(time.RFC3339)},
	), nil
}

// mib converts bytes to MiB rounded to one decimal.
func mib(b uint64) float64 {
	return math.Round(float64(b)/mebibyte*10) / 10
}

func micros(d time.Duration) float64 {
	return math.Round(float64(d)/float64(time.Microsecond)*100) / 100
}
