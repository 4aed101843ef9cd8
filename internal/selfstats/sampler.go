// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package selfstats

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/tomtom215/geckofeed/internal/logging"
)

// Default sampler settings
const (
	DefaultInterval = 15 * time.Second
	DefaultHistory  = 20
)

// Snapshot is one sample of the Go runtime.
type Snapshot struct {
	Time       time.Time
	Goroutines int
	HeapAlloc  uint64
	HeapInuse  uint64
	HeapSys    uint64
	StackInuse uint64
	Sys        uint64
	NumGC      uint32
	LastPause  time.Duration
}

// Sampler periodically records runtime statistics. runtime.ReadMemStats
// stops the world, so feed views read the recorded samples instead of
// calling it per request.
type Sampler struct {
	interval time.Duration
	history  int
	started  time.Time
	read     func() Snapshot

	mu      sync.RWMutex
	samples []Snapshot // oldest first, at most history entries
}

// NewSampler creates a sampler and records the first sample immediately.
// Non-positive arguments select the defaults.
func NewSampler(interval time.Duration, history int) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if history <= 0 {
		history = DefaultHistory
	}
	s := &Sampler{
		interval: interval,
		history:  history,
		started:  time.Now(),
		read:     readRuntime,
		samples:  make([]Snapshot, 0, history),
	}
	s.Sample()
	return s
}

func readRuntime() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var lastPause time.Duration
	if ms.NumGC > 0 {
		lastPause = time.Duration(ms.PauseNs[(ms.NumGC+255)%256])
	}

	return Snapshot{
		Time:       time.Now(),
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		HeapSys:    ms.HeapSys,
		StackInuse: ms.StackInuse,
		Sys:        ms.Sys,
		NumGC:      ms.NumGC,
		LastPause:  lastPause,
	}
}

// Sample records one snapshot, dropping the oldest once history is full.
func (s *Sampler) Sample() Snapshot {
	snap := s.read()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == s.history {
		copy(s.samples, s.samples[1:])
		s.samples = s.samples[:len(s.samples)-1]
	}
	s.samples = append(s.samples, snap)
	return snap
}

// Latest returns the most recent snapshot.
func (s *Sampler) Latest() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.samples[len(s.samples)-1]
}

// Previous returns the snapshot before the latest one, or the latest when
// only one has been taken.
func (s *Sampler) Previous() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.samples) < 2 {
		return s.samples[len(s.samples)-1]
	}
	return s.samples[len(s.samples)-2]
}

// History returns a copy of the recorded snapshots, oldest first.
func (s *Sampler) History() []Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Snapshot, len(s.samples))
	copy(out, s.samples)
	return out
}

// Started returns when the sampler was created.
func (s *Sampler) Started() time.Time {
	return s.started
}

// Serve implements suture.Service. It samples every interval until ctx is
// canceled.
func (s *Sampler) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logging.Debug().
		Dur("interval", s.interval).
		Int("history", s.history).
		Msg("Runtime sampler started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := s.Sample()
			logging.Debug().
				Int("goroutines", snap.Goroutines).
				Uint64("heap_alloc", snap.HeapAlloc).
				Uint32("num_gc", snap.NumGC).
				Msg("Runtime sampled")
		}
	}
}

// String implements fmt.Stringer for suture.
func (s *Sampler) String() string {
	return "runtime-sampler"
}
