// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service. It fails the first failFirst
// runs, then blocks until its context is canceled.
type mockService struct {
	name       string
	failFirst  int32
	startCount atomic.Int32
	failures   atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)

	if m.failFirst > 0 && m.failures.Add(1) <= m.failFirst {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) StartCount() int32 {
	return m.startCount.Load()
}

func (m *mockService) String() string {
	return m.name
}
