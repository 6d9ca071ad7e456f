// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var (
	_ suture.Service = (*HTTPServerService)(nil)
	_ suture.Service = (*CacheJanitorService)(nil)
)

type countingCleaner struct {
	calls atomic.Int32
}

func (c *countingCleaner) CleanupCache() int {
	return int(c.calls.Add(1))
}

func TestCacheJanitorService(t *testing.T) {
	t.Run("default interval", func(t *testing.T) {
		svc := NewCacheJanitorService(&countingCleaner{}, 0, zerolog.Nop())
		if svc.interval != DefaultJanitorInterval {
			t.Errorf("interval = %v", svc.interval)
		}
		if svc.String() != "cache-janitor" {
			t.Errorf("String() = %q", svc.String())
		}
	})

	t.Run("sweeps until canceled", func(t *testing.T) {
		cleaner := &countingCleaner{}
		svc := NewCacheJanitorService(cleaner, 10*time.Millisecond, zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- svc.Serve(ctx) }()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(time.Second):
			t.Fatal("janitor did not stop")
		}
		if cleaner.calls.Load() < 2 {
			t.Errorf("CleanupCache called %d times", cleaner.calls.Load())
		}
	})
}
