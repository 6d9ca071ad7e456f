// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheCleaner drops expired cache entries and reports how many it removed.
// *recommend.Engine satisfies it.
type CacheCleaner interface {
	CleanupCache() int
}

// DefaultJanitorInterval is used when the interval is not positive.
const DefaultJanitorInterval = time.Minute

// CacheJanitorService sweeps a cache on a fixed interval.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor for cleaner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.cleaner.CleanupCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired entries swept")
			}
		}
	}
}

// String names the service in supervisor events.
func (s *CacheJanitorService) String() string {
	return s.name
}
