// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"time"

	"github.com/tomtom215/vinoteca/internal/catalog"
)

// Request asks for wines related to Current.
type Request struct {
	// Current is the wine being displayed. It is never part of the result.
	Current catalog.Wine

	// PrimaryRegion overrides the region used by the first tier.
	// Nil means Current's own region; a pointer to "" disables the tier.
	PrimaryRegion *string

	// Count is the number of wines wanted. Zero selects the configured
	// default, negative values yield an empty result, and values above the
	// configured maximum are clamped.
	Count int

	// Seed fixes the order. Seeded results are cached.
	Seed Seed

	// RequestID is propagated into logs. Generated when empty.
	RequestID string
}

// Response holds the related wines and how they were found.
type Response struct {
	Items    []catalog.Wine   `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes a recommendation run.
type ResponseMetadata struct {
	RequestID     string         `json:"request_id"`
	Slug          string         `json:"slug"`
	PrimaryRegion string         `json:"primary_region,omitempty"`
	Count         int            `json:"count"`
	Seed          string         `json:"seed"`
	PoolSize      int            `json:"pool_size"`
	Tiers         map[string]int `json:"tiers"`
	LatencyMS     int64          `json:"latency_ms"`
	CacheHit      bool           `json:"cache_hit"`
	Timestamp     time.Time      `json:"timestamp"`
}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheSize    int   `json:"cache_size"`
}

// tierCounts tallies how many returned wines each tier contributed.
func tierCounts(tiers []Tier) map[string]int {
	counts := make(map[string]int, len(Tiers))
	for _, t := range tiers {
		counts[t.String()]++
	}
	return counts
}
