// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/vinoteca/internal/cache"
	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/logging"
	"github.com/tomtom215/vinoteca/internal/metrics"
)

// Engine serves related-wine requests over a catalog. It is safe for
// concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog

	// Seeded responses only; nil when caching is disabled.
	cache *cache.LRU[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
}

// NewEngine creates a recommendation engine over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: cat,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Recommend returns wines related to req.Current. It never fails; an empty
// catalog or a wine with no type simply yields fewer items.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) *Response {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(ctx, req)
	primary := e.primaryRegion(req)
	logger := e.createRequestLogger(req)

	key := e.cacheKey(req, primary)
	if resp := e.tryGetCachedResponse(key, req, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp
	}

	pool := e.catalog.Pool(req.Current.Slug)
	wines, tiers := selectRelated(req.Current, primary, pool, req.Count, req.Seed)

	resp := &Response{
		Items: wines,
		Metadata: ResponseMetadata{
			RequestID:     req.RequestID,
			Slug:          req.Current.Slug,
			PrimaryRegion: primary,
			Count:         req.Count,
			Seed:          req.Seed.String(),
			PoolSize:      len(pool),
			Tiers:         tierCounts(tiers),
			LatencyMS:     time.Since(start).Milliseconds(),
			Timestamp:     time.Now(),
		},
	}
	if key != "" {
		e.cache.Add(key, copyResponse(resp))
	}

	metrics.RecordRecommendation(resp.Metadata.Tiers, len(wines), time.Since(start), false)
	logger.Debug().
		Int("pool", len(pool)).
		Int("returned", len(wines)).
		Interface("tiers", resp.Metadata.Tiers).
		Msg("recommendation complete")

	return resp
}

// prepareRequest applies defaults and limits and fills the request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Count == 0 {
		req.Count = e.config.Limits.DefaultCount
	}
	if req.Count > e.config.Limits.MaxCount {
		req.Count = e.config.Limits.MaxCount
	}
	return req
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) primaryRegion(req Request) string {
	if req.PrimaryRegion != nil {
		return *req.PrimaryRegion
	}
	return req.Current.RegionName()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("slug", req.Current.Slug).
		Int("count", req.Count).
		Str("seed", req.Seed.String()).
		Logger()
}

// tryGetCachedResponse returns a copy of a live cached response, or nil.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(key string, req Request, start time.Time) *Response {
	if key == "" {
		return nil
	}
	cached, ok := e.cache.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	resp := copyResponse(cached)
	resp.Metadata.RequestID = req.RequestID
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	resp.Metadata.Timestamp = time.Now()
	metrics.RecordRecommendation(resp.Metadata.Tiers, len(resp.Items), time.Since(start), true)
	return resp
}

// cacheKey returns "" for requests that must not be cached: unseeded ones,
// and all of them when the cache is disabled.
//
//nolint:gocritic // hugeParam: req passed by value for simplicity
func (e *Engine) cacheKey(req Request, primary string) string {
	if e.cache == nil || !req.Seed.IsSet() {
		return ""
	}
	return "rel:" + req.Current.Slug + "|" + normalizeText(primary) + "|" + strconv.Itoa(req.Count) + "|" + req.Seed.String()
}

func copyResponse(resp *Response) *Response {
	items := make([]catalog.Wine, len(resp.Items))
	copy(items, resp.Items)
	tiers := make(map[string]int, len(resp.Metadata.Tiers))
	for k, v := range resp.Metadata.Tiers {
		tiers[k] = v
	}
	meta := resp.Metadata
	meta.Tiers = tiers
	return &Response{Items: items, Metadata: meta}
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
	}
	if e.cache != nil {
		m.CacheSize = e.cache.Len()
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// CleanupCache drops expired cache entries and returns how many were removed.
func (e *Engine) CleanupCache() int {
	if e.cache == nil {
		return 0
	}
	removed := e.cache.CleanupExpired()
	if removed > 0 {
		e.logger.Debug().Int("removed", removed).Msg("expired cache entries removed")
	}
	return removed
}
