// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package config

import (
	"time"

	"github.com/tomtom215/vinoteca/internal/awards"
	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/logging"
	"github.com/tomtom215/vinoteca/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: the names listed on each section
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("invalid configuration")
//	}
//	cat, err := catalog.LoadFile(cfg.Catalog.Path, cfg.Catalog.Options())
type Config struct {
	Catalog    CatalogConfig    `koanf:"catalog"`
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Awards     awards.Config    `koanf:"awards"`
	Navigation NavigationConfig `koanf:"navigation"`
	Security   SecurityConfig   `koanf:"security"`
}

// CatalogConfig locates and normalizes the wine catalog.
//
// Environment Variables:
//   - CATALOG_PATH: JSON array of raw wine records (default: data/wines.json)
//   - CATALOG_PLACEHOLDER_NAME: name for untitled wines (default: Senza nome)
//   - CATALOG_LOCALE_REGION_FALLBACK: take the region from the winery locale
//     when the wine has none (default: false)
type CatalogConfig struct {
	Path                 string `koanf:"path" validate:"required"`
	PlaceholderName      string `koanf:"placeholder_name" validate:"required"`
	LocaleRegionFallback bool   `koanf:"locale_region_fallback"`
}

// Options returns the normalizer options for this configuration.
func (c CatalogConfig) Options() catalog.Options {
	return catalog.Options{
		PlaceholderName:      c.PlaceholderName,
		LocaleRegionFallback: c.LocaleRegionFallback,
	}
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST (default: 0.0.0.0)
//   - HTTP_PORT (default: 8080)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig configures internal/logging.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// LoggerConfig converts to the logging package configuration.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

// RecommendConfig configures the related-wine engine.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_COUNT (default: 3)
//   - RECOMMEND_MAX_COUNT (default: 24)
//   - RECOMMEND_CACHE_ENABLED (default: true)
//   - RECOMMEND_CACHE_SIZE (default: 1000)
//   - RECOMMEND_CACHE_TTL (default: 10m)
type RecommendConfig struct {
	DefaultCount int           `koanf:"default_count" validate:"min=1"`
	MaxCount     int           `koanf:"max_count" validate:"min=1,gtefield=DefaultCount"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size" validate:"min=0"`
	CacheTTL     time.Duration `koanf:"cache_ttl" validate:"min=0"`
}

// EngineConfig converts to the recommend package configuration.
func (c RecommendConfig) EngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Limits.DefaultCount = c.DefaultCount
	cfg.Limits.MaxCount = c.MaxCount
	cfg.Cache.Enabled = c.CacheEnabled
	cfg.Cache.MaxEntries = c.CacheSize
	cfg.Cache.TTL = c.CacheTTL
	return cfg
}

// NavigationConfig holds the public route layout.
//
// Environment Variables:
//   - NAVIGATION_ROUTE_BASE (default: /classifica-vini-2026)
//   - NAVIGATION_HOME_URL (default: the ranking home page)
type NavigationConfig struct {
	RouteBase string `koanf:"route_base" validate:"routepath"`
	HomeURL   string `koanf:"home_url" validate:"required,url"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated origins (default: *)
//   - RATE_LIMIT_REQUESTS (default: 100)
//   - RATE_LIMIT_WINDOW (default: 1m)
//   - DISABLE_RATE_LIMIT (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}
