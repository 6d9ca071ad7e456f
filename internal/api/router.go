// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/vinoteca/internal/config"
	"github.com/tomtom215/vinoteca/internal/metrics"
	"github.com/tomtom215/vinoteca/internal/middleware"
)

// RouterConfig holds the middleware settings of the router.
type RouterConfig struct {
	CORSAllowedOrigins []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool

	// SlowRequest is the access log warning threshold.
	SlowRequest time.Duration
}

// DefaultRouterConfig returns permissive CORS and 100 requests per minute
// per client IP.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSMaxAge:         86400,
		RateLimitRequests:  100,
		RateLimitWindow:    time.Minute,
		SlowRequest:        500 * time.Millisecond,
	}
}

// RouterConfigFrom builds the router settings from the application config.
func RouterConfigFrom(cfg *config.Config) *RouterConfig {
	rc := DefaultRouterConfig()
	if cfg == nil {
		return rc
	}
	if len(cfg.Security.CORSOrigins) > 0 {
		rc.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	rc.RateLimitRequests = cfg.Security.RateLimitReqs
	rc.RateLimitWindow = cfg.Security.RateLimitWindow
	rc.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return rc
}

// NewRouter wires the handlers and middleware into a chi router.
func NewRouter(h *Handler, cfg *RouterConfig) http.Handler {
	if cfg == nil {
		cfg = DefaultRouterConfig()
	}

	r := chi.NewRouter()

	// Global middleware, outermost first
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "If-None-Match", middleware.RequestIDHeader},
		ExposedHeaders: []string{"ETag", middleware.RequestIDHeader},
		MaxAge:         cfg.CORSMaxAge,
	}))
	r.Use(middleware.AccessLog(cfg.SlowRequest))
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// Probes and scraping are never rate limited
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})
	metricsHandler := promhttp.Handler()
	r.Handle("/metrics", metricsHandler)
	r.Handle("/api/v1/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimit(cfg))

		r.Get("/wines", h.Wines)
		r.Get("/wines/{slug}", h.Wine)
		r.Get("/wines/{slug}/related", h.RelatedWines)

		r.Get("/categories", h.Categories)
		r.Get("/categories/{id}/wines", h.CategoryWineList)

		r.Get("/awards", h.Awards)
		r.Get("/awards/{slug}", h.Award)

		r.Get("/navigation", h.NavigationMenu)
	})

	return r
}

// rateLimit limits requests per client IP with go-chi/httprate.
func rateLimit(cfg *RouterConfig) func(http.Handler) http.Handler {
	if cfg.RateLimitDisabled || cfg.RateLimitRequests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.RateLimitRequests,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(rateLimitedRoute(r))
			respondError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
		}),
	)
}

// rateLimitedRoute labels a rejected request. Routing has not run yet, so
// the pattern is the mount point of the limited group.
func rateLimitedRoute(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "/api/v1"
}
