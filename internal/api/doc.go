// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package api provides the read-only HTTP API over the wine catalog.

Every response uses the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 0, "cached": false, "request_id": "..."},
	  "error": null
	}

Errors set status to "error" and fill error with a machine-readable code
(VALIDATION_ERROR, NOT_FOUND, INTERNAL_ERROR) and a message. Bodies carry a
weak ETag derived from an FNV-1a hash, and a matching If-None-Match answers
304 Not Modified.

# Endpoints

All routes live under /api/v1:

  - GET /wines?q=&type=: search, or filter by exact type slug
  - GET /wines/{slug}: one wine with its category and award
  - GET /wines/{slug}/related?count=&seed=&region=: related wines
  - GET /categories: the category table with wine counts
  - GET /categories/{id}/wines: wines in one category
  - GET /awards: awarded wines ordered by score then name
  - GET /awards/{slug}: the award of one wine
  - GET /navigation: the navigation menu
  - GET /health/live, GET /health/ready: probes
  - GET /metrics: Prometheus exposition

The related endpoint seeds its shuffle with the wine's own slug unless seed
is given, so repeated requests for the same page return the same order. An
explicit empty seed (seed=) asks for a fresh order on every request.

# Middleware

The router stacks request IDs, panic recovery, CORS (go-chi/cors), access
logging, Prometheus metrics, and per-IP rate limiting (go-chi/httprate).
Health and metrics routes are not rate limited.

# Usage

	h := api.NewHandler(api.Dependencies{
	    Catalog:    cat,
	    Awards:     index,
	    Resolver:   resolver,
	    Classifier: classifier,
	    Engine:     engine,
	    RouteBase:  cfg.Navigation.RouteBase,
	    HomeURL:    cfg.Navigation.HomeURL,
	})
	srv := &http.Server{Handler: api.NewRouter(h, api.RouterConfigFrom(cfg))}
*/
package api
