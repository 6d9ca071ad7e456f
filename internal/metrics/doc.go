// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package metrics defines the Prometheus collectors of the catalog service.

All collectors register with the default registry through promauto and are
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog:
  - vinoteca_catalog_loads_total: catalog loads (counter)
    Labels: result (success, error)
  - vinoteca_catalog_load_duration_seconds: load and normalize time (histogram)
  - vinoteca_catalog_wines: wines in the loaded catalog (gauge)
  - vinoteca_awards_index_entries: slugs with a resolved award (gauge)

Recommendations:
  - vinoteca_recommendations_total: served requests (counter)
    Labels: cache (hit, miss)
  - vinoteca_recommendation_duration_seconds: selection latency (histogram)
  - vinoteca_recommendation_wines: wines returned per request (histogram)
  - vinoteca_recommendation_tier_wines_total: wines contributed per tier (counter)
    Labels: tier (region, secondary_region, type, any)

HTTP API:
  - api_requests_total: requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: latency (histogram)
    Labels: method, endpoint
  - api_active_requests: requests in flight (gauge)
  - api_rate_limit_hits_total: requests rejected by the rate limiter (counter)
    Labels: endpoint

Build:
  - app_info: constant 1 labelled with version and go_version (gauge)

# Usage

Callers record through the helper functions rather than touching the
collectors directly:

	start := time.Now()
	cat, err := catalog.Load(r, opts)
	metrics.RecordCatalogLoad(cat.Len(), time.Since(start), err == nil)

# Testing

Tests read collector values with prometheus/testutil or by writing a
client_model Metric.
*/
package metrics
