// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package middleware provides the HTTP middleware stack of the API router.

Every middleware has the chi signature func(http.Handler) http.Handler:

  - RequestID: accepts or generates X-Request-ID and stores request and
    correlation IDs in the context for logging.Ctx
  - PrometheusMetrics: records api_requests_total, api_request_duration_seconds
    and api_active_requests, labelled by chi route pattern
  - AccessLog: one structured log line per request, warning above a
    slow-request threshold

Order in the router:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
