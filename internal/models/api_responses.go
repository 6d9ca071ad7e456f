// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the wrapper of every HTTP response body.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"wines": [...], "total": 3},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "query_time_ms": 0,
//	    "cached": false,
//	    "request_id": "7f0c..."
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "NOT_FOUND", "message": "Wine not found"},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 0, "cached": false}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced. Cached is true when a
// recommendation came from the seeded-result cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
	Cached      bool      `json:"cached"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error.
//
// Codes:
//   - VALIDATION_ERROR: invalid query parameters
//   - NOT_FOUND: unknown wine, category, award, or route
//   - METHOD_NOT_ALLOWED: the route exists for other methods
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
//   - NOT_READY: the catalog is empty
//   - INTERNAL_ERROR: anything else
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "count must be at most 24",
//	  "details": {"field": "count", "tag": "max", "value": 30}
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
