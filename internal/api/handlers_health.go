// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/vinoteca/internal/recommend"
)

// HealthStatus is the data of the health probes.
type HealthStatus struct {
	Status          string             `json:"status"`
	Version         string             `json:"version"`
	GoVersion       string             `json:"go_version"`
	Uptime          float64            `json:"uptime_seconds"`
	Wines           int                `json:"wines,omitempty"`
	AwardedWines    int                `json:"awarded_wines,omitempty"`
	Recommendations *recommend.Metrics `json:"recommendations,omitempty"`
}

// HealthLive handles GET /api/v1/health/live. It answers as long as the
// process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, r, http.StatusOK, success(r, HealthStatus{
		Status:    "alive",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Seconds(),
	}, start, false))
}

// HealthReady handles GET /api/v1/health/ready. The service is ready once a
// non-empty catalog is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	wines := 0
	if h.catalog != nil {
		wines = h.catalog.Len()
	}
	if wines == 0 {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Catalog is empty", nil)
		return
	}

	status := HealthStatus{
		Status:    "ready",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Seconds(),
		Wines:     wines,
	}
	if h.awards != nil {
		status.AwardedWines = h.awards.Len()
	}
	if h.engine != nil {
		m := h.engine.GetMetrics()
		status.Recommendations = &m
	}
	respondJSON(w, r, http.StatusOK, success(r, status, start, false))
}
