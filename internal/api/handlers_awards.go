// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/vinoteca/internal/awards"
	"github.com/tomtom215/vinoteca/internal/catalog"
)

// AwardList is the data of GET /awards.
type AwardList struct {
	Entries []awards.Entry `json:"entries"`
	Total   int            `json:"total"`
}

// AwardDetail is the data of GET /awards/{slug}.
type AwardDetail struct {
	Slug     string      `json:"slug"`
	Award    awards.Info `json:"award"`
	National bool        `json:"national"`
	Regional bool        `json:"regional"`
}

// Awards handles GET /api/v1/awards.
func (h *Handler) Awards(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	entries := h.resolver.Listing(h.catalog, h.awards)
	respondJSON(w, r, http.StatusOK, success(r, AwardList{Entries: entries, Total: len(entries)}, start, false))
}

// Award handles GET /api/v1/awards/{slug}.
func (h *Handler) Award(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	slug := catalog.NormalizeSlugParam(urlParam(r, "slug"))
	info, ok := h.awards.Lookup(slug)
	if !ok {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Award not found", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, success(r, AwardDetail{
		Slug:     slug,
		Award:    info,
		National: h.resolver.IsNational(info.Label),
		Regional: h.resolver.IsRegional(info.Label),
	}, start, false))
}
