// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/tomtom215/vinoteca/internal/awards"
	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/macrotype"
	"github.com/tomtom215/vinoteca/internal/recommend"
)

// WineList is the data of GET /wines.
type WineList struct {
	Wines []catalog.Wine `json:"wines"`
	Total int            `json:"total"`
}

// WineDetail is a wine with its category and award, either of which may be
// null.
type WineDetail struct {
	Wine  catalog.Wine     `json:"wine"`
	Macro *macrotype.Macro `json:"macro"`
	Award *awards.Info     `json:"award"`
}

// Wines handles GET /api/v1/wines.
func (h *Handler) Wines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, verr := parseWinesRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	wines := h.catalog.Search(req.Query)
	if req.Type != "" {
		matches := catalog.TypeMatcher(req.Type)
		wines = slices.DeleteFunc(wines, func(w catalog.Wine) bool {
			return !matches(w)
		})
	}

	respondJSON(w, r, http.StatusOK, success(r, WineList{Wines: wines, Total: len(wines)}, start, false))
}

// Wine handles GET /api/v1/wines/{slug}.
func (h *Handler) Wine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	wine, ok := h.catalog.BySlug(urlParam(r, "slug"))
	if !ok {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Wine not found", nil)
		return
	}

	detail := WineDetail{Wine: wine}
	if m, found := h.classifier.Table().FindByType(wine.TypeName()); found {
		detail.Macro = &m
	}
	if info, found := h.awards.Lookup(wine.Slug); found {
		detail.Award = &info
	}

	respondJSON(w, r, http.StatusOK, success(r, detail, start, false))
}

// RelatedWines handles GET /api/v1/wines/{slug}/related.
func (h *Handler) RelatedWines(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	wine, ok := h.catalog.BySlug(urlParam(r, "slug"))
	if !ok {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Wine not found", nil)
		return
	}

	req, verr := parseRelatedRequest(r, h.engine.GetConfig().Limits.MaxCount)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp := h.engine.Recommend(r.Context(), recommend.Request{
		Current:       wine,
		PrimaryRegion: req.Region,
		Count:         req.Count,
		Seed:          req.seedFor(wine.Slug),
	})

	respondJSON(w, r, http.StatusOK, success(r, resp, start, resp.Metadata.CacheHit))
}
