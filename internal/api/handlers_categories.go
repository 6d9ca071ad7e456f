// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/macrotype"
)

// Category is a macro category with the number of wines in it.
type Category struct {
	macrotype.Macro
	Wines int `json:"wines"`
}

// CategoryWines is the data of GET /categories/{id}/wines.
type CategoryWines struct {
	Category macrotype.Macro `json:"category"`
	Wines    []catalog.Wine  `json:"wines"`
	Total    int             `json:"total"`
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	counts := h.classifier.Counts()
	macros := h.classifier.Table().Macros()
	out := make([]Category, 0, len(macros))
	for _, m := range macros {
		out = append(out, Category{Macro: m, Wines: counts[m.ID]})
	}

	respondJSON(w, r, http.StatusOK, success(r, out, start, false))
}

// CategoryWineList handles GET /api/v1/categories/{id}/wines.
func (h *Handler) CategoryWineList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := urlParam(r, "id")
	m, ok := h.classifier.Table().ByID(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, CodeNotFound, "Category not found", nil)
		return
	}

	wines := h.classifier.Classify(m.ID)
	respondJSON(w, r, http.StatusOK, success(r, CategoryWines{Category: m, Wines: wines, Total: len(wines)}, start, false))
}
