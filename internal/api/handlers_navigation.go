// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/vinoteca/internal/macrotype"
)

// Navigation is the data of GET /navigation.
type Navigation struct {
	Items  []macrotype.NavItem `json:"items"`
	Awards macrotype.NavItem   `json:"awards"`
}

// NavigationMenu handles GET /api/v1/navigation.
func (h *Handler) NavigationMenu(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	nav := Navigation{
		Items:  h.classifier.Table().Navigation(h.homeURL),
		Awards: macrotype.AwardsNavItem(h.routeBase),
	}
	respondJSON(w, r, http.StatusOK, success(r, nav, start, false))
}
