// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package macrotype

import (
	"sort"
	"strings"
)

// DefaultHomeURL is the external landing page linked by the Home entry.
const DefaultHomeURL = "https://berebene.gamberorosso.it/classifica-vini-2026.html"

// NavItem is one navigation menu entry. External links set Href, internal
// routes set To.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
	To    string `json:"to,omitempty"`
	Order int    `json:"order"`
}

// Navigation returns the Home entry followed by one entry per category,
// sorted by order.
func (t *Table) Navigation(homeURL string) []NavItem {
	items := make([]NavItem, 0, len(t.macros)+1)
	items = append(items, NavItem{ID: "home", Label: "Home", Href: homeURL, Order: 0})
	for _, m := range t.macros {
		items = append(items, NavItem{ID: m.ID, Label: m.Label, To: m.Route, Order: m.Order})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// AwardsNavItem is the entry for the awarded-wines listing.
func AwardsNavItem(routeBase string) NavItem {
	return NavItem{
		ID:    "vini-premiati",
		Label: "Vini premiati",
		To:    strings.TrimRight(routeBase, "/") + "/premi/tutti",
		Order: 1,
	}
}
