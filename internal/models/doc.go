// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package models holds the wire types shared by the HTTP layer: the response
// envelope, its metadata, and the error body. Domain types live with their
// packages (catalog.Wine, macrotype.Macro, awards.Info).
package models
