// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package catalog turns raw wine records into the canonical Wine entity and
// holds the resulting read-only catalog.
//
// # Normalization
//
// Raw records come from a bulk JSON export whose shape drifts between
// releases: numbers arrive as strings, taxonomies may be empty lists, and
// several fields exist under more than one key. Every raw field is decoded
// into an explicit Optional so that "absent", "null", and "present but
// blank" are distinguishable, and every canonical field is resolved by an
// ordered list of extractors where the first non-blank candidate wins.
//
// Normalize is total. Malformed input degrades to nil fields or documented
// defaults and never produces an error.
//
// # Catalog
//
// A Catalog is built once at startup with Load or New and then shared by
// reference. It is never mutated, so concurrent readers need no locking.
//
//	cat, err := catalog.LoadFile("data/wines.json")
//	if err != nil {
//	    return err
//	}
//	wine, ok := cat.BySlug("vino-elite")
package catalog
