// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package cache provides a thread-safe in-memory LRU cache with TTL support.

The recommendation engine keeps seeded results here so that repeated
requests for the same page skip tier selection entirely.

# Overview

  - O(1) Get, Add, and Remove through a map plus a doubly-linked list
  - O(1) eviction of the least recently used entry at capacity
  - Lazy TTL expiration on Get, plus CleanupExpired for periodic sweeps
  - Generic over the stored value type

# Usage

	c := cache.NewLRU[[]catalog.Wine](1000, 10*time.Minute)
	c.Add("barolo|3|barolo", wines)
	if wines, ok := c.Get("barolo|3|barolo"); ok {
	    // serve cached result
	}
*/
package cache
