// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package recommend selects related wines for a wine page.
//
// # Tiers
//
// Candidates are drawn from the catalog in strict order, and a tier is only
// consulted while the requested count is still unmet:
//
//   - Region: same type and same primary region
//   - Secondary region: same type, region in the wine's locale region list
//     or its own region (the primary excluded)
//   - Type: same type, any region
//   - Any: every remaining wine
//
// Each tier's candidates are shuffled before being appended, and a wine is
// never added twice.
//
// # Determinism
//
// Shuffles use a linear congruential generator (state*9301+49297 mod 233280)
// seeded from a number or a string. Every tier starts a fresh generator from
// the same seed, so the same wine, pool, count, and seed always produce the
// same list. That is what lets server-rendered pages cache their related
// wines. Without a seed the shuffle falls back to math/rand/v2 and results are
// not reproducible.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, logger)
//	if err != nil {
//	    return err
//	}
//	resp := engine.Recommend(ctx, recommend.Request{
//	    Current: wine,
//	    Count:   3,
//	    Seed:    recommend.TextSeed(wine.Slug),
//	})
//
// # Thread Safety
//
// Related and Shuffle only read their inputs. The Engine is safe for
// concurrent use; its result cache is internally locked.
package recommend
