// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package services adapts catalog server components to suture.Service.

  - HTTPServerService wraps *http.Server, translating ListenAndServe and
    Shutdown into a context-aware Serve with a bounded graceful shutdown.
  - CacheJanitorService periodically drops expired entries from the
    related-wine cache of the recommendation engine.

Both return ctx.Err() on cancellation so the supervisor treats the stop as
intentional, and any other error as a failure to restart from.
*/
package services
