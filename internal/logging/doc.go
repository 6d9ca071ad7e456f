// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package logging wraps zerolog as the single structured logger of the
// catalog service.
//
// A usable JSON logger on stderr exists from package init, so packages such
// as catalog and awards may log before main calls Init. Init reconfigures it
// from the logging.* configuration keys:
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("wines", n).Msg("catalog loaded")
//
// Request-scoped logging goes through Ctx, which attaches the request and
// correlation IDs placed in the context by the HTTP middleware:
//
//	logging.Ctx(ctx).Warn().Str("slug", slug).Msg("wine not found")
//
// Component loggers carry a fixed "component" field:
//
//	log := logging.WithComponent("recommend")
//
// NewSlogLogger adapts the global logger to log/slog for the supervisor
// tree, which reports through sutureslog.
package logging
