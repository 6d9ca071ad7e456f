// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package supervisor runs the long-lived services of the catalog server under
a suture v4 supervisor tree.

	RootSupervisor ("vinoteca")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CacheJanitorService (drops expired related-wine cache entries)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing janitor is restarted without touching the HTTP server, and the
reverse. Supervisor events are written through sutureslog to the zerolog
backed slog logger from internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddCatalogService(services.NewCacheJanitorService(engine, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

Serve blocks until ctx is canceled, typically by SIGINT or SIGTERM.
*/
package supervisor
