// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package main is the entry point for the Vinoteca server.

Vinoteca serves a wine ranking catalog over HTTP: the normalized wine list,
macro categories for navigation, awarded wines, and a deterministic
"related wines" selection for each wine page.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("vinoteca")
	├── CatalogSupervisor ("catalog-layer")
	│   └── Cache janitor (when the recommendation cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. .env file (optional, github.com/joho/godotenv)
 2. Configuration: Koanf v2 with defaults, YAML file, and environment
 3. Logging: zerolog with JSON or console output
 4. Catalog: load and normalize the JSON wine list once
 5. Awards, categories, and the recommendation engine over the catalog
 6. Supervisor tree and HTTP server (chi router)

The catalog is immutable after startup. Restart the process to pick up a new
catalog file.

# Configuration

	CATALOG_PATH=data/wines.json    # JSON array of raw wine records
	HTTP_PORT=8080
	LOG_LEVEL=info                  # trace, debug, info, warn, error
	LOG_FORMAT=json                 # json or console
	RECOMMEND_DEFAULT_COUNT=3
	RECOMMEND_MAX_COUNT=24
	CORS_ORIGINS=*

A YAML file at CONFIG_PATH, ./config.yaml, or /etc/vinoteca/config.yaml sets
the same keys; environment variables win.

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
SHUTDOWN_TIMEOUT and services that miss it are logged by name.
*/
package main
