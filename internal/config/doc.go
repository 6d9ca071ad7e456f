// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

/*
Package config loads the catalog service configuration with Koanf v2.

Values are layered: built-in defaults, then an optional YAML file found at
CONFIG_PATH or one of DefaultConfigPaths, then environment variables. A
.env file, when present, is read into the environment by cmd/server before
Load runs.

# Example config.yaml

	catalog:
	  path: /data/wines.json
	server:
	  port: 8080
	recommend:
	  default_count: 3
	  cache_ttl: 10m
	awards:
	  collation_locale: it
	security:
	  cors_origins: ["https://berebene.gamberorosso.it"]

# Validation

Validate runs the validate struct tags through internal/validation and then
the cross-field checks that tags cannot express. Load returns the first
failure wrapped with "configuration validation failed".
*/
package config
