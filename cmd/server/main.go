// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/vinoteca/internal/api"
	"github.com/tomtom215/vinoteca/internal/awards"
	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/config"
	"github.com/tomtom215/vinoteca/internal/logging"
	"github.com/tomtom215/vinoteca/internal/macrotype"
	"github.com/tomtom215/vinoteca/internal/metrics"
	"github.com/tomtom215/vinoteca/internal/recommend"
	"github.com/tomtom215/vinoteca/internal/supervisor"
	"github.com/tomtom215/vinoteca/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggerConfig())
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Path).
		Msg("Starting Vinoteca with supervisor tree")

	// === CATALOG ===

	cat, err := catalog.LoadFile(cfg.Catalog.Path, cfg.Catalog.Options())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load wine catalog")
	}

	resolver, err := awards.NewResolver(cfg.Awards)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create award resolver")
	}
	index := awards.BuildIndex(cat)
	metrics.SetAwardsIndexSize(index.Len())

	table := macrotype.NewTable(macrotype.DefaultMacros(cfg.Navigation.RouteBase))
	classifier := macrotype.NewClassifier(table, cat)

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	logging.Info().
		Int("wines", cat.Len()).
		Int("awarded", index.Len()).
		Interface("categories", classifier.Counts()).
		Msg("Catalog ready")

	// === HTTP ===

	handler := api.NewHandler(api.Dependencies{
		Catalog:    cat,
		Awards:     index,
		Resolver:   resolver,
		Classifier: classifier,
		Engine:     engine,
		RouteBase:  cfg.Navigation.RouteBase,
		HomeURL:    cfg.Navigation.HomeURL,
		Version:    version,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.NewRouter(handler, api.RouterConfigFrom(cfg)),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Recommend.CacheEnabled {
		tree.AddCatalogService(services.NewCacheJanitorService(engine, services.DefaultJanitorInterval, logging.WithComponent("janitor")))
		logging.Info().Msg("Recommendation cache janitor added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
