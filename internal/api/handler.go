// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/vinoteca/internal/awards"
	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/macrotype"
	"github.com/tomtom215/vinoteca/internal/recommend"
)

// Dependencies are the read-only services the handlers serve from.
type Dependencies struct {
	Catalog    *catalog.Catalog
	Awards     *awards.Index
	Resolver   *awards.Resolver
	Classifier *macrotype.Classifier
	Engine     *recommend.Engine

	RouteBase string
	HomeURL   string
	Version   string
}

// Handler serves the API endpoints.
type Handler struct {
	catalog    *catalog.Catalog
	awards     *awards.Index
	resolver   *awards.Resolver
	classifier *macrotype.Classifier
	engine     *recommend.Engine

	routeBase string
	homeURL   string
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. Empty navigation settings fall back to the
// package defaults.
func NewHandler(deps Dependencies) *Handler {
	h := &Handler{
		catalog:    deps.Catalog,
		awards:     deps.Awards,
		resolver:   deps.Resolver,
		classifier: deps.Classifier,
		engine:     deps.Engine,
		routeBase:  deps.RouteBase,
		homeURL:    deps.HomeURL,
		version:    deps.Version,
		startTime:  time.Now(),
	}
	if h.routeBase == "" {
		h.routeBase = macrotype.DefaultRouteBase
	}
	if h.homeURL == "" {
		h.homeURL = macrotype.DefaultHomeURL
	}
	if h.version == "" {
		h.version = "dev"
	}
	return h
}

// urlParam returns a decoded route parameter. chi matches on the raw path,
// so percent-encoded slugs arrive still encoded.
func urlParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
