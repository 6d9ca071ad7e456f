// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/vinoteca/internal/recommend"
	"github.com/tomtom215/vinoteca/internal/validation"
)

// WinesRequest is the query of GET /wines.
type WinesRequest struct {
	Query string `query:"q" validate:"max=200"`
	Type  string `query:"type" validate:"max=100"`
}

func parseWinesRequest(r *http.Request) (WinesRequest, *validation.RequestValidationError) {
	q := r.URL.Query()
	req := WinesRequest{
		Query: strings.TrimSpace(q.Get("q")),
		Type:  strings.TrimSpace(q.Get("type")),
	}
	return req, validation.ValidateStruct(&req)
}

// RelatedRequest is the query of GET /wines/{slug}/related.
type RelatedRequest struct {
	// Count is zero when absent.
	Count int

	// Seed is Present when the seed parameter was sent, even empty.
	Seed        string
	SeedPresent bool

	// Region is non-nil when the region parameter was sent.
	Region *string
}

// parseRelatedRequest reads count, seed, and region. count must be a whole
// number between 1 and maxCount.
func parseRelatedRequest(r *http.Request, maxCount int) (RelatedRequest, *validation.RequestValidationError) {
	q := r.URL.Query()
	var req RelatedRequest

	if raw := strings.TrimSpace(q.Get("count")); raw != "" {
		if verr := validation.ValidateVar("count", raw, "number"); verr != nil {
			return req, verr
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = maxCount + 1
		}
		if verr := validation.ValidateVar("count", n, fmt.Sprintf("min=1,max=%d", maxCount)); verr != nil {
			return req, verr
		}
		req.Count = n
	}

	if q.Has("seed") {
		req.SeedPresent = true
		req.Seed = q.Get("seed")
		if verr := validation.ValidateVar("seed", req.Seed, "max=200"); verr != nil {
			return req, verr
		}
	}

	if q.Has("region") {
		region := strings.TrimSpace(q.Get("region"))
		if verr := validation.ValidateVar("region", region, "max=100"); verr != nil {
			return req, verr
		}
		req.Region = &region
	}
	return req, nil
}

// seedFor returns the shuffle seed: the explicit parameter when sent, else
// the wine's slug.
func (req RelatedRequest) seedFor(slug string) recommend.Seed {
	if req.SeedPresent {
		return recommend.ParseSeed(req.Seed)
	}
	return recommend.TextSeed(slug)
}
