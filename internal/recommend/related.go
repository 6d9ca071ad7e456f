// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/tomtom215/vinoteca/internal/catalog"
)

// Tier is one fallback stage of the candidate search.
type Tier int

const (
	// TierRegion matches type and primary region.
	TierRegion Tier = iota + 1
	// TierSecondaryRegion matches type and one of the secondary regions.
	TierSecondaryRegion
	// TierType matches type only.
	TierType
	// TierAny takes whatever is left.
	TierAny
)

// Tiers lists every tier in evaluation order.
var Tiers = []Tier{TierRegion, TierSecondaryRegion, TierType, TierAny}

// String returns the tier name used in logs and metrics.
func (t Tier) String() string {
	switch t {
	case TierRegion:
		return "region"
	case TierSecondaryRegion:
		return "secondary_region"
	case TierType:
		return "type"
	case TierAny:
		return "any"
	default:
		return "unknown"
	}
}

// Related picks up to count wines related to current from pool. primaryRegion
// may be blank to skip the region tier. It never returns current (matched by
// slug), never repeats a wine, and returns an empty slice when count <= 0.
func Related(current catalog.Wine, primaryRegion string, pool []catalog.Wine, count int, seed Seed) []catalog.Wine {
	wines, _ := selectRelated(current, primaryRegion, pool, count, seed)
	return wines
}

// selector accumulates candidates across tiers.
type selector struct {
	want  int
	seen  map[string]struct{}
	wines []catalog.Wine
	tiers []Tier
}

func (s *selector) needsMore() bool {
	return len(s.wines) < s.want
}

func (s *selector) add(tier Tier, candidates []catalog.Wine) {
	for _, w := range candidates {
		if _, dup := s.seen[w.Slug]; dup {
			continue
		}
		s.seen[w.Slug] = struct{}{}
		s.wines = append(s.wines, w)
		s.tiers = append(s.tiers, tier)
	}
}

func (s *selector) unseen(wines []catalog.Wine) []catalog.Wine {
	return filter(wines, func(w catalog.Wine) bool {
		_, dup := s.seen[w.Slug]
		return !dup
	})
}

// selectRelated returns the chosen wines and, in parallel, the tier each came from.
func selectRelated(current catalog.Wine, primaryRegion string, pool []catalog.Wine, count int, seed Seed) ([]catalog.Wine, []Tier) {
	if count <= 0 {
		return []catalog.Wine{}, nil
	}

	s := &selector{
		want: count,
		seen: map[string]struct{}{current.Slug: {}},
	}

	var typeMatches []catalog.Wine
	if baseType := normalizeText(current.TypeName()); baseType != "" {
		typeMatches = filter(pool, func(w catalog.Wine) bool {
			return normalizeText(w.TypeName()) == baseType
		})
	}

	primary := normalizeText(primaryRegion)
	if primary != "" {
		sameRegion := filter(typeMatches, func(w catalog.Wine) bool {
			return normalizeText(w.RegionName()) == primary
		})
		s.add(TierRegion, Shuffle(sameRegion, seed.Source()))
	}

	if s.needsMore() {
		if regions := secondaryRegions(current, primary); len(regions) > 0 {
			var matches []catalog.Wine
			for _, region := range regions {
				matches = append(matches, filter(typeMatches, func(w catalog.Wine) bool {
					return normalizeText(w.RegionName()) == region
				})...)
			}
			s.add(TierSecondaryRegion, Shuffle(matches, seed.Source()))
		}
	}

	if s.needsMore() {
		s.add(TierType, Shuffle(s.unseen(typeMatches), seed.Source()))
	}

	if s.needsMore() {
		s.add(TierAny, Shuffle(s.unseen(pool), seed.Source()))
	}

	wines, tiers := s.wines, s.tiers
	if len(wines) > count {
		wines, tiers = wines[:count], tiers[:count]
	}

	out := make([]catalog.Wine, len(wines))
	for i, w := range wines {
		out[i] = withDecodedWinery(w)
	}
	return out, tiers
}

// secondaryRegions lists the normalized locale regions of current followed by
// its own region, without the primary region and without repeats.
func secondaryRegions(current catalog.Wine, primary string) []string {
	var regions []string
	appendRegion := func(name string) {
		region := normalizeText(name)
		if region == "" || region == primary || slices.Contains(regions, region) {
			return
		}
		regions = append(regions, region)
	}

	for _, name := range current.RelatedLocale.Regions() {
		appendRegion(name)
	}
	appendRegion(current.RegionName())
	return regions
}

// withDecodedWinery decodes HTML entities in the winery name. A result that
// is blank after trimming leaves the original value in place.
func withDecodedWinery(w catalog.Wine) catalog.Wine {
	if w.WineryName == nil {
		return w
	}
	decoded := strings.TrimSpace(html.UnescapeString(*w.WineryName))
	if decoded != "" {
		w.WineryName = &decoded
	}
	return w
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func filter(wines []catalog.Wine, keep func(catalog.Wine) bool) []catalog.Wine {
	out := make([]catalog.Wine, 0, len(wines))
	for _, w := range wines {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}
