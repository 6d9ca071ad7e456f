// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package awards resolves the prize attached to each wine and orders the
// awarded wines for the prize listing.
//
// Award names arrive as "name;...;year" strings with HTML entities. Only the
// first award of a wine is considered; wines without one are simply absent
// from the Index.
package awards

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tomtom215/vinoteca/internal/catalog"
	"github.com/tomtom215/vinoteca/internal/logging"
)

// Default label prefixes and collation locale.
const (
	DefaultNationalPrefix  = "Miglior"
	DefaultRegionalPrefix  = "Premio Qualità/Prezzo Regionale"
	DefaultCollationLocale = "it"
)

var yearToken = regexp.MustCompile(`^\d{4}$`)

// Parsed is a decoded award string.
type Parsed struct {
	Name  string
	Year  string
	Label string
}

// ParseAward decodes HTML entities in raw, splits it on ';', and builds the
// display label from the first segment plus the third segment when that is a
// four-digit year.
//
//	ParseAward("Gran Premio;ignored;2025").Label // "Gran Premio 2025"
//	ParseAward("Solo Nome").Label                // "Solo Nome"
func ParseAward(raw string) Parsed {
	safe := strings.TrimSpace(html.UnescapeString(raw))
	if safe == "" {
		return Parsed{}
	}

	parts := strings.Split(safe, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var p Parsed
	p.Name = parts[0]
	if len(parts) > 2 && yearToken.MatchString(parts[2]) {
		p.Year = parts[2]
	}
	p.Label = strings.TrimSpace(strings.Join([]string{p.Name, p.Year}, " "))
	return p
}

// Info is the award shown for a wine.
type Info struct {
	Label   string `json:"label"`
	RawName string `json:"raw_name"`
}

// Index maps normalized wine slugs to their award. It is immutable.
type Index struct {
	bySlug map[string]Info
	slugs  []string
}

// BuildIndex collects the first award of every wine with a non-blank slug.
// When two wines share a slug the later one wins.
func BuildIndex(cat *catalog.Catalog) *Index {
	ix := &Index{bySlug: make(map[string]Info)}
	for _, w := range cat.All() {
		slug := normalizeSlug(w.Slug)
		if slug == "" || w.FirstAward == nil {
			continue
		}
		rawName := strings.TrimSpace(*w.FirstAward)
		if rawName == "" {
			continue
		}
		label := ParseAward(rawName).Label
		if label == "" {
			label = rawName
		}
		if _, exists := ix.bySlug[slug]; !exists {
			ix.slugs = append(ix.slugs, slug)
		}
		ix.bySlug[slug] = Info{Label: label, RawName: rawName}
	}

	logging.Debug().
		Str("component", "awards").
		Int("awarded", len(ix.slugs)).
		Msg("Award index built")
	return ix
}

// Lookup returns the award for slug, matched case-insensitively.
func (ix *Index) Lookup(slug string) (Info, bool) {
	normalized := normalizeSlug(slug)
	if normalized == "" {
		return Info{}, false
	}
	info, ok := ix.bySlug[normalized]
	return info, ok
}

// Len returns the number of awarded slugs.
func (ix *Index) Len() int {
	return len(ix.slugs)
}

// Slugs returns the awarded slugs in catalog order.
func (ix *Index) Slugs() []string {
	return append([]string(nil), ix.slugs...)
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Config holds the label prefixes and the locale used to order names.
type Config struct {
	NationalPrefix  string `koanf:"national_prefix" validate:"required"`
	RegionalPrefix  string `koanf:"regional_prefix" validate:"required"`
	CollationLocale string `koanf:"collation_locale" validate:"required"`
}

// DefaultConfig returns the prefixes seen in the current data source.
func DefaultConfig() Config {
	return Config{
		NationalPrefix:  DefaultNationalPrefix,
		RegionalPrefix:  DefaultRegionalPrefix,
		CollationLocale: DefaultCollationLocale,
	}
}

// Resolver classifies award labels and orders awarded wines.
type Resolver struct {
	cfg  Config
	lang language.Tag
}

// NewResolver validates the collation locale and returns a Resolver.
func NewResolver(cfg Config) (*Resolver, error) {
	lang, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid collation locale %q: %w", cfg.CollationLocale, err)
	}
	return &Resolver{cfg: cfg, lang: lang}, nil
}

// IsNational reports whether label starts with the national prize prefix.
func (r *Resolver) IsNational(label string) bool {
	return strings.HasPrefix(strings.TrimSpace(label), r.cfg.NationalPrefix)
}

// IsRegional reports whether label starts with the regional prize prefix.
func (r *Resolver) IsRegional(label string) bool {
	return strings.HasPrefix(strings.TrimSpace(label), r.cfg.RegionalPrefix)
}

// AwardedWines returns the catalog wines present in ix, by score descending
// and then by name in the resolver's locale. Unknown scores order as 0.
func (r *Resolver) AwardedWines(cat *catalog.Catalog, ix *Index) []catalog.Wine {
	wines := cat.Filter(func(w catalog.Wine) bool {
		_, ok := ix.Lookup(w.Slug)
		return ok
	})

	// Collators keep scratch buffers and cannot be shared across calls.
	col := collate.New(r.lang)
	sort.SliceStable(wines, func(i, j int) bool {
		si, sj := wines[i].ScoreOrZero(), wines[j].ScoreOrZero()
		if si != sj {
			return si > sj
		}
		return col.CompareString(wines[i].Name, wines[j].Name) < 0
	})
	return wines
}

// Entry is one row of the awarded-wines listing.
type Entry struct {
	Wine     catalog.Wine `json:"wine"`
	Award    Info         `json:"award"`
	National bool         `json:"national"`
	Regional bool         `json:"regional"`
}

// Listing returns AwardedWines joined with each wine's award.
func (r *Resolver) Listing(cat *catalog.Catalog, ix *Index) []Entry {
	wines := r.AwardedWines(cat, ix)
	entries := make([]Entry, 0, len(wines))
	for _, w := range wines {
		info, _ := ix.Lookup(w.Slug)
		entries = append(entries, Entry{
			Wine:     w,
			Award:    info,
			National: r.IsNational(info.Label),
			Regional: r.IsRegional(info.Label),
		})
	}
	return entries
}
