// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/vinoteca/internal/logging"
	"github.com/tomtom215/vinoteca/internal/metrics"
)

// Catalog is the immutable, normalized wine list. Methods returning slices
// return fresh slices; the Wine values inside share their nested slices and
// maps with the catalog and must be treated as read-only.
type Catalog struct {
	wines  []Wine
	bySlug map[string]int
}

// New builds a catalog from already normalized wines, preserving order.
func New(wines []Wine) *Catalog {
	c := &Catalog{
		wines:  slices.Clone(wines),
		bySlug: make(map[string]int, len(wines)),
	}
	for i, w := range c.wines {
		key := strings.ToLower(strings.TrimSpace(w.Slug))
		if _, exists := c.bySlug[key]; !exists {
			c.bySlug[key] = i
		}
	}
	return c
}

// Load decodes a JSON array of raw records from r and normalizes each one
// exactly once. Array entries that are not objects are skipped.
func Load(r io.Reader, opts Options) (*Catalog, error) {
	if r == nil {
		return nil, ErrEmptySource
	}
	start := time.Now()

	var records []Optional[RawWine]
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		metrics.RecordCatalogLoad(0, time.Since(start), false)
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	n := NewNormalizer(opts)
	wines := make([]Wine, 0, len(records))
	skipped := 0
	for _, rec := range records {
		raw, ok := rec.Get()
		if !ok {
			skipped++
			continue
		}
		wines = append(wines, n.Normalize(raw))
	}

	c := New(wines)
	metrics.RecordCatalogLoad(c.Len(), time.Since(start), true)
	logging.Info().
		Str("component", "catalog").
		Int("wines", c.Len()).
		Int("skipped", skipped).
		Int("duplicate_slugs", c.Len()-len(c.bySlug)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")
	return c, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts Options) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Len returns the number of wines.
func (c *Catalog) Len() int {
	return len(c.wines)
}

// All returns every wine in catalog order.
func (c *Catalog) All() []Wine {
	return slices.Clone(c.wines)
}

// Filter returns the wines for which keep reports true, in catalog order.
func (c *Catalog) Filter(keep func(Wine) bool) []Wine {
	out := make([]Wine, 0)
	for _, w := range c.wines {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// BySlug resolves a route parameter to a wine. See NormalizeSlugParam.
func (c *Catalog) BySlug(param string) (Wine, bool) {
	key := NormalizeSlugParam(param)
	if key == "" {
		return Wine{}, false
	}
	i, ok := c.bySlug[key]
	if !ok {
		return Wine{}, false
	}
	return c.wines[i], true
}

// Pool returns every wine except the one whose slug equals slug.
func (c *Catalog) Pool(slug string) []Wine {
	return c.Filter(func(w Wine) bool { return w.Slug != slug })
}

// Search returns wines whose name, region, or type contains query,
// case-insensitively. A blank query returns the whole catalog.
func (c *Catalog) Search(query string) []Wine {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return c.All()
	}
	return c.Filter(func(w Wine) bool {
		for _, field := range []string{w.Name, w.RegionName(), w.TypeName()} {
			if field != "" && strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	})
}

// ByType returns wines whose type has the same slug as typeParam, so
// "Bianco Macerato/Orange Wine" and "bianco-macerato-orange-wine" are equal.
func (c *Catalog) ByType(typeParam string) []Wine {
	return c.Filter(TypeMatcher(typeParam))
}

// TypeMatcher returns the ByType predicate for typeParam. Wines without a
// type never match.
func TypeMatcher(typeParam string) func(Wine) bool {
	want := Slugify(typeParam)
	return func(w Wine) bool {
		return w.Type != nil && Slugify(*w.Type) == want
	}
}
