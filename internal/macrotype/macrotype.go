// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

// Package macrotype groups fine-grained wine types into the macro categories
// used for navigation and filtering.
package macrotype

import (
	"slices"
	"strings"

	"github.com/tomtom215/vinoteca/internal/catalog"
)

// Macro category identifiers.
const (
	Bianchi   = "bianchi"
	Rossi     = "rossi"
	Bollicine = "bollicine"
	Rosati    = "rosati"
	ViniDolci = "vini-dolci"
	Tutti     = "tutti"
)

// DefaultRouteBase is the path prefix of every category route.
const DefaultRouteBase = "/classifica-vini-2026"

var (
	whiteTypes   = []string{"bianco", "bianco macerato/orange wine", "bianco liquoroso"}
	redTypes     = []string{"rosso"}
	bubblesTypes = []string{"spumante bianco", "spumante rosato", "spumante rosso", "spumante dolce bianco"}
	roseTypes    = []string{"rose"}
	sweetTypes   = []string{"dolce bianco", "dolce rosso"}
)

// Macro is one macro category.
type Macro struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Route string   `json:"route"`
	Order int      `json:"order"`
	Types []string `json:"types"`

	// Everything marks the "no restriction" view: it lists every type for
	// display but Classify returns the whole catalog for it.
	Everything bool `json:"everything"`

	typeSet map[string]struct{}
}

// Contains reports whether wineType belongs to the macro, ignoring case and
// surrounding whitespace.
func (m Macro) Contains(wineType string) bool {
	_, ok := m.typeSet[normalizeType(wineType)]
	return ok
}

// DefaultMacros returns the category table in declared order, with routes
// under routeBase.
func DefaultMacros(routeBase string) []Macro {
	base := strings.TrimRight(routeBase, "/") + "/vini/"
	all := slices.Concat(whiteTypes, redTypes, bubblesTypes, roseTypes, sweetTypes)
	return []Macro{
		{ID: Bianchi, Label: "Bianchi", Route: base + Bianchi, Order: 1, Types: whiteTypes},
		{ID: Rossi, Label: "Rossi", Route: base + Rossi, Order: 2, Types: redTypes},
		{ID: Bollicine, Label: "Bollicine", Route: base + Bollicine, Order: 3, Types: bubblesTypes},
		{ID: Rosati, Label: "Rosati", Route: base + Rosati, Order: 4, Types: roseTypes},
		{ID: ViniDolci, Label: "Dolci", Route: base + ViniDolci, Order: 5, Types: sweetTypes},
		{ID: Tutti, Label: "Tutti", Route: base + Tutti, Order: 6, Types: all, Everything: true},
	}
}

// Table is an immutable, ordered set of macro categories.
type Table struct {
	macros []Macro
	byID   map[string]int
}

// NewTable indexes macros. Order is kept; a repeated id keeps its first entry.
func NewTable(macros []Macro) *Table {
	t := &Table{
		macros: make([]Macro, 0, len(macros)),
		byID:   make(map[string]int, len(macros)),
	}
	for _, m := range macros {
		id := normalizeType(m.ID)
		if _, dup := t.byID[id]; dup {
			continue
		}
		m.ID = id
		m.Types = slices.Clone(m.Types)
		m.typeSet = make(map[string]struct{}, len(m.Types))
		for _, typ := range m.Types {
			m.typeSet[normalizeType(typ)] = struct{}{}
		}
		t.byID[id] = len(t.macros)
		t.macros = append(t.macros, m)
	}
	return t
}

// Default returns a table built from DefaultMacros(DefaultRouteBase).
func Default() *Table {
	return NewTable(DefaultMacros(DefaultRouteBase))
}

// Macros returns the categories in declared order.
func (t *Table) Macros() []Macro {
	return slices.Clone(t.macros)
}

// ByID looks up a category by id, ignoring case and surrounding whitespace.
func (t *Table) ByID(id string) (Macro, bool) {
	i, ok := t.byID[normalizeType(id)]
	if !ok {
		return Macro{}, false
	}
	return t.macros[i], true
}

// IsMacroID reports whether id names a category.
func (t *Table) IsMacroID(id string) bool {
	_, ok := t.ByID(id)
	return ok
}

// FindByType returns the first category, in declared order, whose type set
// contains wineType. The everything view never matches, so a type outside
// every concrete category has no macro.
func (t *Table) FindByType(wineType string) (Macro, bool) {
	if normalizeType(wineType) == "" {
		return Macro{}, false
	}
	for _, m := range t.macros {
		if !m.Everything && m.Contains(wineType) {
			return m, true
		}
	}
	return Macro{}, false
}

func normalizeType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Classifier filters a catalog by macro category.
type Classifier struct {
	table   *Table
	catalog *catalog.Catalog
}

// NewClassifier returns a classifier over cat.
func NewClassifier(table *Table, cat *catalog.Catalog) *Classifier {
	return &Classifier{table: table, catalog: cat}
}

// Table returns the category table the classifier uses.
func (c *Classifier) Table() *Table {
	return c.table
}

// Classify returns the catalog wines in the category id, in catalog order.
// Unknown ids yield an empty list; the everything view yields the catalog.
func (c *Classifier) Classify(id string) []catalog.Wine {
	m, ok := c.table.ByID(id)
	if !ok {
		return []catalog.Wine{}
	}
	if m.Everything {
		return c.catalog.All()
	}
	return c.catalog.Filter(func(w catalog.Wine) bool {
		return w.Type != nil && m.Contains(*w.Type)
	})
}

// Counts returns the number of wines in each category.
func (c *Classifier) Counts() map[string]int {
	counts := make(map[string]int, len(c.table.macros))
	for _, m := range c.table.macros {
		counts[m.ID] = len(c.Classify(m.ID))
	}
	return counts
}
