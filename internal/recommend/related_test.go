// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tomtom215/vinoteca/internal/catalog"
)

func strp(s string) *string { return &s }

func mkWine(slug, typ, region string) catalog.Wine {
	w := catalog.Wine{Slug: slug, Name: strings.ToUpper(slug)}
	if typ != "" {
		w.Type = strp(typ)
		w.Categories = []string{typ}
	}
	if region != "" {
		w.Region = strp(region)
	}
	return w
}

func currentWine() catalog.Wine {
	w := mkWine("cur", "Rosso", "Piemonte")
	w.RelatedLocale = catalog.Locale{
		"title": "Cantina",
		"regioni": []any{
			map[string]any{"name": "Toscana"},
			map[string]any{"name": " piemonte "},
			map[string]any{"name": "Veneto"},
			map[string]any{"name": "toscana"},
		},
	}
	return w
}

func testPool() []catalog.Wine {
	return []catalog.Wine{
		mkWine("a", "rosso", "Piemonte"),
		mkWine("b", " ROSSO ", "piemonte"),
		mkWine("c", "rosso", "Toscana"),
		mkWine("d", "rosso", "Veneto"),
		mkWine("e", "rosso", "Sicilia"),
		mkWine("f", "bianco", "Piemonte"),
		mkWine("g", "", "Piemonte"),
	}
}

func slugs(wines []catalog.Wine) string {
	out := make([]string, len(wines))
	for i, w := range wines {
		out[i] = w.Slug
	}
	return strings.Join(out, ",")
}

func TestRelated_Golden(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		count   int
		seed    Seed
		want    string
	}{
		{"quota met in region tiers", "Piemonte", 3, TextSeed("cur"), "b,a,d"},
		{"every tier consulted", "Piemonte", 10, TextSeed("cur"), "b,a,d,c,e,g,f"},
		{"numeric seed", "Piemonte", 10, NumberSeed(42), "a,b,c,d,e,f,g"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Related(currentWine(), tt.primary, testPool(), tt.count, tt.seed)
			if slugs(got) != tt.want {
				t.Errorf("Related() = %s, want %s", slugs(got), tt.want)
			}
		})
	}
}

func TestRelated_Deterministic(t *testing.T) {
	for _, seed := range []Seed{TextSeed("cur"), NumberSeed(7), TextSeed("")} {
		first := slugs(Related(currentWine(), "Piemonte", testPool(), 5, seed))
		for i := 0; i < 5; i++ {
			if again := slugs(Related(currentWine(), "Piemonte", testPool(), 5, seed)); again != first {
				t.Errorf("seed %s: run %d = %s, first = %s", seed, i, again, first)
			}
		}
	}
}

func TestRelated_SeedsChangeOrder(t *testing.T) {
	var pool []catalog.Wine
	for i := 0; i < 20; i++ {
		pool = append(pool, mkWine(fmt.Sprintf("w%02d", i), "rosso", "Piemonte"))
	}
	a := slugs(Related(currentWine(), "Piemonte", pool, 20, NumberSeed(1)))
	b := slugs(Related(currentWine(), "Piemonte", pool, 20, NumberSeed(2)))
	if a == b {
		t.Errorf("different seeds produced identical order %s", a)
	}
}

func TestRelated_RegionTierOnlyWhenEnough(t *testing.T) {
	pool := testPool()
	for i := 0; i < 5; i++ {
		pool = append(pool, mkWine(fmt.Sprintf("p%d", i), "rosso", "PIEMONTE"))
	}
	for _, seed := range []Seed{NumberSeed(1), NumberSeed(99), TextSeed("x"), NoSeed()} {
		got := Related(currentWine(), "Piemonte", pool, 4, seed)
		if len(got) != 4 {
			t.Fatalf("got %d wines, want 4", len(got))
		}
		for _, w := range got {
			if normalizeText(w.TypeName()) != "rosso" {
				t.Errorf("seed %s: %s has type %q", seed, w.Slug, w.TypeName())
			}
			if normalizeText(w.RegionName()) != "piemonte" {
				t.Errorf("seed %s: %s from region %q, expected only primary-region wines", seed, w.Slug, w.RegionName())
			}
		}
	}
}

func TestRelated_TierSelection(t *testing.T) {
	_, tiers := selectRelated(currentWine(), "Piemonte", testPool(), 10, TextSeed("cur"))
	want := []Tier{TierRegion, TierRegion, TierSecondaryRegion, TierSecondaryRegion, TierType, TierAny, TierAny}
	if fmt.Sprint(tiers) != fmt.Sprint(want) {
		t.Errorf("tiers = %v, want %v", tiers, want)
	}

	counts := tierCounts(tiers)
	if counts["region"] != 2 || counts["secondary_region"] != 2 || counts["type"] != 1 || counts["any"] != 2 {
		t.Errorf("tierCounts = %v", counts)
	}
}

func TestRelated_EdgeCases(t *testing.T) {
	t.Run("non-positive count", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			got := Related(currentWine(), "Piemonte", testPool(), n, NumberSeed(1))
			if got == nil || len(got) != 0 {
				t.Errorf("count %d: got %v, want empty slice", n, got)
			}
		}
	})

	t.Run("fewer candidates than requested", func(t *testing.T) {
		got := Related(currentWine(), "Piemonte", testPool()[:2], 10, NumberSeed(1))
		if len(got) != 2 {
			t.Errorf("got %d wines, want all 2", len(got))
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		if got := Related(currentWine(), "Piemonte", nil, 3, NoSeed()); len(got) != 0 {
			t.Errorf("got %v", slugs(got))
		}
	})

	t.Run("untyped current falls through to any", func(t *testing.T) {
		cur := mkWine("cur", "", "Piemonte")
		got := Related(cur, "Piemonte", testPool(), 3, NumberSeed(5))
		if len(got) != 3 {
			t.Errorf("got %d wines, want 3 from the any tier", len(got))
		}
	})

	t.Run("blank primary region skips first tier", func(t *testing.T) {
		_, tiers := selectRelated(currentWine(), "  ", testPool(), 10, NumberSeed(3))
		for _, tier := range tiers {
			if tier == TierRegion {
				t.Fatal("region tier used with blank primary region")
			}
		}
		// Piemonte wines now arrive through the secondary tier via the wine's own region.
		if tiers[0] != TierSecondaryRegion {
			t.Errorf("first tier = %v, want secondary_region", tiers[0])
		}
	})

	t.Run("current and duplicates never returned", func(t *testing.T) {
		pool := append(testPool(), mkWine("cur", "rosso", "Piemonte"), mkWine("a", "rosso", "Piemonte"))
		got := Related(currentWine(), "Piemonte", pool, 20, NumberSeed(11))
		seen := map[string]bool{}
		for _, w := range got {
			if w.Slug == "cur" {
				t.Error("current wine returned")
			}
			if seen[w.Slug] {
				t.Errorf("duplicate %s", w.Slug)
			}
			seen[w.Slug] = true
		}
		if len(got) != 7 {
			t.Errorf("got %d distinct wines, want 7", len(got))
		}
	})
}

func TestSecondaryRegions(t *testing.T) {
	got := secondaryRegions(currentWine(), "piemonte")
	if strings.Join(got, ",") != "toscana,veneto" {
		t.Errorf("secondaryRegions = %v", got)
	}

	w := mkWine("x", "rosso", "Umbria")
	if got := secondaryRegions(w, "piemonte"); strings.Join(got, ",") != "umbria" {
		t.Errorf("own region should be appended, got %v", got)
	}
}

func TestRelated_DecodesWineryName(t *testing.T) {
	encoded := mkWine("a", "rosso", "Piemonte")
	encoded.WineryName = strp("  Cantina d&#39;Alba &amp; Figli ")
	blank := mkWine("b", "rosso", "Piemonte")
	blank.WineryName = strp("&#32;")
	pool := []catalog.Wine{encoded, blank}

	got := Related(currentWine(), "Piemonte", pool, 2, NumberSeed(42))
	byslug := map[string]catalog.Wine{}
	for _, w := range got {
		byslug[w.Slug] = w
	}

	if name := *byslug["a"].WineryName; name != "Cantina d'Alba & Figli" {
		t.Errorf("decoded winery = %q", name)
	}
	if name := *byslug["b"].WineryName; name != "&#32;" {
		t.Errorf("blank decode should keep original, got %q", name)
	}
	if *pool[0].WineryName != "  Cantina d&#39;Alba &amp; Figli " {
		t.Error("input wine was modified")
	}
}
