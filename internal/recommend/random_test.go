// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestLCG_Sequence(t *testing.T) {
	tests := []struct {
		state float64
		want  []float64
	}{
		{1, []float64{0.2511917009602195, 0.5453317901234568, 0.34230109739368997}},
		{42, []float64{0.8858839163237311, 0.8176268861454047, 0.9589891975308642}},
		{0, []float64{0.2511917009602195}},
		{-5, []float64{0.011968449931412894, 0.5298739711934156}},
	}
	for _, tt := range tests {
		g := NewLCG(tt.state)
		for i, want := range tt.want {
			if got := g.Next(); math.Abs(got-want) > 1e-15 {
				t.Errorf("NewLCG(%v) draw %d = %v, want %v", tt.state, i, got, want)
			}
		}
	}
}

func TestLCG_LargeStateMatchesReduced(t *testing.T) {
	big := NewLCG(233280*1000 + 42)
	small := NewLCG(42)
	for i := 0; i < 10; i++ {
		if a, b := big.Next(), small.Next(); a != b {
			t.Fatalf("draw %d: %v != %v", i, a, b)
		}
	}
}

func TestLCG_Range(t *testing.T) {
	for _, state := range []float64{1, 7, -123456, 0.5, 1e12} {
		g := NewLCG(state)
		for i := 0; i < 1000; i++ {
			if v := g.Next(); v < 0 || v >= 1 {
				t.Fatalf("state %v draw %d = %v, outside [0,1)", state, i, v)
			}
		}
	}
}

func TestSeed_State(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
		want float64
	}{
		{"number used directly", NumberSeed(42), 42},
		{"text weighted by position", TextSeed("abc"), 97*1 + 98*2 + 99*3},
		{"slug", TextSeed("barolo"), 2284},
		{"empty text forced to 1", TextSeed(""), 1},
		{"zero forced to 1", NumberSeed(0), 1},
		{"NaN uses its text form", NumberSeed(math.NaN()), textState("NaN")},
		{"infinity uses its text form", NumberSeed(math.Inf(-1)), textState("-Infinity")},
		{"astral rune uses leading UTF-16 unit", TextSeed("\U0001F377"), 0xD83C},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seed.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in       string
		wantKind SeedKind
		wantStr  string
	}{
		{"", SeedNone, "none"},
		{"42", SeedNumber, "n:42"},
		{"-1.5", SeedNumber, "n:-1.5"},
		{"barolo-2019", SeedText, "t:barolo-2019"},
		{"Inf", SeedText, "t:Inf"},
		{"NaN", SeedText, "t:NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := ParseSeed(tt.in)
			if s.Kind() != tt.wantKind || s.String() != tt.wantStr {
				t.Errorf("ParseSeed(%q) = %v %q, want %v %q", tt.in, s.Kind(), s.String(), tt.wantKind, tt.wantStr)
			}
		})
	}
	if NoSeed().IsSet() || !TextSeed("").IsSet() {
		t.Error("IsSet mismatch")
	}
}

func TestShuffle_Golden(t *testing.T) {
	items := strings.Split("abcde", "")
	tests := []struct {
		seed Seed
		want string
	}{
		{NumberSeed(1), "adecb"},
		{NumberSeed(42), "abcde"},
		{TextSeed("barolo"), "acedb"},
	}
	for _, tt := range tests {
		got := strings.Join(Shuffle(items, tt.seed.Source()), "")
		if got != tt.want {
			t.Errorf("Shuffle(%s) = %s, want %s", tt.seed, got, tt.want)
		}
	}
	if strings.Join(items, "") != "abcde" {
		t.Error("Shuffle must not modify its input")
	}
}

func TestShuffle_DifferentSeedsDiffer(t *testing.T) {
	items := strings.Split("abcdefgh", "")
	a := Shuffle(items, NumberSeed(7).Source())
	b := Shuffle(items, NumberSeed(8).Source())
	if slices.Equal(a, b) {
		t.Errorf("seeds 7 and 8 produced the same order %v", a)
	}
	if strings.Join(a, "") != "cfgebahd" || strings.Join(b, "") != "ahdbgfce" {
		t.Errorf("unexpected orders %v %v", a, b)
	}
}

func TestShuffle_PermutationWithoutSeed(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := Shuffle(items, NoSeed().Source())
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if !slices.Equal(sorted, items) {
		t.Errorf("unseeded shuffle is not a permutation: %v", got)
	}
}

func TestShuffle_EdgeSizes(t *testing.T) {
	if got := Shuffle([]int{}, NumberSeed(1).Source()); len(got) != 0 {
		t.Errorf("empty shuffle = %v", got)
	}
	if got := Shuffle([]int{9}, NumberSeed(1).Source()); len(got) != 1 || got[0] != 9 {
		t.Errorf("single shuffle = %v", got)
	}
}

// constSource always returns the same draw.
type constSource float64

func (c constSource) Next() float64 { return float64(c) }

func TestShuffle_ClampsOutOfRangeDraws(t *testing.T) {
	got := Shuffle([]int{1, 2, 3}, constSource(1))
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
}
