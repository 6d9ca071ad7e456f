// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vino Élite", "vino-elite"},
		{"  Rosé -- 2024! ", "rose-2024"},
		{"Bianco Macerato/Orange Wine", "bianco-macerato-orange-wine"},
		{"Nero d'Avola", "nero-d-avola"},
		{"ÀÈÌÒÙ àèìòù", "aeiou-aeiou"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSlugParam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Barolo-2019 ", "barolo-2019"},
		{"rosé", "ros%c3%a9"},
		{"a b", "a%20b"},
		{"it's(ok)!", "it's(ok)!"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeSlugParam(tt.in); got != tt.want {
				t.Errorf("NormalizeSlugParam(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
