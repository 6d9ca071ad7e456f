// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/vinoteca/internal/recommend"
)

func TestGenerateETag(t *testing.T) {
	if got := generateETag(nil); got != "811c9dc5" {
		t.Errorf("generateETag(nil) = %q, want FNV-1a offset basis", got)
	}
	if generateETag([]byte("a")) == generateETag([]byte("b")) {
		t.Error("distinct payloads share an ETag")
	}
}

func TestEtagMatches(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{`W/"abc"`, true},
		{`"abc"`, true},
		{`"x", W/"abc"`, true},
		{"*", true},
		{`W/"abd"`, false},
	}
	for _, tt := range tests {
		if got := etagMatches(tt.header, `W/"abc"`); got != tt.want {
			t.Errorf("etagMatches(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}

func TestSanitizeLogValue(t *testing.T) {
	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue() = %q", got)
	}
}

func TestParseRelatedRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCount int
		wantSeed  recommend.Seed
		wantReg   *string
		wantErr   bool
	}{
		{"empty", "", 0, recommend.TextSeed("slug"), nil, false},
		{"count", "?count=7", 7, recommend.TextSeed("slug"), nil, false},
		{"numeric seed", "?seed=42", 0, recommend.NumberSeed(42), nil, false},
		{"text seed", "?seed=abc", 0, recommend.TextSeed("abc"), nil, false},
		{"empty seed", "?seed=", 0, recommend.NoSeed(), nil, false},
		{"empty region", "?region=", 0, recommend.TextSeed("slug"), strp(""), false},
		{"region", "?region=+Toscana+", 0, recommend.TextSeed("slug"), strp("Toscana"), false},
		{"count too large", "?count=11", 0, recommend.Seed{}, nil, true},
		{"count negative", "?count=-1", 0, recommend.Seed{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/related"+tt.query, nil)
			req, verr := parseRelatedRequest(r, 10)
			if (verr != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", verr, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if req.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", req.Count, tt.wantCount)
			}
			if got := req.seedFor("slug"); got.String() != tt.wantSeed.String() {
				t.Errorf("seed = %s, want %s", got, tt.wantSeed)
			}
			switch {
			case tt.wantReg == nil && req.Region != nil:
				t.Errorf("Region = %q, want nil", *req.Region)
			case tt.wantReg != nil && (req.Region == nil || *req.Region != *tt.wantReg):
				t.Errorf("Region = %v, want %q", req.Region, *tt.wantReg)
			}
		})
	}
}
