// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package catalog

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestOptional_Unmarshal(t *testing.T) {
	var v struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[string] `json:"c"`
		D Optional[string] `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a": "x", "b": null, "c": 12}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got, ok := v.A.Get(); !ok || got != "x" {
		t.Errorf("A = %q, %v; want x, true", got, ok)
	}
	if v.B.Present() {
		t.Error("null should decode as absent")
	}
	if v.C.Present() {
		t.Error("number into string should decode as absent")
	}
	if v.D.Present() {
		t.Error("missing key should be absent")
	}
	if v.D.OrElse("def") != "def" {
		t.Error("OrElse should return default for absent value")
	}
}

func TestScalar_Int(t *testing.T) {
	tests := []struct {
		name   string
		in     Optional[Scalar]
		want   int
		wantOK bool
	}{
		{"plain text", Text("2024"), 2024, true},
		{"signed text", Text("-12"), -12, true},
		{"text with spaces", Text("  90  "), 90, true},
		{"decimal text truncated", Text("90.7"), 90, true},
		{"trailing junk ignored", Text("12abc"), 12, true},
		{"exponent stops at e", Text("1e3"), 1, true},
		{"no leading digits", Text("abc12"), 0, false},
		{"empty text", Text(""), 0, false},
		{"native integer", Number(88), 88, true},
		{"native decimal truncated", Number(-3.9), -3, true},
		{"NaN", Number(math.NaN()), 0, false},
		{"infinity", Number(math.Inf(1)), 0, false},
		{"overflow", Text("99999999999999999999"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := tt.in.Get()
			got, ok := s.Int()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Int() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScalar_Float(t *testing.T) {
	tests := []struct {
		name   string
		in     Optional[Scalar]
		want   float64
		wantOK bool
	}{
		{"decimal text", Text("18.50"), 18.5, true},
		{"leading dot", Text(".5"), 0.5, true},
		{"with currency", Text("25 EUR"), 25, true},
		{"exponent", Text("1.5e2"), 150, true},
		{"comma decimal keeps integer part", Text("12,90"), 12, true},
		{"junk", Text("circa"), 0, false},
		{"native", Number(7.25), 7.25, true},
		{"overflow", Text("1e999"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := tt.in.Get()
			got, ok := s.Float()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Float() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScalar_Blank(t *testing.T) {
	if s, _ := Text("  ").Get(); !s.Blank() {
		t.Error("whitespace text should be blank")
	}
	if s, _ := Number(0).Get(); s.Blank() {
		t.Error("zero is a value, not blank")
	}
}
