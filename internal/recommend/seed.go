// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// SeedKind identifies the variant held by a Seed.
type SeedKind int

const (
	// SeedNone requests a non-deterministic shuffle.
	SeedNone SeedKind = iota
	// SeedNumber uses the number itself as the generator state.
	SeedNumber
	// SeedText derives the generator state from the characters of a string.
	SeedText
)

// String returns a human-readable name for the seed kind.
func (k SeedKind) String() string {
	switch k {
	case SeedNone:
		return "none"
	case SeedNumber:
		return "number"
	case SeedText:
		return "text"
	default:
		return "unknown"
	}
}

// Seed fixes the shuffle order. The zero value is NoSeed.
type Seed struct {
	kind SeedKind
	num  float64
	text string
}

// NoSeed returns the absent seed.
func NoSeed() Seed {
	return Seed{}
}

// NumberSeed returns a numeric seed.
func NumberSeed(n float64) Seed {
	return Seed{kind: SeedNumber, num: n}
}

// TextSeed returns a string seed. The empty string is a valid seed.
func TextSeed(s string) Seed {
	return Seed{kind: SeedText, text: s}
}

// ParseSeed reads a seed from a query parameter: "" is no seed, a finite
// decimal number is a numeric seed, and anything else is a text seed.
func ParseSeed(s string) Seed {
	if s == "" {
		return NoSeed()
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return NumberSeed(n)
	}
	return TextSeed(s)
}

// Kind returns the seed variant.
func (s Seed) Kind() SeedKind {
	return s.kind
}

// IsSet reports whether the seed fixes the order.
func (s Seed) IsSet() bool {
	return s.kind != SeedNone
}

// String returns a stable, kind-qualified form used in cache keys and logs.
func (s Seed) String() string {
	switch s.kind {
	case SeedNumber:
		return "n:" + strconv.FormatFloat(s.num, 'g', -1, 64)
	case SeedText:
		return "t:" + s.text
	default:
		return "none"
	}
}

// State returns the initial generator state. Finite numbers are used as is.
// Text is reduced to the sum of each character's code multiplied by its
// 1-based position; non-finite numbers are treated as their text form
// ("NaN", "Infinity", "-Infinity"). A zero state becomes 1.
func (s Seed) State() float64 {
	var state float64
	switch {
	case s.kind == SeedNumber && !math.IsInf(s.num, 0) && !math.IsNaN(s.num):
		state = s.num
	case s.kind == SeedNumber:
		state = textState(nonFiniteText(s.num))
	default:
		state = textState(s.text)
	}
	if state == 0 {
		state = 1
	}
	return state
}

// Source returns a fresh generator for the seed: an LCG when set, the
// non-deterministic source otherwise.
func (s Seed) Source() Source {
	if !s.IsSet() {
		return randomSource{}
	}
	return NewLCG(s.State())
}

// textState weights each character by its position. Characters outside the
// Basic Multilingual Plane contribute their leading UTF-16 code unit, which
// keeps states identical to those computed by browser-side renderers.
func textState(s string) float64 {
	var sum float64
	pos := 0
	for _, r := range s {
		pos++
		code := r
		if r >= 0x10000 {
			code, _ = utf16.EncodeRune(r)
		}
		sum += float64(code) * float64(pos)
	}
	return sum
}

func nonFiniteText(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case n > 0:
		return "Infinity"
	default:
		return "-Infinity"
	}
}
