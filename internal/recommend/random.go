// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package recommend

import (
	"math"
	"math/rand/v2"
	"slices"
)

// LCG constants.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source yields uniform values in [0, 1).
type Source interface {
	Next() float64
}

// LCG is a small linear congruential generator. It is deterministic for a
// given state and is not safe for concurrent use; create one per shuffle.
type LCG struct {
	state float64
}

// NewLCG returns a generator starting at state. A zero state is replaced by 1.
func NewLCG(state float64) *LCG {
	if state == 0 {
		state = 1
	}
	// Large states are reduced up front so state*multiplier cannot overflow;
	// the sequence is unchanged because every step is taken modulo lcgModulus.
	if math.Abs(state) >= lcgModulus {
		state = math.Mod(state, lcgModulus)
	}
	return &LCG{state: state}
}

// Next advances the state and returns state/233280.
func (g *LCG) Next() float64 {
	g.state = math.Mod(g.state*lcgMultiplier+lcgIncrement, lcgModulus)
	v := g.state / lcgModulus
	if v < 0 {
		// Negative seeds keep a negative remainder; fold it into [0, 1).
		v++
	}
	return v
}

// randomSource is the unseeded fallback.
type randomSource struct{}

func (randomSource) Next() float64 {
	return rand.Float64() //nolint:gosec // shuffling display order, not security
}

// Shuffle returns a Fisher-Yates permutation of items, walking from the last
// index down to 1 and swapping i with floor(next*(i+1)). items is not modified.
func Shuffle[T any](items []T, src Source) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(src.Next() * float64(i+1)))
		if j > i {
			j = i
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}
