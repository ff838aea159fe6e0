// Package vmath provides float64 vector and matrix math for the
// software renderer and gameplay simulation
package vmath

import (
	"math"
)

// --- Scalar helpers ---

// Clamp limits v to the range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// --- Hashing ---

// HashUnit maps (x, y) to a deterministic value in [0, 1)
// Same inputs always produce the same output
func HashUnit(x, y float64) float64 {
	h := math.Float64bits(x)*0x9e3779b97f4a7c15 ^ math.Float64bits(y)*0xbf58476d1ce4e5b9
	h ^= h << 13
	h ^= h >> 7
	h ^= h << 17
	return float64(h>>11) / float64(1<<53)
}
