// SPDX-License-Identifier: MIT
// Package: ringlattice/distance
//
// classify.go — polar measures, quantization and Classify.
//
// Contract:
//   • tol must be finite and > 0 (else ErrInvalidArgument).
//   • key = round(raw/tol) * tol for raw = Distance(p).
//   • Every input point lands in exactly one bucket; buckets keep input order.
//   • Keys are distinct and sorted ascending.
//
// Complexity:
//   • Time: O(n + k log k) for n points and k distinct keys.
//   • Space: O(n).

package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ringlattice/lattice"
)

const methodClassify = "Classify"

// Distance returns the Euclidean norm √(x²+y²) of p.
func Distance(p lattice.Point) float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Angle returns the polar angle of p in [0, 2π).
func Angle(p lattice.Point) float64 {
	a := math.Atan2(float64(p.Y), float64(p.X))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Quantize snaps raw onto the grid of step tol. tol must be positive.
func Quantize(raw, tol float64) Key {
	return Key(math.Round(raw/tol) * tol)
}

// ValidateTolerance returns ErrInvalidArgument unless tol is finite and positive.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return fmt.Errorf("tolerance=%g must be finite and > 0: %w", tol, ErrInvalidArgument)
	}
	return nil
}

// Classify buckets points by quantized distance. An empty input yields empty
// Classes without error.
func Classify(points []lattice.Point, tol float64) (*Classes, error) {
	if err := ValidateTolerance(tol); err != nil {
		return nil, fmt.Errorf("%s: %w", methodClassify, err)
	}

	c := &Classes{
		Tolerance: tol,
		Buckets:   make(map[Key][]lattice.Point),
	}
	for _, p := range points {
		k := Quantize(Distance(p), tol)
		if _, seen := c.Buckets[k]; !seen {
			c.Keys = append(c.Keys, k)
		}
		c.Buckets[k] = append(c.Buckets[k], p)
	}

	sort.Slice(c.Keys, func(i, j int) bool { return c.Keys[i] < c.Keys[j] })

	return c, nil
}
