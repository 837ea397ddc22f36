// SPDX-License-Identifier: MIT
// Package: ringlattice/lattice
//
// generate.go — implementation of Generate(maxX).
//
// Contract:
//   • maxX ≥ 1 (else ErrInvalidArgument).
//   • Emits (x,y) for x = 1..maxX and y = 1..x-1, x ascending then y ascending.
//   • Each pair appears exactly once; the result length is Count(maxX).
//
// Determinism:
//   • Output order depends only on maxX.

package lattice

import "fmt"

const methodGenerate = "Generate"

// Count returns the number of points Generate(maxX) produces:
// maxX(maxX−1)/2, or 0 for maxX < 2.
func Count(maxX int) int {
	if maxX < 2 {
		return 0
	}
	return maxX * (maxX - 1) / 2
}

// Generate returns every lattice point with 0 < y < x ≤ maxX in row-major
// order. maxX == 1 yields an empty, non-nil slice.
// Complexity: O(maxX²) time and memory.
func Generate(maxX int) ([]Point, error) {
	if maxX < MinBound {
		return nil, fmt.Errorf("%s: maxX=%d < min=%d: %w", methodGenerate, maxX, MinBound, ErrInvalidArgument)
	}

	points := make([]Point, 0, Count(maxX))
	for x := 1; x <= maxX; x++ {
		// y starts at 1: points on the x-axis are excluded.
		for y := 1; y < x; y++ {
			points = append(points, Point{X: x, Y: y})
		}
	}

	return points, nil
}
