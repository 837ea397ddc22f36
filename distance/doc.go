// SPDX-License-Identifier: MIT

// Package distance classifies lattice points by their Euclidean distance
// from the origin.
//
// What:
//
//   - Distance and Angle compute the polar coordinates of a Point; Angle is
//     normalized into [0, 2π).
//   - Quantize snaps a raw distance onto a grid of step tol, producing a Key.
//   - Classify buckets points by Key and returns the keys in ascending order.
//
// Why quantize:
//
//	Raw float64 distances of mathematically equidistant points may differ in
//	the last bits. Rounding onto a fixed grid before using the value as a map
//	key keeps the grouping a true partition; pairwise epsilon comparison
//	would not be transitive.
//
// Caveat:
//
//	A tolerance coarser than the smallest true gap between distances merges
//	distinct distances into one Key. That is accepted, not reported.
//
// Errors:
//
//   - ErrInvalidArgument: tolerance ≤ 0, NaN or infinite.
package distance
