// SPDX-License-Identifier: MIT

// Package lattice enumerates the integer lattice points that sit strictly
// below the diagonal y = x and strictly above the x-axis.
//
// What:
//
//   - Point is an immutable (X, Y) integer pair with structural equality.
//   - Generate(maxX) returns every point with 0 < y < x ≤ maxX in row-major
//     order (x ascending, then y ascending).
//
// Complexity:
//
//   - Generate: O(maxX²) time and memory; exactly maxX(maxX−1)/2 points.
//
// Errors:
//
//   - ErrInvalidArgument: maxX < 1.
//
// A bound of exactly 1 is valid and yields no points.
package lattice
