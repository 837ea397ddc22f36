// SPDX-License-Identifier: MIT

// Package topology derives the connection set drawn over a classified
// lattice: arcs around every multi-point distance ring and line chains
// among singleton points, scoped to the regions between rings.
//
// What:
//
//   - Ring: a distance class with ≥ 2 points, ordered by polar angle and
//     closed into a cycle of ARC connections (k points ⇒ k arcs).
//   - Region: the key interval [Low, High) between consecutive ring radii
//     (outer bounds 0 and maxKey+1). Singleton points whose key falls in a
//     region are chained by LINE connections in distance order.
//   - Topology: all rings, regions and boundaries of one run, plus a
//     core.Graph view for structural queries.
//
// Guarantees:
//
//   - Every arc joins two points of the same distance class and sweeps the
//     shorter angular path (|Sweep| ≤ π).
//   - Lines only join singleton points of one region, so no line crosses a
//     ring.
//   - Every classified point appears in exactly one ring or one region.
//
// Complexity:
//
//   - Build: O(n log n) for n classified points.
//
// Build never fails; an empty classification yields an empty Topology.
package topology
