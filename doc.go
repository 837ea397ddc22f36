// Package ringlattice groups the lattice points {(x,y) : 0 < y < x ≤ N} by
// distance from the origin and derives the connection topology used to
// draw them as concentric rings and chains.
//
// Pipeline:
//
//	lattice.Generate   — enumerate the points for bound N
//	distance.Classify  — bucket points by quantized distance
//	topology.Build     — arcs around each multi-point ring, line chains
//	                     among singleton points between rings
//	palette.Assign     — one deterministic color per ring
//
// Compute runs the whole pipeline and returns a Result that renderers
// consume directly; the render package and cmd/ringlattice are two such
// consumers.
//
// Everything is computed synchronously in memory; nothing is cached or
// persisted between calls.
//
//	go get github.com/katalvlaran/ringlattice
package ringlattice
