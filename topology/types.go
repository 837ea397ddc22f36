// SPDX-License-Identifier: MIT
// Package: ringlattice/topology
//
// types.go — Kind, Connection, Ring, Region and Topology.

package topology

import (
	"math"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
)

// Kind distinguishes curved ring segments from straight chain segments.
type Kind int

const (
	// KindArc is a constant-radius segment between two points of one ring.
	KindArc Kind = iota
	// KindLine is a straight segment between consecutive singleton points.
	KindLine
)

// String returns "arc" or "line".
func (k Kind) String() string {
	switch k {
	case KindArc:
		return "arc"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Connection is one drawn segment From→To.
//
// Radius, StartAngle, EndAngle and Sweep are set for arcs only. Sweep is the
// signed angular travel from StartAngle to EndAngle, normalized into (−π, π].
type Connection struct {
	Kind Kind
	From lattice.Point
	To   lattice.Point

	Radius     float64
	StartAngle float64
	EndAngle   float64
	Sweep      float64
}

// Length returns the drawn length: r·|sweep| for arcs, the chord otherwise.
func (c Connection) Length() float64 {
	if c.Kind == KindArc {
		return c.Radius * math.Abs(c.Sweep)
	}
	return math.Hypot(float64(c.To.X-c.From.X), float64(c.To.Y-c.From.Y))
}

// Ring is a distance class with at least two points.
// Points and Angles are parallel slices in ascending angle order.
type Ring struct {
	Key    distance.Key
	Points []lattice.Point
	Angles []float64
	Arcs   []Connection
}

// Region is the half-open interval [Low, High) on the distance-key axis.
//
// Points holds the singleton points whose key falls inside the interval in
// ascending distance order, Distances their raw distances. Labels holds 1-based
// sequence numbers parallel to Points when the region has a chain
// (len(Points) ≥ 2) and is nil otherwise.
type Region struct {
	Index     int
	Low       float64
	High      float64
	Points    []lattice.Point
	Distances []float64
	Labels    []int
	Lines     []Connection
}

// Contains reports whether k lies in [Low, High).
func (r Region) Contains(k distance.Key) bool {
	return k.Float() >= r.Low && k.Float() < r.High
}

// Topology is the full connection set of one classified point set.
type Topology struct {
	// Rings in ascending key order.
	Rings []Ring
	// Regions in ascending distance order.
	Regions []Region
	// Boundaries is the sorted list [0, ring radii…, maxKey+1].
	Boundaries []float64

	regionOf map[lattice.Point]int
}

// Connections returns all arcs in ring order followed by all lines in
// region order. The slice is freshly allocated.
func (t *Topology) Connections() []Connection {
	out := make([]Connection, 0, t.ArcCount()+t.LineCount())
	for _, r := range t.Rings {
		out = append(out, r.Arcs...)
	}
	for _, r := range t.Regions {
		out = append(out, r.Lines...)
	}
	return out
}

// ArcCount returns the number of arc connections.
func (t *Topology) ArcCount() int {
	n := 0
	for _, r := range t.Rings {
		n += len(r.Arcs)
	}
	return n
}

// LineCount returns the number of line connections.
func (t *Topology) LineCount() int {
	n := 0
	for _, r := range t.Regions {
		n += len(r.Lines)
	}
	return n
}

// RegionOf returns the index of the region holding singleton point p.
// Ring points and unknown points report false.
func (t *Topology) RegionOf(p lattice.Point) (int, bool) {
	i, ok := t.regionOf[p]
	return i, ok
}
