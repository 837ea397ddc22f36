// SPDX-License-Identifier: MIT
// Package: ringlattice/topology
//
// ring.go — closed arc cycles over one distance class.
//
// Contract:
//   • Points are stably sorted by Angle ascending; ties keep input order.
//   • Emits arcs i -> (i+1)%k for i = 0..k-1, closing the cycle.
//   • Each arc's Sweep is the shorter signed path, in (−π, π].
//
// Complexity:
//   • Time: O(k log k) for the sort, O(k) arcs.

package topology

import (
	"math"
	"sort"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
)

// SweepBetween returns the signed angle travelled from start to end along
// the shorter path. For start, end in [0, 2π) the result lies in (−π, π].
func SweepBetween(start, end float64) float64 {
	delta := end - start
	if delta <= -math.Pi {
		delta += 2 * math.Pi
	} else if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}

// buildRing orders pts by angle and closes them into a cycle of arcs.
func buildRing(key distance.Key, pts []lattice.Point) Ring {
	n := len(pts)
	ordered := make([]lattice.Point, n)
	copy(ordered, pts)
	angles := make([]float64, n)
	for i, p := range ordered {
		angles[i] = distance.Angle(p)
	}
	sort.Stable(byAngle{points: ordered, angles: angles})

	radius := key.Float()
	arcs := make([]Connection, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		arcs = append(arcs, Connection{
			Kind:       KindArc,
			From:       ordered[i],
			To:         ordered[j],
			Radius:     radius,
			StartAngle: angles[i],
			EndAngle:   angles[j],
			Sweep:      SweepBetween(angles[i], angles[j]),
		})
	}

	return Ring{Key: key, Points: ordered, Angles: angles, Arcs: arcs}
}

// byAngle sorts parallel point/angle slices by angle.
type byAngle struct {
	points []lattice.Point
	angles []float64
}

func (b byAngle) Len() int           { return len(b.points) }
func (b byAngle) Less(i, j int) bool { return b.angles[i] < b.angles[j] }
func (b byAngle) Swap(i, j int) {
	b.points[i], b.points[j] = b.points[j], b.points[i]
	b.angles[i], b.angles[j] = b.angles[j], b.angles[i]
}
