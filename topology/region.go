// SPDX-License-Identifier: MIT
// Package: ringlattice/topology
//
// region.go — region boundaries, membership and line chains.
//
// Contract:
//   • Boundaries = [0] ∪ ring radii ∪ {maxKey+1}, ascending.
//   • A singleton point belongs to the region whose half-open interval
//     [Low, High) contains its key. Singleton keys never equal a ring key
//     and never reach maxKey+1, so every singleton lands in exactly one
//     region whatever the tolerance.
//   • Each region chains its points (i-1) -> i in distance order; no
//     closing segment, no lines for fewer than two points.

package topology

import (
	"sort"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
)

// boundaries returns the sorted region bounds for the given ring keys.
// ringKeys must be ascending.
func boundaries(ringKeys []distance.Key, maxKey distance.Key) []float64 {
	b := make([]float64, 0, len(ringKeys)+2)
	b = append(b, 0)
	for _, k := range ringKeys {
		b = append(b, k.Float())
	}
	return append(b, maxKey.Float()+1)
}

// regionsFrom turns consecutive boundary pairs into empty regions.
func regionsFrom(bounds []float64) []Region {
	regions := make([]Region, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		regions = append(regions, Region{Index: i - 1, Low: bounds[i-1], High: bounds[i]})
	}
	return regions
}

// locate returns the index of the region [bounds[i], bounds[i+1]) holding k.
// k must be a singleton key of the classification bounds were built from.
func locate(bounds []float64, k distance.Key) int {
	v := k.Float()
	i := sort.Search(len(bounds), func(i int) bool { return bounds[i] > v })
	return i - 1
}

// chain sorts the region's points by distance, labels them and emits the
// line chain.
func (r *Region) chain() {
	sort.Stable(byDistance{points: r.Points, dists: r.Distances})

	n := len(r.Points)
	if n < 2 {
		return
	}
	r.Labels = make([]int, n)
	r.Lines = make([]Connection, 0, n-1)
	for i := 0; i < n; i++ {
		r.Labels[i] = i + 1
		if i == 0 {
			continue
		}
		r.Lines = append(r.Lines, Connection{
			Kind: KindLine,
			From: r.Points[i-1],
			To:   r.Points[i],
		})
	}
}

// byDistance sorts parallel point/distance slices by distance.
type byDistance struct {
	points []lattice.Point
	dists  []float64
}

func (b byDistance) Len() int           { return len(b.points) }
func (b byDistance) Less(i, j int) bool { return b.dists[i] < b.dists[j] }
func (b byDistance) Swap(i, j int) {
	b.points[i], b.points[j] = b.points[j], b.points[i]
	b.dists[i], b.dists[j] = b.dists[j], b.dists[i]
}
