// SPDX-License-Identifier: MIT
// Package: ringlattice/topology
//
// build.go — Build(classes).
//
// Determinism:
//   • Rings follow ascending key order; regions ascending distance order.
//   • Equal inputs produce identical rings, regions and connection order.

package topology

import (
	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
)

// Build derives rings, regions and their connections from c.
// A nil or empty classification yields an empty Topology.
func Build(c *distance.Classes) *Topology {
	t := &Topology{regionOf: make(map[lattice.Point]int)}
	if c == nil || c.Len() == 0 {
		return t
	}

	var ringKeys, singletonKeys []distance.Key
	for _, k := range c.Keys {
		if c.Size(k) >= 2 {
			ringKeys = append(ringKeys, k)
		} else {
			singletonKeys = append(singletonKeys, k)
		}
	}

	t.Rings = make([]Ring, 0, len(ringKeys))
	for _, k := range ringKeys {
		t.Rings = append(t.Rings, buildRing(k, c.Points(k)))
	}

	maxKey, _ := c.MaxKey()
	t.Boundaries = boundaries(ringKeys, maxKey)
	t.Regions = regionsFrom(t.Boundaries)

	for _, k := range singletonKeys {
		i := locate(t.Boundaries, k)
		for _, p := range c.Points(k) {
			d := distance.Distance(p)
			t.Regions[i].Points = append(t.Regions[i].Points, p)
			t.Regions[i].Distances = append(t.Regions[i].Distances, d)
			t.regionOf[p] = i
		}
	}
	for i := range t.Regions {
		t.Regions[i].chain()
	}

	return t
}
