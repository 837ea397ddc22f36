// SPDX-License-Identifier: MIT
// Package: ringlattice/topology
//
// graph.go — conversion into a *core.Graph.

package topology

import (
	"github.com/katalvlaran/ringlattice/core"
	"github.com/katalvlaran/ringlattice/lattice"
)

// Vertex metadata keys written by Graph.
const (
	MetaX      = "x"
	MetaY      = "y"
	MetaKey    = "key"    // ring points only
	MetaRing   = "ring"   // ring index, ring points only
	MetaRegion = "region" // region index, singleton points only
	MetaLabel  = "label"  // 1-based chain label, chained points only
)

// Graph converts the topology into a weighted multigraph.
// Each point becomes a vertex with ID "x,y" and metadata {x, y, key, ring|region, label};
// each connection becomes an edge tagged with its Kind and weighted by its Length.
// Two-point rings produce two parallel arcs, hence the multigraph.
// Complexity: O(V + E).
func (t *Topology) Graph() *core.Graph {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())

	addVertex := func(p lattice.Point, meta map[string]interface{}) {
		id := p.ID()
		_ = g.AddVertex(id)
		v, _ := g.Vertex(id)
		v.Metadata[MetaX] = p.X
		v.Metadata[MetaY] = p.Y
		for k, val := range meta {
			v.Metadata[k] = val
		}
	}

	for ri, r := range t.Rings {
		for _, p := range r.Points {
			addVertex(p, map[string]interface{}{MetaKey: r.Key, MetaRing: ri})
		}
	}
	for _, r := range t.Regions {
		for i, p := range r.Points {
			meta := map[string]interface{}{MetaRegion: r.Index}
			if r.Labels != nil {
				meta[MetaLabel] = r.Labels[i]
			}
			addVertex(p, meta)
		}
	}

	for _, c := range t.Connections() {
		_, _ = g.AddEdge(c.From.ID(), c.To.ID(), c.Length(), core.WithEdgeKind(c.Kind.String()))
	}

	return g
}

