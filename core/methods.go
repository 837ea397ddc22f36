package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adjacency[id] = make(map[string][]string)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the live vertex record for id.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return v, nil
}

// AddEdge creates an undirected edge from→to and returns its ID.
// Missing endpoints are added first.
//
// Errors:
//   - ErrEmptyVertexID: from or to is "".
//   - ErrBadWeight: weight ≠ 0 on an unweighted graph.
//   - ErrLoopNotAllowed: from == to.
//   - ErrMultiEdgeNotAllowed: the pair is already joined and multi-edges are off.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	e := &Edge{ID: g.newEdgeID(), From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)
	g.adjacency[from][to] = append(g.adjacency[from][to], e.ID)
	g.adjacency[to][from] = append(g.adjacency[to][from], e.ID)

	return e.ID, nil
}

// HasEdge reports whether at least one edge joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	return len(g.adjacency[from][to]) > 0
}

// EdgesBetween returns the IDs of every edge joining from and to, in
// insertion order.
func (g *Graph) EdgesBetween(from, to string) []string {
	ids := g.adjacency[from][to]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// NeighborIDs returns the unique, sorted IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(adj))
	for v, eids := range adj {
		if len(eids) > 0 {
			ids = append(ids, v)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edge endpoints incident to id; parallel
// edges count once each.
func (g *Graph) Degree(id string) (int, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	d := 0
	for _, eids := range adj {
		d += len(eids)
	}
	return d, nil
}

// Vertices returns all vertex IDs sorted lexicographically.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns the edges in insertion order. The slice is freshly
// allocated; the *Edge values are shared.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are accepted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// newEdgeID returns "e" + the next sequence number.
func (g *Graph) newEdgeID() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
