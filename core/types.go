// Package core defines the Graph, Vertex and Edge types, their options,
// sentinel errors, and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

const edgeIDPrefix = 'e'

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data (coordinates, distance key,
// labels) and is initialized to a non-nil map by AddVertex.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint vertex IDs in insertion orientation.
	From string
	To   string

	// Weight is the geometric length of the connection (zero in unweighted graphs).
	Weight float64

	// Kind is a caller-defined tag; empty unless WithEdgeKind is passed.
	Kind string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeKind tags the edge with kind.
func WithEdgeKind(kind string) EdgeOption {
	return func(e *Edge) { e.Kind = kind }
}

// Graph is an undirected, optionally weighted multigraph.
//
// adjacency[u][v] lists the IDs of every edge joining u and v; undirected
// edges are mirrored so adjacency[v][u] holds the same IDs.
type Graph struct {
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      []*Edge

	adjacency map[string]map[string][]string
}

// NewGraph creates an empty Graph. By default it is unweighted and
// rejects parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
