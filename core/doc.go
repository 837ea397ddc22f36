// Package core provides a small in-memory undirected Graph used as a
// queryable view of a lattice topology.
//
// The Graph G = (V,E) supports:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Per-edge kind tags (WithEdgeKind), e.g. "arc" or "line"
//   - Deterministic edge IDs ("e1", "e2", …) in insertion order
//
// Graphs are built once per pipeline run and are never shared between
// goroutines, so no locking is performed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                    // O(1), idempotent
//	HasVertex(id string) bool                     // O(1)
//	Vertex(id string) (*Vertex, error)            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                 // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)      // O(d·log d), unique, sorted
//	Vertices() []string                           // O(V·log V), sorted
//	Edges() []*Edge                               // O(E), insertion order
//	Degree(id string) (int, error)                // incident edge count
//	ConnectedComponents() [][]string              // O(V+E), BFS
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
