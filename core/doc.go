// Package core provides a small, thread-safe, undirected in-memory graph
// keyed by string vertex IDs.
//
// It backs relationship views over grid scans: the schematic package builds
// one vertex per part number and per symbol and one edge per adjacency, then
// answers degree and neighbor questions through this API.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error              // O(1), idempotent
//	HasVertex(id string) bool               // O(1)
//	Vertex(id string) (*Vertex, error)      // O(1)
//	AddEdge(from, to string) error          // O(1), auto-adds endpoints, idempotent
//	HasEdge(from, to string) bool           // O(1)
//	NeighborIDs(id string) ([]string, error)// O(d·log d), sorted
//	Degree(id string) (int, error)          // O(1), self-loop counts 2
//	Vertices() []string                     // O(V·log V), sorted
//	VertexCount(), EdgeCount() int          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop when loops are disabled
package core
