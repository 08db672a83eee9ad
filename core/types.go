// Package core defines the Graph and Vertex types, sentinel errors,
// and the NewGraph constructor.
//
// All methods take a single sync.RWMutex, so a Graph can be shared across
// goroutines.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. Always non-nil.
	Metadata map[string]interface{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected simple graph (at most one edge per vertex pair).
//
// adjacency[u][v] is present iff the edge u-v exists; both directions are
// stored. edgeCount counts each undirected edge once.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	vertices  map[string]*Vertex
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. By default loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
