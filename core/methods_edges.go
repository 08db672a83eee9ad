// File: methods_edges.go
// Role: Edge lifecycle & queries.
package core

// AddEdge connects from and to with an undirected edge.
//
// Implementation:
//   - Stage 1: Validate IDs and the loop policy.
//   - Stage 2: Under the write lock, auto-add missing endpoints.
//   - Stage 3: Record both adjacency directions; count the edge once.
//
// Behavior highlights:
//   - Idempotent: adding an existing pair (in either order) is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and WithLoops was not set.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, exists := g.adjacency[from][to]; exists {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from-to exists. Order does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
