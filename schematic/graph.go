package schematic

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/grid"
)

// Vertex kinds stored under the "kind" metadata key of PartGraph vertices.
const (
	KindNumber = "number"
	KindSymbol = "symbol"
)

// NumberID formats the PartGraph vertex ID of n: "n:x,y" of its first digit.
func NumberID(n Number) string {
	c := n.Start()
	return fmt.Sprintf("n:%d,%d", c.X, c.Y)
}

// SymbolID formats the PartGraph vertex ID of the symbol at c: "s:x,y".
func SymbolID(c grid.Coord) string {
	return fmt.Sprintf("s:%d,%d", c.X, c.Y)
}

// PartGraph converts the schematic into an undirected *core.Graph with one
// vertex per number and per symbol, and one edge for every number/symbol
// pair that is 8-adjacent.
//
// Vertex metadata:
//   - number: kind, value, x, y (first digit), len.
//   - symbol: kind, char, x, y.
//
// A gear is then a '*' vertex of degree exactly 2, and a part number is a
// number vertex of degree ≥ 1.
// Complexity: O(S + D) time, O(N + S + E) memory.
func (s *Schematic) PartGraph() *core.Graph {
	g := core.NewGraph()

	symbolAt := make(map[grid.Coord]string, len(s.Symbols))
	for _, sym := range s.SymbolList() {
		id := SymbolID(sym.Coord)
		_ = g.AddVertex(id)
		v, _ := g.Vertex(id)
		v.Metadata["kind"] = KindSymbol
		v.Metadata["char"] = sym.Char
		v.Metadata["x"] = sym.Coord.X
		v.Metadata["y"] = sym.Coord.Y
		symbolAt[sym.Coord] = id
	}

	for _, n := range s.Numbers {
		id := NumberID(n)
		_ = g.AddVertex(id)
		v, _ := g.Vertex(id)
		v.Metadata["kind"] = KindNumber
		v.Metadata["value"] = n.Value
		v.Metadata["x"] = n.Start().X
		v.Metadata["y"] = n.Start().Y
		v.Metadata["len"] = len(n.Digits)

		for _, d := range n.Digits {
			for _, nb := range d.Coord.Neighbors() {
				if sid, ok := symbolAt[nb]; ok {
					_ = g.AddEdge(id, sid)
				}
			}
		}
	}

	return g
}
