package schematic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/schematic"
)

// TestPartGraph_Canonical checks vertex and edge counts and metadata on the
// canonical schematic.
func TestPartGraph_Canonical(t *testing.T) {
	s := parse(t, engine)
	g := s.PartGraph()

	assert.Equal(t, 16, g.VertexCount(), "10 numbers + 6 symbols")
	assert.Equal(t, 8, g.EdgeCount(), "one edge per part number")

	assert.True(t, g.HasEdge("n:0,0", "s:3,1"), "467 touches * at (3,1)")
	assert.True(t, g.HasEdge("n:2,2", "s:3,1"), "35 touches * at (3,1)")
	assert.False(t, g.HasEdge("n:5,0", "s:3,1"), "114 touches nothing")

	v, err := g.Vertex("n:6,2")
	require.NoError(t, err)
	assert.Equal(t, schematic.KindNumber, v.Metadata["kind"])
	assert.Equal(t, 633, v.Metadata["value"])
	assert.Equal(t, 3, v.Metadata["len"])

	v, err = g.Vertex(schematic.SymbolID(grid.NewCoord(6, 3)))
	require.NoError(t, err)
	assert.Equal(t, schematic.KindSymbol, v.Metadata["kind"])
	assert.Equal(t, '#', v.Metadata["char"])
}

// TestPartGraph_AgreesWithScanner cross-checks the graph view against
// AdjacentNumbers and ResolveGear: part numbers have degree ≥ 1, and a '*'
// has degree 2 exactly when ResolveGear finds a pair.
func TestPartGraph_AgreesWithScanner(t *testing.T) {
	for _, text := range []string{engine, "1*2*3", "1.2\n.*.\n3..", "12*\n..."} {
		s := parse(t, text)
		g := s.PartGraph()

		parts := make(map[string]bool)
		for _, n := range s.PartNumbers() {
			parts[schematic.NumberID(n)] = true
		}
		for _, n := range s.Numbers {
			deg, err := g.Degree(schematic.NumberID(n))
			require.NoError(t, err)
			assert.Equal(t, parts[schematic.NumberID(n)], deg > 0, "number %s in %q", n, text)
		}

		for _, c := range schematic.FindGearSymbols(s.Symbols) {
			deg, err := g.Degree(schematic.SymbolID(c))
			require.NoError(t, err)
			_, ok := schematic.ResolveGear(s.Numbers, c)
			assert.Equal(t, ok, deg == 2, "gear %s in %q", c, text)
		}
	}
}
