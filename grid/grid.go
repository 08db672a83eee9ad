package grid

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Build constructs a Grid from text, one row per line and one cell per rune.
// A trailing "\r" is stripped from each line and the empty remainder after a
// final newline is not a row.
//
// MaxX and MaxY are tracked during the same pass that inserts cells, so a
// ragged grid reports the widest row's last column as MaxX.
// Returns ErrDuplicateCoordinate (wrapped with the coordinate) if a cell
// would be written twice.
// Complexity: O(C) time and memory.
func Build(text string) (*Grid, error) {
	g := &Grid{cells: make(map[Coord]rune, len(text))}
	if text == "" {
		return g, nil
	}

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if y > g.MaxY {
			g.MaxY = y
		}
		x := 0
		for _, r := range line {
			if err := g.set(Coord{X: x, Y: y}, r); err != nil {
				return nil, err
			}
			if x > g.MaxX {
				g.MaxX = x
			}
			x++
		}
	}

	return g, nil
}

// FromReader reads r to EOF and builds a Grid from its contents.
func FromReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return Build(string(data))
}

// FromFile builds a Grid from the file at path.
func FromFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("grid: read %s: %w", path, err)
	}

	return Build(string(data))
}

// set writes a cell exactly once.
func (g *Grid) set(c Coord, r rune) error {
	if _, exists := g.cells[c]; exists {
		return fmt.Errorf("%w at %s", ErrDuplicateCoordinate, c)
	}
	g.cells[c] = r

	return nil
}

// Contains reports whether c was populated during Build.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// At returns the character stored at c, if any.
func (g *Grid) At(c Coord) (rune, bool) {
	r, ok := g.cells[c]
	return r, ok
}

// Len returns the number of populated cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether c lies within [0,MaxX]×[0,MaxY].
// On a ragged grid a coordinate can be in bounds yet not contained.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X <= g.MaxX && c.Y >= 0 && c.Y <= g.MaxY
}

// NeighborsInBounds returns c.Neighbors() filtered by InBounds, keeping order.
func (g *Grid) NeighborsInBounds(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, n := range c.Neighbors() {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cells returns every populated cell in row-major order.
// Complexity: O(C·log C).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c, r := range g.cells {
		out = append(out, Cell{Coord: c, Rune: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Coord.Less(out[j].Coord) })

	return out
}
