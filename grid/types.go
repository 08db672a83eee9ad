// Package grid defines the Coord and Grid types and sentinel errors
// for the grid package of github.com/katalvlaran/aoc2023.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrDuplicateCoordinate indicates Build tried to populate a cell twice.
	ErrDuplicateCoordinate = errors.New("grid: duplicate coordinate")
)

// Coord is an immutable (X, Y) position. Equality is structural, so Coord
// works directly as a map key.
type Coord struct {
	X, Y int
}

// Cell is a populated grid position together with its character.
type Cell struct {
	Coord Coord
	Rune  rune
}

// Grid is a sparse mapping from Coord to a single character.
// It is read-only once built; MaxX and MaxY hold the largest column and
// row index observed during the scan (zero-based).
type Grid struct {
	cells map[Coord]rune
	MaxX  int
	MaxY  int
}

// neighborOffsets lists the 8 unit moves in N, NE, E, SE, S, SW, W, NW order.
var neighborOffsets = [8]Coord{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
