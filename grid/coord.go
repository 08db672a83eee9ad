package grid

import (
	"fmt"
	"sort"
)

// NewCoord returns the coordinate (x, y).
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// North returns the coordinate one step up (y-1).
func (c Coord) North() Coord { return Coord{c.X, c.Y - 1} }

// NorthEast returns the coordinate one step up and right.
func (c Coord) NorthEast() Coord { return Coord{c.X + 1, c.Y - 1} }

// East returns the coordinate one step right (x+1).
func (c Coord) East() Coord { return Coord{c.X + 1, c.Y} }

// SouthEast returns the coordinate one step down and right.
func (c Coord) SouthEast() Coord { return Coord{c.X + 1, c.Y + 1} }

// South returns the coordinate one step down (y+1).
func (c Coord) South() Coord { return Coord{c.X, c.Y + 1} }

// SouthWest returns the coordinate one step down and left.
func (c Coord) SouthWest() Coord { return Coord{c.X - 1, c.Y + 1} }

// West returns the coordinate one step left (x-1).
func (c Coord) West() Coord { return Coord{c.X - 1, c.Y} }

// NorthWest returns the coordinate one step up and left.
func (c Coord) NorthWest() Coord { return Coord{c.X - 1, c.Y - 1} }

// Neighbors returns the 8 surrounding coordinates in the fixed order
// N, NE, E, SE, S, SW, W, NW.
// No bounds checking is done: negative coordinates are valid values, and
// callers that need a bound filter the result themselves (see Grid.NeighborsInBounds).
// Complexity: O(1).
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		out = append(out, c.Add(d))
	}

	return out
}

// NeighborSet returns the 8 surrounding coordinates as a set.
func (c Coord) NeighborSet() map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(neighborOffsets))
	for _, d := range neighborOffsets {
		set[c.Add(d)] = struct{}{}
	}

	return set
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// SortRowMajor sorts cs in place by Y, then X.
func SortRowMajor(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}
