package schematic

import (
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/mathx"
)

// FindGearSymbols returns the coordinates of '*' symbols in row-major order.
func FindGearSymbols(symbols map[grid.Coord]rune) []grid.Coord {
	var gears []grid.Coord
	for c, r := range symbols {
		if r == GearChar {
			gears = append(gears, c)
		}
	}
	grid.SortRowMajor(gears)

	return gears
}

// ResolveGear returns the pair of numbers meshing at gear.
//
// A number meshes when any of its digits lies in the gear's 8-neighborhood.
// Exactly two meshing numbers form a pair; with fewer or more there is no pair.
// numbers is only read, so the same number can mesh with several gears.
// Complexity: O(D).
func ResolveGear(numbers []Number, gear grid.Coord) (GearPair, bool) {
	near := gear.NeighborSet()

	var touching []Number
	for _, n := range numbers {
		if !n.Touches(near) {
			continue
		}
		touching = append(touching, n)
		if len(touching) > 2 {
			return GearPair{}, false
		}
	}
	if len(touching) != 2 {
		return GearPair{}, false
	}

	return GearPair{Gear: gear, First: touching[0], Second: touching[1]}, true
}

// ResolveGears resolves every gear independently and returns the pairs found,
// in the order of gears.
func ResolveGears(numbers []Number, gears []grid.Coord) []GearPair {
	var pairs []GearPair
	for _, c := range gears {
		if p, ok := ResolveGear(numbers, c); ok {
			pairs = append(pairs, p)
		}
	}

	return pairs
}

// GearRatioSum adds the ratios of every resolved gear pair.
// Gears without a pair contribute nothing.
// Complexity: O(G × D).
func GearRatioSum(numbers []Number, gears []grid.Coord) int {
	return mathx.SumFunc(ResolveGears(numbers, gears), GearPair.Ratio)
}
