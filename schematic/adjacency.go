package schematic

import (
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/mathx"
)

// neighborhood returns the union of the 8-neighborhoods of coords.
func neighborhood(coords []grid.Coord) map[grid.Coord]struct{} {
	set := make(map[grid.Coord]struct{}, 8*len(coords))
	for _, c := range coords {
		for _, n := range c.Neighbors() {
			set[n] = struct{}{}
		}
	}

	return set
}

// AdjacentNumbers returns the numbers with at least one digit in the
// 8-neighborhood of any symbol coordinate, in input order.
//
// Each number appears at most once, however many symbols or digits touch.
// Numbers are told apart by position, so equal values at different places
// are both kept.
// Complexity: O(S + D).
func AdjacentNumbers(numbers []Number, symbolCoords []grid.Coord) []Number {
	near := neighborhood(symbolCoords)
	seen := make(map[grid.Coord]struct{}, len(numbers))

	var out []Number
	for _, n := range numbers {
		if len(n.Digits) == 0 || !n.Touches(near) {
			continue
		}
		if _, dup := seen[n.Start()]; dup {
			continue
		}
		seen[n.Start()] = struct{}{}
		out = append(out, n)
	}

	return out
}

// PartNumberSum adds the values of AdjacentNumbers(numbers, symbolCoords).
func PartNumberSum(numbers []Number, symbolCoords []grid.Coord) int {
	return mathx.SumFunc(AdjacentNumbers(numbers, symbolCoords), func(n Number) int { return n.Value })
}
