package schematic

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

// Schematic is the result of one scan over a grid. It is read-only.
type Schematic struct {
	Grid    *grid.Grid
	Digits  map[grid.Coord]int
	Symbols map[grid.Coord]rune
	Numbers []Number
}

// Scan runs digit, symbol and number extraction over g once.
func Scan(g *grid.Grid) (*Schematic, error) {
	digits, err := ExtractDigits(g)
	if err != nil {
		return nil, err
	}
	numbers, err := ExtractNumbers(g, digits)
	if err != nil {
		return nil, err
	}

	return &Schematic{
		Grid:    g,
		Digits:  digits,
		Symbols: ExtractSymbols(g),
		Numbers: numbers,
	}, nil
}

// Parse builds a grid from text and scans it.
func Parse(text string) (*Schematic, error) {
	g, err := grid.Build(text)
	if err != nil {
		return nil, fmt.Errorf("schematic: build grid: %w", err)
	}

	return Scan(g)
}

// SymbolList returns the symbols in row-major order.
func (s *Schematic) SymbolList() []Symbol {
	out := make([]Symbol, 0, len(s.Symbols))
	for _, c := range SymbolCoords(s.Symbols) {
		out = append(out, Symbol{Coord: c, Char: s.Symbols[c]})
	}

	return out
}

// PartNumbers returns the numbers adjacent to any symbol.
func (s *Schematic) PartNumbers() []Number {
	return AdjacentNumbers(s.Numbers, SymbolCoords(s.Symbols))
}

// Part1 returns the sum of all part numbers.
func (s *Schematic) Part1() int {
	return PartNumberSum(s.Numbers, SymbolCoords(s.Symbols))
}

// Gears returns every resolved gear pair in row-major gear order.
func (s *Schematic) Gears() []GearPair {
	return ResolveGears(s.Numbers, FindGearSymbols(s.Symbols))
}

// Part2 returns the sum of all gear ratios.
func (s *Schematic) Part2() int {
	return GearRatioSum(s.Numbers, FindGearSymbols(s.Symbols))
}

// Solve parses text and returns both aggregates.
func Solve(text string) (part1, part2 int, err error) {
	s, err := Parse(text)
	if err != nil {
		return 0, 0, err
	}

	return s.Part1(), s.Part2(), nil
}

// Part1 parses input and returns the part number sum.
func Part1(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return s.Part1(), nil
}

// Part2 parses input and returns the gear ratio sum.
func Part2(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return s.Part2(), nil
}
