package schematic

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2023/grid"
)

// ExtractDigits returns every ASCII digit cell of g with its value.
func ExtractDigits(g *grid.Grid) (map[grid.Coord]int, error) {
	digits := make(map[grid.Coord]int)
	for _, cell := range g.Cells() {
		if !isDigit(cell.Rune) {
			continue
		}
		v, err := strconv.Atoi(string(cell.Rune))
		if err != nil {
			return nil, fmt.Errorf("%w: cell %s %q: %v", ErrMalformedInput, cell.Coord, cell.Rune, err)
		}
		digits[cell.Coord] = v
	}

	return digits, nil
}

// ExtractSymbols returns every cell of g that is neither an ASCII digit nor '.'.
func ExtractSymbols(g *grid.Grid) map[grid.Coord]rune {
	symbols := make(map[grid.Coord]rune)
	for _, cell := range g.Cells() {
		if isSymbol(cell.Rune) {
			symbols[cell.Coord] = cell.Rune
		}
	}

	return symbols
}

// ExtractNumbers scans rows 0..MaxY and columns 0..MaxX of g in order and
// groups contiguous digit cells into Numbers. A run closes at the first
// non-digit column and at row end. Values are taken from digits, most
// significant digit first.
//
// The result is deterministic for a given grid and digit map.
// Returns ErrMissingCoordinate if a digit cell of g is absent from digits.
// Complexity: O(W×H).
func ExtractNumbers(g *grid.Grid, digits map[grid.Coord]int) ([]Number, error) {
	var (
		numbers []Number
		err     error
	)
	for y := 0; y <= g.MaxY; y++ {
		var run []grid.Coord
		for x := 0; x <= g.MaxX; x++ {
			c := grid.NewCoord(x, y)
			if r, ok := g.At(c); ok && isDigit(r) {
				run = append(run, c)
				continue
			}
			if numbers, err = appendRun(numbers, run, digits); err != nil {
				return nil, err
			}
			run = nil
		}
		if numbers, err = appendRun(numbers, run, digits); err != nil {
			return nil, err
		}
	}

	return numbers, nil
}

// appendRun closes an accumulated run into a Number and appends it.
// An empty run leaves numbers unchanged.
func appendRun(numbers []Number, run []grid.Coord, digits map[grid.Coord]int) ([]Number, error) {
	if len(run) == 0 {
		return numbers, nil
	}
	n := Number{Digits: make([]Digit, 0, len(run))}
	for _, c := range run {
		v, ok := digits[c]
		if !ok {
			return nil, fmt.Errorf("%w: digit at %s", ErrMissingCoordinate, c)
		}
		n.Digits = append(n.Digits, Digit{Coord: c, Value: v})
		n.Value = n.Value*10 + v
	}

	return append(numbers, n), nil
}

// SymbolCoords returns the keys of symbols in row-major order.
func SymbolCoords(symbols map[grid.Coord]rune) []grid.Coord {
	cs := make([]grid.Coord, 0, len(symbols))
	for c := range symbols {
		cs = append(cs, c)
	}
	grid.SortRowMajor(cs)

	return cs
}
