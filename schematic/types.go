package schematic

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for schematic scanning.
var (
	// ErrMalformedInput indicates a cell classified as a digit failed conversion.
	ErrMalformedInput = errors.New("schematic: malformed input")
	// ErrMissingCoordinate indicates a number's digit is absent from the digit map.
	ErrMissingCoordinate = errors.New("schematic: missing coordinate")
)

const (
	// Blank is the background character; it is never a symbol.
	Blank = '.'
	// GearChar marks a candidate gear.
	GearChar = '*'
)

// Digit is a single digit cell.
type Digit struct {
	Coord grid.Coord
	Value int
}

// Symbol is a non-digit, non-blank cell.
type Symbol struct {
	Coord grid.Coord
	Char  rune
}

// Number is a horizontal run of contiguous digits in one row.
// Digits are ordered by strictly increasing, contiguous X on a single Y.
type Number struct {
	Digits []Digit
	Value  int
}

// Start returns the coordinate of the leftmost digit. No two numbers share
// a start, so it identifies a number by position.
func (n Number) Start() grid.Coord { return n.Digits[0].Coord }

// End returns the coordinate of the rightmost digit.
func (n Number) End() grid.Coord { return n.Digits[len(n.Digits)-1].Coord }

// Row returns the Y shared by all digits.
func (n Number) Row() int { return n.Start().Y }

// Coords returns the set of cells the number occupies.
func (n Number) Coords() map[grid.Coord]struct{} {
	set := make(map[grid.Coord]struct{}, len(n.Digits))
	for _, d := range n.Digits {
		set[d.Coord] = struct{}{}
	}

	return set
}

// Touches reports whether any digit lies in set.
func (n Number) Touches(set map[grid.Coord]struct{}) bool {
	for _, d := range n.Digits {
		if _, ok := set[d.Coord]; ok {
			return true
		}
	}

	return false
}

// String returns the decimal value.
func (n Number) String() string { return strconv.Itoa(n.Value) }

// GearPair is the two numbers meshing at a '*' symbol.
type GearPair struct {
	Gear          grid.Coord
	First, Second Number
}

// Ratio returns First.Value * Second.Value.
func (p GearPair) Ratio() int { return p.First.Value * p.Second.Value }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbol(r rune) bool { return r != Blank && !isDigit(r) }
