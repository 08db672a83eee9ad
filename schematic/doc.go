// Package schematic scans an engine schematic: a character grid of digits,
// '.' background cells and symbols.
//
// What:
//
//   - Digits are ASCII '0'..'9' cells; symbols are every other non-'.' cell.
//   - A Number is a maximal horizontal run of digit cells within one row.
//   - A part number is a Number with any digit 8-adjacent to any symbol.
//   - A gear is a '*' symbol 8-adjacent to exactly two Numbers; its ratio is
//     the product of their values.
//
// Pipeline:
//
//	text → grid.Grid → ExtractDigits / ExtractSymbols → ExtractNumbers
//	     → AdjacentNumbers (part 1) / ResolveGear (part 2)
//
// Every gear is resolved independently against the full, unmodified list of
// numbers, so a number touching two gears counts toward both.
//
// Complexity:
//
//   - ExtractNumbers:   O(W×H).
//   - AdjacentNumbers:  O(S + D), S symbols and D digit cells.
//   - GearRatioSum:     O(G × D), G gear symbols.
//
// Errors:
//
//   - ErrMalformedInput:    a digit cell failed conversion.
//   - ErrMissingCoordinate: a digit cell of a number is absent from the digit map.
//
// Both signal internal inconsistency; the whole computation is aborted.
package schematic
