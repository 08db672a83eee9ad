// Package grid provides a sparse 2D character grid keyed by integer coordinates.
//
// What:
//
//   - Coord is a comparable (x,y) value with 8-directional neighbor moves
//     and component-wise Add/Sub.
//   - Grid maps Coord → rune, built once from lines of text, and tracks the
//     largest column (MaxX) and row (MaxY) index seen while scanning.
//
// Conventions:
//
//   - x grows to the right (East), y grows downward (South).
//   - Neighbors() returns N, NE, E, SE, S, SW, W, NW in that order.
//   - Ragged text is allowed: a cell missing from a short row is simply absent.
//     Contains reports population, InBounds reports the rectangular bound
//     [0,MaxX]×[0,MaxY].
//
// Complexity:
//
//   - Build:     O(C) time and memory, C = number of characters.
//   - Contains:  O(1).
//   - Cells:     O(C·log C) (row-major sort).
//
// Errors:
//
//   - ErrDuplicateCoordinate: the same coordinate would be written twice
//     during Build. Signals a scanning bug, never expected on real input.
package grid
