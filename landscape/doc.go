// Package landscape holds the altitude grid that a QUBO instance encodes.
//
// What:
//
//   - Landscape wraps a square n×n grid of altitudes f(x, y) and is
//     immutable once built. Cells are indexed Cells[x][y].
//   - Height satisfies the height-function signature expected by the qubo
//     builder and fails with ErrOutOfRange outside [0, n) × [0, n).
//   - Beartooth returns the built-in 10×10 demo landscape.
//   - Config / DecodeConfig / LoadConfig read a landscape and its encoding
//     parameters from JSON.
//
// Complexity:
//
//   - New, From2DInts: O(n²) time and memory (deep copy).
//   - Height: O(1).
//   - Range: O(n²).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonSquare: rectangular but not n×n.
//   - ErrNaNInf: a cell holds NaN or ±Inf.
//   - ErrOutOfRange: Height queried outside the grid.
//   - ErrConfig: configuration could not be decoded.
package landscape
