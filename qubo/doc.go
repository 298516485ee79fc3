// Package qubo builds a Quadratic Unconstrained Binary Optimization instance
// whose low-energy assignments are the low points of an n×n landscape.
//
// What:
//
//   - Coordinates are unary ("thermometer") encoded: x in [0, n) becomes n-1
//     bits whose first x bits are 1. The instance has 2·(n-1) variables laid
//     out as [x0 .. x_{n-2}, y0 .. y_{n-2}].
//   - Build telescopes f into coefficients so that for every valid encoding
//     of (x, y) the energy equals f(x, y) − f(0, 0):
//
//     Q[xi,xi] += f(i+1, 0) − f(i, 0)
//     Q[yj,yj] += f(0, j+1) − f(0, j)
//     Q[xi,yj] += f(i+1, j+1) − f(i, j+1) − f(i+1, j) + f(i, j)
//
//   - Penalty terms Q[x_{i-1},x_i] −= B and Q[x_i,x_i] += B add at least B
//     to every assignment that is not a valid unary pattern.
//   - The constant f(0, 0) is kept aside as Offset and never folded into
//     the coefficients.
//
// Options:
//
//   - WithEncodingBias / WithAutoEncodingBias: penalty B.
//   - WithCrossTerm: CrossFiniteDifference (default) or CrossLiteral, the
//     documented variant f(i+1, j+1) − 2·f(i, j+1) + f(i, j).
//   - WithBiasAxes: BiasBoth (default) or BiasXOnly.
//
// Errors:
//
//   - ErrInvalidInput: n < 1, nil height function, malformed assignment.
//   - ErrDomain: the height function failed, panicked or returned NaN/±Inf
//     for a coordinate in range.
//
// Complexity:
//
//   - Build: O(n²) evaluations of f (each coordinate exactly once) and
//     O(n²) coefficient writes.
package qubo
