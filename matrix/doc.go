// Package matrix provides the dense coefficient storage used to hand a QUBO
// instance to a sampler that expects a square matrix.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Add that
//     return sentinel errors instead of panicking and reject NaN/±Inf.
//   - Validators (ValidateSquare, ValidateUpperTriangular) shared by callers
//     that need to assert the shape of a coefficient matrix.
//
// Dense matrices cost O(n²) memory; they are meant for the small problem
// sizes that fit on a sampler, not for large sparse systems.
package matrix
