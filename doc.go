// Package beartooth encodes an altitude landscape as a QUBO instance for a
// sampling-based solver, so that samples behave like water flowing to the
// low points of the map.
//
// The landscape is a discrete n×n grid of altitudes f(x, y). Each coordinate
// is unary encoded over n-1 bits, and the coefficients telescope f so that
// a sample encoding (x, y) has energy f(x, y) − f(0, 0). Samples that do not
// encode a location are pushed up by an encoding penalty.
//
// Under the hood, everything is organized under three subpackages:
//
//	landscape/ — immutable n×n altitude grid, the Beartooth demo map, JSON config
//	qubo/      — the builder, energies, unary encoding and Ising conversion
//	matrix/    — dense row-major coefficient storage for square handoffs
//
// The beartooth command (cmd/beartooth) prints the landscape, the
// coefficients, or the energy of a coordinate.
//
// Solving the instance and decoding samples are left to the caller's sampler.
//
//	go get github.com/katalvlaran/beartooth
package beartooth
