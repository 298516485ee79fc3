package qubo

import (
	"fmt"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/beartooth/matrix"
)

// Entries returns the non-zero coefficients sorted by I then J. This is the
// sparse shape a sampler consumes.
// Complexity: O(k log k) for k coefficients.
func (q *QUBO) Entries() []Entry {
	keys := lo.Keys(q.terms)
	sortPairs(keys)

	return lo.Map(keys, func(p Pair, _ int) Entry {
		return Entry{I: p.I, J: p.J, Value: q.terms[p]}
	})
}

// validateBits checks len(bits) == NumVariables and every bit is 0 or 1.
func (q *QUBO) validateBits(bits []uint8) error {
	if len(bits) != q.NumVariables() {
		return fmt.Errorf("assignment has %d bits, want %d: %w", len(bits), q.NumVariables(), ErrInvalidInput)
	}
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("bit %d = %d: %w", i, b, ErrInvalidInput)
		}
	}

	return nil
}

// Energy returns Σ Q[i,j]·b_i·b_j over the coefficients, excluding Offset.
// Summation follows Entries order, so the result is deterministic.
//
// Errors: ErrInvalidInput when bits has the wrong length or a value other
// than 0 or 1.
func (q *QUBO) Energy(bits []uint8) (float64, error) {
	if err := q.validateBits(bits); err != nil {
		return 0, fmt.Errorf("Energy: %w", err)
	}

	return lo.SumBy(q.Entries(), func(e Entry) float64 {
		if bits[e.I] == 1 && bits[e.J] == 1 {
			return e.Value
		}
		return 0
	}), nil
}

// EnergyAt returns the absolute energy (Energy + Offset) of the valid
// encoding of (x, y). With CrossFiniteDifference it equals f(x, y).
func (q *QUBO) EnergyAt(x, y int) (float64, error) {
	bits, err := Assignment(q.size, x, y)
	if err != nil {
		return 0, fmt.Errorf("EnergyAt(%d,%d): %w", x, y, err)
	}
	e, err := q.Energy(bits)
	if err != nil {
		return 0, err
	}

	return e + q.offset, nil
}

// Dense returns the coefficients as an upper-triangular NumVariables ×
// NumVariables matrix (Q[i,j] at row min(i,j), column max(i,j)). A problem
// without variables yields a 0×0 matrix.
func (q *QUBO) Dense() (*matrix.Dense, error) {
	d, err := matrix.NewSquare(q.NumVariables())
	if err != nil {
		return nil, fmt.Errorf("Dense: %w", err)
	}
	for _, e := range q.Entries() {
		if err = d.Add(int(e.I), int(e.J), e.Value); err != nil {
			return nil, fmt.Errorf("Dense: %w", err)
		}
	}

	return d, nil
}

// SymDense returns the symmetric form S with S[i,i] = Q[i,i] and
// S[i,j] = S[j,i] = Q[i,j]/2, so that xᵀSx equals Energy for binary x.
// It returns nil when the problem has no variables.
func (q *QUBO) SymDense() *mat.SymDense {
	k := q.NumVariables()
	if k == 0 {
		return nil
	}
	s := mat.NewSymDense(k, nil)
	for _, e := range q.Entries() {
		if e.I == e.J {
			s.SetSym(int(e.I), int(e.J), e.Value)
		} else {
			s.SetSym(int(e.I), int(e.J), e.Value/2)
		}
	}

	return s
}

// EnergyDense computes Energy through the symmetric form as xᵀSx. It agrees
// with Energy up to floating-point summation order.
func (q *QUBO) EnergyDense(bits []uint8) (float64, error) {
	if err := q.validateBits(bits); err != nil {
		return 0, fmt.Errorf("EnergyDense: %w", err)
	}
	if len(bits) == 0 {
		return 0, nil
	}
	x := mat.NewVecDense(len(bits), lo.Map(bits, func(b uint8, _ int) float64 { return float64(b) }))

	return mat.Inner(x, q.SymDense(), x), nil
}
