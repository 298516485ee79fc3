package qubo

import (
	"fmt"

	"github.com/samber/lo"
)

// Ising is the spin form of a QUBO: with s_i = 2·b_i − 1 ∈ {−1, +1},
//
//	E(s) = Σ H[i]·s_i + Σ_{i<j} J[i,j]·s_i·s_j + Offset
//
// equals the QUBO Energy of b.
type Ising struct {
	H      []float64        // field per variable
	J      map[Pair]float64 // couplers, I < J
	Offset float64          // constant to add to every spin energy
}

// ToIsing converts the coefficients with b = (1 + s)/2:
//   - Q[i,i]·b_i contributes Q[i,i]/2 to H[i] and to Offset;
//   - Q[i,j]·b_i·b_j contributes Q[i,j]/4 to J[i,j], H[i], H[j] and Offset.
//
// The QUBO's own Offset (f(0, 0)) is not included.
func (q *QUBO) ToIsing() *Ising {
	is := &Ising{
		H: make([]float64, q.NumVariables()),
		J: make(map[Pair]float64),
	}
	for _, e := range q.Entries() {
		if e.I == e.J {
			is.H[e.I] += e.Value / 2
			is.Offset += e.Value / 2
			continue
		}
		quarter := e.Value / 4
		is.J[Pair{I: e.I, J: e.J}] = quarter
		is.H[e.I] += quarter
		is.H[e.J] += quarter
		is.Offset += quarter
	}

	return is
}

// Energy evaluates the spin energy including Offset.
//
// Errors: ErrInvalidInput when spins has the wrong length or a value other
// than −1 or +1.
func (is *Ising) Energy(spins []int8) (float64, error) {
	if len(spins) != len(is.H) {
		return 0, fmt.Errorf("Ising.Energy: %d spins, want %d: %w", len(spins), len(is.H), ErrInvalidInput)
	}
	for i, s := range spins {
		if s != -1 && s != 1 {
			return 0, fmt.Errorf("Ising.Energy: spin %d = %d: %w", i, s, ErrInvalidInput)
		}
	}

	e := is.Offset
	for i, h := range is.H {
		e += h * float64(spins[i])
	}
	couplers := lo.Keys(is.J)
	sortPairs(couplers)
	for _, p := range couplers {
		e += is.J[p] * float64(spins[p.I]) * float64(spins[p.J])
	}

	return e, nil
}
