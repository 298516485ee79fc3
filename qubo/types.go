package qubo

import (
	"fmt"
	"sort"
)

// HeightFunc returns the altitude f(x, y). It must be pure: the builder
// evaluates every coordinate in [0, n) × [0, n) exactly once.
// (*landscape.Landscape).Height satisfies this signature.
type HeightFunc func(x, y int) (float64, error)

// HeightFuncOf adapts an infallible function to a HeightFunc.
func HeightFuncOf(f func(x, y int) float64) HeightFunc {
	return func(x, y int) (float64, error) { return f(x, y), nil }
}

// Variable indexes a binary variable: [0, n-1) are x-bits, [n-1, 2(n-1)) are y-bits.
type Variable int

// Pair is an unordered pair of variables stored canonically with I ≤ J.
// I == J denotes a linear (diagonal) term.
type Pair struct {
	I, J Variable
}

// NewPair returns the canonical pair for {a, b}.
func NewPair(a, b Variable) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{I: a, J: b}
}

// Entry is a single non-zero coefficient, as handed to a sampler.
type Entry struct {
	I, J  Variable
	Value float64
}

// String renders the entry as "(i,j)=value".
func (e Entry) String() string {
	return fmt.Sprintf("(%d,%d)=%g", e.I, e.J, e.Value)
}

// QUBO is a constructed problem instance. It is immutable after Build returns.
//   - size is n, the side length of the encoded landscape.
//   - terms maps canonical pairs to non-zero coefficients; absent pairs are zero.
//   - offset is f(0, 0), kept outside the coefficients.
type QUBO struct {
	size   int
	terms  map[Pair]float64
	offset float64
	bias   float64 // effective encoding bias
	cross  CrossTerm
	axes   BiasAxes
}

// Size returns n, the side length of the encoded landscape.
func (q *QUBO) Size() int { return q.size }

// NumVariables returns 2·(n-1).
func (q *QUBO) NumVariables() int { return 2 * (q.size - 1) }

// XVar returns the variable encoding bit i of the x coordinate.
func (q *QUBO) XVar(i int) Variable { return Variable(i) }

// YVar returns the variable encoding bit j of the y coordinate.
func (q *QUBO) YVar(j int) Variable { return Variable(q.size - 1 + j) }

// Label names a variable as "x<i>" or "y<j>".
func (q *QUBO) Label(v Variable) string {
	width := Variable(q.size - 1)
	if v < width {
		return fmt.Sprintf("x%d", v)
	}

	return fmt.Sprintf("y%d", v-width)
}

// Offset returns the constant f(0, 0). Absolute energies are Energy + Offset.
func (q *QUBO) Offset() float64 { return q.offset }

// EncodingBias returns the penalty the instance was built with.
func (q *QUBO) EncodingBias() float64 { return q.bias }

// CrossTerm returns the pair-coefficient formula the instance was built with.
func (q *QUBO) CrossTerm() CrossTerm { return q.cross }

// BiasAxes returns which axes received the encoding penalty.
func (q *QUBO) BiasAxes() BiasAxes { return q.axes }

// Coefficient returns Q[a,b] (order-insensitive); absent pairs are zero.
func (q *QUBO) Coefficient(a, b Variable) float64 {
	return q.terms[NewPair(a, b)]
}

// Len returns the number of non-zero coefficients.
func (q *QUBO) Len() int { return len(q.terms) }

// sortPairs orders pairs by I then J.
func sortPairs(ps []Pair) {
	sort.Slice(ps, func(a, b int) bool {
		if ps[a].I != ps[b].I {
			return ps[a].I < ps[b].I
		}
		return ps[a].J < ps[b].J
	})
}
