package qubo

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Build constructs the QUBO for an n×n landscape f.
//
// Implementation:
//   - Stage 1: validate n ≥ 1 and f != nil.
//   - Stage 2: sample f on every coordinate of [0, n) × [0, n) once; any
//     failure aborts here, before a coefficient is written.
//   - Stage 3: telescoping pass (linear x/y steps, then x/y pair terms).
//   - Stage 4: encoding-penalty pass over adjacent bits of each biased axis.
//   - Stage 5: drop coefficients that cancelled to exactly zero.
//
// Behavior highlights:
//   - n == 1 yields an instance with zero variables and no coefficients.
//   - f(0, 0) is recorded as Offset, not folded into the coefficients.
//
// Errors:
//   - ErrInvalidInput for n < 1 or a nil f.
//   - ErrDomain when f fails, panics or returns a non-finite value.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Build(n int, f HeightFunc, opts ...Option) (*QUBO, error) {
	if n < 1 {
		return nil, fmt.Errorf("Build(n=%d): grid size must be >= 1: %w", n, ErrInvalidInput)
	}
	if f == nil {
		return nil, fmt.Errorf("Build(n=%d): nil height function: %w", n, ErrInvalidInput)
	}
	o := gatherOptions(opts...)

	h, err := sample(n, f)
	if err != nil {
		return nil, fmt.Errorf("Build(n=%d): %w", n, err)
	}

	bias := o.bias
	if o.autoBias {
		bias = spread(h) + 1
	}

	q := &QUBO{
		size:   n,
		terms:  make(map[Pair]float64, 2*(n-1)+(n-1)*(n-1)),
		offset: h[0][0],
		bias:   bias,
		cross:  o.cross,
		axes:   o.axes,
	}

	m := n - 1 // bits per coordinate
	var i, j int
	for i = 0; i < m; i++ {
		q.add(q.XVar(i), q.XVar(i), h[i+1][0]-h[i][0])
		q.add(q.YVar(i), q.YVar(i), h[0][i+1]-h[0][i])
	}
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			q.add(q.XVar(i), q.YVar(j), crossTerm(o.cross, h, i, j))
		}
	}

	for i = 1; i < m; i++ {
		q.add(q.XVar(i-1), q.XVar(i), -bias)
		q.add(q.XVar(i), q.XVar(i), bias)
		if o.axes == BiasBoth {
			q.add(q.YVar(i-1), q.YVar(i), -bias)
			q.add(q.YVar(i), q.YVar(i), bias)
		}
	}

	for p, v := range q.terms {
		if v == 0 {
			delete(q.terms, p)
		}
	}

	return q, nil
}

// add accumulates v into Q[a,b]. Only Build calls it.
func (q *QUBO) add(a, b Variable, v float64) {
	q.terms[NewPair(a, b)] += v
}

// crossTerm evaluates the pair coefficient for (xi, yj) on sampled heights.
func crossTerm(mode CrossTerm, h [][]float64, i, j int) float64 {
	if mode == CrossLiteral {
		return h[i+1][j+1] - h[i][j+1] - h[i][j+1] + h[i][j]
	}

	return h[i+1][j+1] - h[i][j+1] - h[i+1][j] + h[i][j]
}

// sample evaluates f on [0, n) × [0, n) into h[x][y]. Each value is read up
// to four times by the passes, so f is called exactly once per coordinate.
func sample(n int, f HeightFunc) ([][]float64, error) {
	h := make([][]float64, n)
	var err error
	for x := 0; x < n; x++ {
		h[x] = make([]float64, n)
		for y := 0; y < n; y++ {
			if h[x][y], err = evalHeight(f, x, y); err != nil {
				return nil, err
			}
		}
	}

	return h, nil
}

// evalHeight calls f once, converting errors, panics and non-finite results
// into ErrDomain.
func evalHeight(f HeightFunc, x, y int) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("f(%d,%d) panicked: %v: %w", x, y, r, ErrDomain)
		}
	}()

	v, err = f(x, y)
	if err != nil {
		return 0, fmt.Errorf("f(%d,%d): %w: %w", x, y, ErrDomain, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("f(%d,%d) = %v: %w", x, y, v, ErrDomain)
	}

	return v, nil
}

// spread returns max(h) − min(h).
func spread(h [][]float64) float64 {
	all := lo.Flatten(h)

	return lo.Max(all) - lo.Min(all)
}
