package landscape

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// New constructs a Landscape from a non-empty, square 2D slice indexed
// values[x][y]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNonSquare if the grid is
// not n×n and ErrNaNInf if any cell is not finite.
// Complexity: O(n²) time and memory.
func New(values [][]float64) (*Landscape, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values[0])
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNonRectangular
		}
	}
	if len(values) != n {
		return nil, ErrNonSquare
	}
	// Deep copy to prevent external mutation
	cells := make([][]float64, n)
	for x := 0; x < n; x++ {
		for y, v := range values[x] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, ErrNaNInf)
			}
		}
		cells[x] = make([]float64, n)
		copy(cells[x], values[x])
	}

	return &Landscape{size: n, cells: cells}, nil
}

// From2DInts is a convenience constructor for integer altitude tables.
func From2DInts(values [][]int) (*Landscape, error) {
	rows := lo.Map(values, func(row []int, _ int) []float64 {
		return lo.Map(row, func(v int, _ int) float64 { return float64(v) })
	})

	return New(rows)
}

// Size returns n, the side length of the grid.
func (l *Landscape) Size() int { return l.size }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (l *Landscape) InBounds(x, y int) bool {
	return x >= 0 && x < l.size && y >= 0 && y < l.size
}

// Height returns f(x, y). Its signature matches qubo.HeightFunc, so the
// method value l.Height can be handed to the builder directly.
// Complexity: O(1).
func (l *Landscape) Height(x, y int) (float64, error) {
	if !l.InBounds(x, y) {
		return 0, fmt.Errorf("Height(%d,%d): %w", x, y, ErrOutOfRange)
	}

	return l.cells[x][y], nil
}

// Range returns the minimum and maximum altitude.
// Complexity: O(n²).
func (l *Landscape) Range() (lowest, highest float64) {
	all := lo.Flatten(l.cells)

	return lo.Min(all), lo.Max(all)
}

// Rows returns a deep copy of the grid, indexed [x][y].
func (l *Landscape) Rows() [][]float64 {
	return lo.Map(l.cells, func(row []float64, _ int) []float64 {
		return append([]float64(nil), row...)
	})
}
