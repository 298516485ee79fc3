package qubo

import "fmt"

// Encode returns the unary (thermometer) code of k over width bits: the
// first k bits are 1, the rest 0. k must lie in [0, width].
//
//	k   width=3
//	0   000
//	1   100
//	2   110
//	3   111
func Encode(k, width int) ([]uint8, error) {
	if width < 0 || k < 0 || k > width {
		return nil, fmt.Errorf("Encode(%d, %d): %w", k, width, ErrInvalidInput)
	}
	bits := make([]uint8, width)
	for i := 0; i < k; i++ {
		bits[i] = 1
	}

	return bits, nil
}

// IsUnary reports whether bits is a valid thermometer code: a (possibly
// empty) run of 1s followed only by 0s.
func IsUnary(bits []uint8) bool {
	seenZero := false
	for _, b := range bits {
		switch b {
		case 0:
			seenZero = true
		case 1:
			if seenZero {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// Assignment returns the full variable vector [x-bits, y-bits] encoding the
// coordinate (x, y) on an n×n landscape.
func Assignment(n, x, y int) ([]uint8, error) {
	if n < 1 {
		return nil, fmt.Errorf("Assignment(n=%d): %w", n, ErrInvalidInput)
	}
	xb, err := Encode(x, n-1)
	if err != nil {
		return nil, fmt.Errorf("Assignment(n=%d) x: %w", n, err)
	}
	yb, err := Encode(y, n-1)
	if err != nil {
		return nil, fmt.Errorf("Assignment(n=%d) y: %w", n, err)
	}

	return append(xb, yb...), nil
}
