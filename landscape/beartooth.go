package landscape

// beartoothGrid is the demo altitude table, indexed [x][y].
var beartoothGrid = [][]int{
	{4, 3, 2, 2, 3, 2, 3, 4, 4, 5},
	{3, 2, 1, 2, 2, 2, 2, 3, 4, 6},
	{3, 2, 0, 1, 2, 2, 3, 3, 5, 7},
	{3, 2, 1, 1, 2, 2, 3, 5, 7, 8},
	{3, 2, 1, 2, 3, 4, 4, 6, 7, 7},
	{2, 2, 3, 4, 4, 5, 6, 7, 6, 5},
	{2, 3, 3, 4, 5, 7, 7, 6, 5, 4},
	{4, 5, 5, 6, 6, 9, 8, 7, 5, 4},
	{5, 6, 6, 7, 8, 8, 7, 7, 6, 5},
	{7, 7, 8, 9, 9, 9, 8, 8, 6, 5},
}

// Beartooth returns the built-in 10×10 demo landscape. Its lowest point is
// (2, 2) at altitude 0.
func Beartooth() *Landscape {
	l, err := From2DInts(beartoothGrid)
	if err != nil {
		panic(err) // static table; unreachable
	}

	return l
}
