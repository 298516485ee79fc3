package landscape

// Landscape is a square altitude grid. It is immutable once built.
// Size is n; Cells[x][y] holds f(x, y) for x, y in [0, n).
type Landscape struct {
	size  int
	cells [][]float64
}

// Config describes a landscape together with the QUBO encoding parameters
// the demo CLI applies to it. Zero values select the builder defaults; a nil
// Grid selects the built-in Beartooth landscape.
type Config struct {
	// Grid holds altitudes indexed Grid[x][y].
	Grid [][]float64 `mapstructure:"grid"`
	// EncodingBias overrides the default penalty for non-unary bit patterns.
	EncodingBias *float64 `mapstructure:"encodingBias"`
	// AutoBias derives the penalty from the altitude range instead.
	AutoBias bool `mapstructure:"autoBias"`
	// CrossTerm selects the pair-coefficient formula ("finite-difference" or "literal").
	CrossTerm string `mapstructure:"crossTerm"`
	// BiasAxes selects which axes receive the penalty ("both" or "x").
	BiasAxes string `mapstructure:"biasAxes"`
}
