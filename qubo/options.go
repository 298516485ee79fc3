package qubo

import (
	"fmt"
	"math"
)

// CrossTerm selects the formula for the x/y pair coefficients.
type CrossTerm int

const (
	// CrossFiniteDifference uses the four-point second difference
	// f(i+1,j+1) − f(i,j+1) − f(i+1,j) + f(i,j). With it, every valid
	// encoding of (x, y) has energy exactly f(x, y) − f(0, 0).
	CrossFiniteDifference CrossTerm = iota
	// CrossLiteral uses f(i+1,j+1) − 2·f(i,j+1) + f(i,j), the formula as it
	// is written in the demo's notes. It agrees with CrossFiniteDifference
	// only where f(i+1,j) == f(i,j+1).
	CrossLiteral
)

// BiasAxes selects which coordinate encodings receive the unary penalty.
type BiasAxes int

const (
	// BiasBoth penalizes invalid x and y encodings.
	BiasBoth BiasAxes = iota
	// BiasXOnly penalizes invalid x encodings only; y validity then rests on
	// the landscape terms alone.
	BiasXOnly
)

// Defaults (single source of truth).
const (
	// DefaultEncodingBias is the penalty used by the Beartooth demo.
	DefaultEncodingBias = 5.0
	// DefaultCrossTerm is the pair-coefficient formula.
	DefaultCrossTerm = CrossFiniteDifference
	// DefaultBiasAxes selects the penalized axes.
	DefaultBiasAxes = BiasBoth
)

const (
	panicBiasInvalid      = "qubo: WithEncodingBias: bias must be finite, non-negative"
	panicCrossTermInvalid = "qubo: WithCrossTerm: unknown cross-term mode"
	panicBiasAxesInvalid  = "qubo: WithBiasAxes: unknown axes selection"
)

// Option mutates builder options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective builder configuration.
type Options struct {
	bias     float64
	autoBias bool
	cross    CrossTerm
	axes     BiasAxes
}

// WithEncodingBias sets the penalty B added to invalid unary patterns.
// B should exceed max(f) − min(f) for the penalty to dominate the landscape.
// Zero disables the penalty. Clears WithAutoEncodingBias.
func WithEncodingBias(bias float64) Option {
	if math.IsNaN(bias) || math.IsInf(bias, 0) || bias < 0 {
		panic(panicBiasInvalid)
	}

	return func(o *Options) {
		o.bias = bias
		o.autoBias = false
	}
}

// WithAutoEncodingBias derives the penalty from the sampled landscape as
// (max f − min f) + 1.
func WithAutoEncodingBias() Option {
	return func(o *Options) { o.autoBias = true }
}

// WithCrossTerm selects the pair-coefficient formula.
func WithCrossTerm(c CrossTerm) Option {
	if c != CrossFiniteDifference && c != CrossLiteral {
		panic(panicCrossTermInvalid)
	}

	return func(o *Options) { o.cross = c }
}

// WithBiasAxes selects which axes receive the encoding penalty.
func WithBiasAxes(a BiasAxes) Option {
	if a != BiasBoth && a != BiasXOnly {
		panic(panicBiasAxesInvalid)
	}

	return func(o *Options) { o.axes = a }
}

// gatherOptions applies user setters over the defaults. Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		bias:  DefaultEncodingBias,
		cross: DefaultCrossTerm,
		axes:  DefaultBiasAxes,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// String returns the configuration name of c.
func (c CrossTerm) String() string {
	switch c {
	case CrossFiniteDifference:
		return "finite-difference"
	case CrossLiteral:
		return "literal"
	default:
		return fmt.Sprintf("CrossTerm(%d)", int(c))
	}
}

// ParseCrossTerm maps a configuration name to a CrossTerm.
// The empty string selects DefaultCrossTerm.
func ParseCrossTerm(s string) (CrossTerm, error) {
	switch s {
	case "":
		return DefaultCrossTerm, nil
	case CrossFiniteDifference.String():
		return CrossFiniteDifference, nil
	case CrossLiteral.String():
		return CrossLiteral, nil
	default:
		return 0, fmt.Errorf("%w: cross term %q", ErrInvalidInput, s)
	}
}

// String returns the configuration name of a.
func (a BiasAxes) String() string {
	switch a {
	case BiasBoth:
		return "both"
	case BiasXOnly:
		return "x"
	default:
		return fmt.Sprintf("BiasAxes(%d)", int(a))
	}
}

// ParseBiasAxes maps a configuration name to a BiasAxes.
// The empty string selects DefaultBiasAxes.
func ParseBiasAxes(s string) (BiasAxes, error) {
	switch s {
	case "":
		return DefaultBiasAxes, nil
	case BiasBoth.String():
		return BiasBoth, nil
	case BiasXOnly.String():
		return BiasXOnly, nil
	default:
		return 0, fmt.Errorf("%w: bias axes %q", ErrInvalidInput, s)
	}
}
