package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/beartooth/landscape"
	"github.com/katalvlaran/beartooth/qubo"
)

// config file with grid and encoding parameters
var ConfigFlag = cli.StringFlag{
	Name:  "config",
	Usage: "JSON file with \"grid\" and optional encoding parameters",
	Value: "",
}

var BiasFlag = cli.Float64Flag{
	Name:  "bias",
	Usage: "penalty added to invalid unary encodings",
	Value: qubo.DefaultEncodingBias,
}

var AutoBiasFlag = cli.BoolFlag{
	Name:  "auto-bias",
	Usage: "derive the penalty from the altitude range",
}

var CrossFlag = cli.StringFlag{
	Name:  "cross",
	Usage: "pair-coefficient formula: finite-difference or literal",
	Value: "",
}

var BiasAxesFlag = cli.StringFlag{
	Name:  "bias-axes",
	Usage: "axes receiving the penalty: both or x",
	Value: "",
}

var FormatFlag = cli.StringFlag{
	Name:  "format",
	Usage: "output format: text, json or dense",
	Value: "text",
}

var XFlag = cli.IntFlag{
	Name:  "x",
	Usage: "x coordinate",
}

var YFlag = cli.IntFlag{
	Name:  "y",
	Usage: "y coordinate",
}

var encodingFlags = []cli.Flag{
	ConfigFlag,
	BiasFlag,
	AutoBiasFlag,
	CrossFlag,
	BiasAxesFlag,
}

var LandscapeCommand = cli.Command{
	Action: landscapeAction,
	Name:   "landscape",
	Usage:  "prints the altitude grid",
	Flags:  []cli.Flag{ConfigFlag},
}

var QuboCommand = cli.Command{
	Action: quboAction,
	Name:   "qubo",
	Usage:  "prints the QUBO coefficients",
	Flags:  append(append([]cli.Flag{}, encodingFlags...), FormatFlag),
	Description: `
The beartooth qubo command lists every non-zero coefficient Q[i,j] with
i <= j. Variables x0..x(n-2) encode the x coordinate and y0..y(n-2) the y
coordinate in unary. The constant offset f(0,0) is reported separately.
With --format dense the coefficients are printed as the upper-triangular
matrix, one bracketed row per variable.
`,
}

var EnergyCommand = cli.Command{
	Action: energyAction,
	Name:   "energy",
	Usage:  "evaluates the energy of the encoding of a coordinate",
	Flags:  append(append([]cli.Flag{}, encodingFlags...), XFlag, YFlag),
}

// loadConfig reads --config, or returns the zero Config (Beartooth defaults).
func loadConfig(ctx *cli.Context) (landscape.Config, error) {
	path := ctx.String(ConfigFlag.Name)
	if path == "" {
		return landscape.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return landscape.Config{}, err
	}
	defer f.Close()

	return landscape.LoadConfig(f)
}

// build resolves the landscape and builder options from the config file and
// flags (flags win) and constructs the QUBO.
func build(ctx *cli.Context) (*landscape.Landscape, *qubo.QUBO, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	l, err := cfg.Landscape()
	if err != nil {
		return nil, nil, err
	}

	if ctx.IsSet(CrossFlag.Name) {
		cfg.CrossTerm = ctx.String(CrossFlag.Name)
	}
	if ctx.IsSet(BiasAxesFlag.Name) {
		cfg.BiasAxes = ctx.String(BiasAxesFlag.Name)
	}
	cross, err := qubo.ParseCrossTerm(cfg.CrossTerm)
	if err != nil {
		return nil, nil, err
	}
	axes, err := qubo.ParseBiasAxes(cfg.BiasAxes)
	if err != nil {
		return nil, nil, err
	}
	opts := []qubo.Option{qubo.WithCrossTerm(cross), qubo.WithBiasAxes(axes)}

	switch {
	case ctx.IsSet(BiasFlag.Name):
		bias := ctx.Float64(BiasFlag.Name)
		if math.IsNaN(bias) || math.IsInf(bias, 0) || bias < 0 {
			return nil, nil, fmt.Errorf("--bias must be finite and non-negative, got %g", bias)
		}
		opts = append(opts, qubo.WithEncodingBias(bias))
	case ctx.Bool(AutoBiasFlag.Name) || cfg.AutoBias:
		opts = append(opts, qubo.WithAutoEncodingBias())
	case cfg.EncodingBias != nil:
		if *cfg.EncodingBias < 0 {
			return nil, nil, fmt.Errorf("%w: encodingBias must be non-negative", landscape.ErrConfig)
		}
		opts = append(opts, qubo.WithEncodingBias(*cfg.EncodingBias))
	}

	q, err := qubo.Build(l.Size(), l.Height, opts...)
	if err != nil {
		return nil, nil, err
	}

	return l, q, nil
}

func landscapeAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	l, err := cfg.Landscape()
	if err != nil {
		return err
	}
	w := ctx.App.Writer
	for _, row := range l.Rows() {
		for _, v := range row {
			fmt.Fprintf(w, "%3g", v)
		}
		fmt.Fprintln(w)
	}

	return nil
}

type jsonEntry struct {
	I     int     `json:"i"`
	J     int     `json:"j"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type jsonQubo struct {
	Size      int         `json:"size"`
	Variables int         `json:"variables"`
	Offset    float64     `json:"offset"`
	Bias      float64     `json:"encodingBias"`
	CrossTerm string      `json:"crossTerm"`
	BiasAxes  string      `json:"biasAxes"`
	Entries   []jsonEntry `json:"entries"`
}

func quboAction(ctx *cli.Context) error {
	_, q, err := build(ctx)
	if err != nil {
		return err
	}
	w := ctx.App.Writer

	switch ctx.String(FormatFlag.Name) {
	case "text":
		fmt.Fprintf(w, "# n=%d variables=%d offset=%g bias=%g cross=%s bias-axes=%s\n",
			q.Size(), q.NumVariables(), q.Offset(), q.EncodingBias(), q.CrossTerm(), q.BiasAxes())
		for _, e := range q.Entries() {
			fmt.Fprintf(w, "%s %s %g\n", q.Label(e.I), q.Label(e.J), e.Value)
		}
		return nil
	case "json":
		out := jsonQubo{
			Size:      q.Size(),
			Variables: q.NumVariables(),
			Offset:    q.Offset(),
			Bias:      q.EncodingBias(),
			CrossTerm: q.CrossTerm().String(),
			BiasAxes:  q.BiasAxes().String(),
			Entries:   []jsonEntry{},
		}
		for _, e := range q.Entries() {
			out.Entries = append(out.Entries, jsonEntry{
				I:     int(e.I),
				J:     int(e.J),
				Label: q.Label(e.I) + "*" + q.Label(e.J),
				Value: e.Value,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "dense":
		d, err := q.Dense()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "# variables=%d offset=%g\n", q.NumVariables(), q.Offset())
		fmt.Fprint(w, d)
		return nil
	default:
		return fmt.Errorf("unknown format %q", ctx.String(FormatFlag.Name))
	}
}

func energyAction(ctx *cli.Context) error {
	l, q, err := build(ctx)
	if err != nil {
		return err
	}
	x, y := ctx.Int(XFlag.Name), ctx.Int(YFlag.Name)
	alt, err := l.Height(x, y)
	if err != nil {
		return err
	}
	e, err := q.EnergyAt(x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "altitude=%g energy=%g\n", alt, e)

	return nil
}
