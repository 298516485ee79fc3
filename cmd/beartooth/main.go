// Command beartooth prints the QUBO encoding of an altitude landscape so it
// can be handed to a sampler. Samples that encode a location have energy
// equal to the altitude there; invalid encodings are penalized.
//
// Usage:
//
//	beartooth landscape [--config file.json]
//	beartooth qubo [--config file.json] [--bias 5 | --auto-bias] [--cross finite-difference|literal] [--bias-axes both|x] [--format text|json]
//	beartooth energy --x 2 --y 2 [...same encoding flags]
//
// Without --config the built-in 10×10 Beartooth landscape is used.
package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "beartooth"
	app.Usage = "encode an altitude landscape as a QUBO instance"
	app.Commands = []cli.Command{
		LandscapeCommand,
		QuboCommand,
		EnergyCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
