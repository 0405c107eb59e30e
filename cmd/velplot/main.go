// velplot - plots for molecular-dynamics simulation outputs
//
// velplot reads the observation log written by a simulation run and renders
// potential energy, kinetic energy, total energy and temperature over time.
package main

import (
	"os"

	"github.com/ccollicutt/velplot/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
