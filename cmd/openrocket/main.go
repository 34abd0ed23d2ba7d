// Openrocket loads, validates and inspects OpenRocket rocket design
// documents (.ork files).
//
// Usage:
//
//	# Validate a design document
//	openrocket validate design.ork
//
//	# Show the component tree and simulations
//	openrocket info design.ork
//
//	# Resolve motors against a catalog while loading
//	openrocket info --motordb motors.db design.ork
//
//	# Import a YAML motor catalog
//	openrocket motors import --motordb motors.db catalog.yaml
package main

import (
	"os"

	"github.com/MatthewFletcher/openrocket/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
