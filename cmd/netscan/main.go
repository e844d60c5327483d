package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/raeveira/netscan/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	r, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("Could not run scan: %s\n", err)
	}
}
