package runner

import (
	"github.com/projectdiscovery/gologger"

	"github.com/raeveira/netscan/pkg/version"
)

var banner = `
   ____  ___  / /________________ _____
  / __ \/ _ \/ __/ ___/ ___/ __  / __ \
 / / / /  __/ /_(__  ) /__/ /_/ / / / /
/_/ /_/\___/\__/____/\___/\__,_/_/ /_/
`

// showBanner prints the project banner and version to the screen.
func showBanner() {
	gologger.Print().Msgf("%s  %s\n", banner, version.Version)
	gologger.Print().Msgf("\t\tgithub.com/raeveira/netscan\n\n")
}
