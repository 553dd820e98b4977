// acro looks up acronyms in a YAML reference catalog.
// Exact and alias lookups, fuzzy suggestions, edits from the command line
// and an interactive browser.
package main

import (
	"os"

	"github.com/corey/acro/cmd/acro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
