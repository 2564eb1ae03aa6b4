// Command hmfc type-checks and elaborates programs from the built-in
// HMF example battery. Parsing concrete syntax is out of scope for
// the engine this CLI drives; hmfc selects terms by name instead.
package main

import (
	"os"

	"github.com/hmf-lang/hmfc/cmd/hmfc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
