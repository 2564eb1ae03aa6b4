package commands

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// version is the engine's own release version. It is parsed with
// semver each time `hmfc version` runs, so a malformed bump fails
// loudly there rather than silently at release time.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hmfc version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.NewVersion(version)
		if err != nil {
			return fmt.Errorf("malformed build version %q: %w", version, err)
		}
		fmt.Printf("hmfc %s\n", v.String())
		return nil
	},
}
