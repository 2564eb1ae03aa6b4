package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmf-lang/hmfc/internal/examples"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in example battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range examples.All {
			marker := " "
			if p.WantError {
				marker = colorize("33", "!")
			}
			fmt.Printf("%s %-20s %s\n", marker, p.Name, p.Description)
		}
		return nil
	},
}
