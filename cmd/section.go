package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cable cross-section feasibility checks",
	Long: `Check whether the insulated conductors fit inside the cable
jacket core with the required clearance.

Subcommands:
  fit  - Compute core geometry, default offset, and fit violations

Violations are advisory only; the stress curves can always be computed
from whatever offset the layout produces.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
