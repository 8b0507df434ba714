package cmd

import (
	"github.com/spf13/cobra"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Conductor stress curves over a bend-radius sweep",
	Long: `Compute conductor stress in a mooring cable as a function of
minimum bend radius.

Subcommands:
  curves  - Stress curves for pure bending and each axial load case

The model superposes bending stress (σ_b = E·κ·y) and axial stress
(σ_ax = T·f_share / (n·A_c)) along a single direction and reports the
magnitude of the total.`,
}

func init() {
	rootCmd.AddCommand(stressCmd)
}
