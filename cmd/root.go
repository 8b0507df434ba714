package cmd

import (
	"fmt"
	"os"

	"github.com/nickraymond/streamlit-mooring-tools/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smcable",
	Short: "Smart Mooring Cable Stress Tool",
	Long: `smcable - Deeper Moorings Smart Mooring Cable Stress Tool

A CLI tool for checking conductor stress in mooring cables against
bend-radius and axial-tension design limits.

This tool helps cable designers perform:
  - Bending + axial stress curves over a bend-radius sweep
  - Allowable-stress guardrail comparison (strain-tied or direct MPa)
  - Helical lay projection and curvature amplification
  - Cross-section feasibility checks (conductor fit and clearance)

The stress model is linear-elastic, small-strain, uniaxial superposition.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   smcable v%-47s║\n", version.Version)
		fmt.Println("  ║   Smart Mooring Cable Stress Tool                         ║")
		fmt.Println("  ║   Deeper Moorings                                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking conductor stress in mooring cables")
		fmt.Println("  against bend-radius and axial-tension design limits.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Stress vs minimum bend radius curves (pure bending + axial cases)")
		fmt.Println("    • Allowable-stress and 0.1% elastic-limit guardrails")
		fmt.Println("    • Helical lay projection (cos²α) with bending amplification")
		fmt.Println("    • Cross-section conductor fit and clearance checks")
		fmt.Println()
		fmt.Println("  Use 'smcable --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
