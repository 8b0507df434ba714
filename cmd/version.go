package cmd

import (
	"fmt"

	"github.com/nickraymond/streamlit-mooring-tools/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of smcable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smcable v%s\n", version.Version)
		fmt.Println("Smart Mooring Cable Stress Tool")
		fmt.Println("Bending + axial conductor stress vs minimum bend radius")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
