package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nickraymond/streamlit-mooring-tools/internal/refdata"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in conductor and material presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("AWG CONDUCTOR PRESETS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Gauge\tDiameter (mm)\tArea (mm²)\n")
		fmt.Fprintf(w, "  ─────\t─────────────\t──────────\n")
		for _, c := range refdata.ConductorSizes {
			marker := ""
			if c.Gauge == refdata.DefaultConductorGauge {
				marker = " (default)"
			}
			fmt.Fprintf(w, "  %s\t%.3f\t%.2f%s\n", c.Gauge, c.DiameterMM, c.AreaMM2, marker)
		}
		w.Flush()
		fmt.Println()

		fmt.Println("MATERIAL PRESETS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Material\tE (GPa)\n")
		fmt.Fprintf(w, "  ────────\t───────\n")
		for _, m := range refdata.Materials {
			marker := ""
			if m.Name == refdata.DefaultMaterialName {
				marker = " (default)"
			}
			fmt.Fprintf(w, "  %s\t%.1f%s\n", m.Name, m.ModulusGPa, marker)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
