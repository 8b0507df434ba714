package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nickraymond/streamlit-mooring-tools/internal/diagram"
	"github.com/nickraymond/streamlit-mooring-tools/internal/refdata"
	"github.com/nickraymond/streamlit-mooring-tools/internal/section"
	"github.com/spf13/cobra"
)

var (
	fitGauge      string
	fitDiameterMM float64
	fitInsulation float64
	fitJacketOD   float64
	fitJacketWall float64
	fitClearance  float64
	fitOffsetMM   float64
	fitExportFile string
)

var sectionFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Check conductor fit inside the jacket core",
	Long: `Compute the core radius available inside the jacket wall, the
insulated conductor radius, and a default conductor centroid offset,
then flag any fit violations.

The default offset is the larger of the overlap-avoidance minimum and
the wall-seat position. Violations (wall too thick, non-positive core,
clearance exceeded, conductors overlapping) are advisory and never
block the stress computation.

Examples:
  # 16 AWG pair in a 12 mm jacket with 1.5 mm wall
  smcable section fit --insulation 0.5 --od 12 --wall 1.5 --clearance 0.3

  # Explicit conductor diameter and offset, with a diagram export
  smcable section fit --diameter 2.053 --insulation 0.6 --od 14 --wall 2 \
      --offset 2.5 --export section.png`,
	Run: runSectionFit,
}

func init() {
	sectionCmd.AddCommand(sectionFitCmd)

	sectionFitCmd.Flags().StringVarP(&fitGauge, "gauge", "g", refdata.DefaultConductorGauge, "AWG conductor preset")
	sectionFitCmd.Flags().Float64Var(&fitDiameterMM, "diameter", 0, "Bare conductor diameter (mm), overrides the preset")
	sectionFitCmd.Flags().Float64VarP(&fitInsulation, "insulation", "i", 0.5, "Insulation wall thickness per conductor (mm)")
	sectionFitCmd.Flags().Float64Var(&fitJacketOD, "od", 12.0, "Jacket outer diameter (mm)")
	sectionFitCmd.Flags().Float64VarP(&fitJacketWall, "wall", "w", 1.5, "Jacket wall thickness (mm)")
	sectionFitCmd.Flags().Float64VarP(&fitClearance, "clearance", "c", 0.3, "Minimum surface-to-surface clearance (mm)")
	sectionFitCmd.Flags().Float64VarP(&fitOffsetMM, "offset", "y", 0, "Conductor centroid offset (mm), 0 uses the default")
	sectionFitCmd.Flags().StringVarP(&fitExportFile, "export", "e", "", "Export a cross-section diagram (.png/.svg/.pdf)")
}

func runSectionFit(cmd *cobra.Command, args []string) {
	diameter := fitDiameterMM
	if diameter <= 0 {
		conductor, ok := refdata.LookupConductor(fitGauge)
		if !ok {
			fmt.Printf("Error: unknown conductor gauge %q (see 'smcable presets')\n", fitGauge)
			return
		}
		diameter = conductor.DiameterMM
	}

	cross := section.CrossSection{
		ConductorDiameter:   diameter,
		InsulationThickness: fitInsulation,
		JacketOD:            fitJacketOD,
		JacketWall:          fitJacketWall,
		Clearance:           fitClearance,
		Offset:              fitOffsetMM,
	}
	result := cross.Evaluate()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CABLE CROSS-SECTION FEASIBILITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Conductor diameter:\t%.3f mm\n", diameter)
	fmt.Fprintf(w, "  Insulation thickness:\t%.2f mm\n", fitInsulation)
	fmt.Fprintf(w, "  Jacket outer diameter:\t%.2f mm\n", fitJacketOD)
	fmt.Fprintf(w, "  Jacket wall thickness:\t%.2f mm\n", fitJacketWall)
	fmt.Fprintf(w, "  Minimum clearance:\t%.2f mm\n", fitClearance)
	w.Flush()
	fmt.Println()

	fmt.Println("DERIVED GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Core (inner) radius:\t%.2f mm\n", result.CoreRadius)
	fmt.Fprintf(w, "  Insulated conductor radius:\t%.2f mm\n", result.InsulatedRadius)
	fmt.Fprintf(w, "  Default centroid offset (y):\t%.2f mm\n", result.DefaultOffset)
	fmt.Fprintf(w, "  Evaluated offset:\t%.2f mm\n", result.Offset)
	w.Flush()
	fmt.Println()

	fmt.Println("FIT CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.Feasible() {
		fmt.Println("  ✓ Geometry OK - conductors fit with the required clearance")
	} else {
		for _, violation := range result.Violations {
			fmt.Printf("  ⚠ %s\n", violation)
		}
	}
	fmt.Println()

	if fitExportFile != "" {
		data := diagram.SectionDiagramData{
			JacketOuterRadius: fitJacketOD / 2,
			CoreRadius:        result.CoreRadius,
			InsulatedRadius:   result.InsulatedRadius,
			Offset:            result.Offset,
		}
		if err := diagram.ExportSectionDiagram(data, fitExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", fitExportFile)
		}
	}
}
