package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nickraymond/streamlit-mooring-tools/internal/cable"
	"github.com/nickraymond/streamlit-mooring-tools/internal/diagram"
	"github.com/nickraymond/streamlit-mooring-tools/internal/refdata"
	"github.com/spf13/cobra"
)

var (
	// Conductor & material
	curvesGauge      string
	curvesAreaMM2    float64
	curvesConductors int
	curvesMaterial   string
	curvesModulusGPa float64

	// Geometry
	curvesOffsetMM float64

	// Axial loads
	curvesLoads           string
	curvesUnit            string
	curvesShare           float64
	curvesReduction       bool
	curvesReductionFactor float64

	// Helix / twisted pair
	curvesHelix       bool
	curvesLayAngleDeg float64
	curvesBendAmp     float64

	// Limits & safety
	curvesStrainLimitPct float64
	curvesTieStrain      bool
	curvesAllowableMPa   float64
	curvesSafetyFactor   float64

	// Radius axis
	curvesRMin    float64
	curvesRMax    float64
	curvesSamples int

	// Output
	curvesShowDiagram bool
	curvesExportFile  string
)

var stressCurvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Compute stress curves for pure bending and axial load cases",
	Long: `Compute conductor stress over a minimum-bend-radius sweep.

One curve is produced for pure bending (σ_b = E·κ·y) and one per axial
load, superposing the axial stress σ_ax = T·f_share / (n·A_c). Curves
are compared against the allowable-stress guardrail (tied to a strain
limit or given directly in MPa) and the fixed 0.1% elastic-limit line.

Examples:
  # Defaults: 16 AWG, annealed copper, two conductors, lbf load list
  smcable stress curves

  # Explicit geometry with a helical lay
  smcable stress curves --offset 2.8 --helix --lay-angle 25 --k-bend 1.2

  # Direct allowable stress and PNG export
  smcable stress curves --tie-strain=false --allowable 80 --export chart.png`,
	Run: runStressCurves,
}

func init() {
	stressCmd.AddCommand(stressCurvesCmd)

	// Conductor & material flags
	stressCurvesCmd.Flags().StringVarP(&curvesGauge, "gauge", "g", refdata.DefaultConductorGauge, "AWG conductor preset")
	stressCurvesCmd.Flags().Float64VarP(&curvesAreaMM2, "area", "a", 0, "Conductor metal area (mm²), overrides the preset")
	stressCurvesCmd.Flags().IntVarP(&curvesConductors, "conductors", "n", 2, "Conductors sharing the axial load")
	stressCurvesCmd.Flags().StringVarP(&curvesMaterial, "material", "m", refdata.DefaultMaterialName, "Conductor material preset")
	stressCurvesCmd.Flags().Float64VarP(&curvesModulusGPa, "modulus", "E", 0, "Young's modulus (GPa), overrides the preset")

	// Geometry flag
	stressCurvesCmd.Flags().Float64VarP(&curvesOffsetMM, "offset", "y", 3.5, "Neutral axis to conductor centroid (mm)")

	// Axial load flags
	stressCurvesCmd.Flags().StringVarP(&curvesLoads, "loads", "l", "20,40,60,80,100,200", "Comma-separated axial loads")
	stressCurvesCmd.Flags().StringVarP(&curvesUnit, "unit", "u", "lbf", "Load unit: lbf or N")
	stressCurvesCmd.Flags().Float64Var(&curvesShare, "share", 1.0, "Axial load share carried by the conductors (0-1)")
	stressCurvesCmd.Flags().BoolVar(&curvesReduction, "reduction", false, "Apply the axial reduction factor")
	stressCurvesCmd.Flags().Float64Var(&curvesReductionFactor, "reduction-factor", 0.8, "Axial reduction factor")

	// Helix flags
	stressCurvesCmd.Flags().BoolVar(&curvesHelix, "helix", false, "Enable helix projection (cos²α) and bending amplification")
	stressCurvesCmd.Flags().Float64Var(&curvesLayAngleDeg, "lay-angle", 30, "Lay angle α (deg)")
	stressCurvesCmd.Flags().Float64Var(&curvesBendAmp, "k-bend", 1.0, "Bending amplification k_bend (≥1)")

	// Limits & safety flags
	stressCurvesCmd.Flags().Float64Var(&curvesStrainLimitPct, "strain-limit", 0.10, "Strain limit (%)")
	stressCurvesCmd.Flags().BoolVar(&curvesTieStrain, "tie-strain", true, "Tie the allowable stress to E·ε_limit")
	stressCurvesCmd.Flags().Float64Var(&curvesAllowableMPa, "allowable", 80, "Allowable stress (MPa) when not tied to strain")
	stressCurvesCmd.Flags().Float64VarP(&curvesSafetyFactor, "safety", "s", 1.0, "Overall safety factor (×)")

	// Radius axis flags
	stressCurvesCmd.Flags().Float64Var(&curvesRMin, "rmin", 0.2, "Minimum bend radius of the sweep (m)")
	stressCurvesCmd.Flags().Float64Var(&curvesRMax, "rmax", 10.0, "Maximum bend radius of the sweep (m)")
	stressCurvesCmd.Flags().IntVar(&curvesSamples, "samples", 400, "Samples across the radius range")

	// Output flags
	stressCurvesCmd.Flags().BoolVarP(&curvesShowDiagram, "diagram", "d", false, "Show an ASCII chart of the curves")
	stressCurvesCmd.Flags().StringVarP(&curvesExportFile, "export", "e", "", "Export the chart to an image file (.png/.svg/.pdf)")
}

func runStressCurves(cmd *cobra.Command, args []string) {
	// Resolve presets at the boundary; the engine only sees numbers
	areaMM2 := curvesAreaMM2
	if areaMM2 <= 0 {
		conductor, ok := refdata.LookupConductor(curvesGauge)
		if !ok {
			fmt.Printf("Error: unknown conductor gauge %q (see 'smcable presets')\n", curvesGauge)
			return
		}
		areaMM2 = conductor.AreaMM2
	}

	modulusGPa := curvesModulusGPa
	if modulusGPa <= 0 {
		material, ok := refdata.LookupMaterial(curvesMaterial)
		if !ok {
			fmt.Printf("Error: unknown material %q (see 'smcable presets')\n", curvesMaterial)
			return
		}
		modulusGPa = material.ModulusGPa
	}

	var unit cable.Unit
	switch curvesUnit {
	case "lbf":
		unit = cable.UnitLbf
	case "N":
		unit = cable.UnitNewton
	default:
		fmt.Printf("Error: unknown load unit %q (use lbf or N)\n", curvesUnit)
		return
	}

	sweep, err := cable.NewSweep(curvesRMin, curvesRMax, curvesSamples)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loads, usedFallback := cable.ParseLoadList(curvesLoads, cable.DefaultLoads)
	if usedFallback {
		fmt.Printf("Warning: could not parse load list %q, using defaults %v\n", curvesLoads, cable.DefaultLoads)
	}

	material := cable.Material{E: modulusGPa * 1e9}
	geometry := cable.Geometry{
		OffsetY:    curvesOffsetMM / 1000.0,
		Area:       areaMM2 / 1e6,
		Conductors: curvesConductors,
	}
	loadSpec := cable.LoadSpec{Loads: loads, Unit: unit}
	sharing := cable.Sharing{
		Fraction:         curvesShare,
		ReductionEnabled: curvesReduction,
		ReductionFactor:  curvesReductionFactor,
	}
	helix := cable.Helix{
		Enabled:           curvesHelix,
		LayAngleDeg:       curvesLayAngleDeg,
		BendAmplification: curvesBendAmp,
	}

	curves := cable.ComputeCurves(sweep, material, geometry, loadSpec, sharing, helix, curvesSafetyFactor)
	limits := cable.DeriveLimits(material.E, cable.LimitSpec{
		TieToStrain:  curvesTieStrain,
		StrainLimit:  curvesStrainLimitPct / 100.0,
		AllowableMPa: curvesAllowableMPa,
	})
	order := cable.SortedLabels(curves)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONDUCTOR STRESS vs MINIMUM BEND RADIUS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Conductor area (A_c):\t%.2f mm²\n", areaMM2)
	fmt.Fprintf(w, "  Conductors sharing load (n):\t%d\n", curvesConductors)
	fmt.Fprintf(w, "  Young's modulus (E):\t%.1f GPa\n", modulusGPa)
	fmt.Fprintf(w, "  Centroid offset (y):\t%.2f mm\n", curvesOffsetMM)
	fmt.Fprintf(w, "  Axial loads:\t%v %s\n", loads, unit)
	fmt.Fprintf(w, "  Load share (f_share):\t%.2f\n", curvesShare)
	if curvesReduction {
		fmt.Fprintf(w, "  Axial reduction factor:\t%.2f\n", curvesReductionFactor)
	}
	if curvesHelix {
		fmt.Fprintf(w, "  Lay angle (α):\t%.1f°\n", curvesLayAngleDeg)
		fmt.Fprintf(w, "  Bending amplification (k_bend):\t%.2f\n", curvesBendAmp)
	}
	fmt.Fprintf(w, "  Safety factor:\t%.2f\n", curvesSafetyFactor)
	fmt.Fprintf(w, "  Radius sweep:\t%.2f–%.2f m (%d samples)\n", curvesRMin, curvesRMax, curvesSamples)
	w.Flush()
	fmt.Println()

	fmt.Println("ALLOWABLE LIMITS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if curvesTieStrain {
		fmt.Fprintf(w, "  σ_allow = E·ε_limit:\t%.1f MPa (ε_limit = %.2f%%)\n", limits.Allowable/1e6, curvesStrainLimitPct)
	} else {
		fmt.Fprintf(w, "  σ_allow (direct):\t%.1f MPa\n", limits.Allowable/1e6)
	}
	fmt.Fprintf(w, "  Elastic limit E·0.001:\t%.1f MPa\n", limits.ElasticLimit/1e6)
	w.Flush()
	fmt.Println()

	// Quick readback at the fixed report radii
	rows := cable.Readback(sweep, curves, cable.DefaultReportRadii)
	if len(rows) > 0 {
		fmt.Println("QUICK READBACK:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Curve\tR (m)\tStress (MPa)\t\n")
		fmt.Fprintf(w, "  ─────\t─────\t────────────\t\n")
		for _, row := range rows {
			marker := "✓"
			if row.Stress > limits.Allowable {
				marker = "⚠ > σ_allow"
			}
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\n", row.Label, row.Radius, row.Stress/1e6, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Governing case at the tightest bend
	worstLabel := order[0]
	worst := curves[worstLabel][0]
	for _, label := range order {
		if v := curves[label][0]; v > worst {
			worst, worstLabel = v, label
		}
	}
	status := fmt.Sprintf("within σ_allow = %.1f MPa", limits.Allowable/1e6)
	if worst > limits.Allowable {
		status = fmt.Sprintf("EXCEEDS σ_allow = %.1f MPa", limits.Allowable/1e6)
	}
	fmt.Println(diagram.DrawSummaryBox("GOVERNING CASE AT R_min", []string{
		worstLabel,
		fmt.Sprintf("σ = %.2f MPa at R = %.2f m", worst/1e6, sweep[0]),
		status,
	}))

	chartData := diagram.CurveChartData{
		Radii:        sweep,
		Curves:       curves,
		Order:        order,
		Allowable:    limits.Allowable,
		ElasticLimit: limits.ElasticLimit,
	}

	if curvesShowDiagram {
		fmt.Println(diagram.DrawASCIICurveChart(chartData))
		fmt.Println()
	}

	if curvesExportFile != "" {
		if err := diagram.ExportCurveChart(chartData, curvesExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", curvesExportFile)
		}
	}
}
