package section

import (
	"fmt"
	"math"
)

// CrossSection describes the cable cross-section layout. All
// dimensions are in mm. The conductor pair sits symmetrically at
// ±Offset from the neutral axis inside the jacket core.
type CrossSection struct {
	ConductorDiameter   float64 // bare conductor diameter
	InsulationThickness float64 // insulation wall per conductor
	JacketOD            float64 // jacket outer diameter
	JacketWall          float64 // jacket wall thickness
	Clearance           float64 // minimum surface-to-surface clearance
	Offset              float64 // conductor centroid offset; 0 selects the default
}

// FitResult holds the derived geometry and any advisory fit
// violations. Violations never block the stress computation; the
// numbers are best-effort even when the layout is infeasible.
type FitResult struct {
	CoreRadius      float64 // inner radius available inside the jacket wall (mm)
	InsulatedRadius float64 // conductor radius including insulation (mm)
	DefaultOffset   float64 // suggested centroid offset (mm)
	Offset          float64 // offset actually evaluated (mm)
	Violations      []string
}

// Feasible reports whether the evaluated layout has no violations.
func (r FitResult) Feasible() bool {
	return len(r.Violations) == 0
}

// geomTol absorbs rounding noise so a conductor seated exactly at the
// clearance limit is not flagged.
const geomTol = 1e-9

// Evaluate computes the core geometry and checks whether the insulated
// conductors fit.
//
// The default offset is the larger of two minimums: the overlap
// minimum (adjacent conductor centers must be ≥ 2·r_ins + clearance
// apart) and the wall-seat position (conductor laid against the core
// wall with the required clearance). Whichever governs, the clearance
// check against the core wall then flags any resulting interference.
func (c CrossSection) Evaluate() FitResult {
	result := FitResult{
		CoreRadius:      c.JacketOD/2 - c.JacketWall,
		InsulatedRadius: c.ConductorDiameter/2 + c.InsulationThickness,
	}

	overlapMin := result.InsulatedRadius + c.Clearance/2
	wallSeat := result.CoreRadius - c.Clearance - result.InsulatedRadius
	result.DefaultOffset = math.Max(overlapMin, wallSeat)

	result.Offset = c.Offset
	if result.Offset <= 0 {
		result.Offset = result.DefaultOffset
	}

	if c.JacketWall >= c.JacketOD/2 {
		result.Violations = append(result.Violations,
			fmt.Sprintf("jacket wall %.2f mm is too thick for outer diameter %.2f mm", c.JacketWall, c.JacketOD))
	}
	if result.CoreRadius <= 0 {
		result.Violations = append(result.Violations,
			fmt.Sprintf("computed core radius %.2f mm is not positive", result.CoreRadius))
	}
	if result.Offset+result.InsulatedRadius > result.CoreRadius-c.Clearance+geomTol {
		result.Violations = append(result.Violations,
			fmt.Sprintf("insulated conductor at offset %.2f mm exceeds the core clearance (needs %.2f mm, core allows %.2f mm)",
				result.Offset, result.Offset+result.InsulatedRadius, result.CoreRadius-c.Clearance))
	}
	if result.Offset < overlapMin-geomTol {
		result.Violations = append(result.Violations,
			fmt.Sprintf("conductors overlap at offset %.2f mm (minimum separation requires %.2f mm)", result.Offset, overlapMin))
	}

	return result
}
