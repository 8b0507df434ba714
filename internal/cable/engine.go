package cable

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// LbfToNewton is the pound-force to newton conversion factor.
const LbfToNewton = 4.44822

// Unit identifies the unit of the axial load values.
type Unit string

const (
	UnitNewton Unit = "N"
	UnitLbf    Unit = "lbf"
)

// ToNewton converts a load magnitude in this unit to newtons.
func (u Unit) ToNewton(v float64) float64 {
	if u == UnitLbf {
		return v * LbfToNewton
	}
	return v
}

// Sweep is an ordered, strictly increasing set of candidate minimum
// bend radii (m).
type Sweep []float64

// NewSweep builds a uniformly spaced radius sweep over [rMin, rMax].
func NewSweep(rMin, rMax float64, samples int) (Sweep, error) {
	if rMin <= 0 {
		return nil, fmt.Errorf("invalid radius range: R_min=%.4f must be > 0", rMin)
	}
	if rMax < rMin {
		return nil, fmt.Errorf("invalid radius range: R_max=%.4f < R_min=%.4f", rMax, rMin)
	}
	if samples < 2 {
		return nil, fmt.Errorf("invalid sample count: %d (minimum 2)", samples)
	}

	s := make(Sweep, samples)
	step := (rMax - rMin) / float64(samples-1)
	for i := range s {
		s[i] = rMin + float64(i)*step
	}
	// Pin the last sample to avoid accumulating rounding error
	s[samples-1] = rMax
	return s, nil
}

// Material holds the elastic properties of the conductor metal.
type Material struct {
	E float64 // Young's modulus (Pa)
}

// Geometry describes the conductor layout inside the cable section.
type Geometry struct {
	OffsetY    float64 // neutral axis to conductor centroid (m)
	Area       float64 // cross-sectional metal area per conductor (m²)
	Conductors int     // conductors sharing the axial load (n)
}

// LoadSpec is an ordered list of axial load magnitudes with their unit.
type LoadSpec struct {
	Loads []float64
	Unit  Unit
}

// Sharing controls how much of the axial tension the conductors carry.
type Sharing struct {
	Fraction         float64 // 0–1, fraction carried by the conductors
	ReductionEnabled bool
	ReductionFactor  float64 // applied multiplicatively when enabled
}

// Helix controls the helical lay projection and curvature amplification.
type Helix struct {
	Enabled           bool
	LayAngleDeg       float64 // lay angle α (deg)
	BendAmplification float64 // k_bend ≥ 1, curvature concentration at clamps
}

// PureBendingLabel is the key of the bending-only curve in the output
// of ComputeCurves.
const PureBendingLabel = "Case 1: Pure bending"

// minArea keeps the axial stress finite when a caller passes a
// non-physical conductor area.
const minArea = 1e-12

// ComputeCurves evaluates the combined bending + axial stress over the
// radius sweep and returns one labeled curve per load case (Pa).
//
// Linear-elastic, small-strain, uniaxial superposition:
//
//	κ = 1/R
//	σ_b  = E·κ·y                (·cos²α·k_bend with helix enabled)
//	σ_ax = (T·f_share/n)/A_c    (·cos²α with helix enabled)
//	σ    = |σ_b + σ_ax| · SF
//
// Non-physical n or A_c is floored rather than rejected so a live
// display never loses its curves to a half-edited input; the sweep is
// assumed to contain only positive radii (see NewSweep).
func ComputeCurves(sweep Sweep, mat Material, geom Geometry, loads LoadSpec,
	sharing Sharing, helix Helix, safetyFactor float64) map[string][]float64 {

	n := float64(geom.Conductors)
	if n < 1 {
		n = 1
	}
	area := geom.Area
	if area < minArea {
		area = minArea
	}

	cos2 := 1.0
	kBend := 1.0
	if helix.Enabled {
		a := helix.LayAngleDeg * math.Pi / 180
		c := math.Cos(a)
		cos2 = c * c
		if helix.BendAmplification > 0 {
			kBend = helix.BendAmplification
		}
	}

	// Bending term, element-wise over the sweep
	sigmaB := make([]float64, len(sweep))
	for i, r := range sweep {
		kappa := 1.0 / r
		sigmaB[i] = mat.E * kappa * geom.OffsetY * cos2 * kBend
	}

	curves := make(map[string][]float64, 1+len(loads.Loads))

	pure := make([]float64, len(sweep))
	for i, sb := range sigmaB {
		pure[i] = math.Abs(sb) * safetyFactor
	}
	curves[PureBendingLabel] = pure

	for _, load := range loads.Loads {
		tEff := loads.Unit.ToNewton(load) * sharing.Fraction
		if sharing.ReductionEnabled {
			tEff *= sharing.ReductionFactor
		}
		sigmaAx := (tEff / n) / area * cos2

		combined := make([]float64, len(sweep))
		for i, sb := range sigmaB {
			combined[i] = math.Abs(sb+sigmaAx) * safetyFactor
		}

		label := fmt.Sprintf("Case 2: + %g %s axial", load, loads.Unit)
		// Repeated load values would collide on the same key; keep one
		// entry per input load by numbering the repeats.
		if _, exists := curves[label]; exists {
			for k := 2; ; k++ {
				numbered := fmt.Sprintf("%s #%d", label, k)
				if _, taken := curves[numbered]; !taken {
					label = numbered
					break
				}
			}
		}
		curves[label] = combined
	}

	return curves
}

// SortedLabels returns the curve labels in display order: pure bending
// first, then the axial cases in lexical order.
func SortedLabels(curves map[string][]float64) []string {
	labels := make([]string, 0, len(curves))
	for label := range curves {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		pi := strings.Contains(labels[i], "Pure bending")
		pj := strings.Contains(labels[j], "Pure bending")
		if pi != pj {
			return pi
		}
		return labels[i] < labels[j]
	})
	return labels
}
