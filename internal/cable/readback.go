package cable

// DefaultReportRadii are the fixed radii reported in the quick
// read-back table, filtered to the active sweep range.
var DefaultReportRadii = []float64{0.25, 0.5, 1.0, 2.0, 5.0}

// ReadbackRow is one entry of the quick read-back table.
type ReadbackRow struct {
	Label  string
	Radius float64 // m
	Stress float64 // Pa
}

// Readback interpolates every curve at the given report radii and
// returns the rows in display order (pure bending first). Radii
// outside the sweep range are dropped.
func Readback(sweep Sweep, curves map[string][]float64, radii []float64) []ReadbackRow {
	if len(sweep) == 0 {
		return nil
	}

	var rows []ReadbackRow
	for _, label := range SortedLabels(curves) {
		values := curves[label]
		for _, r := range radii {
			if r < sweep[0] || r > sweep[len(sweep)-1] {
				continue
			}
			rows = append(rows, ReadbackRow{
				Label:  label,
				Radius: r,
				Stress: interpolate(sweep, values, r),
			})
		}
	}
	return rows
}

// interpolate evaluates a curve at radius r by piecewise-linear
// interpolation over the sweep samples. The sweep is strictly
// increasing, so a single forward scan finds the bracketing segment.
func interpolate(sweep Sweep, values []float64, r float64) float64 {
	if r <= sweep[0] {
		return values[0]
	}
	last := len(sweep) - 1
	if r >= sweep[last] {
		return values[last]
	}
	for i := 1; i <= last; i++ {
		if r <= sweep[i] {
			t := (r - sweep[i-1]) / (sweep[i] - sweep[i-1])
			return values[i-1] + t*(values[i]-values[i-1])
		}
	}
	return values[last]
}
