package cable

import (
	"math"
	"testing"
)

func mustSweep(t *testing.T, rMin, rMax float64, samples int) Sweep {
	t.Helper()
	s, err := NewSweep(rMin, rMax, samples)
	if err != nil {
		t.Fatalf("NewSweep(%v, %v, %d): %v", rMin, rMax, samples, err)
	}
	return s
}

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= relTol*scale
}

var (
	testMaterial = Material{E: 110e9}
	testGeometry = Geometry{OffsetY: 3.5e-3, Area: 1.31e-6, Conductors: 2}
	noLoads      = LoadSpec{Unit: UnitLbf}
	fullShare    = Sharing{Fraction: 1.0}
	noHelix      = Helix{}
)

func TestNewSweepValidation(t *testing.T) {
	cases := []struct {
		name    string
		rMin    float64
		rMax    float64
		samples int
		wantErr bool
	}{
		{"valid", 0.2, 10.0, 400, false},
		{"single point range", 1.0, 1.0, 2, false},
		{"zero rmin", 0, 10, 10, true},
		{"negative rmin", -1, 10, 10, true},
		{"rmax below rmin", 5, 2, 10, true},
		{"too few samples", 0.2, 10, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSweep(tc.rMin, tc.rMax, tc.samples)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(s) != tc.samples {
				t.Errorf("got %d samples, want %d", len(s), tc.samples)
			}
			if s[0] != tc.rMin || s[len(s)-1] != tc.rMax {
				t.Errorf("endpoints %v..%v, want %v..%v", s[0], s[len(s)-1], tc.rMin, tc.rMax)
			}
			for i := 1; i < len(s); i++ {
				if s[i] < s[i-1] {
					t.Errorf("sweep not increasing at %d: %v < %v", i, s[i], s[i-1])
				}
			}
		})
	}
}

func TestPureBendingDecreasesWithRadius(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 50)
	curves := ComputeCurves(sweep, testMaterial, testGeometry, noLoads, fullShare, noHelix, 1.0)

	pure := curves[PureBendingLabel]
	for i := 1; i < len(pure); i++ {
		if pure[i] >= pure[i-1] {
			t.Fatalf("pure bending not strictly decreasing at sample %d: %v >= %v", i, pure[i], pure[i-1])
		}
	}
}

func TestPureBendingLinearInOffset(t *testing.T) {
	sweep := mustSweep(t, 0.5, 5.0, 10)

	small := testGeometry
	small.OffsetY = 1e-3
	large := testGeometry
	large.OffsetY = 3e-3

	a := ComputeCurves(sweep, testMaterial, small, noLoads, fullShare, noHelix, 1.0)[PureBendingLabel]
	b := ComputeCurves(sweep, testMaterial, large, noLoads, fullShare, noHelix, 1.0)[PureBendingLabel]

	for i := range a {
		if b[i] <= a[i] {
			t.Fatalf("larger offset must give strictly larger stress at sample %d", i)
		}
		if !approxEqual(b[i], 3*a[i], 1e-12) {
			t.Errorf("stress not linear in offset at sample %d: %v vs 3×%v", i, b[i], a[i])
		}
	}
}

func TestSafetyFactorScalesEverything(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 20)
	loads := LoadSpec{Loads: []float64{20, 100}, Unit: UnitLbf}

	base := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, noHelix, 1.0)
	doubled := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, noHelix, 2.0)

	if len(base) != len(doubled) {
		t.Fatalf("curve count changed: %d vs %d", len(base), len(doubled))
	}
	for label, values := range base {
		scaled, ok := doubled[label]
		if !ok {
			t.Fatalf("label %q missing from doubled result", label)
		}
		for i := range values {
			if !approxEqual(scaled[i], 2*values[i], 1e-12) {
				t.Errorf("%s sample %d: %v != 2×%v", label, i, scaled[i], values[i])
			}
		}
	}
}

func TestHelixDisabledIgnoresAngleAndAmplification(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 20)
	loads := LoadSpec{Loads: []float64{60}, Unit: UnitLbf}

	disabled := Helix{Enabled: false, LayAngleDeg: 30, BendAmplification: 1.5}
	neutral := Helix{Enabled: true, LayAngleDeg: 0, BendAmplification: 1.0}

	a := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, disabled, 1.0)
	b := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, neutral, 1.0)

	for label, values := range a {
		for i := range values {
			if values[i] != b[label][i] {
				t.Fatalf("disabled helix must equal α=0, k=1: %s sample %d: %v != %v", label, i, values[i], b[label][i])
			}
		}
	}
}

func TestHelixProjectionReducesStress(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 20)
	helix := Helix{Enabled: true, LayAngleDeg: 30, BendAmplification: 1.0}

	plain := ComputeCurves(sweep, testMaterial, testGeometry, noLoads, fullShare, noHelix, 1.0)[PureBendingLabel]
	wound := ComputeCurves(sweep, testMaterial, testGeometry, noLoads, fullShare, helix, 1.0)[PureBendingLabel]

	cos2 := math.Pow(math.Cos(30*math.Pi/180), 2)
	for i := range plain {
		if !approxEqual(wound[i], plain[i]*cos2, 1e-12) {
			t.Errorf("sample %d: got %v, want %v·cos²30°", i, wound[i], plain[i])
		}
	}
}

func TestZeroShareMatchesPureBending(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 20)
	loads := LoadSpec{Loads: []float64{20, 40, 200}, Unit: UnitLbf}
	noShare := Sharing{Fraction: 0}

	curves := ComputeCurves(sweep, testMaterial, testGeometry, loads, noShare, noHelix, 1.0)
	pure := curves[PureBendingLabel]

	for label, values := range curves {
		for i := range values {
			if values[i] != pure[i] {
				t.Fatalf("with f_share=0 curve %q must equal pure bending at sample %d", label, i)
			}
		}
	}
}

func TestLbfRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1, 20, 100, 12345.678} {
		back := UnitLbf.ToNewton(v) / LbfToNewton
		if !approxEqual(back, v, 1e-9) {
			t.Errorf("round trip of %v lbf gave %v", v, back)
		}
	}
	if UnitNewton.ToNewton(42) != 42 {
		t.Error("newton loads must pass through unchanged")
	}
}

// Known-value scenario: E=110 GPa, y=3.5 mm, A_c=1.31 mm², n=2,
// one 100 lbf load at full share.
func TestKnownValueScenario(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 2)
	loads := LoadSpec{Loads: []float64{100}, Unit: UnitLbf}

	curves := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, noHelix, 1.0)
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}

	wantBending := 110e9 * (1.0 / 0.2) * 3.5e-3 // 1.925e9 Pa
	pure := curves[PureBendingLabel]
	if !approxEqual(pure[0], wantBending, 1e-9) {
		t.Errorf("σ_b at R=0.2: got %v, want %v", pure[0], wantBending)
	}

	wantAxial := (100 * LbfToNewton) / 2 / 1.31e-6 // ≈1.698e8 Pa
	combined := curves["Case 2: + 100 lbf axial"]
	if combined == nil {
		t.Fatal("combined curve missing")
	}
	if !approxEqual(combined[0], wantBending+wantAxial, 1e-9) {
		t.Errorf("σ_total at R=0.2: got %v, want %v", combined[0], wantBending+wantAxial)
	}
}

func TestEmptyLoadListYieldsOnlyPureBending(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 5)
	curves := ComputeCurves(sweep, testMaterial, testGeometry, noLoads, fullShare, noHelix, 1.0)

	if len(curves) != 1 {
		t.Fatalf("got %d curves, want exactly 1", len(curves))
	}
	if _, ok := curves[PureBendingLabel]; !ok {
		t.Fatalf("missing %q entry", PureBendingLabel)
	}
}

// Duplicate load values collide on the label; the engine numbers the
// repeats so every input load keeps its own entry.
func TestDuplicateLoadsKeepSeparateEntries(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 5)
	loads := LoadSpec{Loads: []float64{50, 50}, Unit: UnitLbf}

	curves := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, noHelix, 1.0)
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}

	first := curves["Case 2: + 50 lbf axial"]
	second := curves["Case 2: + 50 lbf axial #2"]
	if first == nil || second == nil {
		t.Fatalf("expected numbered duplicate labels, got %v", SortedLabels(curves))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("duplicate loads must produce identical values (sample %d)", i)
		}
	}
}

// Zero conductors and zero area are floored, not rejected.
func TestDegenerateGeometryIsFloored(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 5)
	loads := LoadSpec{Loads: []float64{100}, Unit: UnitNewton}

	degenerate := Geometry{OffsetY: 3.5e-3, Area: 0, Conductors: 0}
	curves := ComputeCurves(sweep, testMaterial, degenerate, loads, fullShare, noHelix, 1.0)

	for label, values := range curves {
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("curve %q sample %d is not finite: %v", label, i, v)
			}
		}
	}
}

func TestSortedLabelsPureBendingFirst(t *testing.T) {
	sweep := mustSweep(t, 0.2, 10.0, 5)
	loads := LoadSpec{Loads: []float64{200, 20, 100}, Unit: UnitLbf}

	curves := ComputeCurves(sweep, testMaterial, testGeometry, loads, fullShare, noHelix, 1.0)
	labels := SortedLabels(curves)

	if labels[0] != PureBendingLabel {
		t.Fatalf("first label is %q, want %q", labels[0], PureBendingLabel)
	}
	for i := 2; i < len(labels); i++ {
		if labels[i] < labels[i-1] {
			t.Errorf("axial labels out of order: %q before %q", labels[i-1], labels[i])
		}
	}
}
