package cable

// ElasticStrainLimit is the 0.1% strain used for the fixed reference
// elastic-limit line, a conservative bound for soft copper.
const ElasticStrainLimit = 0.001

// LimitSpec selects how the allowable-stress guardrail is derived.
type LimitSpec struct {
	TieToStrain  bool    // when true, σ_allow = E·StrainLimit
	StrainLimit  float64 // dimensionless strain (e.g. 0.001 for 0.1%)
	AllowableMPa float64 // used directly when TieToStrain is false
}

// Limits holds the two horizontal guardrail values drawn against the
// stress curves (Pa).
type Limits struct {
	Allowable    float64 // user-selected allowable stress
	ElasticLimit float64 // fixed E·0.001 reference line
}

// DeriveLimits computes the allowable-stress guardrails for a given
// Young's modulus (Pa). The elastic-limit line is always E·0.001
// regardless of how the allowable stress is chosen.
func DeriveLimits(e float64, spec LimitSpec) Limits {
	limits := Limits{ElasticLimit: e * ElasticStrainLimit}
	if spec.TieToStrain {
		limits.Allowable = e * spec.StrainLimit
	} else {
		limits.Allowable = spec.AllowableMPa * 1e6
	}
	return limits
}
