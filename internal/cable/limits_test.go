package cable

import "testing"

func TestDeriveLimitsTiedToStrain(t *testing.T) {
	limits := DeriveLimits(110e9, LimitSpec{TieToStrain: true, StrainLimit: 0.001, AllowableMPa: 80})

	if limits.Allowable != 110e9*0.001 {
		t.Errorf("allowable %v, want E·ε_limit = %v", limits.Allowable, 110e9*0.001)
	}
	if limits.ElasticLimit != 110e9*ElasticStrainLimit {
		t.Errorf("elastic limit %v, want E·0.001", limits.ElasticLimit)
	}
}

func TestDeriveLimitsDirectMPa(t *testing.T) {
	limits := DeriveLimits(110e9, LimitSpec{TieToStrain: false, StrainLimit: 0.001, AllowableMPa: 80})

	if limits.Allowable != 80e6 {
		t.Errorf("allowable %v, want 80 MPa", limits.Allowable)
	}
	// The elastic reference never depends on the tie choice
	if limits.ElasticLimit != 110e9*0.001 {
		t.Errorf("elastic limit %v, want E·0.001", limits.ElasticLimit)
	}
}
