package refdata

import "strings"

// ConductorSize holds the nominal dimensions of a standard AWG conductor.
type ConductorSize struct {
	Gauge      string  // e.g. "16 AWG"
	DiameterMM float64 // nominal bare diameter (mm)
	AreaMM2    float64 // cross-sectional metal area (mm²)
}

// DefaultConductorGauge is the preset selected when none is specified.
const DefaultConductorGauge = "16 AWG"

// ConductorSizes lists the supported AWG presets.
var ConductorSizes = []ConductorSize{
	{Gauge: "12 AWG", DiameterMM: 2.053, AreaMM2: 3.31},
	{Gauge: "14 AWG", DiameterMM: 1.628, AreaMM2: 2.08},
	{Gauge: "16 AWG", DiameterMM: 1.291, AreaMM2: 1.31},
	{Gauge: "10 AWG", DiameterMM: 2.588, AreaMM2: 5.26},
	{Gauge: "8 AWG", DiameterMM: 3.264, AreaMM2: 8.37},
	{Gauge: "6 AWG", DiameterMM: 4.115, AreaMM2: 13.30},
	{Gauge: "4 AWG", DiameterMM: 5.189, AreaMM2: 21.20},
	{Gauge: "2 AWG", DiameterMM: 6.544, AreaMM2: 33.60},
	{Gauge: "1/0 AWG", DiameterMM: 8.251, AreaMM2: 53.50},
	{Gauge: "4/0 AWG", DiameterMM: 11.684, AreaMM2: 107.20},
}

// LookupConductor finds a conductor preset by gauge name.
// Matching is case-insensitive and the "AWG" suffix is optional,
// so "16", "16 awg" and "16 AWG" all resolve to the same entry.
func LookupConductor(gauge string) (ConductorSize, bool) {
	key := normalizeGauge(gauge)
	for _, c := range ConductorSizes {
		if normalizeGauge(c.Gauge) == key {
			return c, true
		}
	}
	return ConductorSize{}, false
}

func normalizeGauge(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "AWG")
	return strings.TrimSpace(s)
}
