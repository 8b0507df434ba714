package refdata

import "strings"

// Material holds the elastic properties of a conductor material.
type Material struct {
	Name       string
	ModulusGPa float64 // Young's modulus E (GPa)
}

// DefaultMaterialName is the preset selected when none is specified.
const DefaultMaterialName = "Cu ETP annealed"

// Materials lists the supported conductor material presets.
// Moduli are nominal handbook values for common copper grades.
var Materials = []Material{
	{Name: "Cu ETP annealed", ModulusGPa: 110.0},
	{Name: "Cu hard-drawn", ModulusGPa: 120.0},
	{Name: "Cu C11000 general", ModulusGPa: 115.0},
}

// LookupMaterial finds a material preset by name (case-insensitive).
func LookupMaterial(name string) (Material, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Materials {
		if strings.ToLower(m.Name) == key {
			return m, true
		}
	}
	return Material{}, false
}
