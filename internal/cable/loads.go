package cable

import (
	"strconv"
	"strings"
)

// DefaultLoads is the fallback axial load list used when a free-text
// load list cannot be parsed.
var DefaultLoads = []float64{20, 40, 60, 80, 100, 200}

// ParseLoadList parses a comma-separated list of load magnitudes.
// Blank tokens are skipped. If any token fails to parse, the fallback
// list is returned instead and usedFallback reports the substitution:
// a malformed list downgrades to the default rather than failing.
func ParseLoadList(text string, fallback []float64) (loads []float64, usedFallback bool) {
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return append([]float64(nil), fallback...), true
		}
		loads = append(loads, v)
	}
	return loads, false
}
