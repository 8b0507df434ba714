package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// CurveChartData holds the stress curves and guardrail values to
// render. Stresses are in Pa; charts display MPa.
type CurveChartData struct {
	Radii        []float64            // sweep radii (m)
	Curves       map[string][]float64 // label → stress per radius (Pa)
	Order        []string             // display order of curve labels
	Allowable    float64              // σ_allow guardrail (Pa)
	ElasticLimit float64              // E·0.001 reference (Pa)
}

var seriesPalette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Fuchsia,
	asciigraph.Aqua,
	asciigraph.White,
}

// DrawASCIICurveChart renders the stress curves and the two guardrail
// lines as a terminal chart.
func DrawASCIICurveChart(data CurveChartData) string {
	series := make([][]float64, 0, len(data.Order)+2)
	legends := make([]string, 0, len(data.Order)+2)
	colors := make([]asciigraph.AnsiColor, 0, len(data.Order)+2)

	for i, label := range data.Order {
		values := data.Curves[label]
		mpa := make([]float64, len(values))
		for j, v := range values {
			mpa[j] = v / 1e6
		}
		series = append(series, mpa)
		legends = append(legends, label)
		colors = append(colors, seriesPalette[i%len(seriesPalette)])
	}

	// Guardrails as flat series so they land on the same scale
	for _, ref := range []struct {
		value float64
		label string
	}{
		{data.Allowable, fmt.Sprintf("σ_allow = %.1f MPa", data.Allowable/1e6)},
		{data.ElasticLimit, fmt.Sprintf("elastic limit E·0.001 = %.1f MPa", data.ElasticLimit/1e6)},
	} {
		flat := make([]float64, len(data.Radii))
		for j := range flat {
			flat[j] = ref.value / 1e6
		}
		series = append(series, flat)
		legends = append(legends, ref.label)
		colors = append(colors, asciigraph.Red)
	}

	caption := "Stress (MPa) vs minimum bend radius"
	if len(data.Radii) > 0 {
		caption = fmt.Sprintf("Stress (MPa) over R = %.2f–%.2f m", data.Radii[0], data.Radii[len(data.Radii)-1])
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(16),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
