package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var linePalette = []color.RGBA{
	{R: 37, G: 99, B: 235, A: 255},  // blue
	{R: 16, G: 150, B: 72, A: 255},  // green
	{R: 217, G: 119, B: 6, A: 255},  // amber
	{R: 139, G: 69, B: 19, A: 255},  // brown
	{R: 109, G: 40, B: 217, A: 255}, // violet
	{R: 8, G: 145, B: 178, A: 255},  // teal
}

// ExportCurveChart exports the stress-vs-radius chart to an image
// file. One line per curve in MPa, plus the dashed allowable-stress
// line and the dotted elastic-limit reference.
func ExportCurveChart(data CurveChartData, filename string) error {
	if len(data.Radii) == 0 {
		return fmt.Errorf("no radius samples to plot")
	}

	p := plot.New()
	p.Title.Text = "Stress vs Minimum Bend Radius"
	p.X.Label.Text = "Minimum bend radius R (m)"
	p.Y.Label.Text = "Stress (MPa)"
	p.Add(plotter.NewGrid())

	for i, label := range data.Order {
		values := data.Curves[label]
		pts := make(plotter.XYs, len(values))
		for j, v := range values {
			pts[j] = plotter.XY{X: data.Radii[j], Y: v / 1e6}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = linePalette[i%len(linePalette)]
		p.Add(line)
		p.Legend.Add(label, line)
	}

	rMin := data.Radii[0]
	rMax := data.Radii[len(data.Radii)-1]

	allowLine, err := horizontalLine(rMin, rMax, data.Allowable/1e6)
	if err != nil {
		return err
	}
	allowLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(allowLine)
	p.Legend.Add(fmt.Sprintf("σ_allow = %.1f MPa", data.Allowable/1e6), allowLine)

	elasticLine, err := horizontalLine(rMin, rMax, data.ElasticLimit/1e6)
	if err != nil {
		return err
	}
	elasticLine.LineStyle.Dashes = []vg.Length{vg.Points(1.5), vg.Points(3)}
	p.Add(elasticLine)
	p.Legend.Add("~0.1% elastic limit (E·0.001)", elasticLine)

	p.Legend.Top = true

	return savePlot(p, 9*vg.Inch, 6*vg.Inch, filename)
}

func horizontalLine(xMin, xMax, y float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: y},
		{X: xMax, Y: y},
	})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	return line, nil
}

// SectionDiagramData holds the cross-section layout to draw (mm).
type SectionDiagramData struct {
	JacketOuterRadius float64
	CoreRadius        float64
	InsulatedRadius   float64
	Offset            float64 // conductor centroid offset from the neutral axis
}

// ExportSectionDiagram exports a cable cross-section diagram: jacket,
// core bore, the conductor pair at ±offset, and the neutral axis.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Cable Cross-Section"
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"

	// Equal scaling so circles render round
	extent := data.JacketOuterRadius * 1.15
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent

	jacket, err := circleLine(0, 0, data.JacketOuterRadius)
	if err != nil {
		return err
	}
	jacket.LineStyle.Width = vg.Points(2)
	jacket.LineStyle.Color = color.Black
	p.Add(jacket)
	p.Legend.Add("jacket", jacket)

	core, err := circleLine(0, 0, data.CoreRadius)
	if err != nil {
		return err
	}
	core.LineStyle.Width = vg.Points(1)
	core.LineStyle.Color = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	p.Add(core)
	p.Legend.Add("core bore", core)

	for _, yc := range []float64{data.Offset, -data.Offset} {
		conductor, err := circleLine(0, yc, data.InsulatedRadius)
		if err != nil {
			return err
		}
		conductor.LineStyle.Width = vg.Points(1.5)
		conductor.LineStyle.Color = color.RGBA{R: 37, G: 99, B: 235, A: 255}
		p.Add(conductor)
	}

	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -extent, Y: 0},
		{X: extent, Y: 0},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)
	p.Legend.Add("neutral axis", naLine)

	return savePlot(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func circleLine(cx, cy, r float64) (*plotter.Line, error) {
	const segments = 72
	pts := make(plotter.XYs, segments+1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		pts[i] = plotter.XY{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return plotter.NewLine(pts)
}

// savePlot writes the plot to filename, picking the format from the
// extension and defaulting to PNG.
func savePlot(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
