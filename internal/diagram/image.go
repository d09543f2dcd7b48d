package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSpanwiseDiagram exports the element thrust and power
// contributions versus radius to an image file.
func ExportSpanwiseDiagram(data SpanwiseData, filename string) error {
	p := plot.New()
	p.Title.Text = "Spanwise Loading"
	p.X.Label.Text = "Radius (m)"
	p.Y.Label.Text = "Element coefficient contribution"
	p.Legend.Top = true

	ctPts := make(plotter.XYs, len(data.Radii))
	cpPts := make(plotter.XYs, len(data.Radii))
	for i, r := range data.Radii {
		ctPts[i] = plotter.XY{X: r, Y: data.DeltaCt[i]}
		cpPts[i] = plotter.XY{X: r, Y: data.DeltaCp[i]}
	}

	ctLine, err := plotter.NewLine(ctPts)
	if err != nil {
		return err
	}
	ctLine.LineStyle.Width = vg.Points(2)
	ctLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(ctLine)
	p.Legend.Add("ΔCt", ctLine)

	cpLine, err := plotter.NewLine(cpPts)
	if err != nil {
		return err
	}
	cpLine.LineStyle.Width = vg.Points(2)
	cpLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	cpLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(cpLine)
	p.Legend.Add("ΔCp", cpLine)

	stations, err := plotter.NewScatter(cpPts)
	if err != nil {
		return err
	}
	stations.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	stations.GlyphStyle.Radius = vg.Points(3)
	stations.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(stations)

	return savePlot(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportSweepDiagram exports a performance sweep, e.g. Cp and Ct over
// tip speed ratio.
func ExportSweepDiagram(xs, cps, cts []float64, xLabel, filename string) error {
	p := plot.New()
	p.Title.Text = "Rotor Performance Sweep"
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Coefficient"
	p.Legend.Top = true

	cpPts := make(plotter.XYs, len(xs))
	ctPts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		cpPts[i] = plotter.XY{X: x, Y: cps[i]}
		ctPts[i] = plotter.XY{X: x, Y: cts[i]}
	}

	if err := plotutil.AddLinePoints(p, "Cp", cpPts, "Ct", ctPts); err != nil {
		return err
	}

	return savePlot(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportPolarDiagram exports the sampled lift and drag polars.
func ExportPolarDiagram(liftAngles, liftCoefs, dragAngles, dragCoefs []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Section Polars"
	p.X.Label.Text = "Angle of attack (deg)"
	p.Y.Label.Text = "Coefficient"
	p.Legend.Top = true

	clPts := make(plotter.XYs, len(liftAngles))
	for i, a := range liftAngles {
		clPts[i] = plotter.XY{X: a, Y: liftCoefs[i]}
	}
	cdPts := make(plotter.XYs, len(dragAngles))
	for i, a := range dragAngles {
		cdPts[i] = plotter.XY{X: a, Y: dragCoefs[i]}
	}

	if err := plotutil.AddLinePoints(p, "Cl", clPts, "Cd", cdPts); err != nil {
		return err
	}

	return savePlot(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// savePlot writes the plot, defaulting to PNG for unknown extensions.
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
