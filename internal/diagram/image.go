package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gocba/internal/load"
)

// SeriesDiagram describes one field diagram to export.
type SeriesDiagram struct {
	Title  string
	YLabel string
	XS     []float64
	Values []float64

	// Supports adds vertical reference lines and alternating span shading.
	Supports []float64
}

// ExportSeriesDiagram writes the diagram as an image. The format follows the
// file extension (.png, .svg or .pdf); anything else falls back to PNG.
func ExportSeriesDiagram(d SeriesDiagram, filename string) error {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = d.YLabel

	yMin, yMax := seriesBounds(d.Values)

	// Alternating span shading so span boundaries read at a glance.
	shades := []color.RGBA{
		{R: 173, G: 216, B: 230, A: 60},
		{R: 144, G: 238, B: 144, A: 60},
	}
	for i := 0; i < len(d.Supports)-1; i++ {
		band := plotter.XYs{
			{X: d.Supports[i], Y: yMin},
			{X: d.Supports[i+1], Y: yMin},
			{X: d.Supports[i+1], Y: yMax},
			{X: d.Supports[i], Y: yMax},
		}
		poly, err := plotter.NewPolygon(band)
		if err != nil {
			return err
		}
		poly.Color = shades[i%len(shades)]
		poly.LineStyle.Color = color.Transparent
		p.Add(poly)
	}

	// Support reference lines.
	for _, pos := range d.Supports {
		vline, err := plotter.NewLine(plotter.XYs{
			{X: pos, Y: yMin},
			{X: pos, Y: yMax},
		})
		if err != nil {
			return err
		}
		vline.LineStyle.Width = vg.Points(1)
		vline.LineStyle.Color = color.Gray{Y: 100}
		vline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(vline)
	}

	// Zero axis.
	if len(d.XS) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: d.XS[0], Y: 0},
			{X: d.XS[len(d.XS)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 128}
		p.Add(zero)
	}

	pts := make(plotter.XYs, len(d.XS))
	for i := range d.XS {
		pts[i] = plotter.XY{X: d.XS[i], Y: d.Values[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	width := 10 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
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

// ExportBeamSketch writes the beam elevation: beam line, supports and the
// load extents, in the same image formats as ExportSeriesDiagram.
func ExportBeamSketch(supports []float64, loads []load.Load, filename string) error {
	if len(supports) < 2 {
		return nil
	}

	p := plot.New()
	p.Title.Text = "Beam Elevation"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = ""
	p.Y.Min = -1
	p.Y.Max = 2
	p.HideY()

	beam, err := plotter.NewLine(plotter.XYs{
		{X: supports[0], Y: 0},
		{X: supports[len(supports)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	beam.LineStyle.Width = vg.Points(3)
	beam.LineStyle.Color = color.Black
	p.Add(beam)

	// Supports as small triangles under the beam line.
	size := (supports[len(supports)-1] - supports[0]) * 0.012
	for _, pos := range supports {
		tri, err := plotter.NewPolygon(plotter.XYs{
			{X: pos, Y: 0},
			{X: pos - size, Y: -0.3},
			{X: pos + size, Y: -0.3},
		})
		if err != nil {
			return err
		}
		tri.Color = color.RGBA{R: 90, G: 90, B: 90, A: 255}
		p.Add(tri)
	}

	// Load intensity profiles above the beam, normalized to the strongest
	// load so relative magnitudes stay visible.
	maxIntensity := 0.0
	for _, ld := range loads {
		start, end := ld.Range()
		for _, x := range []float64{start, (start + end) / 2, end} {
			if w := ld.Intensity(x); w > maxIntensity {
				maxIntensity = w
			}
		}
	}
	if maxIntensity > 0 {
		for _, ld := range loads {
			start, end := ld.Range()
			profile := plotter.XYs{
				{X: start, Y: 0},
				{X: start, Y: ld.Intensity(start) / maxIntensity},
				{X: end, Y: ld.Intensity(end) / maxIntensity},
				{X: end, Y: 0},
			}
			poly, err := plotter.NewPolygon(profile)
			if err != nil {
				return err
			}
			poly.Color = color.RGBA{R: 220, G: 80, B: 60, A: 90}
			poly.LineStyle.Color = color.RGBA{R: 180, G: 40, B: 30, A: 255}
			p.Add(poly)
		}
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(10*vg.Inch, 3*vg.Inch, filename)
	default:
		return p.Save(10*vg.Inch, 3*vg.Inch, filename+".png")
	}
}

// seriesBounds returns padded min/max so shading bands cover the curve.
func seriesBounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return -1, 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	pad := (hi - lo) * 0.08
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}
