package render

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreatePNG saves a 2D preview plot of the gear outline and its pitch
// circle to a PNG file.
func CreatePNG(path string, g *gears.Gear) error {
	p, err := gearPlot(g)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// WritePNG writes the preview plot as PNG to w.
func WritePNG(w io.Writer, g *gears.Gear) error {
	p, err := gearPlot(g)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func gearPlot(g *gears.Gear) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("spur gear, pitch radius %.3f", g.PitchRadius)

	outline, err := plotter.NewLine(lineXYs(g.Outline))
	if err != nil {
		return nil, err
	}
	pitch, err := plotter.NewLine(circleXYs(g.PitchRadius, 128))
	if err != nil {
		return nil, err
	}
	pitch.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(plotter.NewGrid(), outline, pitch)

	// Square axis ranges so the gear is not squashed.
	bounds := d2.Set(g.Outline)
	lo, hi := bounds.Min(), bounds.Max()
	c := r2.Scale(0.5, lo.Add(hi))
	half := 0.55 * math.Max(hi.X-lo.X, hi.Y-lo.Y)
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half
	return p, nil
}

func lineXYs(vs []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(vs))
	for i, v := range vs {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}

func circleXYs(r float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		v := d2.Pol{R: r, Theta: 2 * math.Pi * float64(i) / float64(n)}.PolarToCartesian()
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	return xys
}
