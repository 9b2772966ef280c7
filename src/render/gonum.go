package render

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/series"
)

const defaultDPI = 96

// Gonum renders panels as tiles of one gonum/plot canvas. Lines are clipped
// to the plot area by gonum itself.
type Gonum struct {
	// DPI maps figure pixels to canvas length; 0 means 96.
	DPI int
}

func (g Gonum) Render(fig *figure.Figure) (image.Image, error) {
	dpi := g.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}
	w, h := fig.Size()
	toLength := func(px int) vg.Length { return vg.Length(px) * vg.Inch / vg.Length(dpi) }

	plots := make([]*plot.Plot, len(fig.Panels))
	for i, panel := range fig.Panels {
		p, err := gonumPanel(panel)
		if err != nil {
			return nil, fmt.Errorf("%w: panel %d %q: %v", figure.ErrRenderFailure, i, panel.Title, err)
		}
		plots[i] = p
	}

	c := vgimg.NewWith(vgimg.UseWH(toLength(w), toLength(h)), vgimg.UseDPI(dpi))
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      6 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, draw.New(c))
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	return c.Image(), nil
}

func gonumPanel(panel figure.Panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = panel.Title
	for _, c := range panel.Curves {
		for _, seg := range c.Segments() {
			if len(seg) < 2 {
				continue
			}
			line, err := plotter.NewLine(xys(seg))
			if err != nil {
				return nil, fmt.Errorf("curve %s: %w", c.Label, err)
			}
			line.LineStyle.Color = c.Color
			line.LineStyle.Width = vg.Points(1.5)
			p.Add(line)
		}
	}
	// Add widens the axes to the data range; the window wins.
	p.X.Min, p.X.Max = panel.Window.XMin, panel.Window.XMax
	p.Y.Min, p.Y.Max = panel.Window.YMin, panel.Window.YMax
	xt, yt := windowTicks(panel)
	p.X.Tick.Marker = plotTicks(xt)
	p.Y.Tick.Marker = plotTicks(yt)
	return p, nil
}

func plotTicks(ts []tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ts))
	for i, t := range ts {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

func xys(pts []series.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i].X = pt.X
		out[i].Y = pt.Y
	}
	return out
}
