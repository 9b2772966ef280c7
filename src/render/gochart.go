package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/series"
)

// GoChart renders each panel as its own go-chart PNG and lays them side by
// side. go-chart does not clip to a fixed range, so curves are clipped to the
// panel window before they are handed over.
type GoChart struct{}

func (GoChart) Render(fig *figure.Figure) (image.Image, error) {
	w, h := fig.Size()
	n := len(fig.Panels)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	x := 0
	for i, panel := range fig.Panels {
		pw := w / n
		if i == n-1 {
			pw = w - x
		}
		img, err := renderChartPanel(panel, pw, h)
		if err != nil {
			return nil, fmt.Errorf("%w: panel %d %q: %v", figure.ErrRenderFailure, i, panel.Title, err)
		}
		draw.Draw(out, image.Rect(x, 0, x+pw, h), img, img.Bounds().Min, draw.Src)
		x += pw
	}
	return out, nil
}

func lineStyle(c color.RGBA) chart.Style {
	return chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A},
	}
}

func renderChartPanel(panel figure.Panel, w, h int) (image.Image, error) {
	win := panel.Window
	var curves []chart.Series
	for _, c := range panel.Curves {
		for i, run := range clipCurve(c, win) {
			xs, ys := (&series.Series{Points: run}).XY()
			curves = append(curves, chart.ContinuousSeries{
				Name:    fmt.Sprintf("%s/%d", c.Label, i),
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(c.Color),
			})
		}
	}
	if len(curves) == 0 {
		// go-chart refuses to render without a series; draw an invisible diagonal.
		curves = append(curves, chart.ContinuousSeries{
			XValues: []float64{win.XMin, win.XMax},
			YValues: []float64{win.YMin, win.YMax},
			Style:   chart.Style{StrokeWidth: 0, StrokeColor: drawing.ColorTransparent},
		})
	}
	xt, yt := windowTicks(panel)
	ch := chart.Chart{
		Title:      panel.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 20, Bottom: 28}},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: win.XMin, Max: win.XMax},
			Ticks: chartTicks(xt),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: win.YMin, Max: win.YMax},
			Ticks: chartTicks(yt),
		},
		Series: curves,
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func chartTicks(ts []tick) []chart.Tick {
	out := make([]chart.Tick, len(ts))
	for i, t := range ts {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
