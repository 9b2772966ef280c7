// Package figure builds the two-panel comparison figure for one solver method.
//
// A Figure is a plain value: panels, titles, fixed axis windows and the curves
// drawn in them. It knows nothing about pixels; package render turns it into
// an image and the caller decides whether to save, show or discard it.
package figure

import (
	"errors"
	"image/color"
	"math"

	"github.com/methodlab/resultplot/src/series"
)

// ErrRenderFailure is returned when a figure cannot be rendered, encoded,
// written or displayed.
var ErrRenderFailure = errors.New("figure: render failure")

// Default pixel size of a rendered figure.
const (
	DefaultWidth  = 1280
	DefaultHeight = 540
)

var (
	Red  = color.RGBA{R: 255, A: 255}
	Blue = color.RGBA{B: 255, A: 255}
)

// Window is the visible axis range of a panel. Points outside it stay in the
// curve and are clipped when drawn.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether p lies inside the window, edges included.
func (w Window) Contains(p series.Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// Curve is one polyline drawn in a panel.
type Curve struct {
	Label  string
	Color  color.RGBA
	Points []series.Point
}

// Segments splits the curve at NaN or infinite points, returning the finite
// runs in order. Runs are sub-slices of Points.
func (c Curve) Segments() [][]series.Point {
	var out [][]series.Point
	start := -1
	for i, p := range c.Points {
		finite := !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
		switch {
		case finite && start < 0:
			start = i
		case !finite && start >= 0:
			out = append(out, c.Points[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, c.Points[start:])
	}
	return out
}

// Panel is one sub-plot. Curves are drawn in slice order.
type Panel struct {
	Title  string
	Window Window
	// YUnit is appended to the y tick labels, e.g. "%".
	YUnit  string
	Curves []Curve
}

// Figure is a row of panels laid out left to right.
type Figure struct {
	Panels []Panel
	// Width and Height are the rendered size in pixels.
	Width, Height int
	// Caption is optional text drawn under the panels.
	Caption string
}

// Size returns the pixel size, falling back to the defaults for unset values.
func (f *Figure) Size() (int, int) {
	w, h := f.Width, f.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}
