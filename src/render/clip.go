package render

import (
	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/series"
)

// clipCurve cuts a curve down to the parts visible in w. Each returned run is
// a polyline with at least two points; a run ends where the curve leaves the
// window or hits a non-finite point.
func clipCurve(c figure.Curve, w figure.Window) [][]series.Point {
	var runs [][]series.Point
	for _, seg := range c.Segments() {
		var cur []series.Point
		flush := func() {
			if len(cur) >= 2 {
				runs = append(runs, cur)
			}
			cur = nil
		}
		for i := 1; i < len(seg); i++ {
			p0, p1, entered, exited, ok := clipSegment(seg[i-1], seg[i], w)
			if !ok {
				flush()
				continue
			}
			if !entered || len(cur) == 0 {
				flush()
				cur = append(cur, p0)
			}
			cur = append(cur, p1)
			if !exited {
				flush()
			}
		}
		flush()
	}
	return runs
}

// clipSegment clips a->b to w (Liang-Barsky). entered reports that the
// clipped segment starts at a, exited that it ends at b; in those cases the
// original point is returned unchanged.
func clipSegment(a, b series.Point, w figure.Window) (p0, p1 series.Point, entered, exited, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - w.XMin},
		{dx, w.XMax - a.X},
		{-dy, a.Y - w.YMin},
		{dy, w.YMax - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false, false, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return p0, p1, false, false, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return p0, p1, false, false, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	p0, p1 = a, b
	if t0 > 0 {
		p0 = series.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		p1 = series.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return p0, p1, t0 == 0, t1 == 1, true
}
