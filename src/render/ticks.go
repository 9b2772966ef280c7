package render

import (
	"math"
	"strconv"

	"github.com/methodlab/resultplot/src/figure"
)

// tickIntervals is the number of intervals aimed for along one axis.
const tickIntervals = 6

// tick is one labelled axis mark.
type tick struct {
	Value float64
	Label string
}

// windowTicks returns the x and y marks of a panel. Y labels carry the
// panel's unit.
func windowTicks(p figure.Panel) (xs, ys []tick) {
	w := p.Window
	return axisTicks(w.XMin, w.XMax, ""), axisTicks(w.YMin, w.YMax, p.YUnit)
}

// axisTicks marks [min,max] at multiples of a 1, 2, 2.5 or 5 × 10^k step.
// Marks never fall outside the range.
func axisTicks(min, max float64, unit string) []tick {
	if !(max > min) || math.IsInf(max-min, 0) {
		return []tick{{Value: min, Label: tickLabel(min, unit)}}
	}
	step := niceStep((max - min) / tickIntervals)
	var out []tick
	for k := math.Ceil(min/step - 1e-9); ; k++ {
		v := roundTick(k * step)
		if v > max+step*1e-9 {
			break
		}
		out = append(out, tick{Value: v, Label: tickLabel(v, unit)})
	}
	return out
}

// niceStep is the smallest 1, 2, 2.5, 5 × 10^k not below raw.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 2.5, 5} {
		if m*mag >= raw*(1-1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

func roundTick(v float64) float64 { return math.Round(v*1e9) / 1e9 }

// tickLabel prints v with no more digits than it needs.
func tickLabel(v float64, unit string) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
