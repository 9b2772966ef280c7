package series

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the y values of a series, typically the
// percentage-difference curve of a method against the actual solution.
type Summary struct {
	Count  int     `json:"count"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Summarize computes max, mean and median over the finite y values of s.
// The median is the upper middle element for even counts. A series without
// finite values yields a zero Summary.
func Summarize(s *Series) Summary {
	if s.Len() == 0 {
		return Summary{}
	}
	ys := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		ys = append(ys, p.Y)
	}
	if len(ys) == 0 {
		return Summary{}
	}
	sort.Float64s(ys)
	return Summary{
		Count:  len(ys),
		Max:    floats.Max(ys),
		Mean:   stat.Mean(ys, nil),
		Median: ys[len(ys)/2],
	}
}
