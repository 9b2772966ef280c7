// Package series loads the two-column (x, y) CSV files written by the solver
// and summarizes them.
package series

// Point is one sample of a curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered run of points, in the row order of its source file.
type Series struct {
	Name   string
	Points []Point
}

// Len returns the number of points.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// XY splits the points into parallel x and y slices.
func (s *Series) XY() (xs, ys []float64) {
	if s == nil {
		return nil, nil
	}
	xs = make([]float64, len(s.Points))
	ys = make([]float64, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}
