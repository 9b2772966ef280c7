package figure

import (
	"fmt"
	"path/filepath"

	"github.com/methodlab/resultplot/src/series"
)

// Fixed visible windows of the comparison panels.
var (
	SolutionWindow   = Window{XMin: 0, XMax: 15, YMin: 1, YMax: 2}
	DifferenceWindow = Window{XMin: 0, XMax: 15, YMin: 0, YMax: 2}
)

const DifferenceTitle = "Difference in %"

// SolutionTitle is the left panel title for a method display name.
func SolutionTitle(name string) string { return "red = actual, blue = " + name }

// Paths holds the files tied to one (prefix, method) pair by naming convention.
type Paths struct {
	Numeric string `json:"numeric"`
	Actual  string `json:"actual"`
	Diff    string `json:"diff"`
	Image   string `json:"image"`
}

// PathsFor applies the solver's naming convention inside dir:
// <prefix>_<method>.csv, <prefix>_actual.csv, <prefix>_<method>_diff.csv and
// the output image <prefix>_<method>.png.
func PathsFor(dir, prefix, method string) Paths {
	base := prefix + "_" + method
	return Paths{
		Numeric: filepath.Join(dir, base+".csv"),
		Actual:  filepath.Join(dir, prefix+"_actual.csv"),
		Diff:    filepath.Join(dir, base+"_diff.csv"),
		Image:   filepath.Join(dir, base+".png"),
	}
}

// DisplayName is the method label used in panel titles, e.g. "rational_neumann".
func DisplayName(prefix, method string) string { return prefix + "_" + method }

// RenderComparison loads the three series and lays them out as a two-panel
// figure: numeric (red) over actual (blue) on the left, the percentage
// difference (red) on the right. All three files are loaded before anything
// is built, so a load failure returns no figure at all.
func RenderComparison(name, numericPath, actualPath, diffPath string) (*Figure, error) {
	numeric, err := series.Load(numericPath)
	if err != nil {
		return nil, fmt.Errorf("numeric series: %w", err)
	}
	actual, err := series.Load(actualPath)
	if err != nil {
		return nil, fmt.Errorf("actual series: %w", err)
	}
	diff, err := series.Load(diffPath)
	if err != nil {
		return nil, fmt.Errorf("difference series: %w", err)
	}
	return Comparison(name, numeric, actual, diff), nil
}

// Comparison builds the figure from already loaded series.
func Comparison(name string, numeric, actual, diff *series.Series) *Figure {
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Panels: []Panel{
			{
				Title:  SolutionTitle(name),
				Window: SolutionWindow,
				Curves: []Curve{
					{Label: "numeric", Color: Red, Points: pointsOf(numeric)},
					{Label: "actual", Color: Blue, Points: pointsOf(actual)},
				},
			},
			{
				Title:  DifferenceTitle,
				Window: DifferenceWindow,
				YUnit:  "%",
				Curves: []Curve{
					{Label: "difference", Color: Red, Points: pointsOf(diff)},
				},
			},
		},
	}
}

func pointsOf(s *series.Series) []series.Point {
	if s == nil {
		return nil
	}
	return s.Points
}
