package figure

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methodlab/resultplot/src/series"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestPathsFor(t *testing.T) {
	p := PathsFor("results", "rational", "neumann")
	assert.Equal(t, Paths{
		Numeric: filepath.Join("results", "rational_neumann.csv"),
		Actual:  filepath.Join("results", "rational_actual.csv"),
		Diff:    filepath.Join("results", "rational_neumann_diff.csv"),
		Image:   filepath.Join("results", "rational_neumann.png"),
	}, p)
	assert.Equal(t, "rational_neumann", DisplayName("rational", "neumann"))
}

func TestRenderComparison_Layout(t *testing.T) {
	dir := t.TempDir()
	p := PathsFor(dir, "rational", "neumann")
	writeFile(t, p.Numeric, "0,1.1\n15,1.9\n")
	writeFile(t, p.Actual, "0,1.2\n15,1.8\n")
	writeFile(t, p.Diff, "0,0.5\n15,0.25\n")

	fig, err := RenderComparison(DisplayName("rational", "neumann"), p.Numeric, p.Actual, p.Diff)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)

	left, right := fig.Panels[0], fig.Panels[1]
	assert.Equal(t, "red = actual, blue = rational_neumann", left.Title)
	assert.Equal(t, "Difference in %", right.Title)
	assert.Empty(t, left.YUnit)
	assert.Equal(t, "%", right.YUnit)

	require.Len(t, left.Curves, 2)
	assert.Equal(t, Red, left.Curves[0].Color)
	assert.Equal(t, []series.Point{{X: 0, Y: 1.1}, {X: 15, Y: 1.9}}, left.Curves[0].Points)
	assert.Equal(t, Blue, left.Curves[1].Color)
	assert.Equal(t, []series.Point{{X: 0, Y: 1.2}, {X: 15, Y: 1.8}}, left.Curves[1].Points)

	require.Len(t, right.Curves, 1)
	assert.Equal(t, Red, right.Curves[0].Color)
	assert.Equal(t, []series.Point{{X: 0, Y: 0.5}, {X: 15, Y: 0.25}}, right.Curves[0].Points)

	w, h := fig.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestRenderComparison_WindowsIgnoreDataRange(t *testing.T) {
	dir := t.TempDir()
	p := PathsFor(dir, "exponent", "nystrom")
	// Everything far outside both windows.
	writeFile(t, p.Numeric, "-100,50\n200,-30\n")
	writeFile(t, p.Actual, "-5,1000\n")
	writeFile(t, p.Diff, "40,99\n41,-7\n")

	fig, err := RenderComparison("nystrom", p.Numeric, p.Actual, p.Diff)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)
	assert.Equal(t, Window{XMin: 0, XMax: 15, YMin: 1, YMax: 2}, fig.Panels[0].Window)
	assert.Equal(t, Window{XMin: 0, XMax: 15, YMin: 0, YMax: 2}, fig.Panels[1].Window)
	// Out-of-window data stays in the figure.
	assert.Len(t, fig.Panels[0].Curves[0].Points, 2)
	assert.Len(t, fig.Panels[1].Curves[0].Points, 2)
}

func TestRenderComparison_AbortsOnAnyInput(t *testing.T) {
	dir := t.TempDir()
	p := PathsFor(dir, "rational", "galerkin_taylor")
	writeFile(t, p.Numeric, "0,1\n")
	writeFile(t, p.Actual, "0,1\n")

	fig, err := RenderComparison("galerkin_taylor", p.Numeric, p.Actual, p.Diff)
	assert.Nil(t, fig)
	require.ErrorIs(t, err, series.ErrFileNotFound)
	assert.Contains(t, err.Error(), "difference series")

	writeFile(t, p.Diff, "0,0\n")
	writeFile(t, p.Actual, "0,one\n")
	fig, err = RenderComparison("galerkin_taylor", p.Numeric, p.Actual, p.Diff)
	assert.Nil(t, fig)
	require.ErrorIs(t, err, series.ErrMalformedRow)
	assert.Contains(t, err.Error(), "actual series")
}

func TestCurveSegments(t *testing.T) {
	nan := math.NaN()
	c := Curve{Points: []series.Point{{X: 0, Y: 1}, {X: 1, Y: nan}, {X: 2, Y: 3}, {X: 3, Y: 4}, {X: math.Inf(1), Y: 0}, {X: 5, Y: 6}}}
	segs := c.Segments()
	require.Len(t, segs, 3)
	assert.Equal(t, []series.Point{{X: 0, Y: 1}}, segs[0])
	assert.Equal(t, []series.Point{{X: 2, Y: 3}, {X: 3, Y: 4}}, segs[1])
	assert.Equal(t, []series.Point{{X: 5, Y: 6}}, segs[2])

	assert.Empty(t, Curve{}.Segments())
}

func TestWindowContains(t *testing.T) {
	w := SolutionWindow
	assert.True(t, w.Contains(series.Point{X: 0, Y: 1}))
	assert.True(t, w.Contains(series.Point{X: 15, Y: 2}))
	assert.False(t, w.Contains(series.Point{X: 15.01, Y: 1.5}))
	assert.False(t, w.Contains(series.Point{X: 3, Y: 0.99}))
}
