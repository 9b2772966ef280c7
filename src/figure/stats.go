package figure

import (
	"fmt"

	"github.com/methodlab/resultplot/src/series"
)

// DifferenceSummary summarizes the percentage-difference curve of a
// comparison figure (first curve of the second panel).
func DifferenceSummary(f *Figure) series.Summary {
	if f == nil || len(f.Panels) < 2 || len(f.Panels[1].Curves) == 0 {
		return series.Summary{}
	}
	return series.Summarize(&series.Series{Points: f.Panels[1].Curves[0].Points})
}

// StatsCaption formats a difference summary for the figure caption.
func StatsCaption(s series.Summary) string {
	if s.Count == 0 {
		return "difference: no finite samples"
	}
	return fmt.Sprintf("difference: max %.4g%%  mean %.4g%%  median %.4g%%  (n=%d)", s.Max, s.Mean, s.Median, s.Count)
}
