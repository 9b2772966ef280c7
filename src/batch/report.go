package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/series"
)

// Status of one pair in a batch run.
type Status string

const (
	StatusRendered Status = "rendered"
	StatusFailed   Status = "failed"
	StatusSkipped  Status = "skipped"
)

// Outcome records what happened to one pair.
type Outcome struct {
	Pair
	Status     Status          `json:"status"`
	Inputs     figure.Paths    `json:"inputs"`
	Image      string          `json:"image"`
	DurationMs int64           `json:"duration_ms"`
	Difference *series.Summary `json:"difference,omitempty"`
	ErrorKind  string          `json:"error_kind,omitempty"`
	Error      string          `json:"error,omitempty"`

	err error
}

func (o *Outcome) setErr(err error) {
	o.err = err
	o.Status = StatusFailed
	o.ErrorKind = Kind(err)
	o.Error = err.Error()
}

// Err returns the failure of the pair, if any.
func (o Outcome) Err() error { return o.err }

// Report is the result of a batch run, written as JSON with -report.
type Report struct {
	GeneratedAt string    `json:"generated_at"`
	Config      Config    `json:"config"`
	Outcomes    []Outcome `json:"outcomes"`
	Rendered    int       `json:"rendered"`
	Failed      int       `json:"failed"`
	Skipped     int       `json:"skipped"`
}

func newReport(cfg Config) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Config:      cfg,
		Outcomes:    []Outcome{},
	}
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.err != nil {
		r.Failed++
	} else {
		r.Rendered++
	}
}

func (r *Report) skip(dir string, p Pair) {
	paths := figure.PathsFor(dir, p.Prefix, p.Method)
	r.Outcomes = append(r.Outcomes, Outcome{Pair: p, Status: StatusSkipped, Inputs: paths, Image: paths.Image})
	r.Skipped++
}

// Summary is a one-line account of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d pairs: %d rendered, %d failed, %d skipped", len(r.Outcomes), r.Rendered, r.Failed, r.Skipped)
}

// WriteJSON writes the report, indented, to path.
func (r *Report) WriteJSON(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
