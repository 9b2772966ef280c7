package batch

import (
	"errors"
	"fmt"
	"time"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/logging"
	"github.com/methodlab/resultplot/src/render"
	"github.com/methodlab/resultplot/src/series"
)

var log = logging.For("batch")

// Options controls a batch run.
type Options struct {
	// Renderer draws each figure; nil selects the default backend.
	Renderer render.Renderer
	// FailFast stops at the first failing pair and skips the rest.
	// Otherwise every pair is attempted and failures are collected.
	FailFast bool
	// Captions adds the difference statistics under each figure.
	Captions bool
}

// Run renders every pair of cfg, in Pairs order. The report is always
// returned; the error joins every pair failure (only the first with
// FailFast) and is nil when all pairs were rendered.
func Run(cfg Config, opts Options) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Renderer == nil {
		r, err := render.ByName("")
		if err != nil {
			return nil, err
		}
		opts.Renderer = r
	}
	rep := newReport(cfg)
	pairs := cfg.Pairs()
	var errs []error
	for i, p := range pairs {
		out := renderPair(cfg.ResultsDir, p, opts)
		rep.add(out)
		if out.err == nil {
			log.With("pair", p.Name()).Infof("wrote %s (%dms)", out.Image, out.DurationMs)
			continue
		}
		log.With("pair", p.Name()).Errorf("%s: %v", out.ErrorKind, out.err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), out.err))
		if opts.FailFast {
			for _, rest := range pairs[i+1:] {
				rep.skip(cfg.ResultsDir, rest)
			}
			break
		}
	}
	log.Infof("%s", rep.Summary())
	return rep, errors.Join(errs...)
}

// renderPair runs one pair in its own failure scope: errors and panics from
// loading or rendering end up in the outcome, never in the caller.
func renderPair(dir string, p Pair, opts Options) (out Outcome) {
	start := time.Now()
	paths := figure.PathsFor(dir, p.Prefix, p.Method)
	out = Outcome{Pair: p, Status: StatusRendered, Inputs: paths, Image: paths.Image}
	defer func() {
		if r := recover(); r != nil {
			out.setErr(fmt.Errorf("%w: panic: %v", figure.ErrRenderFailure, r))
		}
		out.DurationMs = time.Since(start).Milliseconds()
		log.With("pair", p.Name()).TimeTrack(start, "render")
	}()

	fig, err := figure.RenderComparison(p.Name(), paths.Numeric, paths.Actual, paths.Diff)
	if err != nil {
		out.setErr(err)
		return out
	}
	sum := figure.DifferenceSummary(fig)
	out.Difference = &sum
	if opts.Captions {
		fig.Caption = figure.StatsCaption(sum)
	}
	if err := render.SavePNG(opts.Renderer, fig, paths.Image); err != nil {
		out.setErr(err)
	}
	return out
}

// Kind classifies a failure for the report.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, series.ErrFileNotFound):
		return "file_not_found"
	case errors.Is(err, series.ErrMalformedRow):
		return "malformed_row"
	case errors.Is(err, figure.ErrRenderFailure):
		return "render_failure"
	default:
		return "other"
	}
}
