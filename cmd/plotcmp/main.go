// plotcmp shows the comparison figure of one solver method.
//
//	plotcmp [flags] <resultsDir> <methodName> <prefix>
//
// It reads <resultsDir>/<prefix>_<methodName>.csv, <prefix>_actual.csv and
// <prefix>_<methodName>_diff.csv and opens a window with the numeric/actual
// panel next to the percentage-difference panel. The process ends when the
// window is closed. With -out the figure is written to a PNG instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/logging"
	"github.com/methodlab/resultplot/src/render"
	"github.com/methodlab/resultplot/src/viewer"
)

type options struct {
	dir, method, prefix string
	backend             string
	out                 string
	hints               bool
}

func main() {
	var o options
	flag.StringVar(&o.backend, "backend", render.BackendGonum, "Render backend ("+strings.Join(render.Names(), "|")+")")
	flag.StringVar(&o.out, "out", "", "Write the figure to this PNG file instead of opening a window")
	flag.BoolVar(&o.hints, "hints", false, "Draw difference statistics (max/mean/median) under the figure")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <resultsDir> <methodName> <prefix>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	o.dir, o.method, o.prefix = flag.Arg(0), flag.Arg(1), flag.Arg(2)
	if !logging.SetLogLevel(*logLevel) {
		logging.Warnf("unknown log level %q, keeping info", *logLevel)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	r, err := render.ByName(o.backend)
	if err != nil {
		return err
	}
	paths := figure.PathsFor(o.dir, o.prefix, o.method)
	name := figure.DisplayName(o.prefix, o.method)
	log := logging.For("plotcmp").With("pair", name)
	log.Debugf("numeric=%s actual=%s diff=%s", paths.Numeric, paths.Actual, paths.Diff)

	fig, err := figure.RenderComparison(name, paths.Numeric, paths.Actual, paths.Diff)
	if err != nil {
		return err
	}
	if o.hints {
		fig.Caption = figure.StatsCaption(figure.DifferenceSummary(fig))
	}
	if o.out != "" {
		if err := render.SavePNG(r, fig, o.out); err != nil {
			return err
		}
		log.Infof("wrote %s", o.out)
		return nil
	}
	img, err := render.Draw(r, fig)
	if err != nil {
		return err
	}
	return viewer.Show(fig.Panels[0].Title, img, filepath.Base(paths.Image))
}
