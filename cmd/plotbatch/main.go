// plotbatch renders the comparison figure of every (prefix, method) pair in a
// results directory and saves each as <resultsDir>/<prefix>_<method>.png.
//
// Without flags it renders the standard solver set: methods galerkin_taylor,
// galerkin_fourier, neumann and nystrom for the prefixes rational and
// exponent, from ./results. Nothing is displayed.
//
// A failing pair is logged and the run moves on; the exit status is 1 if any
// pair failed. -fail-fast stops at the first failure instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/methodlab/resultplot/src/batch"
	"github.com/methodlab/resultplot/src/logging"
	"github.com/methodlab/resultplot/src/render"
)

type options struct {
	configPath string
	resultsDir string
	backend    string
	failFast   bool
	captions   bool
	reportPath string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML or JSONC file with methods, prefixes and results_dir (defaults: built-in solver set)")
	flag.StringVar(&o.resultsDir, "results-dir", "", "Override the results directory")
	flag.StringVar(&o.backend, "backend", render.BackendGonum, "Render backend ("+strings.Join(render.Names(), "|")+")")
	flag.BoolVar(&o.failFast, "fail-fast", false, "Stop at the first failing pair instead of rendering the rest")
	flag.BoolVar(&o.captions, "hints", false, "Draw difference statistics (max/mean/median) under each figure")
	flag.StringVar(&o.reportPath, "report", "", "Path to write a JSON report of the run (optional)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments: %s\n", strings.Join(flag.Args(), " "))
		os.Exit(2)
	}
	if !logging.SetLogLevel(*logLevel) {
		logging.Warnf("unknown log level %q, keeping info", *logLevel)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	log := logging.For("plotbatch")
	defer log.TimeTrack(time.Now(), "run")
	cfg := batch.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = batch.LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	if o.resultsDir != "" {
		cfg.ResultsDir = o.resultsDir
	}
	r, err := render.ByName(o.backend)
	if err != nil {
		return err
	}
	rep, runErr := batch.Run(cfg, batch.Options{Renderer: r, FailFast: o.failFast, Captions: o.captions})
	if rep != nil && o.reportPath != "" {
		if err := rep.WriteJSON(o.reportPath); err != nil {
			log.Errorf("%v", err)
		} else {
			log.Infof("wrote report %s", o.reportPath)
		}
	}
	if runErr != nil && rep != nil {
		return fmt.Errorf("%s\n%w", rep.Summary(), runErr)
	}
	return runErr
}
