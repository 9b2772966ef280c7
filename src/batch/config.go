// Package batch renders the comparison figure for every (prefix, method) pair
// of a results directory and saves each one as a PNG next to its inputs.
package batch

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/methodlab/resultplot/src/figure"
)

// ErrConfig reports an unreadable or invalid batch configuration.
var ErrConfig = errors.New("batch: invalid config")

// Config lists what a batch run renders.
type Config struct {
	Methods    []string `json:"methods" yaml:"methods"`
	Prefixes   []string `json:"prefixes" yaml:"prefixes"`
	ResultsDir string   `json:"results_dir" yaml:"results_dir"`
}

// DefaultConfig is the solver's standard output set.
func DefaultConfig() Config {
	return Config{
		Methods:    []string{"galerkin_taylor", "galerkin_fourier", "neumann", "nystrom"},
		Prefixes:   []string{"rational", "exponent"},
		ResultsDir: "results",
	}
}

// Pair is one (prefix, method) combination.
type Pair struct {
	Prefix string `json:"prefix"`
	Method string `json:"method"`
}

// Name is the display name used in titles and logs, e.g. "rational_neumann".
func (p Pair) Name() string { return figure.DisplayName(p.Prefix, p.Method) }

// Pairs returns the cross product, methods in the outer loop.
func (c Config) Pairs() []Pair {
	out := make([]Pair, 0, len(c.Methods)*len(c.Prefixes))
	for _, m := range c.Methods {
		for _, p := range c.Prefixes {
			out = append(out, Pair{Prefix: p, Method: m})
		}
	}
	return out
}

// Validate rejects configs that would render nothing or build odd paths.
func (c Config) Validate() error {
	if len(c.Methods) == 0 {
		return fmt.Errorf("%w: no methods", ErrConfig)
	}
	if len(c.Prefixes) == 0 {
		return fmt.Errorf("%w: no prefixes", ErrConfig)
	}
	if strings.TrimSpace(c.ResultsDir) == "" {
		return fmt.Errorf("%w: empty results_dir", ErrConfig)
	}
	for _, list := range [][]string{c.Methods, c.Prefixes} {
		for _, v := range list {
			if strings.TrimSpace(v) == "" || strings.ContainsAny(v, `/\`) {
				return fmt.Errorf("%w: bad name %q", ErrConfig, v)
			}
		}
	}
	return nil
}

// LoadConfig reads a YAML (.yaml, .yml) or JSONC (.json, .jsonc) file. Keys
// that are absent keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
		}
	case ".json", ".jsonc":
		b, err := StripJSONC(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s: unsupported extension (want .yaml, .yml, .json or .jsonc)", ErrConfig, path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// StripJSONC loads a JSONC file (full-line // comments) and returns raw JSON bytes.
func StripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		// Inline // is kept: it may be part of a path or URL.
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}
