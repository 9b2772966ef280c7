// Package render turns a figure.Figure into a raster image and writes PNGs.
//
// Two backends draw the same figure: Gonum (gonum.org/v1/plot, the default)
// and GoChart (github.com/wcharczuk/go-chart/v2). Both honour the fixed panel
// windows and clip curves at the window edge.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/methodlab/resultplot/src/figure"
)

// Renderer draws every panel of a figure into one image.
type Renderer interface {
	Render(fig *figure.Figure) (image.Image, error)
}

const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

var backends = map[string]func() Renderer{
	BackendGonum:   func() Renderer { return Gonum{} },
	BackendGoChart: func() Renderer { return GoChart{} },
}

// Names lists the known backend names, sorted.
func Names() []string {
	out := make([]string, 0, len(backends))
	for k := range backends {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ByName returns the backend registered under name; "" selects gonum.
func ByName(name string) (Renderer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = BackendGonum
	}
	mk, ok := backends[key]
	if !ok {
		return nil, fmt.Errorf("unknown render backend %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// Draw renders fig with r and appends the figure caption, if any.
func Draw(r Renderer, fig *figure.Figure) (image.Image, error) {
	if fig == nil || len(fig.Panels) == 0 {
		return nil, fmt.Errorf("%w: figure has no panels", figure.ErrRenderFailure)
	}
	img, err := r.Render(fig)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(fig.Caption) != "" {
		img = WithCaption(img, fig.Caption)
	}
	return img, nil
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png encode: %v", figure.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// SavePNG draws fig and writes it to path, replacing any existing file.
func SavePNG(r Renderer, fig *figure.Figure, path string) error {
	img, err := Draw(r, fig)
	if err != nil {
		return err
	}
	b, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %v", figure.ErrRenderFailure, dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", figure.ErrRenderFailure, path, err)
	}
	return nil
}
