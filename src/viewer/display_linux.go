//go:build linux

package viewer

import (
	"fmt"
	"os"

	"github.com/methodlab/resultplot/src/figure"
)

// displayAvailable fails fast when neither X11 nor Wayland is reachable;
// starting the GL driver without one aborts the process.
func displayAvailable() error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: no display (DISPLAY and WAYLAND_DISPLAY are unset)", figure.ErrRenderFailure)
	}
	return nil
}
