//go:build linux

package viewer

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/methodlab/resultplot/src/figure"
)

func TestShow_NoDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	err := Show("rational_neumann", image.NewRGBA(image.Rect(0, 0, 4, 4)), "")
	require.ErrorIs(t, err, figure.ErrRenderFailure)
}
