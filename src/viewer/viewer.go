// Package viewer shows a rendered figure in a desktop window.
package viewer

import (
	"fmt"
	"image"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/methodlab/resultplot/src/figure"
	"github.com/methodlab/resultplot/src/logging"
)

const appID = "com.methodlab.resultplot"

var log = logging.For("viewer")

// Show opens a window with img and blocks until the user closes it.
func Show(title string, img image.Image, saveName string) error {
	if img == nil {
		return fmt.Errorf("%w: nothing to display", figure.ErrRenderFailure)
	}
	if err := displayAvailable(); err != nil {
		return err
	}
	a := app.NewWithID(appID)
	w := NewWindow(a, title, img, saveName)
	w.ShowAndRun()
	return nil
}

// NewWindow builds (but does not show) a window sized to img, with a File
// menu to save the image as PNG and Ctrl/Cmd+W to close.
func NewWindow(a fyne.App, title string, img image.Image, saveName string) fyne.Window {
	w := a.NewWindow(title)
	b := img.Bounds()
	size := fyne.NewSize(float32(b.Dx()), float32(b.Dy()))

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(size)
	w.SetContent(container.NewStack(ci))
	w.Resize(size)

	save := fyne.NewMenuItem("Save PNG…", func() { exportPNG(w, img, saveName) })
	quit := fyne.NewMenuItem("Close", func() { w.Close() })
	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", save, fyne.NewMenuItemSeparator(), quit)))

	if canv := w.Canvas(); canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { w.Close() })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: mod}, func(fyne.Shortcut) { exportPNG(w, img, saveName) })
		}
	}
	return w
}

func exportPNG(w fyne.Window, img image.Image, defaultName string) {
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img); err != nil {
			log.Errorf("save %s: %v", wc.URI(), err)
			dialog.ShowError(err, w)
			return
		}
		log.Infof("saved %s", wc.URI())
	}, w)
	if defaultName != "" {
		fs.SetFileName(defaultName)
	}
	fs.Show()
}
