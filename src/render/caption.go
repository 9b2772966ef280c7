package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CaptionHeight is the strip added under an image by WithCaption.
const CaptionHeight = 22

// WithCaption returns a copy of img extended by a white strip holding text at
// the bottom-left. Text wider than the image is cut at the right edge.
func WithCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+CaptionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	face := basicfont.Face7x13
	// thin separator between the plot and the caption
	draw.Draw(out, image.Rect(0, b.Dy(), b.Dx(), b.Dy()+1), image.NewUniform(color.RGBA{R: 200, G: 200, B: 200, A: 255}), image.Point{}, draw.Src)
	x := 8
	y := b.Dy() + (CaptionHeight+face.Metrics().Ascent.Ceil())/2
	dr := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(text)
	return out
}
