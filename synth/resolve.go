package synth

import (
	"image"
	"image/color"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
)

// Resolve renders c as an opaque image: each filled texel takes its
// supplying patch's color, unfilled texels stay black.
// Complexity: O(W·H).
func Resolve(c *canvas.Canvas, h *patch.History) *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			out := color.RGBA{A: 0xff}
			if idx := c.At(x, y).Patch; idx != canvas.Unfilled && h.Covers(idx, x, y) {
				rgb := h.RGB(idx, x, y)
				out.R, out.G, out.B = rgb[0], rgb[1], rgb[2]
			}
			img.SetRGBA(x, y, out)
		}
	}
	return img
}
