// SPDX-License-Identifier: MIT
// Package builder_test: shared fixtures for the builder tests.
package builder_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
)

// rowPatch returns a w×1 patch whose red channel follows reds.
func rowPatch(t *testing.T, reds ...uint8) *patch.Pixels {
	t.Helper()
	p, err := patch.NewPixels(len(reds), 1)
	require.NoError(t, err)
	for x, r := range reds {
		p.Set(x, 0, patch.RGB{r, 0, 0})
	}
	return p
}

// flatPatch returns a w×h patch of one color.
func flatPatch(t *testing.T, w, h int, c patch.RGB) *patch.Pixels {
	t.Helper()
	p, err := patch.NewPixels(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(x, y, c)
		}
	}
	return p
}

// newCanvas returns a w×h canvas, failing the test on error.
func newCanvas(t *testing.T, w, h int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(w, h)
	require.NoError(t, err)
	return c
}

// assign sets the supplying patch of every pixel in r.
func assign(c *canvas.Canvas, r image.Rectangle, idx int) {
	r = r.Intersect(c.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.At(x, y).Patch = idx
		}
	}
}
