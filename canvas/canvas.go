package canvas

import (
	"fmt"
	"image"
)

// New returns a width×height canvas with every texel unfilled and no seams.
// Returns ErrEmptyCanvas when either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: New(%d, %d): %w", width, height, ErrEmptyCanvas)
	}
	texels := make([]Texel, width*height)
	for i := range texels {
		texels[i].Patch = Unfilled
	}
	return &Canvas{width: width, height: height, texels: texels}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Len returns the number of texels.
func (c *Canvas) Len() int { return len(c.texels) }

// Bounds returns the canvas rectangle anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// InBounds reports whether (x,y) lies within the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Index maps (x,y) to its row-major index y*Width + x.
func (c *Canvas) Index(x, y int) int { return y*c.width + x }

// Coordinate converts a row-major index back to (x,y).
func (c *Canvas) Coordinate(idx int) (x, y int) { return idx % c.width, idx / c.width }

// At returns the texel at (x,y), or nil outside the canvas. The pointer stays
// valid for the canvas' lifetime.
func (c *Canvas) At(x, y int) *Texel {
	if !c.InBounds(x, y) {
		return nil
	}
	return &c.texels[c.Index(x, y)]
}

// Seam returns the cost and kept flag of the seam slot of (x,y) along axis.
// Outside the canvas it returns (0, false).
func (c *Canvas) Seam(x, y int, axis Axis) (int64, bool) {
	t := c.At(x, y)
	if t == nil {
		return 0, false
	}
	if axis == AxisX {
		return t.SeamX, t.KeepX
	}
	return t.SeamY, t.KeepY
}

// SetSeam stores cost in the seam slot of (x,y) along axis. A positive cost
// keeps the seam; zero clears it.
func (c *Canvas) SetSeam(x, y int, axis Axis, cost int64) error {
	t := c.At(x, y)
	if t == nil {
		return fmt.Errorf("canvas: SetSeam(%d, %d, %s): %w", x, y, axis, ErrOutOfBounds)
	}
	if cost < 0 {
		return fmt.Errorf("canvas: SetSeam(%d, %d, %s) cost=%d: %w", x, y, axis, cost, ErrNegativeCost)
	}
	keep := cost > 0
	if axis == AxisX {
		t.SeamX, t.KeepX = cost, keep
	} else {
		t.SeamY, t.KeepY = cost, keep
	}
	return nil
}

// ClearSeam drops the seam slot of (x,y) along axis. Out-of-range
// coordinates are ignored.
func (c *Canvas) ClearSeam(x, y int, axis Axis) {
	_ = c.SetSeam(x, y, axis, 0)
}

// Filled returns the number of texels a patch supplies.
func (c *Canvas) Filled() int {
	n := 0
	for i := range c.texels {
		if c.texels[i].Filled() {
			n++
		}
	}
	return n
}

// Complete reports whether every texel is filled.
func (c *Canvas) Complete() bool { return c.Filled() == len(c.texels) }

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	texels := make([]Texel, len(c.texels))
	copy(texels, c.texels)
	return &Canvas{width: c.width, height: c.height, texels: texels}
}
