// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// validators.go - input validation for Build (fail fast, no partial work).

package builder

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
)

// validate checks Build's preconditions in priority order: nil inputs,
// candidate index, margin, intersection, then every texel's patch index.
func validate(c *canvas.Canvas, h *patch.History, current int, margin image.Point) error {
	if c == nil {
		return fmt.Errorf("%s: %w", methodBuild, ErrNilCanvas)
	}
	if h == nil {
		return fmt.Errorf("%s: %w", methodBuild, ErrNilHistory)
	}
	rec, err := h.Record(current)
	if err != nil {
		return fmt.Errorf("%s: candidate %d: %w", methodBuild, current, ErrPatchIndex)
	}
	if margin.X < 0 || margin.Y < 0 {
		return fmt.Errorf("%s: margin=%v: %w", methodBuild, margin, ErrBadMargin)
	}
	if !rec.Bounds().Overlaps(c.Bounds()) {
		return fmt.Errorf("%s: patch %v, canvas %v: %w", methodBuild, rec.Bounds(), c.Bounds(), ErrOutside)
	}
	for i := 0; i < c.Len(); i++ {
		x, y := c.Coordinate(i)
		if idx := c.At(x, y).Patch; idx != canvas.Unfilled && !h.Has(idx) {
			return fmt.Errorf("%s: texel (%d,%d) patch %d: %w", methodBuild, x, y, idx, ErrPatchIndex)
		}
	}
	return nil
}
