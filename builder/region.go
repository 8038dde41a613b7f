// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// region.go - pixel classification relative to the candidate patch.

package builder

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gcts/canvas"
)

// Region classifies a canvas pixel against the candidate patch.
type Region uint8

const (
	// RegionNil: not filled and outside the candidate.
	RegionNil Region = iota
	// RegionOld: filled and outside the candidate.
	RegionOld
	// RegionNew: inside the candidate and not filled (or promoted core).
	RegionNew
	// RegionOverlap: filled and inside the candidate.
	RegionOverlap
)

// String implements fmt.Stringer.
func (r Region) String() string {
	switch r {
	case RegionNil:
		return "nil"
	case RegionOld:
		return "old"
	case RegionNew:
		return "new"
	case RegionOverlap:
		return "overlap"
	default:
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
}

// Counts tallies pixels per region.
type Counts struct {
	Nil, Old, New, Overlap int
}

// classify returns the row-major region of every canvas pixel for a
// candidate covering rect, and whether its core was promoted to New.
//
// Steps:
//  1. Old/New/Overlap/Nil from "filled" × "inside rect".
//  2. If no pixel is New, every pixel inside rect inset by margin becomes New.
func classify(c *canvas.Canvas, rect image.Rectangle, margin image.Point) ([]Region, bool) {
	regions := make([]Region, c.Len())
	hasNew := false

	// 1) Plain classification.
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			filled := c.At(x, y).Filled()
			inside := image.Pt(x, y).In(rect)
			var r Region
			switch {
			case filled && inside:
				r = RegionOverlap
			case filled:
				r = RegionOld
			case inside:
				r = RegionNew
				hasNew = true
			default:
				r = RegionNil
			}
			regions[c.Index(x, y)] = r
		}
	}
	if hasNew {
		return regions, false
	}

	// 2) Placed entirely atop existing content: promote the core.
	core := image.Rectangle{Min: rect.Min.Add(margin), Max: rect.Max.Sub(margin)}.Intersect(c.Bounds())
	for y := core.Min.Y; y < core.Max.Y; y++ {
		for x := core.Min.X; x < core.Max.X; x++ {
			regions[c.Index(x, y)] = RegionNew
		}
	}
	return regions, !core.Empty()
}
