// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// wiring.go - per-pair edge emission and seam costs.
//
// Slot layout:
//   • AxisX pair: a uses SlotPosX, b uses SlotNegX.
//   • AxisY pair: a uses SlotPosY, b uses SlotNegY.
//   • Seam vertex: SlotSeamA toward a, SlotSeamB toward b, SlotSeamSource
//     toward its dummy source.

package builder

import (
	"image"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/flow"
	"github.com/katalvlaran/gcts/patch"
)

// pairSlots returns the slots a and b use for a pair along axis.
func pairSlots(axis canvas.Axis) (flow.Slot, flow.Slot) {
	if axis == canvas.AxisX {
		return flow.SlotPosX, flow.SlotNegX
	}
	return flow.SlotPosY, flow.SlotNegY
}

// seamKind returns the seam vertex kind for a pair along axis.
func seamKind(axis canvas.Axis) flow.Kind {
	if axis == canvas.AxisX {
		return flow.KindHorizontalSeam
	}
	return flow.KindVerticalSeam
}

// wirePair applies the region table to the pair (a, b).
func (p *Problem) wirePair(a, b image.Point, axis canvas.Axis) error {
	ra, rb := p.Region(a.X, a.Y), p.Region(b.X, b.Y)
	va, vb := p.PixelVertex(a.X, a.Y), p.PixelVertex(b.X, b.Y)

	switch {
	case ra == RegionOld && rb == RegionOverlap:
		return p.net.MarkSink(vb)
	case ra == RegionOverlap && rb == RegionOld:
		return p.net.MarkSink(va)
	case ra == RegionNew && rb == RegionOverlap:
		return p.net.MarkSource(vb)
	case ra == RegionOverlap && rb == RegionNew:
		return p.net.MarkSource(va)
	case ra == RegionOverlap && rb == RegionOverlap:
		if cost, kept := p.canvas.Seam(a.X, a.Y, axis); kept && cost > 0 {
			return p.addSeam(a, b, axis, cost)
		}
		return p.addEdge(a, b, axis)
	default:
		return nil
	}
}

// addEdge wires a direct edge whose capacity is the discontinuity a cut
// between a and b would show: each endpoint's current color against the
// candidate's color at the same pixel.
func (p *Problem) addEdge(a, b image.Point, axis canvas.Axis) error {
	pa := p.canvas.At(a.X, a.Y).Patch
	pb := p.canvas.At(b.X, b.Y).Patch
	capacity := colorCost(p.history, pa, p.current, a) + colorCost(p.history, pb, p.current, b)

	sa, sb := pairSlots(axis)
	_, err := p.net.Connect(p.PixelVertex(a.X, a.Y), sa, p.PixelVertex(b.X, b.Y), sb, capacity)
	return err
}

// addSeam replaces the direct edge by a seam vertex fed from a dummy source
// with the kept cost, plus one pixel-facing edge per endpoint priced as that
// endpoint's patch against the candidate over both pixels.
func (p *Problem) addSeam(a, b image.Point, axis canvas.Axis, kept int64) error {
	pa := p.canvas.At(a.X, a.Y).Patch
	pb := p.canvas.At(b.X, b.Y).Patch
	aCost := pairCost(p.history, pa, p.current, a, b)
	bCost := pairCost(p.history, pb, p.current, a, b)

	// 1) Seam vertex and its dummy source, both positioned at a.
	seam := p.net.AddVertex(seamKind(axis), a)
	dummy := p.net.AddVertex(flow.KindDummySource, a)
	if err := p.net.MarkSource(dummy); err != nil {
		return err
	}

	// 2) Feed edge, then the two pixel-facing edges.
	if _, err := p.net.Connect(seam, flow.SlotSeamSource, dummy, flow.SlotSeamSource, kept); err != nil {
		return err
	}
	sa, sb := pairSlots(axis)
	if _, err := p.net.Connect(p.PixelVertex(a.X, a.Y), sa, seam, flow.SlotSeamA, aCost); err != nil {
		return err
	}
	if _, err := p.net.Connect(p.PixelVertex(b.X, b.Y), sb, seam, flow.SlotSeamB, bCost); err != nil {
		return err
	}

	p.seamNodes++
	return nil
}

// colorCost is Diff between patches i and j at canvas pixel s, or 0 when
// either patch does not cover s.
func colorCost(h *patch.History, i, j int, s image.Point) int64 {
	if !h.Covers(i, s.X, s.Y) || !h.Covers(j, s.X, s.Y) {
		return 0
	}
	return patch.Diff(h.RGB(i, s.X, s.Y), h.RGB(j, s.X, s.Y))
}

// pairCost is the seam cost between patches i and j across the boundary
// a–b: colorCost at a plus colorCost at b.
func pairCost(h *patch.History, i, j int, a, b image.Point) int64 {
	return colorCost(h, i, j, a) + colorCost(h, i, j, b)
}
