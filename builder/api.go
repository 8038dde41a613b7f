// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// api.go - Build and the Problem it returns.
//
// Lifecycle:
//   • Build allocates one flow.Network arena for one candidate placement.
//   • Solve may run any number of times; each run starts from zero flow.
//   • Commit copies the cut into the canvas and releases the arena; vertex
//     and edge ids of the cut must not be used afterwards.

package builder

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/flow"
	"github.com/katalvlaran/gcts/patch"
)

const (
	methodBuild  = "Build"
	methodSolve  = "Solve"
	methodCommit = "Commit"
)

// Problem is the min-cut problem of one candidate placement. Pixel vertices
// come first in the arena, so the vertex of canvas pixel (x,y) has id
// Canvas.Index(x,y).
type Problem struct {
	canvas  *canvas.Canvas
	history *patch.History
	current int
	rect    image.Rectangle // candidate rectangle on the canvas, unclipped
	regions []Region
	net     *flow.Network
	cfg     config

	promoted  bool
	seamNodes int
}

// Build classifies every pixel of c against patch current of h (already
// recorded by the caller) and wires the seam network for it.
//
// Side effect: every New pixel, including a promoted core, is assigned
// patch current on c immediately.
//
// Steps:
//  1. Validate inputs (nil checks, history indices, margin, intersection).
//  2. Classify pixels; promote the core rect [at+margin, at+size-margin)
//     to New when the candidate covers no unfilled pixel.
//  3. Assign New pixels to current.
//  4. Add one pixel vertex per canvas pixel in row-major order.
//  5. For every pixel emit the pair toward (x+1,y), then toward (x,y+1).
//  6. Sanitize: a vertex flagged source and sink keeps only the sink flag.
//
// Complexity:
//
//	Time:   O(W·H).
//	Memory: O(W·H) vertices plus at most 2·W·H edges and 2 extra vertices
//	        per kept seam inside the overlap.
func Build(c *canvas.Canvas, h *patch.History, current int, margin image.Point, opts ...Option) (*Problem, error) {
	// 1) Validate.
	if err := validate(c, h, current, margin); err != nil {
		return nil, err
	}
	rec, _ := h.Record(current)

	p := &Problem{
		canvas:  c,
		history: h,
		current: current,
		rect:    rec.Bounds(),
		cfg:     newConfig(opts...),
	}

	// 2) Classify.
	p.regions, p.promoted = classify(c, p.rect, margin)

	// 3) New pixels belong to the candidate from now on.
	for i, r := range p.regions {
		if r == RegionNew {
			x, y := c.Coordinate(i)
			c.At(x, y).Patch = current
		}
	}

	// 4) Pixel vertices, id == canvas index.
	p.net = flow.NewNetwork(c.Len(), 2*c.Len())
	for i := 0; i < c.Len(); i++ {
		x, y := c.Coordinate(i)
		p.net.AddVertex(flow.KindPixel, image.Pt(x, y))
	}

	// 5) Wire adjacent pairs.
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			a := image.Pt(x, y)
			if x+1 < c.Width() {
				if err := p.wirePair(a, image.Pt(x+1, y), canvas.AxisX); err != nil {
					return nil, fmt.Errorf("%s: %w", methodBuild, err)
				}
			}
			if y+1 < c.Height() {
				if err := p.wirePair(a, image.Pt(x, y+1), canvas.AxisY); err != nil {
					return nil, fmt.Errorf("%s: %w", methodBuild, err)
				}
			}
		}
	}

	// 6) Sink wins over source.
	p.net.Sanitize()
	if p.cfg.debug {
		if err := p.net.Check(); err != nil {
			panic(fmt.Sprintf("%s: %v", methodBuild, err))
		}
	}

	return p, nil
}

// Flow returns the underlying network, or nil once released.
func (p *Problem) Flow() *flow.Network { return p.net }

// Region returns the class of canvas pixel (x,y). Outside the canvas it
// returns RegionNil.
func (p *Problem) Region(x, y int) Region {
	if !p.canvas.InBounds(x, y) {
		return RegionNil
	}
	return p.regions[p.canvas.Index(x, y)]
}

// Counts tallies the classified pixels per region.
func (p *Problem) Counts() Counts {
	var out Counts
	for _, r := range p.regions {
		switch r {
		case RegionNil:
			out.Nil++
		case RegionOld:
			out.Old++
		case RegionNew:
			out.New++
		case RegionOverlap:
			out.Overlap++
		}
	}
	return out
}

// Promoted reports whether the candidate's core was forced to New.
func (p *Problem) Promoted() bool { return p.promoted }

// SeamNodes returns the number of seam sub-networks wired.
func (p *Problem) SeamNodes() int { return p.seamNodes }

// Current returns the candidate's patch index.
func (p *Problem) Current() int { return p.current }

// PixelVertex returns the vertex id of canvas pixel (x,y).
func (p *Problem) PixelVertex(x, y int) flow.VertexID {
	return flow.VertexID(p.canvas.Index(x, y))
}

// Solve runs flow.EdmondsKarp on the problem's network.
func (p *Problem) Solve() (flow.MinCut, error) {
	if p.net == nil {
		return flow.MinCut{}, fmt.Errorf("%s: %w", methodSolve, ErrReleased)
	}
	return flow.EdmondsKarp(p.net, &flow.Options{
		Debug:     p.cfg.debug,
		OnAugment: p.cfg.onAugment,
	}), nil
}

// Release drops the arena. It is safe to call more than once.
func (p *Problem) Release() {
	if p.net != nil {
		p.net.Release()
		p.net = nil
	}
}
