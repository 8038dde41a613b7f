// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// commit.go - translate a solved cut back into canvas state.

package builder

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/flow"
)

// Stats summarizes one committed iteration.
type Stats struct {
	Patch      int   // candidate patch index
	New        int   // pixels assigned at Build time (New region)
	Reassigned int   // overlap pixels taken over by the candidate
	Promoted   bool  // core promotion happened
	SeamNodes  int   // seam sub-networks wired
	MaxFlow    int64 // value of the max flow = cost of the chosen seam
	CutEdges   int   // edges in the min cut
	Seams      int   // kept seam slots around the candidate after commit
	SeamCost   int64 // sum of those kept costs
}

// Commit applies cut to the canvas and releases the arena.
//
// Steps:
//  1. Every Overlap pixel whose vertex is reachable from a source takes the
//     candidate's patch index.
//  2. Seam slots of every texel inside the candidate rect grown by one pixel
//     are recomputed: kept with the cost between the two supplying patches
//     when both neighbors are filled by different patches, cleared otherwise.
//  3. The arena is released; ids in cut are stale afterwards.
//
// Complexity: O(W·H) for step 1, O(patch area) for step 2.
func (p *Problem) Commit(cut flow.MinCut) (Stats, error) {
	if p.net == nil {
		return Stats{}, fmt.Errorf("%s: %w", methodCommit, ErrReleased)
	}
	c := p.canvas
	counts := p.Counts()
	st := Stats{
		Patch:     p.current,
		New:       counts.New,
		Promoted:  p.promoted,
		SeamNodes: p.seamNodes,
		MaxFlow:   cut.MaxFlow,
		CutEdges:  len(cut.Cut),
	}

	// 1) Ownership.
	for i, r := range p.regions {
		if r == RegionOverlap && cut.IsReachable(flow.VertexID(i)) {
			x, y := c.Coordinate(i)
			c.At(x, y).Patch = p.current
			st.Reassigned++
		}
	}

	// 2) Seam state around the candidate.
	area := p.rect.Inset(-1).Intersect(c.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			a := image.Pt(x, y)
			if x+1 < c.Width() {
				p.refreshSeam(a, image.Pt(x+1, y), canvas.AxisX, &st)
			}
			if y+1 < c.Height() {
				p.refreshSeam(a, image.Pt(x, y+1), canvas.AxisY, &st)
			}
		}
	}

	// 3) The cut's ids die with the arena.
	p.Release()
	return st, nil
}

// refreshSeam recomputes the seam slot of a toward b.
func (p *Problem) refreshSeam(a, b image.Point, axis canvas.Axis, st *Stats) {
	pa := p.canvas.At(a.X, a.Y).Patch
	pb := p.canvas.At(b.X, b.Y).Patch
	if pa == canvas.Unfilled || pb == canvas.Unfilled || pa == pb {
		p.canvas.ClearSeam(a.X, a.Y, axis)
		return
	}
	cost := pairCost(p.history, pa, pb, a, b)
	// a is in bounds and cost is non-negative, so SetSeam cannot fail.
	_ = p.canvas.SetSeam(a.X, a.Y, axis, cost)
	if cost > 0 {
		st.Seams++
		st.SeamCost += cost
	}
}
