// Package builder turns a canvas, the patch history and one candidate patch
// into the seam min-cut problem of a single synthesis iteration, and writes
// the solved cut back to the canvas.
//
// The package offers the following key components:
//
//   - Build:    classifies every canvas pixel, wires the flow network and
//     returns a Problem owning the per-iteration arena.
//   - Problem:  Solve runs flow.EdmondsKarp; Commit applies pixel ownership
//     and refreshes kept seam costs; Release drops the arena.
//   - Region:   Nil, Old, New or Overlap relative to the candidate patch.
//   - Options:  WithDebug (consistency checks that panic), WithOnAugment.
//
// Wiring per 4-adjacent pixel pair (a, b), b to the right of or below a:
//
//	Old/Overlap, Overlap/Old  → the Overlap pixel is a sink
//	New/Overlap, Overlap/New  → the Overlap pixel is a source
//	Overlap/Overlap           → direct edge, or a seam sub-network when the
//	                            boundary carries a kept seam cost
//	anything else             → nothing
//
// A seam sub-network replaces the direct edge with a seam vertex fed by a
// dummy source (capacity = kept cost) and two pixel-facing edges (capacity =
// each endpoint's patch measured against the candidate). The cut then either
// keeps the old seam or replaces it, whichever is cheaper.
//
// When the candidate covers no unfilled pixel at all, its core (the patch
// rectangle inset by the overlap margin) is promoted to New so the network
// always has a source.
//
// Guarantees:
//
//   - Deterministic: the same inputs produce the same network and cut.
//   - No vertex leaves Build flagged both source and sink; the sink wins.
//   - Build and Commit return sentinel errors and never panic, except for
//     consistency failures under WithDebug(true).
package builder
