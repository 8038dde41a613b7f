// Package canvas holds the persistent per-pixel state of a synthesis run.
//
// What:
//
//   - Canvas is a rectangular grid of Texel values addressed by (x, y).
//   - A Texel records which placed patch supplies its color (Unfilled when
//     none) and the cost of the seam it shares with its +x and +y neighbors.
//   - Holes groups unfilled texels into 4-connected components so placement
//     policies can aim at the gaps.
//
// Seam slots:
//
//   - Each texel owns the boundary toward (x+1, y) (AxisX) and (x, y+1)
//     (AxisY). A slot is either kept with a positive cost or cleared; a
//     cleared slot always reports cost 0.
//
// Complexity:
//
//   - New, Clone, Filled: O(W×H) time and memory.
//   - Holes:              O(W×H×4) time, O(W×H) memory.
//   - Everything else:    O(1).
//
// Errors:
//
//   - ErrEmptyCanvas: width or height is not positive.
//   - ErrOutOfBounds: a coordinate outside the canvas.
//   - ErrNegativeCost: a seam cost below zero.
//
// A Canvas is not safe for concurrent mutation; Clone gives each concurrent
// attempt its own snapshot.
package canvas
