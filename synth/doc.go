// Package synth drives graph-cut texture synthesis: it places patches cut
// from a source texture onto an output canvas one at a time, lets
// builder.Build and flow.EdmondsKarp choose the cheapest seam for each
// placement, and resolves the final canvas to an image.
//
// The package offers the following key components:
//
//   - Synthesizer: validated Options plus a Placer; Generate runs a whole
//     synthesis and returns a Result.
//   - Placer:      RandomPlacer (uniform offsets and source crops) and
//     HolePlacer (anchors each patch at the largest unfilled region).
//   - Resolve:     canvas plus history to an opaque *image.RGBA.
//
// Progress is reported through a charmbracelet/log Logger, one debug record
// per placement and one info record per run, all tagged with a run id.
// Generate checks its context between placements; a single min-cut is never
// interrupted.
package synth
