// Package gcts grows large textures from small samples with graph-cut
// patch placement.
//
// Each synthesis iteration places one patch of the sample on the output
// canvas. Where the patch overlaps pixels that are already filled, the
// overlap is turned into a flow network whose minimum cut is the cheapest
// seam between old and new content; pixels on the patch's side of the cut
// take the new patch. Old seams are remembered, so a later patch can
// replace an expensive seam instead of stacking a new one on top of it.
//
// Everything is organized under a few subpackages:
//
//	flow/     arena flow network and the Edmonds–Karp max-flow/min-cut solver
//	canvas/   output texel grid: supplying patch and kept seam cost per texel
//	patch/    RGB patch views and the ordered patch history
//	builder/  region classification, network wiring and cut commit
//	synth/    synthesis driver, placement strategies and image resolve
//	imageio/  png, jpeg, gif, bmp and tiff loading and saving
//	cmd/gcts  command-line front end (internal/cli)
//
// Quick start:
//
//	gcts synth -i sample.png -o out.png --width 512 --height 512 -s holes -v
package gcts
