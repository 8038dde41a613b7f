// Package patch provides read-only pixel views of a source image and the
// append-only ledger of patches placed on a canvas.
//
// What:
//
//   - RGB is a 3-channel 8-bit color; Diff is the channel-wise absolute
//     difference used as the seam cost between two colors.
//   - View is the read-only pixel access the seam builder needs. Pixels is a
//     slice-backed View; Sub restricts any View to a rectangle.
//   - History records every placed patch together with its canvas offset, in
//     insertion order. Index i always refers to the i-th Add call.
//
// Coordinates:
//
//   - View coordinates are patch-local, (0,0) at the top-left.
//   - History.RGB takes canvas coordinates and subtracts the record's offset.
//
// History never shrinks. It is not safe for concurrent mutation.
package patch
