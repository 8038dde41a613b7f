// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach the method context with %w wrapping.
//   • Build and Commit never panic on bad input; only WithDebug consistency
//     checks panic, and only on internal inconsistencies.

package builder

import "errors"

// ErrNilCanvas indicates Build was called without a canvas.
var ErrNilCanvas = errors.New("builder: canvas is nil")

// ErrNilHistory indicates Build was called without a patch history.
var ErrNilHistory = errors.New("builder: history is nil")

// ErrPatchIndex indicates a patch index that is not recorded in the history,
// either the candidate index or a texel's supplying patch.
var ErrPatchIndex = errors.New("builder: patch index not in history")

// ErrBadMargin indicates a negative overlap margin.
var ErrBadMargin = errors.New("builder: overlap margin must be non-negative")

// ErrOutside indicates the candidate patch does not intersect the canvas.
var ErrOutside = errors.New("builder: patch does not intersect canvas")

// ErrReleased indicates Solve or Commit on a Problem whose arena is gone.
var ErrReleased = errors.New("builder: problem already released")
