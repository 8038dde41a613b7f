package synth

import "errors"

// Sentinel errors returned by New and Generate.
var (
	// ErrBadSize indicates a non-positive output size or an empty source.
	ErrBadSize = errors.New("synth: output and source sizes must be positive")

	// ErrUnknownStrategy indicates a placement strategy name New does not know.
	ErrUnknownStrategy = errors.New("synth: unknown placement strategy")

	// ErrPatchTooLarge indicates a patch size exceeding the source texture.
	ErrPatchTooLarge = errors.New("synth: patch larger than source")
)
