package synth

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Strategy names a patch placement strategy.
type Strategy string

const (
	// StrategyRandom places patches at uniformly random offsets.
	StrategyRandom Strategy = "random"
	// StrategyHoles anchors patches at the largest unfilled region.
	StrategyHoles Strategy = "holes"
)

// ParseStrategy maps a case-insensitive name to a Strategy. The empty
// string selects StrategyRandom.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "", StrategyRandom:
		return StrategyRandom, nil
	case StrategyHoles:
		return StrategyHoles, nil
	default:
		return "", fmt.Errorf("synth: strategy %q: %w", name, ErrUnknownStrategy)
	}
}

// Options configures a Synthesizer. Non-positive sizes and negative counts
// select the defaults applied by Generate:
//
//	PatchWidth/PatchHeight  source width/height
//	Patches                 W·H / (pw·ph) additional placements
//	Overlap                 patch size / 4 per axis
type Options struct {
	PatchWidth  int
	PatchHeight int
	Patches     int         // additional placements after the first one
	Overlap     image.Point // core margin used when a patch covers no hole
	Strategy    Strategy
	Seed        int64
	Logger      *log.Logger // nil discards progress records
	Debug       bool        // network consistency checks, panicking on failure
}

// DefaultOptions returns Options with every size left to Generate.
func DefaultOptions() Options {
	return Options{
		Patches:  -1,
		Overlap:  image.Pt(-1, -1),
		Strategy: StrategyRandom,
	}
}

// plan is the fully resolved configuration of one Generate call.
type plan struct {
	patch   image.Point
	patches int
	overlap image.Point
}

// resolve applies defaults against the source and output sizes.
func (o Options) resolve(src image.Point, width, height int) (plan, error) {
	if width <= 0 || height <= 0 || src.X <= 0 || src.Y <= 0 {
		return plan{}, fmt.Errorf("synth: output %dx%d, source %dx%d: %w", width, height, src.X, src.Y, ErrBadSize)
	}

	p := plan{patch: image.Pt(o.PatchWidth, o.PatchHeight)}
	if p.patch.X <= 0 {
		p.patch.X = src.X
	}
	if p.patch.Y <= 0 {
		p.patch.Y = src.Y
	}
	if p.patch.X > src.X || p.patch.Y > src.Y {
		return plan{}, fmt.Errorf("synth: patch %v, source %v: %w", p.patch, src, ErrPatchTooLarge)
	}

	p.patches = o.Patches
	if p.patches < 0 {
		p.patches = width * height / (p.patch.X * p.patch.Y)
	}

	p.overlap = o.Overlap
	if p.overlap.X < 0 {
		p.overlap.X = p.patch.X / 4
	}
	if p.overlap.Y < 0 {
		p.overlap.Y = p.patch.Y / 4
	}
	return p, nil
}

// logger returns o.Logger or a logger writing nowhere.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
