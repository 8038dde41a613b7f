package synth

import (
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/gcts/builder"
	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
)

// Synthesizer runs graph-cut texture synthesis with fixed Options.
// It is not safe for concurrent use; its random source is stateful.
type Synthesizer struct {
	opts   Options
	log    *log.Logger
	rng    *rand.Rand
	placer func(overlap image.Point) Placer
}

// New validates opts and returns a Synthesizer.
func New(opts Options) (*Synthesizer, error) {
	strategy, err := ParseStrategy(string(opts.Strategy))
	if err != nil {
		return nil, err
	}
	opts.Strategy = strategy

	s := &Synthesizer{
		opts: opts,
		log:  opts.logger(),
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	switch strategy {
	case StrategyHoles:
		s.placer = func(overlap image.Point) Placer { return NewHolePlacer(s.rng, overlap) }
	default:
		s.placer = func(image.Point) Placer { return NewRandomPlacer(s.rng) }
	}
	return s, nil
}

// Result is the outcome of one Generate call.
type Result struct {
	RunID      string
	Canvas     *canvas.Canvas
	History    *patch.History
	Iterations []builder.Stats
	Elapsed    time.Duration
}

// Image resolves the canvas to an opaque image.
func (r *Result) Image() *image.RGBA { return Resolve(r.Canvas, r.History) }

// TotalSeamCost sums the max flow of every iteration.
func (r *Result) TotalSeamCost() int64 {
	var total int64
	for _, st := range r.Iterations {
		total += st.MaxFlow
	}
	return total
}

// Generate synthesizes a width×height texture from src.
//
// Steps:
//  1. Resolve defaults against the source and output sizes.
//  2. Place the first patch at (0,0), cropped from the source's top-left.
//  3. Place the configured number of additional patches, each one recorded
//     in the history, built, solved and committed before the next.
//  4. Return the canvas, the history and the per-iteration stats.
//
// ctx is checked before each placement; on cancellation Generate returns
// ctx.Err() and no Result.
func (s *Synthesizer) Generate(ctx context.Context, src patch.View, width, height int) (*Result, error) {
	start := time.Now()

	// 1) Defaults.
	srcSize := patch.Size(src)
	pl, err := s.opts.resolve(srcSize, width, height)
	if err != nil {
		return nil, err
	}
	c, err := canvas.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	res := &Result{
		RunID:   uuid.New().String(),
		Canvas:  c,
		History: &patch.History{},
	}
	logger := s.log.With("run", res.RunID[:8])
	logger.Debug("synthesis started",
		"source", srcSize, "output", image.Pt(width, height),
		"patch", pl.patch, "patches", pl.patches, "overlap", pl.overlap,
		"strategy", s.opts.Strategy)

	placer := s.placer(pl.overlap)
	for i := 0; i <= pl.patches; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 2) and 3) Choose the placement.
		next := Placement{Crop: image.Rectangle{Max: pl.patch}}
		if i > 0 {
			next = placer.Place(c, srcSize, pl.patch)
		}

		st, err := s.place(res, src, next, pl.overlap)
		if err != nil {
			return nil, fmt.Errorf("synth: placement %d: %w", i, err)
		}
		res.Iterations = append(res.Iterations, st)
		logger.Debug("patch placed",
			"patch", st.Patch, "at", next.At, "new", st.New, "reassigned", st.Reassigned,
			"flow", st.MaxFlow, "seams", st.Seams, "seamNodes", st.SeamNodes, "promoted", st.Promoted)
	}

	// 4) Done.
	res.Elapsed = time.Since(start)
	logger.Info("synthesis finished",
		"patches", res.History.Len(), "filled", c.Filled(), "pixels", c.Len(),
		"cost", res.TotalSeamCost(), "elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// place runs one build/solve/commit iteration for next.
func (s *Synthesizer) place(res *Result, src patch.View, next Placement, overlap image.Point) (builder.Stats, error) {
	view, err := patch.Sub(src, next.Crop)
	if err != nil {
		return builder.Stats{}, err
	}
	cur := res.History.Add(view, next.At)

	p, err := builder.Build(res.Canvas, res.History, cur, overlap, builder.WithDebug(s.opts.Debug))
	if err != nil {
		return builder.Stats{}, err
	}
	cut, err := p.Solve()
	if err != nil {
		p.Release()
		return builder.Stats{}, err
	}
	return p.Commit(cut)
}
