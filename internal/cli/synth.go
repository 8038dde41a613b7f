package cli

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcts/imageio"
	"github.com/katalvlaran/gcts/synth"
)

const (
	flagInput       = "input"
	flagOutput      = "output"
	flagWidth       = "width"
	flagHeight      = "height"
	flagPatchWidth  = "pwidth"
	flagPatchHeight = "pheight"
	flagPatches     = "patches"
	flagStrategy    = "strategy"
	flagOverlap     = "overlap"
	flagSeed        = "seed"
	flagDebug       = "debug"
	flagConfig      = "config"

	defaultSeed = 42 // reproducible output unless --seed is given
)

// synthOpts holds the synth command's flags after config merging.
type synthOpts struct {
	input       string
	output      string
	width       int
	height      int
	patchWidth  int    // <= 0: source width
	patchHeight int    // <= 0: source height
	patches     int    // < 0: width·height / patch area
	strategy    string // random or holes
	overlap     int    // < 0: patch size / 4
	seed        int64
	debug       bool
	config      string
}

var errMissingPath = errors.New("input and output paths are required")

// newSynthCmd creates the synth command.
//
// Defaults mirror the sizes the synthesizer derives itself: patch size is
// the source size, the patch count covers the output about once, and the
// overlap margin is a quarter of the patch.
func newSynthCmd() *cobra.Command {
	opts := synthOpts{
		patchWidth:  -1,
		patchHeight: -1,
		patches:     -1,
		strategy:    string(synth.StrategyRandom),
		overlap:     -1,
		seed:        defaultSeed,
	}

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a texture from a source image",
		Example: `  gcts synth -i grass.png -o out.png --width 512 --height 512
  gcts synth --config run.toml -s holes -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				if err := applyConfig(opts.config, cmd.Flags().Changed, &opts); err != nil {
					return err
				}
			}
			return runSynth(cmd.Context(), &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, flagInput, "i", "", "input texture (png, jpg, gif, bmp, tiff)")
	f.StringVarP(&opts.output, flagOutput, "o", "", "output image (png, jpg, bmp, tiff)")
	f.IntVar(&opts.width, flagWidth, 0, "output width")
	f.IntVar(&opts.height, flagHeight, 0, "output height")
	f.IntVarP(&opts.patchWidth, flagPatchWidth, "m", opts.patchWidth, "patch width (default: source width)")
	f.IntVarP(&opts.patchHeight, flagPatchHeight, "n", opts.patchHeight, "patch height (default: source height)")
	f.IntVarP(&opts.patches, flagPatches, "c", opts.patches, "additional patch count (default: covers the output once)")
	f.StringVarP(&opts.strategy, flagStrategy, "s", opts.strategy, "patch placement strategy: random, holes")
	f.IntVar(&opts.overlap, flagOverlap, opts.overlap, "overlap margin in pixels (default: patch size / 4)")
	f.Int64Var(&opts.seed, flagSeed, opts.seed, "random seed")
	f.BoolVar(&opts.debug, flagDebug, false, "check network consistency on every patch")
	f.StringVar(&opts.config, flagConfig, "", "TOML file with defaults for these flags")

	return cmd
}

// runSynth loads the source, synthesizes and writes the result.
func runSynth(ctx context.Context, opts *synthOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.input == "" || opts.output == "" {
		return errMissingPath
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid output size %dx%d: %w", opts.width, opts.height, synth.ErrBadSize)
	}
	strategy, err := synth.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	src, err := imageio.Load(opts.input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s (%dx%d)", opts.input, src.Width(), src.Height())

	so := synth.Options{
		PatchWidth:  min(opts.patchWidth, src.Width()),
		PatchHeight: min(opts.patchHeight, src.Height()),
		Patches:     opts.patches,
		Overlap:     image.Pt(opts.overlap, opts.overlap),
		Strategy:    strategy,
		Seed:        opts.seed,
		Logger:      logger,
		Debug:       opts.debug,
	}
	s, err := synth.New(so)
	if err != nil {
		return err
	}
	res, err := s.Generate(ctx, src, opts.width, opts.height)
	if err != nil {
		return err
	}
	logger.Infof("Placed %d patches, %d/%d pixels filled, seam cost %d",
		res.History.Len(), res.Canvas.Filled(), res.Canvas.Len(), res.TotalSeamCost())

	if err := imageio.Save(opts.output, res.Image()); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", opts.output))
	return nil
}
