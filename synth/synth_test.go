package synth_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
	"github.com/katalvlaran/gcts/synth"
)

// noise returns a w×h source of seeded random colors.
func noise(t testing.TB, w, h int, seed int64) *patch.Pixels {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p, err := patch.NewPixels(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.Set(x, y, patch.RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))})
		}
	}
	return p
}

func TestNewRejectsUnknownStrategy(t *testing.T) {
	opts := synth.DefaultOptions()
	opts.Strategy = "spiral"
	_, err := synth.New(opts)
	assert.ErrorIs(t, err, synth.ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want synth.Strategy
		err  error
	}{
		{"", synth.StrategyRandom, nil},
		{"random", synth.StrategyRandom, nil},
		{" Holes ", synth.StrategyHoles, nil},
		{"tile", "", synth.ErrUnknownStrategy},
	}
	for _, tc := range tests {
		got, err := synth.ParseStrategy(tc.in)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestGenerateSizeErrors(t *testing.T) {
	src := noise(t, 4, 4, 1)
	tests := []struct {
		name string
		opts func(*synth.Options)
		w, h int
		want error
	}{
		{"zero width", func(*synth.Options) {}, 0, 4, synth.ErrBadSize},
		{"negative height", func(*synth.Options) {}, 4, -2, synth.ErrBadSize},
		{"patch too wide", func(o *synth.Options) { o.PatchWidth = 5 }, 8, 8, synth.ErrPatchTooLarge},
		{"patch too tall", func(o *synth.Options) { o.PatchHeight = 9 }, 8, 8, synth.ErrPatchTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := synth.DefaultOptions()
			tc.opts(&opts)
			s, err := synth.New(opts)
			require.NoError(t, err)
			res, err := s.Generate(context.Background(), src, tc.w, tc.h)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// A single patch as large as the output reproduces the source exactly.
func TestGenerateSinglePatch(t *testing.T) {
	src := noise(t, 5, 4, 2)
	opts := synth.DefaultOptions()
	opts.Patches = 0
	opts.Debug = true
	s, err := synth.New(opts)
	require.NoError(t, err)

	res, err := s.Generate(context.Background(), src, 5, 4)
	require.NoError(t, err)
	require.Len(t, res.Iterations, 1)
	assert.True(t, res.Canvas.Complete())
	assert.Equal(t, patch.ToImage(src).Pix, res.Image().Pix)
	assert.Len(t, res.RunID, 36)
}

// The hole strategy fills at least one new texel per placement until the
// canvas is complete.
func TestGenerateHolesCompletes(t *testing.T) {
	const w, h = 16, 12
	src := noise(t, 6, 6, 3)
	opts := synth.DefaultOptions()
	opts.Strategy = synth.StrategyHoles
	opts.Patches = w * h
	opts.Seed = 11
	opts.Debug = true
	s, err := synth.New(opts)
	require.NoError(t, err)

	res, err := s.Generate(context.Background(), src, w, h)
	require.NoError(t, err)
	assert.True(t, res.Canvas.Complete())
	assert.Equal(t, w*h+1, res.History.Len())

	for i := 0; i < res.Canvas.Len(); i++ {
		x, y := res.Canvas.Coordinate(i)
		idx := res.Canvas.At(x, y).Patch
		require.True(t, res.History.Covers(idx, x, y), "(%d,%d) patch %d", x, y, idx)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	src := noise(t, 8, 8, 4)
	run := func() *image.RGBA {
		opts := synth.DefaultOptions()
		opts.PatchWidth, opts.PatchHeight = 6, 6
		opts.Seed = 99
		s, err := synth.New(opts)
		require.NoError(t, err)
		res, err := s.Generate(context.Background(), src, 20, 14)
		require.NoError(t, err)
		return res.Image()
	}
	assert.Equal(t, run().Pix, run().Pix)
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := synth.New(synth.DefaultOptions())
	require.NoError(t, err)
	res, err := s.Generate(ctx, noise(t, 4, 4, 5), 8, 8)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateLogs(t *testing.T) {
	var buf bytes.Buffer
	opts := synth.DefaultOptions()
	opts.Patches = 2
	opts.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s, err := synth.New(opts)
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), noise(t, 4, 4, 6), 8, 8)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "synthesis started")
	assert.Contains(t, out, "patch placed")
	assert.Contains(t, out, "synthesis finished")
}

func TestResolveLeavesHolesBlack(t *testing.T) {
	c, err := canvas.New(2, 1)
	require.NoError(t, err)
	var h patch.History
	p, err := patch.NewPixels(1, 1)
	require.NoError(t, err)
	p.Set(0, 0, patch.RGB{10, 20, 30})
	c.At(0, 0).Patch = h.Add(p, image.Pt(0, 0))

	img := synth.Resolve(c, &h)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 0))
}
