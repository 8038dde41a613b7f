package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the synth flags in a TOML file:
//
//	input = "grass.png"
//	output = "out.png"
//	width = 512
//	height = 512
//	patch_width = 48
//	patch_height = 48
//	patches = 300
//	strategy = "holes"
//	overlap = 12
//	seed = 7
//	debug = false
type fileConfig struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	PatchWidth  int    `toml:"patch_width"`
	PatchHeight int    `toml:"patch_height"`
	Patches     int    `toml:"patches"`
	Strategy    string `toml:"strategy"`
	Overlap     int    `toml:"overlap"`
	Seed        int64  `toml:"seed"`
	Debug       bool   `toml:"debug"`
}

// configBinding ties a TOML key to the flag that overrides it.
type configBinding struct {
	key   string
	flag  string
	apply func(fc *fileConfig, o *synthOpts)
}

var configBindings = []configBinding{
	{"input", flagInput, func(fc *fileConfig, o *synthOpts) { o.input = fc.Input }},
	{"output", flagOutput, func(fc *fileConfig, o *synthOpts) { o.output = fc.Output }},
	{"width", flagWidth, func(fc *fileConfig, o *synthOpts) { o.width = fc.Width }},
	{"height", flagHeight, func(fc *fileConfig, o *synthOpts) { o.height = fc.Height }},
	{"patch_width", flagPatchWidth, func(fc *fileConfig, o *synthOpts) { o.patchWidth = fc.PatchWidth }},
	{"patch_height", flagPatchHeight, func(fc *fileConfig, o *synthOpts) { o.patchHeight = fc.PatchHeight }},
	{"patches", flagPatches, func(fc *fileConfig, o *synthOpts) { o.patches = fc.Patches }},
	{"strategy", flagStrategy, func(fc *fileConfig, o *synthOpts) { o.strategy = fc.Strategy }},
	{"overlap", flagOverlap, func(fc *fileConfig, o *synthOpts) { o.overlap = fc.Overlap }},
	{"seed", flagSeed, func(fc *fileConfig, o *synthOpts) { o.seed = fc.Seed }},
	{"debug", flagDebug, func(fc *fileConfig, o *synthOpts) { o.debug = fc.Debug }},
}

// applyConfig loads path and copies every key the file defines into o,
// unless changed reports that its flag was set on the command line.
func applyConfig(path string, changed func(flag string) bool, o *synthOpts) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	for _, b := range configBindings {
		if md.IsDefined(b.key) && !changed(b.flag) {
			b.apply(&fc, o)
		}
	}
	return nil
}
