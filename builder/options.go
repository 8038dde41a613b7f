// SPDX-License-Identifier: MIT
// Package: gcts/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs (nil callbacks);
//     Build itself never panics on input.

package builder

// Option customizes Build and the Problem it returns.
type Option func(*config)

// config aggregates the knobs of one Build call. It is resolved once and
// kept by value on the Problem.
type config struct {
	debug     bool
	onAugment func(bottleneck int64, pathLen int)
}

// newConfig applies opts in order over the defaults (no debug, no hook).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDebug enables consistency checks: the network is verified after
// construction and during solving, and violations panic.
func WithDebug(on bool) Option {
	return func(c *config) { c.debug = on }
}

// WithOnAugment installs a hook called by Solve after every augmentation.
// Panics if fn is nil.
func WithOnAugment(fn func(bottleneck int64, pathLen int)) Option {
	if fn == nil {
		panic("builder: WithOnAugment(nil)")
	}
	return func(c *config) { c.onAugment = fn }
}
