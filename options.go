// SPDX-License-Identifier: MIT
// Package: ringlattice
//
// options.go — functional options and resolved configuration.
//
// Deterministic defaults:
//   • tolerance   = distance.DefaultTolerance (1e-5)
//   • paletteSize = palette.DiscreteSize      (20)

package ringlattice

import (
	"fmt"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/palette"
)

// Option customizes Compute.
type Option func(*config)

type config struct {
	tolerance   float64
	paletteSize int
}

func newConfig(opts ...Option) config {
	cfg := config{
		tolerance:   distance.DefaultTolerance,
		paletteSize: palette.DiscreteSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTolerance sets the distance quantization step. Invalid values are
// reported by Compute as ErrInvalidArgument, not by this constructor.
func WithTolerance(tol float64) Option {
	return func(c *config) { c.tolerance = tol }
}

// WithPaletteSize sets the discrete palette capacity before the continuous
// fallback kicks in. The fixed palette holds palette.DiscreteSize colors;
// panics on k < 1 or k > palette.DiscreteSize.
func WithPaletteSize(k int) Option {
	if k < 1 || k > palette.DiscreteSize {
		panic(fmt.Sprintf("ringlattice: WithPaletteSize(%d) outside [1, %d]", k, palette.DiscreteSize))
	}
	return func(c *config) { c.paletteSize = k }
}
