// SPDX-License-Identifier: MIT
// Package: ringlattice/palette
//
// assign.go — Assign(keys, classes).
//
// Contract:
//   • Only keys with bucket size ≥ 2 are colored, in the order given
//     (callers pass ascending keys).
//   • count ≤ K ⇒ discrete[0..count); count > K ⇒ Continuous(count).
//   • Same input ⇒ same mapping.

package palette

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/ringlattice/distance"
)

// Option customizes Assign.
type Option func(*config)

type config struct {
	size int
}

// WithPaletteSize sets the discrete capacity K. The fixed palette has
// DiscreteSize colors, so K must lie in [1, DiscreteSize]; panics otherwise.
func WithPaletteSize(k int) Option {
	if k < 1 || k > DiscreteSize {
		panic(fmt.Sprintf("palette: WithPaletteSize(%d) outside [1, %d]", k, DiscreteSize))
	}
	return func(c *config) { c.size = k }
}

// Mode reports which palette produced an Assignment.
type Mode int

const (
	// ModeDiscrete means colors came from the fixed palette.
	ModeDiscrete Mode = iota
	// ModeContinuous means colors were sampled from the hue wheel.
	ModeContinuous
)

// Assignment maps each qualifying key to its color.
type Assignment struct {
	Keys   []distance.Key
	Colors map[distance.Key]color.RGBA
	Mode   Mode
}

// Color returns the color for k and whether k was colored.
func (a *Assignment) Color(k distance.Key) (color.RGBA, bool) {
	c, ok := a.Colors[k]
	return c, ok
}

// Len returns the number of colored keys.
func (a *Assignment) Len() int { return len(a.Keys) }

// Assign colors every key of keys whose class holds at least two points.
// A nil classes yields an empty Assignment.
func Assign(keys []distance.Key, classes *distance.Classes, opts ...Option) *Assignment {
	cfg := config{size: DiscreteSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Assignment{Colors: make(map[distance.Key]color.RGBA)}
	if classes == nil {
		return a
	}
	for _, k := range keys {
		if classes.Size(k) >= 2 {
			a.Keys = append(a.Keys, k)
		}
	}

	var source []color.RGBA
	if len(a.Keys) <= cfg.size {
		source = discrete[:len(a.Keys)]
	} else {
		a.Mode = ModeContinuous
		source = Continuous(len(a.Keys))
	}
	for i, k := range a.Keys {
		a.Colors[k] = source[i]
	}

	return a
}
