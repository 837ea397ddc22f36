// SPDX-License-Identifier: MIT
// Package: ringlattice
//
// compute.go — the end-to-end pipeline.

package ringlattice

import (
	"fmt"

	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
	"github.com/katalvlaran/ringlattice/palette"
	"github.com/katalvlaran/ringlattice/topology"
)

// Result is everything a renderer needs for one bound N.
type Result struct {
	N         int
	Tolerance float64

	// Points in generation order.
	Points []lattice.Point
	// Classes partitions Points by quantized distance.
	Classes *distance.Classes
	// Keys lists every distance key ascending (same slice as Classes.Keys).
	Keys []distance.Key
	// Topology holds rings, regions and their connections.
	Topology *topology.Topology
	// Colors maps each ring key to its color.
	Colors *palette.Assignment
}

// Compute runs generation, classification, topology construction and
// color assignment for bound n.
//
// Errors:
//   - ErrInvalidArgument (wrapping lattice.ErrInvalidArgument): n < 1.
//   - ErrInvalidArgument (wrapping distance.ErrInvalidArgument): tolerance
//     not finite or ≤ 0.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Compute(n int, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	// Validate both inputs before doing any work.
	if err := distance.ValidateTolerance(cfg.tolerance); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodCompute, ErrInvalidArgument, err)
	}
	points, err := lattice.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodCompute, ErrInvalidArgument, err)
	}

	classes, err := distance.Classify(points, cfg.tolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}

	return &Result{
		N:         n,
		Tolerance: cfg.tolerance,
		Points:    points,
		Classes:   classes,
		Keys:      classes.Keys,
		Topology:  topology.Build(classes),
		Colors:    palette.Assign(classes.Keys, classes, palette.WithPaletteSize(cfg.paletteSize)),
	}, nil
}

// Connections returns every arc followed by every line.
func (r *Result) Connections() []topology.Connection {
	return r.Topology.Connections()
}

// Regions returns the singleton-chain regions in ascending distance order.
func (r *Result) Regions() []topology.Region {
	return r.Topology.Regions
}

// MaxCoord returns the largest coordinate present (0 for no points).
func (r *Result) MaxCoord() int {
	m := 0
	for _, p := range r.Points {
		if p.X > m {
			m = p.X
		}
		if p.Y > m {
			m = p.Y
		}
	}
	return m
}
