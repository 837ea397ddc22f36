// SPDX-License-Identifier: MIT
// Package: ringlattice
//
// errors.go — sentinel errors for the pipeline.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrInvalidArgument).
//   • Lower-level sentinels (lattice, distance) stay reachable through %w.
//   • Validation runs before any computation; no partial Result is returned.

package ringlattice

import "errors"

// ErrInvalidArgument indicates N < 1 or a tolerance that is not a finite
// positive number.
var ErrInvalidArgument = errors.New("ringlattice: invalid argument")

const methodCompute = "Compute"
