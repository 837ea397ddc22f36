// SPDX-License-Identifier: MIT
// Package: ringlattice/lattice
//
// types.go — Point value type and sentinel errors.

package lattice

import (
	"errors"
	"strconv"
)

// ErrInvalidArgument indicates a generation bound below MinBound.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject input */ }.
var ErrInvalidArgument = errors.New("lattice: invalid argument")

// MinBound is the smallest accepted maxX. It produces an empty point set.
const MinBound = 1

// Point is an integer lattice coordinate. Two points are equal iff their
// coordinates are equal, so Point is usable as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ID renders the point as "x,y"; the same scheme is used for vertex IDs
// in topology graphs.
func (p Point) ID() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// String implements fmt.Stringer as "(x,y)".
func (p Point) String() string {
	return "(" + p.ID() + ")"
}

// InRegion reports whether p satisfies 0 < y < x ≤ maxX.
func (p Point) InRegion(maxX int) bool {
	return p.Y > 0 && p.Y < p.X && p.X <= maxX
}
