// SPDX-License-Identifier: MIT
// Package: ringlattice/distance
//
// types.go — Key, Classes and sentinel errors.

package distance

import (
	"errors"

	"github.com/katalvlaran/ringlattice/lattice"
)

// ErrInvalidArgument indicates a tolerance that is not a finite positive number.
var ErrInvalidArgument = errors.New("distance: invalid argument")

// DefaultTolerance is the quantization step used when callers do not pick one.
const DefaultTolerance = 1e-5

// Key is a quantized distance-from-origin. Points sharing a Key are treated
// as equidistant.
type Key float64

// Float returns k as a plain float64.
func (k Key) Float() float64 { return float64(k) }

// Classes partitions a point set by Key.
//
// Buckets holds each class in the order points were supplied to Classify.
// Keys lists every bucket key exactly once, ascending.
type Classes struct {
	Tolerance float64
	Buckets   map[Key][]lattice.Point
	Keys      []Key
}

// Len returns the number of distinct keys.
func (c *Classes) Len() int { return len(c.Keys) }

// Size returns the number of points stored under k (0 if absent).
func (c *Classes) Size(k Key) int { return len(c.Buckets[k]) }

// Points returns the bucket for k in insertion order. The slice is shared;
// callers must not modify it.
func (c *Classes) Points(k Key) []lattice.Point { return c.Buckets[k] }

// Total returns the number of classified points.
func (c *Classes) Total() int {
	n := 0
	for _, pts := range c.Buckets {
		n += len(pts)
	}
	return n
}

// MultiKeys returns the keys whose bucket holds at least two points, ascending.
func (c *Classes) MultiKeys() []Key {
	return c.filter(func(n int) bool { return n >= 2 })
}

// SingletonKeys returns the keys whose bucket holds exactly one point, ascending.
func (c *Classes) SingletonKeys() []Key {
	return c.filter(func(n int) bool { return n == 1 })
}

// MaxKey returns the largest key and false when there are no keys.
func (c *Classes) MaxKey() (Key, bool) {
	if len(c.Keys) == 0 {
		return 0, false
	}
	return c.Keys[len(c.Keys)-1], true
}

func (c *Classes) filter(keep func(size int) bool) []Key {
	out := make([]Key, 0, len(c.Keys))
	for _, k := range c.Keys {
		if keep(len(c.Buckets[k])) {
			out = append(out, k)
		}
	}
	return out
}
