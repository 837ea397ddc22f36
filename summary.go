// SPDX-License-Identifier: MIT
// Package: ringlattice
//
// summary.go — JSON-friendly view of a Result.

package ringlattice

import (
	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/lattice"
	"github.com/katalvlaran/ringlattice/palette"
)

// Summary is a flat, JSON-tagged copy of a Result.
type Summary struct {
	N           int                 `json:"n"`
	Tolerance   float64             `json:"tolerance"`
	Points      []lattice.Point     `json:"points"`
	Classes     []ClassSummary      `json:"classes"`
	Connections []ConnectionSummary `json:"connections"`
	Regions     []RegionSummary     `json:"regions"`
}

// ClassSummary describes one distance class. Color is set for rings only.
type ClassSummary struct {
	Key    float64         `json:"key"`
	Points []lattice.Point `json:"points"`
	Color  string          `json:"color,omitempty"`
}

// ConnectionSummary describes one connection; arc fields are omitted for lines.
type ConnectionSummary struct {
	Kind       string        `json:"kind"`
	From       lattice.Point `json:"from"`
	To         lattice.Point `json:"to"`
	Radius     float64       `json:"radius,omitempty"`
	StartAngle float64       `json:"startAngle,omitempty"`
	EndAngle   float64       `json:"endAngle,omitempty"`
	Sweep      float64       `json:"sweep,omitempty"`
}

// RegionSummary describes one region and its chain labels.
type RegionSummary struct {
	Low    float64         `json:"low"`
	High   float64         `json:"high"`
	Points []lattice.Point `json:"points"`
	Labels []int           `json:"labels,omitempty"`
}

// Summary flattens r for encoding.
func (r *Result) Summary() Summary {
	s := Summary{
		N:           r.N,
		Tolerance:   r.Tolerance,
		Points:      r.Points,
		Classes:     make([]ClassSummary, 0, len(r.Keys)),
		Connections: make([]ConnectionSummary, 0),
		Regions:     make([]RegionSummary, 0, len(r.Topology.Regions)),
	}
	for _, k := range r.Keys {
		s.Classes = append(s.Classes, ClassSummary{
			Key:    k.Float(),
			Points: r.Classes.Points(k),
			Color:  r.keyColorHex(k),
		})
	}
	for _, c := range r.Connections() {
		s.Connections = append(s.Connections, ConnectionSummary{
			Kind:       c.Kind.String(),
			From:       c.From,
			To:         c.To,
			Radius:     c.Radius,
			StartAngle: c.StartAngle,
			EndAngle:   c.EndAngle,
			Sweep:      c.Sweep,
		})
	}
	for _, reg := range r.Topology.Regions {
		s.Regions = append(s.Regions, RegionSummary{
			Low:    reg.Low,
			High:   reg.High,
			Points: nonNil(reg.Points),
			Labels: reg.Labels,
		})
	}
	return s
}

func nonNil(pts []lattice.Point) []lattice.Point {
	if pts == nil {
		return []lattice.Point{}
	}
	return pts
}

// keyColorHex returns the hex color of k or "" for uncolored keys.
func (r *Result) keyColorHex(k distance.Key) string {
	if c, ok := r.Colors.Color(k); ok {
		return palette.Hex(c)
	}
	return ""
}
