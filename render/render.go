// SPDX-License-Identifier: MIT
// Package: ringlattice/render
//
// render.go — draws a ringlattice.Result as an SVG diagram.
//
// Layout:
//   • Lattice units are scaled by cfg.scale; the y axis points up.
//   • Guides y=0 and y=x run from the origin to maxCoord+1, as do the bounds.
//   • Rings are drawn in their assigned color, everything else in palette.Neutral.
//   • The legend (origin, y=0, y=x) sits in the empty upper-left triangle.

package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/ringlattice"
	"github.com/katalvlaran/ringlattice/lattice"
	"github.com/katalvlaran/ringlattice/palette"
	"github.com/katalvlaran/ringlattice/topology"
)

// Option customizes WriteSVG.
type Option func(*config)

type config struct {
	scale  float64
	labels bool
	legend bool
	title  string
}

const (
	defaultScale = 40.0 // pixels per lattice unit
	pointRadius  = 0.12 // lattice units
	strokeWidth  = 0.04 // lattice units
	margin       = 1.0  // lattice units around the drawing
	legendStep   = 0.6  // lattice units between legend entries
)

// WithScale sets pixels per lattice unit. Panics on scale ≤ 0.
func WithScale(scale float64) Option {
	if scale <= 0 {
		panic("render: WithScale(scale <= 0)")
	}
	return func(c *config) { c.scale = scale }
}

// WithLabels toggles chain sequence labels next to singleton points.
func WithLabels(on bool) Option {
	return func(c *config) { c.labels = on }
}

// WithLegend toggles the legend for the origin and the guide lines.
func WithLegend(on bool) Option {
	return func(c *config) { c.legend = on }
}

// WithTitle overrides the default title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WriteSVG renders res to w.
func WriteSVG(w io.Writer, res *ringlattice.Result, opts ...Option) error {
	cfg := config{
		scale:  defaultScale,
		labels: true,
		legend: true,
		title:  fmt.Sprintf("Lattice distance rings, N=%d", res.N),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// to maps lattice coordinates onto the SVG canvas (y flipped).
	to := func(x, y float64) geom.Coord {
		return geom.Coord{X: x * cfg.scale, Y: -y * cfg.scale}
	}
	at := func(p lattice.Point) geom.Coord {
		return to(float64(p.X), float64(p.Y))
	}

	maxCoord := float64(res.MaxCoord() + 1)
	bounds := geom.Rect{Min: to(-margin, -margin), Max: to(-margin, -margin)}
	bounds.ExpandToContainCoord(to(maxCoord+margin, maxCoord+margin))

	stroke := strokeWidth * cfg.scale
	neutral := palette.Hex(palette.Neutral)
	guide := palette.Hex(colornames.Gray)

	svg := NewSVG(w)
	svg.Start(bounds, "background: white")
	svg.Text(to(0, maxCoord+margin/2), cfg.title,
		fmt.Sprintf("font-size: %fpx; fill: %s", 0.5*cfg.scale, neutral))

	origin := to(0, 0)
	dashed := fmt.Sprintf("stroke: %s; stroke-width: %f; stroke-dasharray: %f", guide, stroke, 4*stroke)
	svg.Line(origin, to(maxCoord, 0), dashed)
	svg.Line(origin, to(maxCoord, maxCoord), dashed)
	svg.Circle(origin, pointRadius*cfg.scale, "fill: "+neutral)
	if cfg.legend {
		drawLegend(svg, to, maxCoord, cfg.scale, neutral, dashed)
	}

	for _, reg := range res.Regions() {
		for _, l := range reg.Lines {
			svg.Line(at(l.From), at(l.To), fmt.Sprintf("stroke: %s; stroke-width: %f", neutral, stroke))
		}
	}

	for _, ring := range res.Topology.Rings {
		hex := ringHex(res, ring)
		style := fmt.Sprintf("stroke: %s; stroke-width: %f; fill: none", hex, 2*stroke)
		for _, arc := range ring.Arcs {
			drawArc(svg, at, arc, cfg.scale, style)
		}
		for _, p := range ring.Points {
			svg.Circle(at(p), pointRadius*cfg.scale, "fill: "+hex)
		}
	}

	labelStyle := fmt.Sprintf("font-size: %fpx; fill: %s", 0.3*cfg.scale, neutral)
	for _, reg := range res.Regions() {
		for i, p := range reg.Points {
			svg.Circle(at(p), pointRadius*cfg.scale, "fill: "+neutral)
			if cfg.labels && reg.Labels != nil {
				svg.Text(to(float64(p.X)+0.15, float64(p.Y)+0.15), fmt.Sprint(reg.Labels[i]), labelStyle)
			}
		}
	}

	svg.End()
	return svg.Err()
}

// drawLegend writes one entry per guide: a key symbol and its caption.
func drawLegend(svg *SVG, to func(x, y float64) geom.Coord, top, scale float64, neutral, dashed string) {
	text := fmt.Sprintf("font-size: %fpx; fill: %s", 0.3*scale, neutral)

	y := top - legendStep
	svg.Circle(to(0.5, y), pointRadius*scale, "fill: "+neutral)
	svg.Text(to(1, y-0.1), "origin", text)

	y -= legendStep
	svg.Line(to(0.2, y), to(0.8, y), dashed)
	svg.Text(to(1, y-0.1), "y = 0", text)

	y -= legendStep
	svg.Line(to(0.2, y), to(0.8, y), dashed)
	svg.Text(to(1, y-0.1), "y = x", text)
}

// drawArc emits the shorter arc between the endpoints. With the y axis
// flipped, a counter-clockwise (positive) sweep maps to SVG sweep-flag 0.
func drawArc(svg *SVG, at func(lattice.Point) geom.Coord, arc topology.Connection, scale float64, style string) {
	svg.CircularArc(at(arc.From), at(arc.To), arc.Radius*scale, false, arc.Sweep < 0, style)
}

func ringHex(res *ringlattice.Result, ring topology.Ring) string {
	if c, ok := res.Colors.Color(ring.Key); ok {
		return palette.Hex(c)
	}
	return palette.Hex(palette.Neutral)
}
