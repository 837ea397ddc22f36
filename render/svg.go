// SPDX-License-Identifier: MIT
// Package: ringlattice/render
//
// svg.go — minimal SVG element writer.

package render

import (
	"fmt"
	"html"
	"io"

	"github.com/jbeda/geom"
)

// SVG writes SVG elements to an io.Writer. The first write error is kept
// and every later call becomes a no-op; check Err after End.
type SVG struct {
	writer io.Writer
	err    error
}

// NewSVG wraps w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// Err returns the first write error, if any.
func (svg *SVG) Err() error { return svg.err }

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func styleAttr(style string) string {
	if style == "" {
		return ""
	}
	return fmt.Sprintf(" style='%s'", style)
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Start opens the document with the given viewBox.
func (svg *SVG) Start(viewBox geom.Rect, style string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg"%s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), styleAttr(style))
}

// End closes the document.
func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

// Line draws a straight segment.
func (svg *SVG) Line(p1, p2 geom.Coord, style string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f'%s/>\n", p1.X, p1.Y, p2.X, p2.Y, styleAttr(style))
}

// Circle draws a circle of radius r around c.
func (svg *SVG) Circle(c geom.Coord, r float64, style string) {
	svg.printf("<circle cx='%f' cy='%f' r='%f'%s/>\n", c.X, c.Y, r, styleAttr(style))
}

// CircularArc draws an arc of radius r from p1 to p2.
func (svg *SVG) CircularArc(p1, p2 geom.Coord, r float64, largeArc, sweep bool, style string) {
	svg.printf("<path d='M%f,%f A%f,%f 0 %s,%s %f,%f'%s/>\n",
		p1.X, p1.Y, r, r, onezero(largeArc), onezero(sweep), p2.X, p2.Y, styleAttr(style))
}

// Text places escaped text with its baseline start at p.
func (svg *SVG) Text(p geom.Coord, text, style string) {
	svg.printf("<text x='%f' y='%f'%s>%s</text>\n", p.X, p.Y, styleAttr(style), html.EscapeString(text))
}
