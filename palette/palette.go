// SPDX-License-Identifier: MIT
// Package: ringlattice/palette
//
// palette.go — discrete and continuous color sources.

package palette

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
)

// Neutral is the color renderers use for singleton points and guides.
var Neutral = colornames.Black

// discrete is a 20-entry palette of maximally distinct hues
// (sashamaps.net "20 distinct colors", black removed).
var discrete = []color.RGBA{
	{R: 230, G: 25, B: 75, A: 255},
	{R: 60, G: 180, B: 75, A: 255},
	{R: 255, G: 225, B: 25, A: 255},
	{R: 0, G: 130, B: 200, A: 255},
	{R: 245, G: 130, B: 48, A: 255},
	{R: 145, G: 30, B: 180, A: 255},
	{R: 70, G: 240, B: 240, A: 255},
	{R: 240, G: 50, B: 230, A: 255},
	{R: 210, G: 245, B: 60, A: 255},
	{R: 250, G: 190, B: 212, A: 255},
	{R: 0, G: 128, B: 128, A: 255},
	{R: 220, G: 190, B: 255, A: 255},
	{R: 170, G: 110, B: 40, A: 255},
	{R: 255, G: 250, B: 200, A: 255},
	{R: 128, G: 0, B: 0, A: 255},
	{R: 170, G: 255, B: 195, A: 255},
	{R: 128, G: 128, B: 0, A: 255},
	{R: 255, G: 215, B: 180, A: 255},
	{R: 0, G: 0, B: 128, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
}

// DiscreteSize is the number of entries in the built-in discrete palette
// and the default palette capacity K.
const DiscreteSize = 20

// Discrete returns a copy of the built-in discrete palette.
func Discrete() []color.RGBA {
	out := make([]color.RGBA, len(discrete))
	copy(out, discrete)
	return out
}

// Saturation and value used for continuous hue sampling.
const (
	continuousSaturation = 0.85
	continuousValue      = 0.9
)

// Continuous samples the hue wheel at n equally spaced hues starting at 0
// (red). The last sample stops one step short of 1 so hue 0 is not repeated.
// n ≤ 0 yields nil.
func Continuous(n int) []color.RGBA {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []color.RGBA{hsv(0, continuousSaturation, continuousValue)}
	}

	hues := floats.Span(make([]float64, n), 0, 1-1/float64(n))
	out := make([]color.RGBA, n)
	for i, h := range hues {
		out[i] = hsv(h, continuousSaturation, continuousValue)
	}
	return out
}

// hsv converts h, s, v in [0, 1] to an opaque RGBA.
func hsv(h, s, v float64) color.RGBA {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}

func to8(x float64) uint8 {
	return uint8(math.Round(x * 255))
}

// Hex renders c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
