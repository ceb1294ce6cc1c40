// seehuhn.de/go/ink - rasterization of freehand ink strokes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/ink"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name       string      // lowercase a-z, 0-9 and _ only
	Width      int         // canvas width in pixels
	Height     int         // canvas height in pixels
	Scale      float64     // pixels per stroke unit (zero means 1)
	Background color.Color // nil means transparent
	Strokes    []*ink.Stroke
}

// Renderer returns a renderer configured for the test case.
func (tc TestCase) Renderer() *ink.Renderer {
	r := ink.NewRenderer()
	if tc.Scale != 0 {
		r.Scale = tc.Scale
	}
	return r
}

// Coverage returns the pen and highlighter strokes of the test case,
// recoloured in opaque black. Rendered with a highlighter alpha cap of
// 255, the alpha channel of the result is the coverage of the stroke
// geometry. Pencil strokes are omitted, since their coverage depends on
// the grain texture.
func (tc TestCase) Coverage() []*ink.Stroke {
	var res []*ink.Stroke
	for _, s := range tc.Strokes {
		if s == nil || s.Tool == ink.Pencil {
			continue
		}
		c := *s
		c.Color = color.NRGBA{A: 255}
		c.Opacity = nil
		res = append(res, &c)
	}
	return res
}

// stroke returns a stroke with the given tool, color and size.
func stroke(tool ink.Tool, hexColor string, size float64, pts []*ink.Point) *ink.Stroke {
	return ink.NewStroke(tool, hexColor, size, pts...)
}

// line returns n points from (x0, y0) to (x1, y1), with pressure
// changing linearly from p0 to p1.
func line(x0, y0, x1, y1 float64, n int, p0, p1 float64) []*ink.Point {
	res := make([]*ink.Point, n)
	for i := range n {
		t := float64(i) / float64(max(n-1, 1))
		res[i] = &ink.Point{
			X:        x0 + (x1-x0)*t,
			Y:        y0 + (y1-y0)*t,
			Pressure: p0 + (p1-p0)*t,
			T:        i * ink.DefaultTimeStep,
		}
	}
	return res
}

// wave returns n points on a sine wave from x0 to x1 around the line
// y = yc, with constant pressure p.
func wave(x0, x1, yc, amplitude, period float64, n int, p float64) []*ink.Point {
	res := make([]*ink.Point, n)
	for i := range n {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		res[i] = &ink.Point{
			X:        x,
			Y:        yc + amplitude*math.Sin(2*math.Pi*(x-x0)/period),
			Pressure: p,
			T:        i * ink.DefaultTimeStep,
		}
	}
	return res
}

// arc returns n points on a circular arc, with constant pressure p.
// Angles are in degrees.
func arc(cx, cy, r, from, to float64, n int, p float64) []*ink.Point {
	res := make([]*ink.Point, n)
	for i := range n {
		phi := (from + (to-from)*float64(i)/float64(n-1)) * math.Pi / 180
		res[i] = &ink.Point{
			X:        cx + r*math.Cos(phi),
			Y:        cy + r*math.Sin(phi),
			Pressure: p,
			T:        i * ink.DefaultTimeStep,
		}
	}
	return res
}

// polyline returns points through the given (x, y) pairs, with
// constant pressure p.
func polyline(p float64, xy ...float64) []*ink.Point {
	res := make([]*ink.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, &ink.Point{X: xy[i], Y: xy[i+1], Pressure: p, T: i / 2 * ink.DefaultTimeStep})
	}
	return res
}

// jitter returns n points within distance r of (x, y).
func jitter(x, y, r float64, n int, p float64) []*ink.Point {
	res := make([]*ink.Point, n)
	for i := range n {
		phi := float64(i) * 2.39996 // golden angle
		d := r * float64(i) / float64(n)
		res[i] = &ink.Point{X: x + d*math.Cos(phi), Y: y + d*math.Sin(phi), Pressure: p}
	}
	return res
}
