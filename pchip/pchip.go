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

// Package pchip implements monotone piecewise cubic Hermite interpolation
// (PCHIP) over small calibration tables.
//
// The interpolant passes through every knot, is flat outside the table's
// domain, and never overshoots the local extrema of neighbouring knots:
// on every interval where the data is monotone, so is the curve.
package pchip

import (
	"errors"
	"math"
	"sort"
)

// Knot is one (x, y) sample of a calibration table.
type Knot struct {
	X, Y float64
}

// Table is a list of knots with strictly increasing X values.
type Table []Knot

// Errors returned by Table.Validate.
var (
	ErrEmpty         = errors.New("pchip: empty table")
	ErrNotIncreasing = errors.New("pchip: knots not strictly increasing")
)

// Validate checks that the table is non-empty and that the X values are
// strictly increasing.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmpty
	}
	for i := 1; i < len(t); i++ {
		if !(t[i].X > t[i-1].X) {
			return ErrNotIncreasing
		}
	}
	return nil
}

// At evaluates the interpolant at x.
// For repeated evaluation of the same table, use a [Curve].
func (t Table) At(x float64) float64 {
	return Interpolate(t, x)
}

// Interpolate evaluates the monotone cubic interpolant of t at x.
//
// Values of x at or below the first knot return the first Y, values at or
// above the last knot return the last Y. A single-knot table is constant,
// a two-knot table is linear. An empty table yields 1.
func Interpolate(t Table, x float64) float64 {
	return NewCurve(t).At(x)
}

// Curve is a table together with its precomputed Hermite slopes.
// A Curve is immutable and safe for concurrent use.
type Curve struct {
	knots  Table
	slopes []float64
}

// NewCurve precomputes the PCHIP slopes for t.
// The table is copied, so later changes to t do not affect the curve.
func NewCurve(t Table) *Curve {
	c := &Curve{knots: append(Table(nil), t...)}
	c.slopes = slopes(c.knots)
	return c
}

// Knots returns the table the curve was built from.
func (c *Curve) Knots() Table {
	return c.knots
}

// At evaluates the curve at x.
func (c *Curve) At(x float64) float64 {
	k := c.knots
	switch {
	case len(k) == 0:
		return 1
	case len(k) == 1:
		return k[0].Y
	case x <= k[0].X:
		return k[0].Y
	case x >= k[len(k)-1].X:
		return k[len(k)-1].Y
	case math.IsNaN(x):
		return k[0].Y
	}

	// first knot with X >= x; x lies in (k[i-1].X, k[i].X]
	i := sort.Search(len(k), func(j int) bool { return k[j].X >= x })
	i0 := i - 1

	x0, x1 := k[i0].X, k[i].X
	y0, y1 := k[i0].Y, k[i].Y
	h := x1 - x0
	if h <= 0 {
		return y0
	}

	s := (x - x0) / h
	s = min(max(s, 0), 1)
	s2 := s * s
	s3 := s2 * s

	// cubic Hermite basis
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*y0 + h10*h*c.slopes[i0] + h01*y1 + h11*h*c.slopes[i]
}

// slopes computes the derivative at each knot.
func slopes(k Table) []float64 {
	n := len(k)
	if n < 2 {
		return make([]float64, n)
	}

	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := range n - 1 {
		h[i] = k[i+1].X - k[i].X
		if h[i] > 0 {
			delta[i] = (k[i+1].Y - k[i].Y) / h[i]
		}
	}

	m := make([]float64, n)
	if n == 2 {
		m[0] = delta[0]
		m[1] = delta[0]
		return m
	}

	for i := 1; i < n-1; i++ {
		d0, d1 := delta[i-1], delta[i]
		if d0 == 0 || d1 == 0 || math.Signbit(d0) != math.Signbit(d1) {
			continue // local extremum or flat: keep zero slope
		}
		// weighted harmonic mean (Fritsch-Butland)
		w1 := 2*h[i] + h[i-1]
		w2 := h[i] + 2*h[i-1]
		m[i] = (w1 + w2) / (w1/d0 + w2/d1)
	}

	m[0] = endpointSlope(h[0], h[1], delta[0], delta[1])
	m[n-1] = endpointSlope(h[n-2], h[n-3], delta[n-2], delta[n-3])
	return m
}

// endpointSlope returns the one-sided three-point derivative estimate at an
// end of the table. h0, d0 belong to the interval touching the end point,
// h1, d1 to its neighbour.
func endpointSlope(h0, h1, d0, d1 float64) float64 {
	if h0 <= 0 || h1 <= 0 {
		return d0
	}

	m := ((2*h0+h1)*d0 - h0*d1) / (h0 + h1)
	if sign(m) != sign(d0) {
		return 0
	}
	if math.Abs(m) > math.Abs(3*d0) {
		return 3 * d0
	}
	return m
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
