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

package pchip

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// legacy highlighter observation, height / 24
var highlighter = Table{
	{0.01, 5.0 / 24}, {0.05, 6.0 / 24}, {0.10, 8.0 / 24}, {0.20, 12.0 / 24},
	{0.30, 16.0 / 24}, {0.40, 20.0 / 24}, {0.50, 1}, {0.60, 26.0 / 24},
	{0.70, 30.0 / 24}, {0.80, 34.0 / 24}, {0.90, 38.0 / 24}, {1.00, 38.0 / 24},
}

func TestBoundaryClamping(t *testing.T) {
	for _, x := range []float64{-10, -1e-9, 0, 0.01} {
		test.T(t, Interpolate(highlighter, x), highlighter[0].Y, x)
	}
	for _, x := range []float64{0.9, 1, 1.5, math.Inf(1)} {
		test.T(t, Interpolate(highlighter, x), highlighter[len(highlighter)-1].Y, x)
	}
}

func TestKnotsAreExact(t *testing.T) {
	c := NewCurve(highlighter)
	for _, k := range highlighter {
		if got := c.At(k.X); got != k.Y {
			t.Errorf("At(%g) = %g, want %g", k.X, got, k.Y)
		}
	}
}

func TestMonotone(t *testing.T) {
	tables := []Table{
		highlighter,
		{{0, 0}, {1, 0}, {2, 0}, {3, 5}, {4, 5.01}, {5, 100}},
		{{0, 1}, {0.1, 1.03}, {0.5, 1.27}, {0.6, 1.35}, {1, 1.7}},
		{{0, 0}, {0.01, 10}, {0.02, 10}, {1, 11}},
	}
	for ti, tab := range tables {
		c := NewCurve(tab)
		lo, hi := tab[0].X, tab[len(tab)-1].X
		prev := c.At(lo)
		const n = 5000
		for i := 1; i <= n; i++ {
			x := lo + (hi-lo)*float64(i)/n
			y := c.At(x)
			if y < prev-1e-12 {
				t.Fatalf("table %d: decreasing at x=%g: %g < %g", ti, x, y, prev)
			}
			prev = y
		}
	}
}

func TestNoOvershoot(t *testing.T) {
	// a peak followed by a valley: the curve must stay within the range
	// of the two knots bounding each interval
	tab := Table{{0, 0}, {1, 4}, {2, 1}, {3, 3}, {4, 3}, {5, 0}}
	c := NewCurve(tab)
	for i := 0; i < len(tab)-1; i++ {
		a, b := tab[i], tab[i+1]
		lo, hi := min(a.Y, b.Y), max(a.Y, b.Y)
		for j := 0; j <= 100; j++ {
			x := a.X + (b.X-a.X)*float64(j)/100
			y := c.At(x)
			test.That(t, y >= lo-1e-12 && y <= hi+1e-12, "overshoot at", x, y)
		}
	}
}

func TestDegenerateTables(t *testing.T) {
	test.Float(t, Interpolate(nil, 0.3), 1)
	test.Float(t, Interpolate(Table{{0.5, 7}}, -3), 7)
	test.Float(t, Interpolate(Table{{0.5, 7}}, 3), 7)

	two := Table{{0, 1}, {2, 5}}
	for _, x := range []float64{0.25, 0.5, 1, 1.5} {
		test.Float(t, Interpolate(two, x), 1+2*x)
	}
}

func TestEndpointSlope(t *testing.T) {
	// sign disagreement forces a flat end
	test.Float(t, endpointSlope(1, 1, 1, 10), 0)
	// magnitude is clamped to three times the secant
	test.Float(t, endpointSlope(1, 0.01, 1, -500), 3)
	// regular case
	test.Float(t, endpointSlope(1, 1, 2, 1), 2.5)
	// flat first interval
	test.Float(t, endpointSlope(1, 1, 0, 3), 0)
}

func TestDeterminism(t *testing.T) {
	a := NewCurve(highlighter)
	b := NewCurve(highlighter)
	for i := range 1000 {
		x := float64(i) / 999
		if math.Float64bits(a.At(x)) != math.Float64bits(b.At(x)) {
			t.Fatalf("non-deterministic result at %g", x)
		}
	}
}

func TestCurveCopiesTable(t *testing.T) {
	tab := Table{{0, 0}, {1, 1}}
	c := NewCurve(tab)
	tab[1].Y = 100
	test.Float(t, c.At(1), 1)
}

func TestValidate(t *testing.T) {
	test.Error(t, highlighter.Validate())
	test.That(t, errors.Is(Table{}.Validate(), ErrEmpty))
	test.That(t, errors.Is(Table{{0, 0}, {0, 1}}.Validate(), ErrNotIncreasing))
	test.That(t, errors.Is(Table{{1, 0}, {0, 1}}.Validate(), ErrNotIncreasing))
}
