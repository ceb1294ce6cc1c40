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

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects coverage into a w×h buffer.
type grid struct {
	w, h int
	pix  []float32
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	copy(g.pix[y*g.w+xMin:], coverage)
}

func (g *grid) at(x, y int) float32 {
	return g.pix[y*g.w+x]
}

func (g *grid) sum() float64 {
	var s float64
	for _, c := range g.pix {
		s += float64(c)
	}
	return s
}

func (g *grid) max() float32 {
	var m float32
	for _, c := range g.pix {
		m = max(m, c)
	}
	return m
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(w), URy: float64(h)}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// TestTriangleCoverage checks exact coverage values for the triangle
// (0,0)→(10,0)→(10,1). Pixel x is covered by (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	g := newGrid(10, 1)
	r := NewRasterizer(clipRect(10, 1))
	r.FillNonZero(triangle, g.emit)

	for x := range 10 {
		want := float64(2*x+1) / 20
		test.FloatDiff(t, float64(g.at(x, 0)), want, 1e-6, "pixel", x)
	}
}

func TestRectangleEdges(t *testing.T) {
	g := newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(pt(2.5, 2), pt(7.5, 2), pt(7.5, 8), pt(2.5, 8))
	r.Fill(NonZero, g.emit)

	test.FloatDiff(t, float64(g.at(2, 4)), 0.5, 1e-6)
	test.FloatDiff(t, float64(g.at(3, 4)), 1, 1e-6)
	test.FloatDiff(t, float64(g.at(7, 4)), 0.5, 1e-6)
	test.FloatDiff(t, float64(g.at(8, 4)), 0, 1e-6)
	test.FloatDiff(t, float64(g.at(4, 1)), 0, 1e-6)
	test.FloatDiff(t, g.sum(), 30, 1e-4)
}

func TestOrientationIndependent(t *testing.T) {
	ccw := []vec.Vec2{pt(1, 1), pt(9, 2), pt(6, 8.5)}
	cw := []vec.Vec2{pt(6, 8.5), pt(9, 2), pt(1, 1)}

	a, b := newGrid(10, 10), newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(ccw...)
	r.Fill(NonZero, a.emit)
	r.AddPolygon(cw...)
	r.Fill(NonZero, b.emit)

	for i := range a.pix {
		test.FloatDiff(t, float64(a.pix[i]), float64(b.pix[i]), 1e-6, "pixel", i)
	}
}

func TestFillRules(t *testing.T) {
	outer := []vec.Vec2{pt(1, 1), pt(19, 1), pt(19, 19), pt(1, 19)}
	inner := []vec.Vec2{pt(6, 6), pt(14, 6), pt(14, 14), pt(6, 14)}

	nz, eo := newGrid(20, 20), newGrid(20, 20)
	r := NewRasterizer(clipRect(20, 20))
	r.AddPolygon(outer...)
	r.AddPolygon(inner...)
	r.Fill(NonZero, nz.emit)
	r.AddPolygon(outer...)
	r.AddPolygon(inner...)
	r.Fill(EvenOdd, eo.emit)

	// same orientation: nonzero paints the overlap once, even-odd punches
	// a hole
	test.FloatDiff(t, float64(nz.at(10, 10)), 1, 1e-6)
	test.FloatDiff(t, float64(eo.at(10, 10)), 0, 1e-6)
	test.FloatDiff(t, float64(nz.at(3, 3)), 1, 1e-6)
	test.FloatDiff(t, float64(eo.at(3, 3)), 1, 1e-6)
	test.That(t, nz.max() <= 1, "coverage above one:", nz.max())
}

func TestFillResets(t *testing.T) {
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(pt(1, 1), pt(5, 1), pt(5, 5))
	test.That(t, !r.Empty())
	r.Fill(NonZero, func(int, int, []float32) {})
	test.That(t, r.Empty(), "Fill left pending polygons")

	called := false
	r.Fill(NonZero, func(int, int, []float32) { called = true })
	test.That(t, !called, "empty outline produced coverage")
}

func TestDegeneratePolygons(t *testing.T) {
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(pt(1, 1), pt(5, 5))
	test.That(t, r.Empty(), "two-point polygon accepted")
	r.AddCircle(pt(5, 5), 0)
	r.AddCircle(pt(5, 5), math.NaN())
	test.That(t, r.Empty(), "zero circle accepted")
}

func TestClip(t *testing.T) {
	g := newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(pt(-5, -5), pt(15, -5), pt(15, 15), pt(-5, 15))
	r.Fill(NonZero, g.emit)
	test.FloatDiff(t, g.sum(), 100, 1e-4)

	// entirely outside
	called := false
	r.AddPolygon(pt(20, 20), pt(30, 20), pt(30, 30))
	r.Fill(NonZero, func(int, int, []float32) { called = true })
	test.That(t, !called)
}

// TestShallowEdgeLeftOfClip fills the region between the edge
// (-30,0)→(10,10) and x=20. Left of x=0 the edge is folded into the first
// column.
func TestShallowEdgeLeftOfClip(t *testing.T) {
	g := newGrid(20, 10)
	r := NewRasterizer(clipRect(20, 10))
	r.AddPolygon(pt(-30, 0), pt(10, 10), pt(20, 10), pt(20, 0))
	r.Fill(NonZero, g.emit)

	test.FloatDiff(t, g.sum(), 187.5, 1e-3)
	test.FloatDiff(t, float64(g.at(0, 6)), 1, 1e-6)
	test.FloatDiff(t, float64(g.at(0, 7)), 0.625, 1e-6)
	test.FloatDiff(t, float64(g.at(1, 7)), 0.875, 1e-6)
	test.FloatDiff(t, float64(g.at(0, 9)), 0, 1e-6)
	test.FloatDiff(t, float64(g.at(7, 9)), 0.375, 1e-6)
}

func TestFarAwayEdge(t *testing.T) {
	const far = 1e8

	g := newGrid(100, 10)
	r := NewRasterizer(clipRect(100, 10))
	r.AddPolygon(pt(-far, 0), pt(50, 10), pt(100, 10), pt(100, 0))
	r.Fill(NonZero, g.emit)
	want := 1000 - 12500/(far+50)
	test.FloatDiff(t, g.sum(), want, 0.01)
	test.FloatDiff(t, float64(g.at(0, 9)), 1, 1e-4)

	// the same on the right of the clip region
	g = newGrid(100, 10)
	r.AddPolygon(pt(far, 0), pt(50, 10), pt(0, 10), pt(0, 0))
	r.Fill(NonZero, g.emit)
	test.FloatDiff(t, g.sum(), want, 0.01)
}

func TestNonFinitePolygon(t *testing.T) {
	g := newGrid(10, 10)
	r := NewRasterizer(clipRect(10, 10))
	r.AddPolygon(pt(1, 1), pt(math.NaN(), 1), pt(5, 5))
	r.AddPolygon(pt(1, 1), pt(math.Inf(1), 1), pt(5, 5))
	r.AddPolygon(pt(2, 2), pt(4, 2), pt(4, 4), pt(2, 4))
	r.Fill(NonZero, g.emit)
	test.FloatDiff(t, g.sum(), 4, 1e-5)
	test.FloatDiff(t, float64(g.at(1, 1)), 0, 1e-6)
}

func TestCircleArea(t *testing.T) {
	g := newGrid(40, 40)
	r := NewRasterizer(clipRect(40, 40))
	r.Flatness = 0.01
	r.AddCircle(pt(20, 20), 10)
	r.Fill(NonZero, g.emit)

	want := math.Pi * 100
	test.That(t, math.Abs(g.sum()-want) < 0.01*want, "area", g.sum(), "want", want)
	test.FloatDiff(t, float64(g.at(20, 20)), 1, 1e-6)
	test.FloatDiff(t, float64(g.at(2, 2)), 0, 1e-6)
}

func TestTinyCircle(t *testing.T) {
	g := newGrid(4, 4)
	r := NewRasterizer(clipRect(4, 4))
	r.AddCircle(pt(2, 2), 0.3)
	r.Fill(NonZero, g.emit)

	// at least eight sides: the area of a regular octagon
	want := 2 * math.Sqrt2 * 0.3 * 0.3
	test.FloatDiff(t, g.sum(), want, 1e-4)
}

func TestScaleCTM(t *testing.T) {
	g := newGrid(20, 20)
	r := NewRasterizer(clipRect(20, 20))
	r.CTM = matrix.Scale(2, 2)
	r.AddPolygon(pt(1, 1), pt(6, 1), pt(6, 6), pt(1, 6))
	r.Fill(NonZero, g.emit)

	test.FloatDiff(t, g.sum(), 100, 1e-4)
	test.FloatDiff(t, float64(g.at(2, 2)), 1, 1e-6)
	test.FloatDiff(t, float64(g.at(12, 12)), 0, 1e-6)
}

func TestCapsuleArea(t *testing.T) {
	g := newGrid(60, 40)
	r := NewRasterizer(clipRect(60, 40))
	r.Flatness = 0.01
	r.Width = 8
	r.AddStroke([]vec.Vec2{pt(10, 20), pt(50, 20)})
	r.Fill(NonZero, g.emit)

	want := 8*40 + math.Pi*16
	test.That(t, math.Abs(g.sum()-want) < 0.01*want, "area", g.sum(), "want", want)
	test.That(t, g.max() <= 1)
}

func TestCaps(t *testing.T) {
	line := []vec.Vec2{pt(10, 10), pt(20, 10)}
	cases := []struct {
		cap  graphics.LineCapStyle
		area float64
	}{
		{graphics.LineCapButt, 40},
		{graphics.LineCapSquare, 56},
	}
	for _, c := range cases {
		g := newGrid(30, 20)
		r := NewRasterizer(clipRect(30, 20))
		r.Width = 4
		r.Cap = c.cap
		r.AddStroke(line)
		r.Fill(NonZero, g.emit)
		test.FloatDiff(t, g.sum(), c.area, 1e-4, c.cap)
	}
}

func TestDot(t *testing.T) {
	g := newGrid(20, 20)
	r := NewRasterizer(clipRect(20, 20))
	r.Width = 6
	r.Flatness = 0.01
	r.AddStroke([]vec.Vec2{pt(10, 10), pt(10, 10), pt(10, 10)})
	r.Fill(NonZero, g.emit)
	test.That(t, math.Abs(g.sum()-9*math.Pi) < 0.5, "dot area", g.sum())

	r.Cap = graphics.LineCapButt
	r.AddStroke([]vec.Vec2{pt(10, 10)})
	test.That(t, r.Empty(), "butt dot produced an outline")
}

// TestJoins strokes the corner (10,10)→(30,10)→(30,30). The outer corner
// is at the top right; pixel (31,8) lies inside the miter square, outside
// the bevel and partly inside the round join.
func TestJoins(t *testing.T) {
	corner := []vec.Vec2{pt(10, 10), pt(30, 10), pt(30, 30)}
	coverage := func(join graphics.LineJoinStyle) *grid {
		g := newGrid(40, 40)
		r := NewRasterizer(clipRect(40, 40))
		r.Width = 4
		r.Cap = graphics.LineCapButt
		r.Join = join
		r.AddStroke(corner)
		r.Fill(NonZero, g.emit)
		return g
	}

	miter := coverage(graphics.LineJoinMiter)
	bevel := coverage(graphics.LineJoinBevel)
	round := coverage(graphics.LineJoinRound)

	test.FloatDiff(t, float64(miter.at(31, 8)), 1, 1e-5)
	test.FloatDiff(t, float64(bevel.at(31, 8)), 0, 1e-5)
	c := round.at(31, 8)
	test.That(t, c > 0.05 && c < 0.95, "round join coverage", c)

	// the inner corner and the segment interiors are solid in all cases
	for _, g := range []*grid{miter, bevel, round} {
		test.FloatDiff(t, float64(g.at(28, 11)), 1, 1e-5)
		test.FloatDiff(t, float64(g.at(20, 9)), 1, 1e-5)
		test.FloatDiff(t, float64(g.at(29, 20)), 1, 1e-5)
		test.That(t, g.max() <= 1)
	}

	// miter area: an L of a 22×4 and an 18×4 band
	test.FloatDiff(t, miter.sum(), 22*4+18*4, 1e-3)
}

func TestMiterLimit(t *testing.T) {
	// a very sharp turn exceeds the limit and falls back to a bevel
	sharp := []vec.Vec2{pt(5, 20), pt(35, 20), pt(5, 22)}
	g := newGrid(60, 40)
	r := NewRasterizer(clipRect(60, 40))
	r.Width = 2
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = 2
	r.AddStroke(sharp)
	r.Fill(NonZero, g.emit)

	for x := 38; x < 60; x++ {
		for y := range 40 {
			test.FloatDiff(t, float64(g.at(x, y)), 0, 1e-6, "miter spike at", x, y)
		}
	}
}

// TestShortSegments checks that a fine zig-zag much narrower than the pen
// leaves no holes.
func TestShortSegments(t *testing.T) {
	var pts []vec.Vec2
	for i := range 40 {
		y := 20.0
		if i%2 == 1 {
			y = 20.6
		}
		pts = append(pts, pt(10+float64(i)*0.5, y))
	}

	g := newGrid(40, 40)
	r := NewRasterizer(clipRect(40, 40))
	r.Width = 6
	r.AddStroke(pts)
	r.Fill(NonZero, g.emit)

	for x := 12; x < 27; x++ {
		test.FloatDiff(t, float64(g.at(x, 19)), 1, 1e-5, "hole at", x)
		test.FloatDiff(t, float64(g.at(x, 20)), 1, 1e-5, "hole at", x)
	}
}

func TestStrokePath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(10, 10)).
		LineTo(pt(30, 10)).
		LineTo(pt(30, 30)).
		LineTo(pt(10, 30)).
		Close()

	g := newGrid(40, 40)
	r := NewRasterizer(clipRect(40, 40))
	r.Width = 2
	r.Stroke(p, g.emit)

	test.FloatDiff(t, float64(g.at(20, 9)), 1, 1e-5)  // top side
	test.FloatDiff(t, float64(g.at(9, 20)), 1, 1e-5)  // closing side
	test.FloatDiff(t, float64(g.at(20, 20)), 0, 1e-6) // interior
}

func TestCurves(t *testing.T) {
	// a quarter disc bounded by a cubic arc; compare with the exact area
	const k = 0.5522847498
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdClose},
		Coords: []vec.Vec2{
			pt(0, 0), pt(20, 0),
			pt(20, 20*k), pt(20*k, 20), pt(0, 20),
		},
	}
	g := newGrid(25, 25)
	r := NewRasterizer(clipRect(25, 25))
	r.Flatness = 0.01
	r.FillNonZero(p, g.emit)

	want := math.Pi * 400 / 4
	test.That(t, math.Abs(g.sum()-want) < 0.01*want, "area", g.sum(), "want", want)

	q := &path.Data{
		Cmds:   []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdClose},
		Coords: []vec.Vec2{pt(0, 0), pt(20, 0), pt(20, 20)},
	}
	g = newGrid(25, 25)
	r.FillNonZero(q, g.emit)
	// a parabolic segment covers 2/3 of its control triangle
	test.That(t, math.Abs(g.sum()-400.0/3) < 1, "quad area", g.sum())
}

// TestMatchesVector compares coverage with golang.org/x/image/vector.
func TestMatchesVector(t *testing.T) {
	const w, h = 32, 32
	poly := []vec.Vec2{pt(3.2, 4.7), pt(27.9, 2.1), pt(29.3, 25.5), pt(14.1, 30.2), pt(1.7, 18.8)}

	g := newGrid(w, h)
	r := NewRasterizer(clipRect(w, h))
	r.AddPolygon(poly...)
	r.Fill(NonZero, g.emit)

	v := vector.NewRasterizer(w, h)
	v.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		v.LineTo(float32(p.X), float32(p.Y))
	}
	v.ClosePath()
	ref := image.NewAlpha(image.Rect(0, 0, w, h))
	v.Draw(ref, ref.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	for y := range h {
		for x := range w {
			got := int(g.at(x, y) * 255)
			want := int(ref.AlphaAt(x, y).A)
			if d := got - want; d < -3 || d > 3 {
				t.Errorf("pixel (%d,%d): got %d, x/image/vector has %d", x, y, got, want)
			}
		}
	}
}
