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

// Package raster converts outlines into anti-aliased pixel coverage.
//
// A [Rasterizer] collects closed polygons (added directly, as circles, as
// stroked polylines, or from a path) into one compound outline. [Rasterizer.Fill]
// then computes the exact area of every pixel covered by the outline and
// hands the result to a callback, one scanline at a time.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how overlapping parts of the outline are combined.
type FillRule int

const (
	// NonZero covers every point with non-zero winding number. Overlapping
	// polygons are painted once.
	NonZero FillRule = iota

	// EvenOdd covers points with odd winding number.
	EvenOdd
)

// Rasterizer turns outlines into coverage values: the fraction of each
// pixel covered by the outline, from 0 (outside) to 1 (inside). Internal
// buffers are reused between calls, so one Rasterizer should be kept for
// many fills.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, when curves and
	// arcs are replaced by line segments. Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units, used by AddStroke.
	Width float64

	// Cap is the end cap style used by AddStroke.
	Cap graphics.LineCapStyle

	// Join is the corner style used by AddStroke.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins. Must be at least 1.
	MiterLimit float64

	// pending outline, user space
	outline []vec.Vec2
	starts  []int // start index of each polygon in outline

	// stroker scratch
	segs []segment

	// scanline conversion
	edges  []edge
	active []int
	cover  []float32
	area   []float32
	bbox   bounds
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with
// the identity CTM and round caps and joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinRound,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset discards all pending polygons.
func (r *Rasterizer) Reset() {
	r.outline = r.outline[:0]
	r.starts = r.starts[:0]
}

// Empty reports whether no polygons are pending.
func (r *Rasterizer) Empty() bool {
	return len(r.starts) == 0
}

// AddPolygon appends a closed polygon to the outline.
// Polygons with fewer than three vertices are ignored.
func (r *Rasterizer) AddPolygon(pts ...vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	r.starts = append(r.starts, len(r.outline))
	r.outline = append(r.outline, pts...)
}

// AddCircle appends a circle, approximated to within Flatness.
func (r *Rasterizer) AddCircle(center vec.Vec2, radius float64) {
	if !(radius > 0) {
		return
	}
	start := len(r.outline)
	r.addArc(center, radius, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
	r.closePolygon(start)
}

// AddPath appends every subpath of p as a polygon. Open subpaths are
// closed implicitly and curves are flattened.
func (r *Rasterizer) AddPath(p *path.Data) {
	if p == nil {
		return
	}

	start := len(r.outline)
	var current, subpath vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && len(r.outline) == start {
			// drawing after Close continues from the subpath start
			r.outline = append(r.outline, current)
		}
		switch cmd {
		case path.CmdMoveTo:
			r.closePolygon(start)
			start = len(r.outline)
			current = p.Coords[k]
			subpath = current
			r.outline = append(r.outline, current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			r.outline = append(r.outline, current)
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.appendTo)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.appendTo)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.closePolygon(start)
			start = len(r.outline)
			current = subpath
		}
	}
	r.closePolygon(start)
}

// appendTo is the emit function used when flattening curves into the
// outline; the start point is already present.
func (r *Rasterizer) appendTo(_, to vec.Vec2) {
	r.outline = append(r.outline, to)
}

// closePolygon records outline[start:] as a polygon, or drops the
// vertices if there are too few of them.
func (r *Rasterizer) closePolygon(start int) {
	if len(r.outline)-start >= 3 {
		r.starts = append(r.starts, start)
	} else {
		r.outline = r.outline[:start]
	}
}

// FillNonZero fills p using the nonzero winding rule. Pending polygons are
// discarded first.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Reset()
	r.AddPath(p)
	r.Fill(NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule. Pending polygons are
// discarded first.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Reset()
	r.AddPath(p)
	r.Fill(EvenOdd, emit)
}

// Fill rasterizes all pending polygons as one compound outline and then
// resets the Rasterizer. The emit callback is called once for every
// scanline with non-zero coverage, in increasing y order; its slice
// argument is only valid during the call.
func (r *Rasterizer) Fill(rule FillRule, emit func(y, xMin int, coverage []float32)) {
	defer r.Reset()

	xMin, xMax, yMin, yMax, ok := r.collectEdges()
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yTop, b.yTop)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		for next < len(r.edges) && r.edges[next].yTop < top+1 {
			r.active = append(r.active, next)
			next++
		}

		keep := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].yBot > top {
				keep = append(keep, i)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.edges[i].accumulate(y, r.cover, r.area, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// edge is an outline segment in device space, stored top to bottom.
type edge struct {
	xTop, yTop float64 // end point with the smaller y
	yBot       float64
	dxdy       float64
	dir        float32 // +1 if the segment runs downwards, -1 otherwise
}

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.xTop + e.dxdy*(y-e.yTop)
}

type bounds struct {
	empty                  bool
	xMin, xMax, yMin, yMax float64
}

func (b *bounds) include(x, y float64) {
	if b.empty {
		b.xMin, b.xMax, b.yMin, b.yMax = x, x, y, y
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

// collectEdges transforms the pending polygons into the edge list and
// returns the integer bounding box of the edges, clipped.
func (r *Rasterizer) collectEdges() (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bbox = bounds{empty: true}

	for i, start := range r.starts {
		end := len(r.outline)
		if i+1 < len(r.starts) {
			end = r.starts[i+1]
		}
		poly := r.outline[start:end]
		if !finite(poly) {
			continue
		}
		prev := r.toDevice(poly[len(poly)-1])
		for _, p := range poly {
			cur := r.toDevice(p)
			r.addEdge(prev, cur)
			prev = cur
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// finite reports whether all coordinates of poly are finite.
func finite(poly []vec.Vec2) bool {
	for _, p := range poly {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// linear applies the CTM without translation.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// addEdge appends the device-space segment a→b. Horizontal segments do not
// contribute coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1, dxdy: (b.X - a.X) / dy}
	if dy > 0 {
		e.xTop, e.yTop, e.yBot = a.X, a.Y, b.Y
	} else {
		e.xTop, e.yTop, e.yBot = b.X, b.Y, a.Y
		e.dir = -1
	}
	r.edges = append(r.edges, e)

	r.bbox.include(a.X, a.Y)
	r.bbox.include(b.X, b.Y)
}

// Coverage model
//
// Each pixel of the current scanline gets two accumulators. cover[i] is
// the signed height of all edge pieces inside pixel column i, area[i] is
// the same height weighted by the fraction of the pixel to the right of
// the edge. Scanning left to right, the coverage of pixel i is the running
// sum of cover[0:i] plus area[i]. Edge pieces left of the first column are
// folded into column 0.

// accumulate adds the part of e inside scanline y to cover and area, which
// hold the columns x0 <= x < x1.
func (e *edge) accumulate(y int, cover, area []float32, x0, x1 int) {
	ya := max(float64(y), e.yTop)
	yb := min(float64(y+1), e.yBot)
	if yb <= ya {
		return
	}

	xa, xb := e.xAt(ya), e.xAt(yb)
	left, right := min(xa, xb), max(xa, xb)
	colL := int(math.Floor(left))
	colR := int(math.Floor(right))

	if colL >= x1 {
		return
	}
	if colR < x0 {
		h := e.dir * float32(yb-ya)
		cover[0] += h
		area[0] += h
		return
	}
	if colL == colR {
		addPiece(cover, area, x0, x1, colL, e.dir*float32(yb-ya), (xa+xb)/2)
		return
	}

	// the piece crosses several columns: split it at the column boundaries
	dydx := 1 / e.dxdy
	if colL < x0 {
		// everything left of x0 goes into column 0 in one piece
		ys := min(max(e.yTop+dydx*(float64(x0)-e.xTop), ya), yb)
		var h float64
		if xa < xb {
			h = ys - ya
		} else {
			h = yb - ys
		}
		if h > 0 {
			cover[0] += e.dir * float32(h)
			area[0] += e.dir * float32(h)
		}
		colL = x0
	}
	colR = min(colR, x1-1)
	for col := colL; col <= colR; col++ {
		yl := e.yTop + dydx*(float64(col)-e.xTop)
		yr := e.yTop + dydx*(float64(col+1)-e.xTop)
		s0 := max(min(yl, yr), ya)
		s1 := min(max(yl, yr), yb)
		if s1 <= s0 {
			continue
		}
		addPiece(cover, area, x0, x1, col, e.dir*float32(s1-s0), e.xAt((s0+s1)/2))
	}
}

// addPiece records an edge piece of signed height h in column col, where
// xMid is the mean x coordinate of the piece.
func addPiece(cover, area []float32, x0, x1, col int, h float32, xMid float64) {
	switch {
	case col < x0:
		cover[0] += h
		area[0] += h
	case col < x1:
		i := col - x0
		cover[i] += h
		area[i] += h * float32(1-(xMid-float64(col)))
	}
}

// integrateNonZero turns the accumulators into nonzero coverage, in place
// in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		v := acc + area[i]
		acc += c
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulators into even-odd coverage, in place
// in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		v := acc + area[i]
		acc += c
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of row between the first and last non-zero
// value, together with its offset. The result is nil if all values are zero.
func trimZeros(row []float32) ([]float32, int) {
	lo := 0
	for lo < len(row) && row[lo] == 0 {
		lo++
	}
	if lo == len(row) {
		return nil, 0
	}
	hi := len(row)
	for row[hi-1] == 0 {
		hi--
	}
	return row[lo:hi], lo
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments, calling emit for each.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation from the chord, in device space
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic replaces the cubic Bézier curve p0, …, p3 by line segments,
// calling emit for each. The segment count follows Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit converts joins sharper than about 11.5 degrees
	// into bevels.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest stroke segment length.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| below which two consecutive
	// segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments doubling back on themselves.
	cuspCosineThreshold = -0.9999
)
