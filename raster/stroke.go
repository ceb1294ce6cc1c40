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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a stroke segment in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
	Len  float64
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return segment{}, false
	}
	t := d.Mul(1 / l)
	return segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}, Len: l}, true
}

// reversed returns the segment traversed from B to A.
func (s segment) reversed() segment {
	return segment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1), Len: s.Len}
}

// Stroke strokes every subpath of p with the current Width, Cap and Join
// and fills the result with the nonzero rule. Pending polygons are
// discarded first. A closed subpath is stroked as an open polyline ending
// at its start point.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Reset()

	var line []vec.Vec2
	var current, subpath vec.Vec2
	flush := func() {
		if len(line) > 0 {
			r.AddStroke(line)
		}
		line = line[:0]
	}
	collect := func(_, to vec.Vec2) {
		line = append(line, to)
	}

	k := 0
	for _, cmd := range p.Cmds {
		if cmd != path.CmdMoveTo && len(line) == 0 {
			line = append(line, current)
		}
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[k]
			subpath = current
			line = append(line, current)
			k++
		case path.CmdLineTo:
			current = p.Coords[k]
			line = append(line, current)
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], collect)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], collect)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			line = append(line, subpath)
			current = subpath
			flush()
		}
	}
	flush()

	r.Fill(NonZero, emit)
}

// AddStroke appends the outline of the open polyline pts, stroked with
// the current Width, Cap and Join. Consecutive duplicate points are
// ignored. A polyline without extent becomes a dot for round and square
// caps, and is dropped for butt caps.
func (r *Rasterizer) AddStroke(pts []vec.Vec2) {
	if !(r.Width > 0) || len(pts) == 0 {
		return
	}
	d := r.Width / 2

	r.segs = r.segs[:0]
	for i := 1; i < len(pts); i++ {
		if s, ok := newSegment(pts[i-1], pts[i]); ok {
			r.segs = append(r.segs, s)
		}
	}

	start := len(r.outline)
	if len(r.segs) == 0 {
		c := pts[0]
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(c, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.outline = append(r.outline,
				vec.Vec2{X: c.X - d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y - d},
				vec.Vec2{X: c.X + d, Y: c.Y + d},
				vec.Vec2{X: c.X - d, Y: c.Y + d},
			)
		}
		r.closePolygon(start)
		return
	}

	first := r.segs[0]
	last := r.segs[len(r.segs)-1]

	// The outline runs along the +N side from the first point to the
	// last, then along the +N side of the reversed polyline back again.
	r.addCap(first.A, first.T.Mul(-1), d)
	r.addSide(r.segs, d)
	r.addCap(last.B, last.T, d)
	for i, j := 0, len(r.segs)-1; i < j; i, j = i+1, j-1 {
		r.segs[i], r.segs[j] = r.segs[j], r.segs[i]
	}
	for i := range r.segs {
		r.segs[i] = r.segs[i].reversed()
	}
	r.addSide(r.segs, d)

	r.closePolygon(start)
}

// addSide appends the offset curve at distance d on the +N side of segs,
// including the joins between segments.
func (r *Rasterizer) addSide(segs []segment, d float64) {
	skipA := false
	for i := range segs {
		s := &segs[i]
		if !skipA {
			r.outline = append(r.outline, s.A.Add(s.N.Mul(d)))
		}
		skipA = false

		if i == len(segs)-1 {
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			break
		}

		next := &segs[i+1]
		sin := s.T.X*next.T.Y - s.T.Y*next.T.X
		switch {
		case math.Abs(sin) < collinearityThreshold && s.T.Dot(next.T) > 0:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
		case sin > 0:
			// +N is the inner side of a left turn
			r.addInner(s, next, d)
			skipA = true
		default:
			r.outline = append(r.outline, s.B.Add(s.N.Mul(d)))
			r.addJoin(s.B, s.T, next.T, d)
		}
	}
}

// addInner handles the inner side of a corner between s and next, up to
// and including the start of the offset line of next. If the two offset
// lines intersect within reach of both segments, only the intersection
// point is added. Otherwise the outline pivots through the corner point.
func (r *Rasterizer) addInner(s, next *segment, d float64) {
	P := s.B
	cos := s.T.Dot(next.T)
	half := math.Sqrt((1 + cos) / 2) // cos of half the turning angle
	bisector := s.N.Add(next.N)
	bl := bisector.Length()

	if half > 1e-9 && bl > 1e-9 {
		// distance along each segment from P to the intersection
		back := d * math.Sqrt(max(0, 1-half*half)) / half
		if back <= s.Len && back <= next.Len {
			r.outline = append(r.outline, P.Add(bisector.Mul(d/(half*bl))))
			return
		}
	}

	r.outline = append(r.outline, P.Add(s.N.Mul(d)), P, P.Add(next.N.Mul(d)))
}

// addCap adds an end cap at P, where T is the unit direction pointing away
// from the line. The cap runs from the -N side to the +N side of the
// segment ending at P.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds the outer part of a join at P, on the +N side, where the
// direction changes from T1 to T2 by a right turn. The offset points of
// both segments are added by the caller.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	if cos < cuspCosineThreshold {
		// the path reverses: close off the first segment and start the
		// second one with caps
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	switch r.Join {
	case graphics.LineJoinMiter:
		half := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if half > 0 && 1/half <= r.MiterLimit+eps {
			b := N1.Add(N2)
			if l := b.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(b.Mul(d/(half*l))))
			}
		}
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		r.addArc(P, d, N1, -angle, false)
	}
}

// addArc appends points of the arc around center with the given radius,
// starting in direction dir and sweeping by sweep radians (positive is
// counter-clockwise in a y-up frame). If includeStart is false, the first
// point is assumed to be present already.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	devR := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)

	// a chord over angle θ deviates from the arc by r·(1-cos(θ/2))
	step := 2 * math.Acos(1-r.Flatness/devR)
	if !(step > 0) || step > maxArcStep {
		step = maxArcStep
	}
	n := max(1, int(math.Ceil(math.Abs(sweep)/step)))

	dt := sweep / float64(n)
	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		v := vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(v.Mul(radius)))
	}
}

// maxArcStep is the largest angle covered by one segment of a flattened
// arc, so that even tiny circles keep eight sides.
const maxArcStep = math.Pi / 4
