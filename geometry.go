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

package ink

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PenSegment is a round-capped line of constant width.
type PenSegment struct {
	A, B  vec.Vec2
	Width float64
}

// Dot is a filled circle.
type Dot struct {
	Center vec.Vec2
	Radius float64
}

// PenGeometry is the shape of a pen stroke. A stroke with a single point
// is drawn as a dot, longer strokes as a chain of segments.
type PenGeometry struct {
	Segments []PenSegment
	Dot      *Dot
}

// Empty reports whether the geometry draws nothing.
func (g *PenGeometry) Empty() bool {
	return len(g.Segments) == 0 && g.Dot == nil
}

// BuildPen computes the geometry of a pen stroke.
// Each segment gets the width for the average pressure of its end
// points, scaled by [TaperScale]. Nil points are ignored.
func BuildPen(pts []*Point, baseSize float64) PenGeometry {
	pts = drawable(pts)
	base := max(minBaseSize, baseSize)

	var g PenGeometry
	switch len(pts) {
	case 0:
		return g
	case 1:
		p := pts[0]
		w := max(minPenWidth, base*penCurve.At(clampPressure(p.Pressure)))
		g.Dot = &Dot{Center: position(p), Radius: w / 2}
		return g
	}

	n := len(pts) - 1
	g.Segments = make([]PenSegment, 0, n)
	for i := range n {
		p0, p1 := pts[i], pts[i+1]
		pr := (clampPressure(p0.Pressure) + clampPressure(p1.Pressure)) / 2
		w := base * penCurve.At(pr) * TaperScale(i, n)
		g.Segments = append(g.Segments, PenSegment{
			A:     position(p0),
			B:     position(p1),
			Width: max(minPenWidth, w),
		})
	}
	return g
}

// TaperScale returns the size factor for segment i of a stroke with n
// segments. The first and last [TaperSegments] segments grow linearly
// from [TaperMinScale] to full size. A stroke with only one segment is
// not tapered.
func TaperScale(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	switch {
	case i < TaperSegments:
		return lerp(TaperMinScale, 1, float64(i+1)/TaperSegments)
	case i >= max(0, n-TaperSegments):
		return lerp(TaperMinScale, 1, float64(n-i)/TaperSegments)
	default:
		return 1
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// compact returns pts without nil entries. The input slice is returned
// unchanged if it contains no nil entries.
func compact(pts []*Point) []*Point {
	return filterPoints(pts, func(p *Point) bool { return p != nil })
}

// drawable is like compact, but also drops points with coordinates which
// are not finite.
func drawable(pts []*Point) []*Point {
	return filterPoints(pts, func(p *Point) bool {
		return p != nil &&
			!math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
			!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
	})
}

func filterPoints(pts []*Point, keep func(*Point) bool) []*Point {
	for i, p := range pts {
		if keep(p) {
			continue
		}
		res := make([]*Point, i, len(pts)-1)
		copy(res, pts[:i])
		for _, q := range pts[i+1:] {
			if keep(q) {
				res = append(res, q)
			}
		}
		return res
	}
	return pts
}

func position(p *Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// isStationary reports whether no two consecutive points are more than
// stationaryEpsilon apart.
func isStationary(pts []*Point) bool {
	for i := 1; i < len(pts); i++ {
		if position(pts[i]).Sub(position(pts[i-1])).Length() > stationaryEpsilon {
			return false
		}
	}
	return true
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

const (
	// TaperSegments is the number of segments at each end of a stroke
	// which are drawn with reduced size.
	TaperSegments = 3

	// TaperMinScale is the size factor of the outermost segments.
	TaperMinScale = 0.35

	// minBaseSize is the smallest base size used for pen and pencil.
	minBaseSize = 0.5

	// minPenWidth is the smallest width of a pen segment or dot.
	minPenWidth = 0.1

	// stationaryEpsilon is the largest distance between consecutive
	// points which does not count as movement.
	stationaryEpsilon = 0.25
)
