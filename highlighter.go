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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon, given by its corners in order.
type Polygon []vec.Vec2

// signedArea returns the area of q, positive if the corners run
// counter-clockwise in a y-up frame.
func (q Polygon) signedArea() float64 {
	var a float64
	for i := range q {
		p, r := q[i], q[(i+1)%len(q)]
		a += p.X*r.Y - r.X*p.Y
	}
	return a / 2
}

// HighlighterGeometry is the shape of a highlighter stroke.
//
// Stamps holds the rectangles drawn for stationary input. Panels holds
// one convex polygon per moving segment: the tip rectangles at both ends
// of the segment together with the bridge panels between their corners.
// All panels have positive orientation.
type HighlighterGeometry struct {
	Stamps []rect.Rect
	Panels []Polygon
}

// Empty reports whether the geometry draws nothing.
func (g *HighlighterGeometry) Empty() bool {
	return len(g.Stamps) == 0 && len(g.Panels) == 0
}

// HighlighterAspect returns the ratio between the long and the short
// side of the highlighter tip. If both sizes are given and larger than
// 0.1, their ratio is used. Otherwise the fallback is used. The result is
// clamped to [MinHighlighterAspect, MaxHighlighterAspect].
func HighlighterAspect(sizeWidth, sizeHeight *float64, fallback float64) float64 {
	aspect := fallback
	if sizeWidth != nil && sizeHeight != nil && *sizeWidth > 0.1 && *sizeHeight > 0.1 {
		aspect = *sizeHeight / *sizeWidth
	}
	return clampAspect(aspect)
}

func clampAspect(aspect float64) float64 {
	if aspect != aspect {
		return DefaultHighlighterAspect
	}
	return clamp(aspect, MinHighlighterAspect, MaxHighlighterAspect)
}

// HighlighterSize returns the base size and the aspect ratio used to
// draw s with the highlighter. An explicit tip size in SizeWidth and
// SizeHeight takes precedence over Size and fallbackAspect.
func (s *Stroke) HighlighterSize(fallbackAspect float64) (baseSize, aspect float64) {
	baseSize = coerceSize(s.Size)
	if s.SizeHeight != nil && *s.SizeHeight > 0.1 {
		baseSize = *s.SizeHeight
	}
	return baseSize, HighlighterAspect(s.SizeWidth, s.SizeHeight, fallbackAspect)
}

// BuildHighlighter computes the geometry of a highlighter stroke.
// The tip is an axis-aligned rectangle with the long side vertical.
//
// If no two consecutive points are further apart than a quarter unit,
// every point is stamped with an untapered tip. Otherwise each segment
// is drawn as the area swept by the tip, using the average pressure of
// the end points and [TaperScale].
// Segments without movement are stamped at their end point.
func BuildHighlighter(pts []*Point, baseSize, aspect float64) HighlighterGeometry {
	pts = drawable(pts)
	aspect = clampAspect(aspect)

	var g HighlighterGeometry
	if len(pts) == 0 {
		return g
	}

	if isStationary(pts) {
		g.Stamps = make([]rect.Rect, 0, len(pts))
		for _, p := range pts {
			w, h := highlighterTip(p.Pressure, baseSize, aspect, 1)
			g.Stamps = append(g.Stamps, tipRect(position(p), w, h))
		}
		return g
	}

	n := len(pts) - 1
	for i := range n {
		p0, p1 := pts[i], pts[i+1]
		a, b := position(p0), position(p1)
		taper := TaperScale(i, n)

		if b.Sub(a).Length() <= stationaryEpsilon {
			w, h := highlighterTip(p1.Pressure, baseSize, aspect, taper)
			g.Stamps = append(g.Stamps, tipRect(b, w, h))
			continue
		}

		pr := (clampPressure(p0.Pressure) + clampPressure(p1.Pressure)) / 2
		w, h := highlighterTip(pr, baseSize, aspect, taper)
		q0 := rectQuad(tipRect(a, w, h))
		q1 := rectQuad(tipRect(b, w, h))
		panel := convexHull(append(q0[:], q1[:]...))
		if panel.signedArea() > minPanelArea {
			g.Panels = append(g.Panels, panel)
		}
	}
	return g
}

// highlighterTip returns the width and height of the highlighter tip.
func highlighterTip(pressure, baseSize, aspect, taper float64) (w, h float64) {
	scale := clamp(highlighterCurve.At(clampPressure(pressure))/aspect, 0.05, 10)
	w = baseSize * scale * taper
	h = w * aspect
	return max(w, minHighlighterWidth), max(h, minHighlighterHeight)
}

func tipRect(c vec.Vec2, w, h float64) rect.Rect {
	return rect.Rect{
		LLx: c.X - w/2,
		LLy: c.Y - h/2,
		URx: c.X + w/2,
		URy: c.Y + h/2,
	}
}

// rectQuad returns the corners of r, counter-clockwise in a y-up frame.
func rectQuad(r rect.Rect) [4]vec.Vec2 {
	return [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}

// convexHull returns the convex hull of pts, counter-clockwise in a y-up
// frame, without collinear corners. The slice pts is sorted in place.
func convexHull(pts []vec.Vec2) Polygon {
	slices.SortFunc(pts, func(a, b vec.Vec2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	if len(pts) < 3 {
		return Polygon(pts)
	}

	// turnsLeft reports whether a→b→c is a strict counter-clockwise turn
	turnsLeft := func(a, b, c vec.Vec2) bool {
		return (b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X) > 0
	}

	hull := make(Polygon, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

const (
	// DefaultHighlighterAspect is the default ratio between the height
	// and the width of the highlighter tip.
	DefaultHighlighterAspect = 3.0

	// MinHighlighterAspect and MaxHighlighterAspect bound the aspect
	// ratio of the highlighter tip.
	MinHighlighterAspect = 1.25
	MaxHighlighterAspect = 10.0

	// minHighlighterWidth and minHighlighterHeight keep thin highlighter
	// strokes visible.
	minHighlighterWidth  = 0.8
	minHighlighterHeight = 2.0

	// minPanelArea is the area below which panels are dropped.
	minPanelArea = 1e-9
)
