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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/ink/noise"
	"seehuhn.de/go/ink/raster"
)

// DrawPen paints pen geometry in color c.
// All segments are filled as one outline, so that overlapping segments
// do not darken each other.
func (s *Surface) DrawPen(g PenGeometry, c color.NRGBA) {
	if g.Empty() || c.A == 0 {
		return
	}

	ras := s.ras
	ras.Reset()
	ras.Cap = graphics.LineCapRound
	ras.Join = graphics.LineJoinRound

	if g.Dot != nil {
		ras.AddCircle(g.Dot.Center, g.Dot.Radius)
	}

	// Runs of connected segments with equal width become one polyline.
	var line []vec.Vec2
	for i, seg := range g.Segments {
		if i == 0 || seg.Width != g.Segments[i-1].Width || seg.A != g.Segments[i-1].B {
			if len(line) > 0 {
				ras.AddStroke(line)
			}
			line = append(line[:0], seg.A)
			ras.Width = seg.Width
		}
		line = append(line, seg.B)
	}
	if len(line) > 0 {
		ras.AddStroke(line)
	}

	ras.Fill(raster.NonZero, s.blend(c))
}

// DrawHighlighter paints highlighter geometry in color c.
// The stamps and panels are first collected in a mask layer, which is
// then used to paint c in one step. Every shape is filled on its own and
// the mask keeps the largest coverage of each pixel, so that overlapping
// shapes do not darken each other.
func (s *Surface) DrawHighlighter(g HighlighterGeometry, c color.NRGBA) {
	if g.Empty() || c.A == 0 {
		return
	}

	var b box
	for _, r := range g.Stamps {
		q := rectQuad(r)
		b.add(q[:]...)
	}
	for _, q := range g.Panels {
		b.add(q...)
	}
	l := s.newLayer(b.pixels(s.scale))
	defer l.release()

	ras := s.ras
	ras.Reset()
	for _, r := range g.Stamps {
		q := rectQuad(r)
		ras.AddPolygon(q[:]...)
		ras.Fill(raster.NonZero, l.cover)
	}
	for _, q := range g.Panels {
		ras.AddPolygon(q...)
		ras.Fill(raster.NonZero, l.cover)
	}
	l.composite(s.Image, c)
}

// PencilStyle controls the appearance of pencil stamps.
type PencilStyle struct {
	// Texture is the grain of the pencil. If nil, stamps are smooth.
	Texture *noise.Texture

	// NoisePhase is the range of the per-stamp offset into the texture.
	// Values below 2 disable the offset.
	NoisePhase int

	// RadialFalloff makes stamps fade from the centre to the edge.
	// Otherwise stamps are flat discs.
	RadialFalloff bool
}

// DrawPencil paints pencil stamps in color c.
// Every stamp is drawn into its own layer, which is then painted over
// the surface.
func (s *Surface) DrawPencil(g PencilGeometry, c color.NRGBA, style PencilStyle) {
	if c.A == 0 {
		return
	}

	ras := s.ras
	var row []float32
	for _, st := range g.Stamps {
		if !(st.Radius > 0) || !(st.Alpha > 0) {
			continue
		}
		center := st.Center.Mul(s.scale)
		radius := st.Radius * s.scale

		var b box
		b.add(st.Center.Sub(vec.Vec2{X: st.Radius, Y: st.Radius}),
			st.Center.Add(vec.Vec2{X: st.Radius, Y: st.Radius}))
		l := s.newLayer(b.pixels(s.scale))
		if l.mask.Rect.Empty() {
			l.release()
			continue
		}

		px, py := stampPhase(st.Center, style.NoisePhase)
		alpha := float32(st.Alpha)
		ras.Reset()
		ras.AddCircle(st.Center, st.Radius)
		ras.Fill(raster.NonZero, func(y, xMin int, coverage []float32) {
			row = row[:0]
			for k, cov := range coverage {
				x := xMin + k
				w := cov * alpha
				if style.RadialFalloff {
					d := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}.Sub(center).Length()
					w *= float32(max(0, 1-d/radius))
				}
				if style.Texture != nil {
					w *= float32(style.Texture.AlphaAt(x+px, y+py)) / 255
				}
				row = append(row, w)
			}
			l.cover(y, xMin, row)
		})
		l.composite(s.Image, c)
		l.release()
	}
}

// stampPhase returns a texture offset in [0, n) for a stamp at c.
// The offset only depends on the position of the stamp.
func stampPhase(c vec.Vec2, n int) (int, int) {
	if n < 2 {
		return 0, 0
	}
	h := math.Float64bits(c.X)*0x9e3779b97f4a7c15 ^ math.Float64bits(c.Y)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return int(h % uint64(n)), int((h >> 32) % uint64(n))
}

// ApplyOpacity scales the alpha of c by the opacity o.
// A nil opacity leaves c unchanged.
func ApplyOpacity(c color.NRGBA, o *float64) color.NRGBA {
	switch {
	case o == nil || *o >= 1 || *o != *o:
		return c
	case *o <= 0:
		c.A = 0
	default:
		c.A = uint8(clamp(math.Round(float64(c.A) * *o), 0, 255))
	}
	return c
}

// box is a bounding box in stroke coordinates.
type box struct {
	xMin, yMin, xMax, yMax float64
	ok                     bool
}

func (b *box) add(pts ...vec.Vec2) {
	for _, p := range pts {
		if !b.ok {
			b.xMin, b.xMax, b.yMin, b.yMax = p.X, p.X, p.Y, p.Y
			b.ok = true
			continue
		}
		b.xMin = min(b.xMin, p.X)
		b.xMax = max(b.xMax, p.X)
		b.yMin = min(b.yMin, p.Y)
		b.yMax = max(b.yMax, p.Y)
	}
}

// pixels returns the pixel rectangle covering the box at the given scale.
func (b *box) pixels(scale float64) image.Rectangle {
	if !b.ok {
		return image.Rectangle{}
	}
	return image.Rect(
		pixel(math.Floor(b.xMin*scale)), pixel(math.Floor(b.yMin*scale)),
		pixel(math.Ceil(b.xMax*scale))+1, pixel(math.Ceil(b.yMax*scale))+1,
	)
}

// pixel converts a whole number to int, saturating at ±2^30.
func pixel(x float64) int {
	const limit = 1 << 30
	switch {
	case x != x:
		return 0
	case x < -limit:
		return -limit
	case x > limit:
		return limit
	default:
		return int(x)
	}
}
