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
	"sync"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/ink/raster"
)

// Surface is the pixel buffer a render call draws onto.
// Stroke coordinates are multiplied by the scale factor to obtain pixel
// coordinates.
type Surface struct {
	Image *image.RGBA

	scale float64
	ras   *raster.Rasterizer
}

// NewSurface allocates a transparent surface of the given size in pixels.
func NewSurface(width, height int, scale float64) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	ras := raster.NewRasterizer(rect.Rect{
		URx: float64(width),
		URy: float64(height),
	})
	ras.CTM = matrix.Scale(scale, scale)
	return &Surface{Image: img, scale: scale, ras: ras}
}

// Clear sets every pixel to bg. A nil color clears to transparent.
func (s *Surface) Clear(bg color.Color) {
	if bg == nil {
		clear(s.Image.Pix)
		return
	}
	draw.Draw(s.Image, s.Image.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
}

// blend returns an emit function which paints c over the surface,
// weighted by the coverage values.
func (s *Surface) blend(c color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := c.RGBA()
	img := s.Image
	return func(y, xMin int, coverage []float32) {
		i := img.PixOffset(xMin, y)
		for _, cov := range coverage {
			m := uint32(cov*0xffff + 0.5)
			a := (0xffff - sa*m/0xffff) * 0x101
			pix := img.Pix[i : i+4 : i+4]
			pix[0] = uint8((uint32(pix[0])*a + sr*m) / 0xffff >> 8)
			pix[1] = uint8((uint32(pix[1])*a + sg*m) / 0xffff >> 8)
			pix[2] = uint8((uint32(pix[2])*a + sb*m) / 0xffff >> 8)
			pix[3] = uint8((uint32(pix[3])*a + sa*m) / 0xffff >> 8)
			i += 4
		}
	}
}

// layer is a temporary alpha buffer covering part of a surface.
// Layers are obtained with [Surface.newLayer] and must be released
// after use.
type layer struct {
	mask *image.Alpha
}

var layerPool = sync.Pool{
	New: func() any { return &layer{mask: &image.Alpha{}} },
}

// newLayer returns a transparent layer covering r, clipped to the
// surface.
func (s *Surface) newLayer(r image.Rectangle) *layer {
	r = r.Intersect(s.Image.Rect)
	l := layerPool.Get().(*layer)
	n := r.Dx() * r.Dy()
	if cap(l.mask.Pix) < n {
		l.mask.Pix = make([]uint8, n)
	} else {
		l.mask.Pix = l.mask.Pix[:n]
		clear(l.mask.Pix)
	}
	l.mask.Stride = r.Dx()
	l.mask.Rect = r
	return l
}

// release returns the layer to the pool. The layer must not be used
// afterwards.
func (l *layer) release() {
	layerPool.Put(l)
}

// cover writes coverage values into the layer. Existing values are only
// replaced by larger ones, so overlapping shapes do not accumulate.
func (l *layer) cover(y, xMin int, coverage []float32) {
	m := l.mask
	if y < m.Rect.Min.Y || y >= m.Rect.Max.Y {
		return
	}
	for k, cov := range coverage {
		x := xMin + k
		if x < m.Rect.Min.X || x >= m.Rect.Max.X {
			continue
		}
		i := m.PixOffset(x, y)
		if a := uint8(cov*255 + 0.5); a > m.Pix[i] {
			m.Pix[i] = a
		}
	}
}

// composite paints c over dst, using the layer as a mask.
func (l *layer) composite(dst *image.RGBA, c color.Color) {
	r := l.mask.Rect
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(c), image.Point{}, l.mask, r.Min, draw.Over)
}
