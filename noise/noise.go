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

// Package noise generates the tileable alpha texture used as the grain of
// the pencil brush.
//
// The texture is a mosaic: the square is divided into blocks of
// [BlockSize] pixels and every block carries one quantized alpha level.
// Levels are drawn from a fixed-seed PCG generator, so the same size always
// gives the same pixels, on every platform.
package noise

import (
	"image"
	"math"
	"math/rand/v2"
	"sync"

	"golang.org/x/image/draw"
)

// Texture parameters.
const (
	// DefaultSize is the edge length used by the renderer.
	DefaultSize = 128

	// MinSize and MaxSize bound the accepted edge length.
	MinSize = 8
	MaxSize = 256

	// DefaultSeed seeds the generator.
	DefaultSeed = 1337

	// BlockSize is the edge length of one mosaic block in texture pixels.
	BlockSize = 6

	// levels is the number of distinct alpha values.
	levels = 8

	// bias skews the level distribution towards low alpha.
	bias = 1.2
)

// Texture is a square alpha-only image. A Texture is never modified after
// creation and may be shared freely between goroutines.
type Texture struct {
	Size int
	Pix  []uint8 // row-major, Size*Size bytes
}

// ClampSize restricts size to [MinSize, MaxSize].
func ClampSize(size int) int {
	return min(max(size, MinSize), MaxSize)
}

// Generate builds a texture of the given edge length (clamped with
// [ClampSize]) from seed.
func Generate(size int, seed uint64) *Texture {
	size = ClampSize(size)
	tex := &Texture{
		Size: size,
		Pix:  make([]uint8, size*size),
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for by := 0; by < size; by += BlockSize {
		for bx := 0; bx < size; bx += BlockSize {
			a := level(rng.Float64())

			yMax := min(size, by+BlockSize)
			xMax := min(size, bx+BlockSize)
			for y := by; y < yMax; y++ {
				row := tex.Pix[y*size : (y+1)*size]
				for x := bx; x < xMax; x++ {
					row[x] = a
				}
			}
		}
	}
	return tex
}

// level maps a uniform sample in [0, 1) to one of the quantized alpha values.
func level(r float64) uint8 {
	v := math.Pow(r, bias)
	q := math.Round(v*(levels-1)) / (levels - 1)
	return uint8(min(max(math.Round(q*255), 0), 255))
}

// AlphaAt returns the texel at (x, y). Coordinates wrap around, so the
// texture tiles the plane.
func (t *Texture) AlphaAt(x, y int) uint8 {
	n := t.Size
	x %= n
	if x < 0 {
		x += n
	}
	y %= n
	if y < 0 {
		y += n
	}
	return t.Pix[y*n+x]
}

// Image returns a copy of the texture as an [image.Alpha].
func (t *Texture) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, t.Size, t.Size))
	copy(img.Pix, t.Pix)
	return img
}

// Upscale returns an opaque grayscale view of the texture, enlarged by
// factor with nearest-neighbour sampling, for inspection. Transparent
// texels are white and opaque texels black.
func (t *Texture) Upscale(factor int) *image.Gray {
	factor = max(factor, 1)
	src := image.NewGray(image.Rect(0, 0, t.Size, t.Size))
	for i, a := range t.Pix {
		src.Pix[i] = 255 - a
	}
	n := t.Size * factor
	dst := image.NewGray(image.Rect(0, 0, n, n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Cache holds at most one texture. It is safe for concurrent use.
//
// Textures handed out by the cache are immutable; replacing the cached
// texture never affects callers still holding the previous one.
type Cache struct {
	Seed uint64

	mu         sync.Mutex
	tex        *Texture
	generation uint64
}

// NewCache returns an empty cache generating textures from seed.
func NewCache(seed uint64) *Cache {
	return &Cache{Seed: seed}
}

// Shared is the process-wide cache used by the renderer.
var Shared = NewCache(DefaultSeed)

// Get returns the cached texture if its size matches, and otherwise
// generates, caches and returns a new one.
func (c *Cache) Get(size int) *Texture {
	size = ClampSize(size)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tex != nil && c.tex.Size == size {
		return c.tex
	}
	c.tex = Generate(size, c.Seed)
	c.generation++
	return c.tex
}

// Clear drops the cached texture. The next Get regenerates it.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.tex = nil
	c.mu.Unlock()
}

// Generation counts how many textures the cache has generated.
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}
