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

//go:generate go run ./testcases/export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/ink/noise"
)

// ErrInvalidSize is returned when an image with non-positive width or
// height is requested.
var ErrInvalidSize = errors.New("ink: invalid image size")

// Format is an output image format.
type Format int

// These are the supported output formats.
// All of them are lossless and keep the alpha channel.
const (
	PNG Format = iota
	TIFF
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name or file name extension, like "png"
// or ".tif", to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}
	return PNG, fmt.Errorf("unknown image format %q", s)
}

// FormatForFile returns the format matching the extension of a file name.
// Unknown extensions give PNG.
func FormatForFile(name string) Format {
	f, err := ParseFormat(filepath.Ext(name))
	if err != nil {
		return PNG
	}
	return f
}

// Renderer converts strokes into images.
//
// [NewRenderer] returns a Renderer with the recommended settings. In a
// Renderer created otherwise, zero values of Scale, NoiseSize,
// PencilDensity, HighlighterAspect and HighlighterAlphaCap select the
// same defaults. The remaining fields are used as given.
//
// Renderer fields must not be changed while a render call is in progress.
// Otherwise, a Renderer can be used concurrently.
type Renderer struct {
	// Scale is the number of pixels per stroke unit.
	Scale float64

	// Format is the encoding used by Render.
	Format Format

	// PNGCompression is the compression level for PNG output.
	PNGCompression png.CompressionLevel

	// NoiseSize is the edge length of the pencil grain texture in pixels.
	NoiseSize int

	// NoisePhase is the range of the per-stamp texture offset of
	// pencil stamps.
	NoisePhase int

	// PencilDensity is the spacing of pencil stamps, relative to the
	// stamp radius.
	PencilDensity float64

	// RadialFalloff makes pencil stamps fade towards their edge.
	RadialFalloff bool

	// HighlighterAspect is the ratio between height and width of the
	// highlighter tip, for strokes which do not specify their tip size.
	HighlighterAspect float64

	// HighlighterAlphaCap is the largest alpha value used for
	// highlighter ink.
	HighlighterAlphaCap uint8

	// Noise provides the pencil grain texture.
	// If nil, the process-wide [noise.Shared] cache is used.
	Noise *noise.Cache
}

// NewRenderer returns a Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{
		Scale:               1,
		Format:              PNG,
		PNGCompression:      png.DefaultCompression,
		NoiseSize:           noise.DefaultSize,
		NoisePhase:          defaultNoisePhase,
		PencilDensity:       DefaultPencilDensity,
		RadialFalloff:       true,
		HighlighterAspect:   DefaultHighlighterAspect,
		HighlighterAlphaCap: defaultHighlighterAlphaCap,
	}
}

// DefaultRenderer is the Renderer used by [Render].
var DefaultRenderer = NewRenderer()

// Render draws the strokes onto a width×height canvas using
// [DefaultRenderer] and returns the encoded image.
func Render(strokes []*Stroke, width, height int, bg color.Color) ([]byte, error) {
	return DefaultRenderer.Render(strokes, width, height, bg)
}

// Render draws the strokes onto a width×height canvas and returns the
// encoded image.
//
// The canvas is first filled with bg, or left transparent if bg is nil.
// The strokes are then drawn in order. Nil strokes and strokes without
// points are skipped.
//
// An error is returned only if width or height is not positive. If the
// image cannot be encoded, the failure is logged and an empty slice is
// returned.
func (r *Renderer) Render(strokes []*Stroke, width, height int, bg color.Color) ([]byte, error) {
	img, err := r.RenderImage(strokes, width, height, bg)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := r.Encode(buf, img); err != nil {
		Logger().Warn("image encoding failed",
			"format", r.Format, "width", width, "height", height, "error", err)
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}

// RenderImage is like [Renderer.Render], but returns the pixels instead
// of the encoded image.
func (r *Renderer) RenderImage(strokes []*Stroke, width, height int, bg color.Color) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cfg := r.withDefaults()
	s := NewSurface(width, height, cfg.Scale)
	s.Clear(bg)

	var tex *noise.Texture
	drawn := 0
	for i, st := range strokes {
		if st == nil || len(st.Points) == 0 {
			Logger().Debug("skipping empty stroke", "index", i)
			continue
		}

		switch st.Tool {
		case Highlighter:
			cfg.drawHighlighter(s, st)
		case Pencil:
			if tex == nil {
				tex = cfg.noise().Get(cfg.NoiseSize)
			}
			cfg.drawPencil(s, st, tex)
		default:
			cfg.drawPen(s, st)
		}
		drawn++
	}
	Logger().Debug("rendered strokes",
		"strokes", drawn, "skipped", len(strokes)-drawn,
		"width", width, "height", height)

	return s.Image, nil
}

// Encode writes img to w in the format selected by r.Format.
func (r *Renderer) Encode(w io.Writer, img image.Image) error {
	switch r.Format {
	case PNG:
		enc := &png.Encoder{CompressionLevel: r.PNGCompression}
		return enc.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{
			Compression: tiff.Deflate,
			Predictor:   true,
		})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %s", r.Format)
	}
}

// withDefaults returns a copy of r where unset fields are replaced by
// their defaults.
func (r *Renderer) withDefaults() *Renderer {
	cfg := *r
	if !(cfg.Scale > 0) {
		cfg.Scale = 1
	}
	if cfg.NoiseSize <= 0 {
		cfg.NoiseSize = noise.DefaultSize
	}
	if !(cfg.PencilDensity > 0) {
		cfg.PencilDensity = DefaultPencilDensity
	}
	if !(cfg.HighlighterAspect > 0) {
		cfg.HighlighterAspect = DefaultHighlighterAspect
	}
	if cfg.HighlighterAlphaCap == 0 {
		cfg.HighlighterAlphaCap = defaultHighlighterAlphaCap
	}
	return &cfg
}

func (r *Renderer) noise() *noise.Cache {
	if r.Noise != nil {
		return r.Noise
	}
	return noise.Shared
}

func (r *Renderer) drawPen(s *Surface, st *Stroke) {
	g := BuildPen(st.Points, coerceSize(st.Size))
	s.DrawPen(g, ApplyOpacity(st.Color, st.Opacity))
}

func (r *Renderer) drawHighlighter(s *Surface, st *Stroke) {
	c := st.Color
	c.A = min(c.A, r.HighlighterAlphaCap)
	c = ApplyOpacity(c, st.Opacity)

	base, aspect := st.HighlighterSize(r.HighlighterAspect)
	g := BuildHighlighter(st.Points, base, aspect)
	s.DrawHighlighter(g, c)
}

func (r *Renderer) drawPencil(s *Surface, st *Stroke, tex *noise.Texture) {
	g := BuildPencil(st.Points, coerceSize(st.Size), r.PencilDensity)
	s.DrawPencil(g, ApplyOpacity(st.Color, st.Opacity), PencilStyle{
		Texture:       tex,
		NoisePhase:    r.NoisePhase,
		RadialFalloff: r.RadialFalloff,
	})
}

const (
	defaultNoisePhase          = 16
	defaultHighlighterAlphaCap = 160
)
