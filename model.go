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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// DefaultSize is the base size used for strokes without a valid size.
const DefaultSize = 2.0

// Tool selects how a stroke is drawn.
type Tool int

// These are the supported drawing tools.
const (
	Pen Tool = iota
	Highlighter
	Pencil
)

// ParseTool converts a tool name to a Tool. The comparison ignores case
// and surrounding white space. Unknown names map to [Pen].
func ParseTool(s string) Tool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highlighter":
		return Highlighter
	case "pencil":
		return Pencil
	default:
		return Pen
	}
}

func (t Tool) String() string {
	switch t {
	case Highlighter:
		return "highlighter"
	case Pencil:
		return "pencil"
	case Pen:
		return "pen"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (t Tool) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Unknown tool names decode to [Pen].
func (t *Tool) UnmarshalText(text []byte) error {
	*t = ParseTool(string(text))
	return nil
}

// Point is one sample of a stroke.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Pressure is nominally in [0, 1]. Values outside this range are
	// clamped when the point is drawn.
	Pressure float64 `json:"pr"`

	// T is the time in milliseconds, relative to the start of the stroke.
	T int `json:"t"`
}

// UnmarshalJSON implements [json.Unmarshaler].
// A missing pressure value decodes as 1.
func (p *Point) UnmarshalJSON(data []byte) error {
	type plain Point
	v := plain{Pressure: 1}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point(v)
	return nil
}

// Stroke is one continuous line drawn with a single tool.
type Stroke struct {
	ID    string
	Tool  Tool
	Color color.NRGBA

	// Size is the base size of the tool in canvas units.
	Size float64

	// Opacity, if set, scales the alpha of Color.
	Opacity *float64

	DeviceKind string

	// SizeWidth and SizeHeight optionally give the footprint of a
	// highlighter tip. If both are set, they determine the aspect ratio
	// of the highlighter rectangles, and SizeHeight replaces Size.
	SizeWidth, SizeHeight *float64

	// Points holds the samples of the stroke. Nil entries are ignored.
	Points []*Point
}

// NewStroke returns a stroke with the given tool and points.
// Invalid colors are replaced by opaque black, and sizes which are not
// positive and finite are replaced by [DefaultSize].
func NewStroke(tool Tool, hexColor string, size float64, pts ...*Point) *Stroke {
	return &Stroke{
		Tool:   tool,
		Color:  ColorOrBlack(hexColor),
		Size:   coerceSize(size),
		Points: pts,
	}
}

func coerceSize(size float64) float64 {
	if !(size > 0) || math.IsInf(size, 1) {
		return DefaultSize
	}
	return size
}

// Bounds returns the smallest rectangle containing all points of the
// stroke. The result is the zero rectangle if the stroke has no points.
func (s *Stroke) Bounds() rect.Rect {
	var b rect.Rect
	first := true
	for _, p := range s.Points {
		if p == nil {
			continue
		}
		if first {
			b = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
			first = false
			continue
		}
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

type strokeJSON struct {
	ID         string   `json:"id,omitempty"`
	Tool       Tool     `json:"tool"`
	Color      string   `json:"color"`
	Size       float64  `json:"size"`
	Opacity    *float64 `json:"opacity,omitempty"`
	DeviceKind string   `json:"deviceKind,omitempty"`
	SizeWidth  *float64 `json:"sizeWidth,omitempty"`
	SizeHeight *float64 `json:"sizeHeight,omitempty"`
	Points     []*Point `json:"points"`
}

// MarshalJSON implements [json.Marshaler].
func (s *Stroke) MarshalJSON() ([]byte, error) {
	pts := s.Points
	if pts == nil {
		pts = []*Point{}
	}
	return json.Marshal(&strokeJSON{
		ID:         s.ID,
		Tool:       s.Tool,
		Color:      FormatColor(s.Color),
		Size:       s.Size,
		Opacity:    s.Opacity,
		DeviceKind: s.DeviceKind,
		SizeWidth:  s.SizeWidth,
		SizeHeight: s.SizeHeight,
		Points:     pts,
	})
}

// UnmarshalJSON implements [json.Unmarshaler].
// Missing or invalid colors and sizes are replaced as in [NewStroke].
func (s *Stroke) UnmarshalJSON(data []byte) error {
	v := strokeJSON{Color: "#FF000000", Size: DefaultSize}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Stroke{
		ID:         v.ID,
		Tool:       v.Tool,
		Color:      ColorOrBlack(v.Color),
		Size:       coerceSize(v.Size),
		Opacity:    v.Opacity,
		DeviceKind: v.DeviceKind,
		SizeWidth:  v.SizeWidth,
		SizeHeight: v.SizeHeight,
		Points:     v.Points,
	}
	return nil
}

// Document is a collection of strokes, in drawing order.
type Document struct {
	Model string `json:"model"`
	Units string `json:"units"`

	// Width and Height optionally give the size of the canvas the
	// strokes were drawn on.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	Strokes []*Stroke `json:"strokes"`
}

// DecodeDocument reads a JSON stroke document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	doc := &Document{Model: "stroke-v1", Units: "dip"}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode stroke document: %w", err)
	}
	return doc, nil
}

// ParseColor parses a color in the form "#AARRGGBB".
// Surrounding white space is ignored.
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 9 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{A: b[0], R: b[1], G: b[2], B: b[3]}, true
}

// ColorOrBlack is like [ParseColor], but returns opaque black for
// strings which cannot be parsed.
func ColorOrBlack(s string) color.NRGBA {
	c, ok := ParseColor(s)
	if !ok {
		return color.NRGBA{A: 255}
	}
	return c
}

// FormatColor formats c as "#AARRGGBB".
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
