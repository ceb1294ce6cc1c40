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
	"encoding/json"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"seehuhn.de/go/geom/rect"
)

func TestParseTool(t *testing.T) {
	cases := map[string]Tool{
		"pen":           Pen,
		"highlighter":   Highlighter,
		" HighLighter ": Highlighter,
		"PENCIL":        Pencil,
		"":              Pen,
		"marker":        Pen,
		"ballpoint":     Pen,
	}
	for in, want := range cases {
		test.T(t, ParseTool(in), want, in)
	}
}

func TestToolText(t *testing.T) {
	for _, tool := range []Tool{Pen, Highlighter, Pencil} {
		text, err := tool.MarshalText()
		test.Error(t, err)

		var back Tool
		test.Error(t, back.UnmarshalText(text))
		test.T(t, back, tool)
	}
	test.T(t, Tool(7).String(), "Tool(7)")
}

func TestPointDefaultPressure(t *testing.T) {
	var p Point
	test.Error(t, json.Unmarshal([]byte(`{"x": 1.5, "y": -2, "t": 40}`), &p))
	test.T(t, p, Point{X: 1.5, Y: -2, Pressure: 1, T: 40})

	test.Error(t, json.Unmarshal([]byte(`{"x": 1, "y": 2, "pr": 0}`), &p))
	test.T(t, p, Point{X: 1, Y: 2, Pressure: 0})
}

func TestStrokeDecode(t *testing.T) {
	in := `{
		"id": "abc",
		"tool": "Highlighter",
		"color": "#80FFFF00",
		"size": 12,
		"opacity": 0.5,
		"deviceKind": "pen",
		"sizeWidth": 4,
		"sizeHeight": 16,
		"points": [{"x": 1, "y": 2, "pr": 0.25, "t": 0}, null, {"x": 3, "y": 4}]
	}`
	var s Stroke
	test.Error(t, json.Unmarshal([]byte(in), &s))
	test.T(t, s.ID, "abc")
	test.T(t, s.Tool, Highlighter)
	test.T(t, s.Color, color.NRGBA{R: 255, G: 255, B: 0, A: 128})
	test.Float(t, s.Size, 12)
	test.Float(t, *s.Opacity, 0.5)
	test.T(t, s.DeviceKind, "pen")
	test.Float(t, *s.SizeWidth, 4)
	test.Float(t, *s.SizeHeight, 16)
	test.T(t, len(s.Points), 3)
	test.That(t, s.Points[1] == nil, "null point not decoded as nil")
	test.Float(t, s.Points[2].Pressure, 1)
}

func TestStrokeDecodeDefaults(t *testing.T) {
	var s Stroke
	test.Error(t, json.Unmarshal([]byte(`{"points": []}`), &s))
	test.T(t, s.Tool, Pen)
	test.T(t, s.Color, color.NRGBA{A: 255})
	test.Float(t, s.Size, DefaultSize)
	test.That(t, s.Opacity == nil)

	test.Error(t, json.Unmarshal([]byte(`{"tool": "crayon", "color": "notacolor", "size": -3}`), &s))
	test.T(t, s.Tool, Pen)
	test.T(t, s.Color, color.NRGBA{A: 255})
	test.Float(t, s.Size, DefaultSize)
}

func TestStrokeRoundTrip(t *testing.T) {
	o := 0.75
	s := NewStroke(Pencil, "#FF102030", 3, &Point{X: 1, Y: 2, Pressure: 0.5, T: 16})
	s.ID = "x1"
	s.Opacity = &o

	data, err := json.Marshal(s)
	test.Error(t, err)
	test.That(t, strings.Contains(string(data), `"tool":"pencil"`), string(data))
	test.That(t, strings.Contains(string(data), `"color":"#FF102030"`), string(data))

	var back Stroke
	test.Error(t, json.Unmarshal(data, &back))
	test.T(t, &back, s)
}

func TestNewStroke(t *testing.T) {
	s := NewStroke(Pen, "bogus", 0)
	test.T(t, s.Color, color.NRGBA{A: 255})
	test.Float(t, s.Size, DefaultSize)

	test.Float(t, NewStroke(Pen, "", math.NaN()).Size, DefaultSize)
	test.Float(t, NewStroke(Pen, "", math.Inf(1)).Size, DefaultSize)
	test.Float(t, NewStroke(Pen, "", 0.3).Size, 0.3)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#FF00FF00")
	test.That(t, ok)
	test.T(t, c, color.NRGBA{G: 255, A: 255})

	c, ok = ParseColor("  #7fabcdef\n")
	test.That(t, ok)
	test.T(t, c, color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0x7f})

	for _, bad := range []string{"", "notacolor", "#FFF", "#FF00FF0", "FF00FF00F", "#GG000000", "#FF00FF000"} {
		_, ok := ParseColor(bad)
		test.That(t, !ok, bad)
		test.T(t, ColorOrBlack(bad), color.NRGBA{A: 255}, bad)
	}

	test.T(t, FormatColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}), "#04010203")
}

func TestDecodeDocument(t *testing.T) {
	in := `{"strokes": [
		{"tool": "pen", "color": "#FF0000FF", "size": 2, "points": [{"x": 0, "y": 0}]},
		null
	]}`
	doc, err := DecodeDocument(strings.NewReader(in))
	test.Error(t, err)
	test.T(t, doc.Model, "stroke-v1")
	test.T(t, doc.Units, "dip")
	test.T(t, len(doc.Strokes), 2)
	test.T(t, doc.Strokes[0].Color, color.NRGBA{B: 255, A: 255})
	test.That(t, doc.Strokes[1] == nil)

	_, err = DecodeDocument(strings.NewReader(`{"strokes": [`))
	test.That(t, err != nil, "truncated document accepted")
}

func TestStrokeBounds(t *testing.T) {
	s := NewStroke(Pen, "", 2, &Point{X: 3, Y: 9}, nil, &Point{X: -1, Y: 4}, &Point{X: 7, Y: 5})
	test.T(t, s.Bounds(), rect.Rect{LLx: -1, LLy: 4, URx: 7, URy: 9})
	test.T(t, NewStroke(Pen, "", 2).Bounds(), rect.Rect{})
}
