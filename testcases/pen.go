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

package testcases

import (
	"seehuhn.de/go/ink"
)

var penCases = []TestCase{
	{
		Name:    "line_half_pressure",
		Width:   64,
		Height:  32,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 2, line(8, 16, 56, 16, 2, 0.5, 0.5))},
	},
	{
		Name:    "line_full_pressure",
		Width:   64,
		Height:  32,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 6, line(8, 16, 56, 16, 2, 1, 1))},
	},
	{
		Name:    "pressure_ramp",
		Width:   128,
		Height:  32,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF1030C0", 6, line(8, 16, 120, 16, 30, 0, 1))},
	},
	{
		Name:    "tapered_diagonal",
		Width:   64,
		Height:  64,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 5, line(6, 58, 58, 6, 12, 0.7, 0.7))},
	},
	{
		Name:    "dot",
		Width:   32,
		Height:  32,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 8, line(16, 16, 16, 16, 1, 1, 1))},
	},
	{
		Name:    "dot_subpixel",
		Width:   16,
		Height:  16,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 1, line(7.3, 8.6, 7.3, 8.6, 1, 0.5, 0.5))},
	},
	{
		Name:    "wave",
		Width:   128,
		Height:  64,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF006000", 3, wave(8, 120, 32, 20, 56, 60, 0.6))},
	},
	{
		Name:    "circle",
		Width:   64,
		Height:  64,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF800000", 3, arc(32, 32, 22, 0, 360, 48, 0.8))},
	},
	{
		Name:   "zigzag",
		Width:  96,
		Height: 48,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 4,
			polyline(0.5, 8, 40, 24, 8, 40, 40, 56, 8, 72, 40, 88, 8))},
	},
	{
		Name:   "hairpin",
		Width:  64,
		Height: 32,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#FF000000", 4,
			polyline(0.5, 8, 12, 56, 12, 8, 20, 56, 20))},
	},
	{
		Name:   "translucent_overlap",
		Width:  64,
		Height: 64,
		Strokes: []*ink.Stroke{stroke(ink.Pen, "#800000FF", 10,
			polyline(1, 8, 32, 56, 32, 32, 8, 32, 56))},
	},
	{
		Name:       "white_background",
		Width:      64,
		Height:     32,
		Background: ink.ColorOrBlack("#FFFFFFFF"),
		Strokes:    []*ink.Stroke{stroke(ink.Pen, "#FF202020", 3, wave(4, 60, 16, 8, 30, 30, 0.4))},
	},
}
