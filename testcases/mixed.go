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

var mixedCases = []TestCase{
	{
		// later strokes are drawn over earlier ones
		Name:   "highlight_over_ink",
		Width:  128,
		Height: 64,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 2, wave(8, 120, 32, 10, 40, 60, 0.5)),
			stroke(ink.Highlighter, "#FFFFE000", 24, line(8, 32, 120, 32, 8, 0.5, 0.5)),
		},
	},
	{
		Name:   "ink_over_highlight",
		Width:  128,
		Height: 64,
		Strokes: []*ink.Stroke{
			stroke(ink.Highlighter, "#FFFFE000", 24, line(8, 32, 120, 32, 8, 0.5, 0.5)),
			stroke(ink.Pen, "#FF000000", 2, wave(8, 120, 32, 10, 40, 60, 0.5)),
		},
	},
	{
		// two highlighter strokes darken each other, a single one does not
		Name:   "crossing_highlighters",
		Width:  96,
		Height: 96,
		Strokes: []*ink.Stroke{
			stroke(ink.Highlighter, "#FF00C0FF", 20, line(8, 48, 88, 48, 6, 0.5, 0.5)),
			stroke(ink.Highlighter, "#FF00C0FF", 20, line(48, 8, 48, 88, 6, 0.5, 0.5)),
		},
	},
	{
		Name:   "all_tools",
		Width:  128,
		Height: 96,
		Strokes: []*ink.Stroke{
			stroke(ink.Pencil, "#FF404040", 8, line(10, 20, 118, 20, 10, 0.6, 0.6)),
			stroke(ink.Pen, "#FF0000C0", 3, line(10, 48, 118, 48, 10, 0.6, 0.6)),
			stroke(ink.Highlighter, "#FFFF8000", 16, line(10, 76, 118, 76, 10, 0.6, 0.6)),
		},
	},
	{
		Name:   "scaled",
		Width:  128,
		Height: 128,
		Scale:  2,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 2, arc(32, 32, 20, 0, 270, 30, 0.5)),
			stroke(ink.Highlighter, "#FFFFE000", 8, line(12, 32, 52, 32, 5, 0.5, 0.5)),
		},
	},
	{
		Name:   "downscaled",
		Width:  64,
		Height: 64,
		Scale:  0.5,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 4, wave(10, 118, 64, 40, 100, 50, 0.8)),
		},
	},
	{
		Name:   "large",
		Width:  640,
		Height: 480,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 3, wave(20, 620, 120, 80, 150, 200, 0.6)),
			stroke(ink.Highlighter, "#FFFFE000", 30, line(20, 240, 620, 240, 40, 0.7, 0.7)),
			stroke(ink.Pencil, "#FF505050", 6, wave(20, 620, 360, 60, 200, 120, 0.8)),
		},
	},
}
