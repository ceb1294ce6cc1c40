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

var edgeCases = []TestCase{
	{
		Name:   "off_canvas",
		Width:  64,
		Height: 64,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 6, line(-30, 10, 94, 54, 10, 1, 1)),
			stroke(ink.Highlighter, "#FFFFE000", 24, line(-20, 40, 20, 80, 5, 0.5, 0.5)),
			stroke(ink.Pencil, "#FF000000", 10, line(70, -10, 40, 30, 5, 1, 1)),
		},
	},
	{
		Name:   "out_of_range_pressure",
		Width:  64,
		Height: 48,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 3, line(8, 16, 56, 16, 6, -2, -2)),
			stroke(ink.Pen, "#FF000000", 3, line(8, 32, 56, 32, 6, 5, 5)),
		},
	},
	{
		Name:   "nil_points",
		Width:  64,
		Height: 32,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 3, withGaps(line(8, 16, 56, 16, 8, 0.5, 0.5))),
			nil,
			stroke(ink.Pen, "#FF000000", 3, nil),
		},
	},
	{
		Name:   "bad_color",
		Width:  64,
		Height: 32,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "notacolor", 3, line(8, 16, 56, 16, 4, 0.5, 0.5)),
		},
	},
	{
		Name:   "invisible",
		Width:  32,
		Height: 32,
		Strokes: []*ink.Stroke{
			withOpacity(stroke(ink.Pen, "#FF000000", 6, line(4, 16, 28, 16, 4, 1, 1)), 0),
			withOpacity(stroke(ink.Highlighter, "#FFFFE000", 12, line(4, 16, 28, 16, 4, 1, 1)), 0),
			withOpacity(stroke(ink.Pencil, "#FF000000", 6, line(4, 16, 28, 16, 4, 1, 1)), 0),
		},
	},
	{
		Name:   "subpixel_width",
		Width:  32,
		Height: 32,
		Strokes: []*ink.Stroke{
			stroke(ink.Pen, "#FF000000", 0.2, line(4, 4, 28, 28, 6, 0, 0)),
			stroke(ink.Highlighter, "#FF0000FF", 0.2, line(4, 28, 28, 4, 6, 0, 0)),
		},
	},
}

// withGaps replaces every third point by nil.
func withGaps(pts []*ink.Point) []*ink.Point {
	for i := 2; i < len(pts); i += 3 {
		pts[i] = nil
	}
	return pts
}
