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

var pencilCases = []TestCase{
	{
		Name:    "line",
		Width:   128,
		Height:  48,
		Strokes: []*ink.Stroke{stroke(ink.Pencil, "#FF303030", 12, line(10, 24, 118, 24, 2, 1, 1))},
	},
	{
		Name:    "pressure_ramp",
		Width:   128,
		Height:  48,
		Strokes: []*ink.Stroke{stroke(ink.Pencil, "#FF303030", 16, line(10, 24, 118, 24, 25, 0, 1))},
	},
	{
		Name:    "wave",
		Width:   128,
		Height:  64,
		Strokes: []*ink.Stroke{stroke(ink.Pencil, "#FF204080", 6, wave(8, 120, 32, 18, 64, 80, 0.7))},
	},
	{
		Name:    "dots",
		Width:   64,
		Height:  32,
		Strokes: []*ink.Stroke{stroke(ink.Pencil, "#FF000000", 14, jitter(32, 16, 0.1, 4, 1))},
	},
	{
		Name:   "corner",
		Width:  64,
		Height: 64,
		Strokes: []*ink.Stroke{stroke(ink.Pencil, "#FF000000", 8,
			polyline(0.8, 10, 54, 32, 10, 54, 54))},
	},
	{
		Name:       "on_paper",
		Width:      96,
		Height:     48,
		Background: ink.ColorOrBlack("#FFF8F4E8"),
		Strokes:    []*ink.Stroke{stroke(ink.Pencil, "#FF404040", 10, arc(48, 48, 36, 200, 340, 40, 0.6))},
	},
}
