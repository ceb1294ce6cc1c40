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

var highlighterCases = []TestCase{
	{
		Name:    "horizontal",
		Width:   96,
		Height:  48,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FFFFE000", 24, line(12, 24, 84, 24, 10, 0.5, 0.5))},
	},
	{
		Name:    "vertical",
		Width:   48,
		Height:  96,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FFFFE000", 24, line(24, 12, 24, 84, 10, 0.5, 0.5))},
	},
	{
		Name:    "diagonal",
		Width:   96,
		Height:  96,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FF00C0FF", 24, line(16, 80, 80, 16, 12, 0.8, 0.8))},
	},
	{
		Name:    "stationary",
		Width:   48,
		Height:  48,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FFFF40A0", 24, jitter(24, 24, 0.1, 5, 0.5))},
	},
	{
		Name:   "back_and_forth",
		Width:  96,
		Height: 48,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FFFFE000", 24,
			polyline(0.5, 12, 24, 84, 24, 12, 26, 84, 26))},
	},
	{
		Name:    "pressure_ramp",
		Width:   128,
		Height:  64,
		Strokes: []*ink.Stroke{stroke(ink.Highlighter, "#FF80FF00", 24, line(8, 32, 120, 32, 20, 0, 1))},
	},
	{
		Name:    "explicit_tip",
		Width:   96,
		Height:  64,
		Strokes: []*ink.Stroke{withTip(stroke(ink.Highlighter, "#FFFFE000", 2, wave(12, 84, 32, 10, 72, 24, 0.5)), 4, 20)},
	},
	{
		Name:    "half_opacity",
		Width:   96,
		Height:  48,
		Strokes: []*ink.Stroke{withOpacity(stroke(ink.Highlighter, "#FFFF0000", 16, line(12, 24, 84, 24, 8, 1, 1)), 0.5)},
	},
}

func withTip(s *ink.Stroke, w, h float64) *ink.Stroke {
	s.SizeWidth = &w
	s.SizeHeight = &h
	return s
}

func withOpacity(s *ink.Stroke, o float64) *ink.Stroke {
	s.Opacity = &o
	return s
}
