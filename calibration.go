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

import "seehuhn.de/go/ink/pchip"

// PenWidthTable maps pressure to a pen width factor.
// The values sample 1 + 0.7·p^1.35.
var PenWidthTable = pchip.Table{
	{X: 0.0, Y: 1.0},
	{X: 0.1, Y: 1.0312678514505673},
	{X: 0.2, Y: 1.0797055447195214},
	{X: 0.3, Y: 1.1377881070812068},
	{X: 0.4, Y: 1.2031790981570734},
	{X: 0.5, Y: 1.2746044342638627},
	{X: 0.6, Y: 1.351238592397113},
	{X: 0.7, Y: 1.432494305895667},
	{X: 0.8, Y: 1.5179281576104828},
	{X: 0.9, Y: 1.6071911427312848},
	{X: 1.0, Y: 1.7},
}

// HighlighterHeightTable maps pressure to the height of a highlighter
// stamp, relative to the base size. The values are measured heights in
// pixels for a 24 pixel tip.
var HighlighterHeightTable = pchip.Table{
	{X: 0.01, Y: 5.0 / 24},
	{X: 0.05, Y: 6.0 / 24},
	{X: 0.10, Y: 8.0 / 24},
	{X: 0.20, Y: 12.0 / 24},
	{X: 0.30, Y: 16.0 / 24},
	{X: 0.40, Y: 20.0 / 24},
	{X: 0.50, Y: 24.0 / 24},
	{X: 0.60, Y: 26.0 / 24},
	{X: 0.70, Y: 30.0 / 24},
	{X: 0.80, Y: 34.0 / 24},
	{X: 0.90, Y: 38.0 / 24},
	{X: 1.00, Y: 38.0 / 24},
}

// PencilDiameterTable maps pressure to the diameter of a pencil stamp,
// relative to the base size.
var PencilDiameterTable = pchip.Table{
	{X: 0.0, Y: 0.45},
	{X: 0.1, Y: 0.5},
	{X: 0.25, Y: 0.62},
	{X: 0.5, Y: 0.8},
	{X: 0.75, Y: 0.93},
	{X: 1.0, Y: 1.0},
}

var (
	penCurve         = pchip.NewCurve(PenWidthTable)
	highlighterCurve = pchip.NewCurve(HighlighterHeightTable)
	pencilCurve      = pchip.NewCurve(PencilDiameterTable)
)

// clampPressure limits p to [0, 1]. NaN is treated as full pressure,
// like a point without pressure information.
func clampPressure(p float64) float64 {
	switch {
	case p != p:
		return 1
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
