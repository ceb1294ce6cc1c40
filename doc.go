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

// Package ink renders freehand ink strokes into raster images.
//
// A [Stroke] is a sequence of pen positions with per-point pressure,
// drawn with one of three tools:
//
//   - [Pen] draws solid lines whose width follows the pressure.
//   - [Highlighter] draws translucent, rectangular ink. Overlapping parts
//     of one stroke do not darken each other.
//   - [Pencil] draws a grainy line from many small textured stamps.
//
// Pressure is mapped to geometry by monotone cubic interpolation over
// calibration tables (see [PenWidthTable], [HighlighterHeightTable] and
// [PencilDiameterTable]). The first and last segments of pen and
// highlighter strokes are tapered.
//
// Rendering is deterministic: the same strokes, canvas size and
// [Renderer] settings always give the same pixels.
//
// Basic usage:
//
//	doc, err := ink.DecodeDocument(r)
//	if err != nil {
//		return err
//	}
//	data, err := ink.Render(doc.Strokes, 800, 600, color.White)
package ink
