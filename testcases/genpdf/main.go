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

// Command genpdf generates cross-check images for the pen and highlighter
// geometry. For every test scene it writes a PDF in which the stroke
// geometry is painted in white on black, using PDF line caps and joins
// for the pen, and renders it to a grayscale PNG using Ghostscript.
// The gray values of the result are the coverage of the geometry, as
// computed by an independent rasterizer.
//
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/testcases"
)

const outDir = "testdata/crosscheck"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			strokes := tc.Coverage()
			if len(strokes) == 0 {
				continue
			}

			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, strokes, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, strokes []*ink.Stroke, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; strokes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.Scale != 0 && tc.Scale != 1 {
		page.Transform(matrix.Scale(tc.Scale, tc.Scale))
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// circle appends a circle made of four cubic Bézier curves.
	circle := func(c vec.Vec2, r float64) {
		k := 4 * (math.Sqrt2 - 1) / 3 * r
		page.MoveTo(c.X+r, c.Y)
		page.CurveTo(c.X+r, c.Y+k, c.X+k, c.Y+r, c.X, c.Y+r)
		page.CurveTo(c.X-k, c.Y+r, c.X-r, c.Y+k, c.X-r, c.Y)
		page.CurveTo(c.X-r, c.Y-k, c.X-k, c.Y-r, c.X, c.Y-r)
		page.CurveTo(c.X+k, c.Y-r, c.X+r, c.Y-k, c.X+r, c.Y)
		page.ClosePath()
	}

	r := tc.Renderer()
	for _, s := range strokes {
		switch s.Tool {
		case ink.Highlighter:
			base, aspect := s.HighlighterSize(r.HighlighterAspect)
			g := ink.BuildHighlighter(s.Points, base, aspect)
			if g.Empty() {
				continue
			}
			for _, b := range g.Stamps {
				page.Rectangle(b.LLx, b.LLy, b.URx-b.LLx, b.URy-b.LLy)
			}
			for _, q := range g.Panels {
				page.MoveTo(q[0].X, q[0].Y)
				for _, p := range q[1:] {
					page.LineTo(p.X, p.Y)
				}
				page.ClosePath()
			}
			page.Fill()

		default:
			g := ink.BuildPen(s.Points, s.Size)
			if g.Dot != nil {
				circle(g.Dot.Center, g.Dot.Radius)
				page.Fill()
			}
			for _, seg := range g.Segments {
				page.SetLineWidth(seg.Width)
				page.MoveTo(seg.A.X, seg.A.Y)
				page.LineTo(seg.B.X, seg.B.Y)
				page.Stroke()
			}
		}
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
