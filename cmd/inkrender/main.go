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

// Inkrender converts JSON stroke documents into images.
//
// Usage:
//
//	inkrender [options] doc.json...
//
// Every input file doc.json is written to doc.png (or the extension
// selected by -f) in the output directory.
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/noise"
)

type Render struct {
	Width      int      `short:"W" desc:"Canvas width in stroke units (default: from document)"`
	Height     int      `short:"H" desc:"Canvas height in stroke units (default: from document)"`
	Margin     float64  `short:"m" default:"8" desc:"Margin around the strokes, if the size is not known"`
	Scale      float64  `short:"s" default:"1" desc:"Pixels per stroke unit"`
	Format     string   `short:"f" default:"png" desc:"Output format: png, tiff or bmp"`
	Background string   `short:"b" desc:"Background color as #AARRGGBB (default: transparent)"`
	Output     string   `short:"o" desc:"Output directory (default: next to the input)"`
	Repair     bool     `short:"r" desc:"Repair stroke timestamps and IDs before rendering"`
	Jobs       int      `short:"j" default:"4" desc:"Number of documents rendered in parallel"`
	Noise      string   `desc:"Write the pencil grain texture, enlarged 4x, to this PNG file"`
	Verbose    bool     `short:"v" desc:"Log progress to stderr"`
	Inputs     []string `index:"*" desc:"Stroke documents"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Render freehand ink strokes to images")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if len(cmd.Inputs) == 0 && cmd.Noise == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r := ink.NewRenderer()
	r.Scale = cmd.Scale
	format, err := ink.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}
	r.Format = format

	var bg color.Color
	if cmd.Background != "" {
		c, ok := ink.ParseColor(cmd.Background)
		if !ok {
			return fmt.Errorf("invalid background color %q", cmd.Background)
		}
		bg = c
	}

	if cmd.Noise != "" {
		if err := writeNoise(cmd.Noise, r.NoiseSize); err != nil {
			return err
		}
	}

	g := &errgroup.Group{}
	g.SetLimit(max(cmd.Jobs, 1))
	for _, in := range cmd.Inputs {
		g.Go(func() error {
			return cmd.render(r, in, bg)
		})
	}
	return g.Wait()
}

func (cmd *Render) render(r *ink.Renderer, in string, bg color.Color) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	doc, err := ink.DecodeDocument(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if cmd.Repair {
		ink.RepairStrokes(doc.Strokes, ink.DefaultTimeStep)
	}

	w, h := canvasSize(doc, cmd.Width, cmd.Height, cmd.Margin)
	pw := int(math.Ceil(float64(w) * r.Scale))
	ph := int(math.Ceil(float64(h) * r.Scale))
	data, err := r.Render(doc.Strokes, pw, ph, bg)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: encoding failed", in)
	}

	out := outputName(in, cmd.Output, r.Format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	ink.Logger().Info("rendered document",
		"input", in, "output", out, "strokes", len(doc.Strokes),
		"width", pw, "height", ph)
	return nil
}

// canvasSize returns the canvas size in stroke units. Explicit values
// take precedence over the size stored in the document. If neither is
// known, the canvas is extended to the strokes plus margin.
func canvasSize(doc *ink.Document, width, height int, margin float64) (int, int) {
	if width <= 0 {
		width = doc.Width
	}
	if height <= 0 {
		height = doc.Height
	}
	if width > 0 && height > 0 {
		return width, height
	}

	var xMax, yMax float64
	for _, s := range doc.Strokes {
		if s == nil {
			continue
		}
		b := s.Bounds()
		pad := margin + max(s.Size, 0)
		xMax = max(xMax, b.URx+pad)
		yMax = max(yMax, b.URy+pad)
	}
	if width <= 0 {
		width = max(int(math.Ceil(xMax)), 1)
	}
	if height <= 0 {
		height = max(int(math.Ceil(yMax)), 1)
	}
	return width, height
}

func outputName(in, dir string, format ink.Format) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, base+"."+format.String())
}

func writeNoise(name string, size int) error {
	tex := noise.Shared.Get(size)
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, tex.Upscale(4)); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing noise texture: %w", err)
	}
	return nil
}
