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

// Command export writes the test scenes to testdata/: the stroke data as
// JSON documents, and the rendered images as reference PNGs.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/testcases"
)

const (
	refDir   = "testdata/reference"
	sceneDir = "testdata/scenes"
)

func main() {
	for _, dir := range []string{refDir, sceneDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := exportScene(tc, filepath.Join(sceneDir, name+".json")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := exportImage(tc, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

type jsonScene struct {
	ink.Document
	Scale float64 `json:"scale,omitempty"`
}

func exportScene(tc testcases.TestCase, fname string) error {
	strokes := make([]*ink.Stroke, 0, len(tc.Strokes))
	for _, s := range tc.Strokes {
		if s != nil {
			strokes = append(strokes, s)
		}
	}
	scene := jsonScene{
		Document: ink.Document{
			Model:   "stroke-v1",
			Units:   "dip",
			Width:   tc.Width,
			Height:  tc.Height,
			Strokes: strokes,
		},
		Scale: tc.Scale,
	}

	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fname, append(data, '\n'), 0644)
}

func exportImage(tc testcases.TestCase, fname string) error {
	data, err := tc.Renderer().Render(tc.Strokes, tc.Width, tc.Height, tc.Background)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0644)
}
