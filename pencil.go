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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Stamp is one circular imprint of the pencil tip.
type Stamp struct {
	Center vec.Vec2
	Radius float64

	// Alpha scales the opacity of the stamp, to compensate for the
	// overlap between neighbouring stamps.
	Alpha float64
}

// PencilGeometry is the shape of a pencil stroke.
type PencilGeometry struct {
	Stamps []Stamp
}

// BuildPencil computes the stamps of a pencil stroke.
//
// The stamp radius follows [PencilDiameterTable]. Along each segment,
// stamps are placed at a spacing of density times the radius, but at
// least [MinPencilStep] apart. A segment of length l gets
// n = ceil(l/step) stamps, at least two and at most [MaxPencilStamps],
// spread evenly from its start point to its end point. If the previous
// segment moved, the first stamp is skipped, since the shared point was
// already stamped. A stroke without movement is stamped once per point.
//
// A density which is not positive is replaced by [DefaultPencilDensity].
func BuildPencil(pts []*Point, baseSize, density float64) PencilGeometry {
	pts = drawable(pts)
	base := max(minBaseSize, baseSize)
	if !(density > 0) || math.IsInf(density, 1) {
		density = DefaultPencilDensity
	}
	radius := func(pressure float64) float64 {
		return base * pencilCurve.At(clampPressure(pressure)) / 2
	}

	var g PencilGeometry
	if len(pts) == 0 {
		return g
	}

	if isStationary(pts) {
		g.Stamps = make([]Stamp, 0, len(pts))
		for _, p := range pts {
			g.Stamps = append(g.Stamps, Stamp{
				Center: position(p),
				Radius: radius(p.Pressure),
				Alpha:  1,
			})
		}
		return g
	}

	prevMoved := false
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		a, b := position(p0), position(p1)
		d := b.Sub(a)
		l := d.Length()
		if !(l > 0) || math.IsInf(l, 1) {
			continue
		}

		pr0, pr1 := clampPressure(p0.Pressure), clampPressure(p1.Pressure)
		r := radius((pr0 + pr1) / 2)
		step := PencilStep(r, density)
		n := max(min(int(math.Ceil(l/step)), MaxPencilStamps), 2)
		alpha := clamp(math.Sqrt(step/r), 0.1, 1)

		k0 := 0
		if prevMoved {
			k0 = 1
		}
		for k := k0; k < n; k++ {
			t := float64(k) / float64(n-1)
			g.Stamps = append(g.Stamps, Stamp{
				Center: a.Add(d.Mul(t)),
				Radius: radius(pr0 + (pr1-pr0)*t),
				Alpha:  alpha,
			})
		}
		prevMoved = true
	}
	return g
}

// PencilStep returns the distance between consecutive pencil stamps of
// the given radius.
func PencilStep(radius, density float64) float64 {
	return max(radius*density, MinPencilStep)
}

const (
	// DefaultPencilDensity is the default stamp spacing, relative to the
	// stamp radius.
	DefaultPencilDensity = 0.12

	// MinPencilStep is the smallest distance between pencil stamps.
	MinPencilStep = 0.35

	// MaxPencilStamps limits the number of stamps per segment.
	MaxPencilStamps = 512
)
