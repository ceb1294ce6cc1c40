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
	"strings"

	"github.com/google/uuid"
)

// DefaultTimeStep is the time step, in milliseconds, used by
// [RepairTimestamps] for points without usable time information.
const DefaultTimeStep = 16

// RepairTimestamps makes the time values of a stroke start at zero and
// strictly increase.
//
// If all points have time zero, the points are assigned the times 0, step,
// 2·step and so on. Otherwise, time values larger than their predecessor
// are kept and the others are moved to the previous time plus step. A
// step which is not positive is replaced by [DefaultTimeStep]. Nil points
// are ignored.
func RepairTimestamps(pts []*Point, step int) {
	if step <= 0 {
		step = DefaultTimeStep
	}
	pts = compact(pts)
	if len(pts) == 0 {
		return
	}

	missing := true
	for _, p := range pts {
		if p.T != 0 {
			missing = false
			break
		}
	}

	if missing {
		for i, p := range pts {
			p.T = i * step
		}
		return
	}

	t := max(0, pts[0].T)
	pts[0].T = t
	for _, p := range pts[1:] {
		if p.T > t {
			t = p.T
		} else {
			t += step
			p.T = t
		}
	}

	t0 := pts[0].T
	last := 0
	for i, p := range pts {
		p.T = max(0, p.T-t0)
		if i > 0 && p.T <= last {
			p.T = last + step
		}
		last = p.T
	}
}

// RepairStrokes applies [RepairTimestamps] to every stroke and assigns a
// random identifier to strokes without one.
func RepairStrokes(strokes []*Stroke, step int) {
	for _, s := range strokes {
		if s == nil {
			continue
		}
		if strings.TrimSpace(s.ID) == "" {
			s.ID = NewStrokeID()
		}
		RepairTimestamps(s.Points, step)
	}
}

// NewStrokeID returns a random stroke identifier: 32 lower-case
// hexadecimal digits.
func NewStrokeID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
