/*
Copyright © 2024 the jts authors.
This file is part of jts.

jts is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

jts is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with jts.  If not, see <http://www.gnu.org/licenses/>.
*/

package predicate

import (
	"math"

	"github.com/ctessum/geom"
)

// Segment is an ordered pair of endpoints. Unlike geom's own types, it
// is not required to be non-degenerate; callers that need p0 != p1 check
// for it explicitly.
type Segment struct {
	P0, P1 geom.Point
}

// Envelope returns the axis-aligned bounding box of s.
func (s Segment) Envelope() *geom.Bounds {
	b := geom.NewBoundsPoint(s.P0)
	b.Extend(geom.NewBoundsPoint(s.P1))
	return b
}

// PointOnSegment reports whether p lies on the closed segment [p0, p1]:
// an exact collinearity test plus a bounding-box check, with no tolerance.
func PointOnSegment(p, p0, p1 geom.Point) bool {
	if ComputeOrientation(p0, p1, p) != Collinear {
		return false
	}
	minX, maxX := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	minY, maxY := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// DistanceToSegment returns the perpendicular distance from p to the
// closest point of the closed segment [p0, p1].
func DistanceToSegment(p, p0, p1 geom.Point) float64 {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-p0.X, p.Y-p0.Y)
	}
	t := ((p.X-p0.X)*dx + (p.Y-p0.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx := p0.X + t*dx
	cy := p0.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}
