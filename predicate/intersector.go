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

// IntersectionKind classifies the result of ComputeIntersection.
type IntersectionKind int

const (
	// NoIntersection indicates the segments do not meet.
	NoIntersection IntersectionKind = iota
	// PointIntersection indicates a single proper or endpoint intersection.
	PointIntersection
	// SegmentIntersection indicates the segments are collinear and overlap
	// along a sub-segment.
	SegmentIntersection
)

// Intersection is the normalized result of intersecting two segments. For
// PointIntersection, Pt0 holds the intersection point and Pt1 is unused.
// For SegmentIntersection, Pt0 and Pt1 hold the two extreme points of the
// overlap.
type Intersection struct {
	Kind     IntersectionKind
	Pt0, Pt1 geom.Point
}

// HasIntersection reports whether i represents any intersection.
func (i Intersection) HasIntersection() bool {
	return i.Kind != NoIntersection
}

// ComputeIntersection computes the normalized intersection of segments
// (p0,p1) and (q0,q1). Proper intersections are rounded once to the given
// precision model; if an input endpoint is itself (after rounding) equal
// to the computed intersection point, that endpoint is returned bit for
// bit, per the guarantee in spec.md §4.1.
func ComputeIntersection(p0, p1, q0, q1 geom.Point, makePrecise func(geom.Point) geom.Point) Intersection {
	d0x, d0y := p1.X-p0.X, p1.Y-p0.Y
	d1x, d1y := q1.X-q0.X, q1.Y-q0.Y
	ex, ey := q0.X-p0.X, q0.Y-p0.Y

	kross := d0x*d1y - d0y*d1x
	sqrKross := kross * kross
	sqrLen0 := d0x*d0x + d0y*d0y
	sqrLen1 := d1x*d1x + d1y*d1y

	const epsilon = 1e-12

	if sqrKross > epsilon*sqrLen0*sqrLen1 {
		// Lines are not parallel: solve for the parametric position along
		// each segment and check both lie within [0, 1].
		s := (ex*d1y - ey*d1x) / kross
		if s < -epsilon || s > 1+epsilon {
			return Intersection{Kind: NoIntersection}
		}
		t := (ex*d0y - ey*d0x) / kross
		if t < -epsilon || t > 1+epsilon {
			return Intersection{Kind: NoIntersection}
		}
		pt := geom.Point{X: p0.X + s*d0x, Y: p0.Y + s*d0y}
		return Intersection{Kind: PointIntersection, Pt0: snapToEndpoint(pt, p0, p1, q0, q1, makePrecise)}
	}

	// Lines are parallel. They intersect only if collinear.
	sqrLenE := ex*ex + ey*ey
	krossE := ex*d0y - ey*d0x
	if krossE*krossE > epsilon*sqrLen0*sqrLenE {
		return Intersection{Kind: NoIntersection}
	}

	// Collinear: project q0, q1 onto the parametric line of p0->p1 and
	// intersect the two parameter intervals.
	s0 := (d0x*ex + d0y*ey) / sqrLen0
	s1 := s0 + (d0x*d1x+d0y*d1y)/sqrLen0
	lo, hi := math.Min(s0, s1), math.Max(s0, s1)

	overlapLo := math.Max(0, lo)
	overlapHi := math.Min(1, hi)
	if overlapLo > overlapHi {
		return Intersection{Kind: NoIntersection}
	}
	pt0 := geom.Point{X: p0.X + overlapLo*d0x, Y: p0.Y + overlapLo*d0y}
	if overlapLo == overlapHi {
		return Intersection{Kind: PointIntersection, Pt0: snapToEndpoint(pt0, p0, p1, q0, q1, makePrecise)}
	}
	pt1 := geom.Point{X: p0.X + overlapHi*d0x, Y: p0.Y + overlapHi*d0y}
	return Intersection{
		Kind: SegmentIntersection,
		Pt0:  snapToEndpoint(pt0, p0, p1, q0, q1, makePrecise),
		Pt1:  snapToEndpoint(pt1, p0, p1, q0, q1, makePrecise),
	}
}

// snapToEndpoint rounds pt through the precision model, then checks
// whether any of the four segment endpoints rounds to the same location;
// if so, the endpoint itself is returned so that the intersection point is
// bit-for-bit identical to the endpoint it coincides with.
func snapToEndpoint(pt, p0, p1, q0, q1 geom.Point, makePrecise func(geom.Point) geom.Point) geom.Point {
	if makePrecise == nil {
		makePrecise = func(p geom.Point) geom.Point { return p }
	}
	rounded := makePrecise(pt)
	for _, end := range [4]geom.Point{p0, p1, q0, q1} {
		if makePrecise(end) == rounded {
			return makePrecise(end)
		}
	}
	return rounded
}

// IsInteriorIntersection reports whether pt, an intersection point of
// segments (p0,p1) and (q0,q1), lies strictly inside at least one of the
// two segments (that is, is equal to neither endpoint of that segment).
func IsInteriorIntersection(pt, p0, p1, q0, q1 geom.Point) bool {
	interiorOfFirst := pt != p0 && pt != p1
	interiorOfSecond := pt != q0 && pt != q1
	return interiorOfFirst || interiorOfSecond
}
