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

// Package predicate implements the robust geometric primitives that every
// downstream stage of the buffer pipeline depends on: point orientation and
// segment/segment intersection. Orientation falls back to double-double
// precision arithmetic when the ordinary double-precision result is not
// trustworthy; intersection is computed in double precision only, with a
// relative tolerance for near-parallel segments.
package predicate

import (
	"math"

	"github.com/ctessum/geom"
)

// Orientation is the turning direction of three ordered points.
type Orientation int

const (
	Collinear Orientation = 0
	Clockwise Orientation = -1
	CounterClockwise Orientation = 1
)

// errorBoundFactor bounds the relative error of the naive double-precision
// determinant computation below. When the computed determinant's magnitude
// falls under this factor times the largest term that produced it, the
// result is not trustworthy and the double-double fallback is used.
const errorBoundFactor = 1e-15 * 4

// ComputeOrientation returns the orientation of c relative to the directed
// line through a and b: CounterClockwise if c is to the left of a→b,
// Clockwise if to the right, Collinear if on the line.
func ComputeOrientation(a, b, c geom.Point) Orientation {
	dx1 := b.X - a.X
	dy1 := b.Y - a.Y
	dx2 := c.X - b.X
	dy2 := c.Y - b.Y
	det := dx1*dy2 - dy1*dx2

	// Error bound on the determinant of two vectors, following the
	// standard robust-predicate analysis: the absolute error is bounded by
	// a small constant times the sum of the magnitudes of the products
	// that fed into it.
	bound := errorBoundFactor * (math.Abs(dx1*dy2) + math.Abs(dy1*dx2))
	if math.Abs(det) > bound {
		return signOf(det)
	}

	sign := ddDeterminantSign(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	return signOf(float64(sign))
}

func signOf(v float64) Orientation {
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// IsCCW reports whether the points of a closed ring are arranged
// counter-clockwise, determined from the signed area of the ring (positive
// for CCW under the standard shoelace formula). The ring need not be
// explicitly closed; its first point is treated as following its last.
func IsCCW(ring []geom.Point) bool {
	return SignedArea(ring) > 0
}

// SignedArea computes the signed area of a (possibly unclosed) ring using
// the shoelace formula, positive for counter-clockwise rings.
func SignedArea(ring []geom.Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2
}
