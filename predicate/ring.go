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

import "github.com/ctessum/geom"

// IsPointInRing reports whether p lies strictly inside the ring, using a
// horizontal ray-crossing count (the ring need not be explicitly closed).
// Points exactly on the boundary may report either true or false; callers
// needing an exact on-boundary answer should test PointOnSegment against
// the ring's edges directly.
func IsPointInRing(p geom.Point, ring []geom.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		crosses := (pi.Y > p.Y) != (pj.Y > p.Y)
		if !crosses {
			continue
		}
		xAtY := pi.X + (p.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
		if p.X < xAtY {
			inside = !inside
		}
	}
	return inside
}
