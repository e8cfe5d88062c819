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

package chain

import (
	"fmt"

	"github.com/ctessum/geom"
)

// Quadrant identifies one of the four 90-degree sectors a directed segment
// can fall into, used to detect where a polyline stops being monotone.
type Quadrant int

const (
	NE Quadrant = iota
	NW
	SW
	SE
)

// QuadrantOf returns the quadrant of the vector from p0 to p1. p0 and p1
// must not be equal.
func QuadrantOf(p0, p1 geom.Point) Quadrant {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx == 0 && dy == 0 {
		panic(fmt.Sprintf("chain: zero-length segment has no quadrant: %v", p0))
	}
	if dx >= 0 {
		if dy >= 0 {
			return NE
		}
		return SE
	}
	if dy >= 0 {
		return NW
	}
	return SW
}
