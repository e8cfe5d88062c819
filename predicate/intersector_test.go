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
	"testing"

	"github.com/ctessum/geom"
)

func identity(p geom.Point) geom.Point { return p }

func TestComputeIntersectionProperCross(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}
	q0, q1 := geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0}
	got := ComputeIntersection(p0, p1, q0, q1, identity)
	if got.Kind != PointIntersection {
		t.Fatalf("expected PointIntersection, got %v", got.Kind)
	}
	if got.Pt0 != (geom.Point{X: 1, Y: 1}) {
		t.Errorf("got %v, want (1,1)", got.Pt0)
	}
}

func TestComputeIntersectionNone(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}
	q0, q1 := geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1}
	got := ComputeIntersection(p0, p1, q0, q1, identity)
	if got.Kind != NoIntersection {
		t.Fatalf("expected NoIntersection, got %v", got.Kind)
	}
}

func TestComputeIntersectionCollinearOverlap(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}
	q0, q1 := geom.Point{X: 2, Y: 0}, geom.Point{X: 6, Y: 0}
	got := ComputeIntersection(p0, p1, q0, q1, identity)
	if got.Kind != SegmentIntersection {
		t.Fatalf("expected SegmentIntersection, got %v", got.Kind)
	}
	if got.Pt0 != (geom.Point{X: 2, Y: 0}) || got.Pt1 != (geom.Point{X: 4, Y: 0}) {
		t.Errorf("got overlap [%v,%v], want [(2,0),(4,0)]", got.Pt0, got.Pt1)
	}
}

func TestComputeIntersectionEndpointExact(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}
	q0, q1 := geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 2}
	got := ComputeIntersection(p0, p1, q0, q1, identity)
	if got.Kind != PointIntersection {
		t.Fatalf("expected PointIntersection, got %v", got.Kind)
	}
	if got.Pt0 != p1 {
		t.Errorf("expected intersection to equal shared endpoint bit-for-bit, got %v", got.Pt0)
	}
}

func TestIsInteriorIntersection(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}
	q0, q1 := geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0}
	mid := geom.Point{X: 1, Y: 1}
	if !IsInteriorIntersection(mid, p0, p1, q0, q1) {
		t.Errorf("expected midpoint crossing to be interior")
	}
	if IsInteriorIntersection(p0, p0, p1, p0, q0) {
		t.Errorf("expected endpoint p0 shared by both segments to not be interior")
	}
}
