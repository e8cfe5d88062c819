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
	"testing"

	"github.com/ctessum/geom"
)

func TestPointOnSegment(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}
	cases := []struct {
		name string
		p    geom.Point
		want bool
	}{
		{"midpoint", geom.Point{X: 2, Y: 0}, true},
		{"endpoint", geom.Point{X: 0, Y: 0}, true},
		{"off the line", geom.Point{X: 2, Y: 1}, false},
		{"collinear but beyond segment", geom.Point{X: 5, Y: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PointOnSegment(c.p, p0, p1); got != c.want {
				t.Errorf("PointOnSegment(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestDistanceToSegment(t *testing.T) {
	p0, p1 := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}
	cases := []struct {
		name string
		p    geom.Point
		want float64
	}{
		{"directly above midpoint", geom.Point{X: 2, Y: 3}, 3},
		{"beyond p1, closest point is p1", geom.Point{X: 6, Y: 0}, 2},
		{"beyond p0, closest point is p0", geom.Point{X: -3, Y: 0}, 3},
		{"on the segment", geom.Point{X: 1, Y: 0}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DistanceToSegment(c.p, p0, p1)
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("DistanceToSegment(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	p0 := geom.Point{X: 1, Y: 1}
	got := DistanceToSegment(geom.Point{X: 1, Y: 4}, p0, p0)
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("DistanceToSegment with degenerate segment = %v, want 3", got)
	}
}
