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

package offsetcurve

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/precision"
)

func TestLineCurveNegativeDistanceIsEmpty(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if got := b.LineCurve(pts, -1); got != nil {
		t.Errorf("expected nil curve for negative distance, got %v", got)
	}
}

func TestLineCurveSinglePointRoundCap(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	pts := []geom.Point{{X: 0, Y: 0}}
	curve := b.LineCurve(pts, 5)
	if len(curve) < 4 {
		t.Fatalf("expected a fillet-approximated circle, got %d points", len(curve))
	}
	for _, p := range curve {
		d := math.Hypot(p.X, p.Y)
		if math.Abs(d-5) > 1e-9 {
			t.Errorf("point %v not on circle of radius 5, got distance %v", p, d)
		}
	}
}

func TestLineCurveSinglePointSquareCap(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	b.SetEndCapStyle(CapSquare)
	pts := []geom.Point{{X: 0, Y: 0}}
	curve := b.LineCurve(pts, 2)
	if len(curve) != 5 {
		t.Fatalf("expected a closed 4-sided square (5 points incl. closing point), got %d", len(curve))
	}
}

func TestLineCurveFlatCapRectangle(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	b.SetEndCapStyle(CapFlat)
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	curve := b.LineCurve(pts, 2)
	if len(curve) != 5 {
		t.Fatalf("expected a closed rectangle outline (5 points incl. closing point), got %d: %v", len(curve), curve)
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range curve {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if math.Abs(minX-0) > 1e-9 || math.Abs(maxX-10) > 1e-9 || math.Abs(minY-(-2)) > 1e-9 || math.Abs(maxY-2) > 1e-9 {
		t.Errorf("unexpected bounds [%v,%v]x[%v,%v]", minX, maxX, minY, maxY)
	}
}

func TestRingCurveZeroDistanceReturnsInputUnchanged(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	ring := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}
	got := b.RingCurve(ring, Left, 0)
	if len(got) != len(ring) {
		t.Fatalf("expected unchanged ring, got %d points want %d", len(got), len(ring))
	}
	for i := range ring {
		if got[i] != ring[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], ring[i])
		}
	}
}

func TestRingCurveSquareIsClosed(t *testing.T) {
	b := NewBuilder(precision.NewFloating(), 8)
	ring := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}
	got := b.RingCurve(ring, Left, 1)
	if len(got) < 4 {
		t.Fatalf("expected a non-degenerate offset ring, got %d points", len(got))
	}
	if got[0] != got[len(got)-1] {
		t.Errorf("expected ring curve to close on itself, first=%v last=%v", got[0], got[len(got)-1])
	}
}
