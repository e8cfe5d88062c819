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

package polybuild

import (
	"testing"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/planargraph"
)

func ccwSquare(x0, y0, size float64) []geom.Point {
	return []geom.Point{
		{X: x0, Y: y0},
		{X: x0 + size, Y: y0},
		{X: x0 + size, Y: y0 + size},
		{X: x0, Y: y0 + size},
	}
}

func edgesForShell(pts []geom.Point) []planargraph.EdgeInput {
	var edges []planargraph.EdgeInput
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		edges = append(edges, planargraph.EdgeInput{
			P0: p0, P1: p1,
			Label: planargraph.Label{Left: planargraph.Interior, Right: planargraph.Exterior},
		})
	}
	return edges
}

// edgesForHole labels a CW ring (as traversed) so that its INTERIOR side
// faces the buffer body: walking the ring in the given point order, the
// hole lies to the RIGHT and the buffer body to the LEFT.
func edgesForHole(pts []geom.Point) []planargraph.EdgeInput {
	var edges []planargraph.EdgeInput
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		edges = append(edges, planargraph.EdgeInput{
			P0: p0, P1: p1,
			Label: planargraph.Label{Left: planargraph.Interior, Right: planargraph.Exterior},
		})
	}
	return edges
}

func TestTraceRingsSingleSquareShell(t *testing.T) {
	g := planargraph.Build(edgesForShell(ccwSquare(0, 0, 10)))
	rings, err := TraceRings(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rings) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(rings))
	}
	if !rings[0].IsShell() {
		t.Errorf("expected the CCW square to classify as a shell")
	}
	if len(rings[0].Pts) != 4 {
		t.Errorf("expected 4 points, got %d", len(rings[0].Pts))
	}
}

func TestBuildSquareWithHole(t *testing.T) {
	outer := ccwSquare(0, 0, 20)
	// inner ring walked CW, as produced by a hole generator (centered,
	// strictly inside the outer square).
	innerCCW := ccwSquare(5, 5, 5)
	var innerCW []geom.Point
	for i := len(innerCCW) - 1; i >= 0; i-- {
		innerCW = append(innerCW, innerCCW[i])
	}

	var edges []planargraph.EdgeInput
	edges = append(edges, edgesForShell(outer)...)
	edges = append(edges, edgesForHole(innerCW)...)

	g := planargraph.Build(edges)
	mp, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(mp))
	}
	if len(mp[0]) != 2 {
		t.Fatalf("expected shell + 1 hole, got %d rings", len(mp[0]))
	}
	shell := mp[0][0]
	if shell[0] != shell[len(shell)-1] {
		t.Errorf("expected shell ring to be closed")
	}
}

func TestBuildTwoDisjointSquaresProducesMultiPolygon(t *testing.T) {
	var edges []planargraph.EdgeInput
	edges = append(edges, edgesForShell(ccwSquare(0, 0, 5))...)
	edges = append(edges, edgesForShell(ccwSquare(100, 100, 5))...)

	g := planargraph.Build(edges)
	mp, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp) != 2 {
		t.Fatalf("expected 2 separate polygons, got %d", len(mp))
	}
}

func TestBuildEmptyGraphProducesEmptyMultiPolygon(t *testing.T) {
	g := planargraph.Build(nil)
	mp, err := Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mp) != 0 {
		t.Errorf("expected an empty result, got %d polygons", len(mp))
	}
}
