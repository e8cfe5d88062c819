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

package planargraph

import (
	"testing"

	"github.com/ctessum/geom"
)

func square() []EdgeInput {
	// a CCW unit square traversed as 4 edges, each labeled as an offset
	// curve from a shell: interior on the left, exterior on the right.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	var edges []EdgeInput
	for i := 0; i < len(pts); i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		edges = append(edges, EdgeInput{P0: p0, P1: p1, Label: Label{Left: Interior, Right: Exterior}})
	}
	return edges
}

func TestBuildInternsSharedNodes(t *testing.T) {
	g := Build(square())
	if len(g.Nodes) != 4 {
		t.Fatalf("expected 4 distinct nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(g.Edges))
	}
	for _, node := range g.Nodes {
		if len(node.Ends) != 2 {
			t.Errorf("expected 2 edge-ends at %v, got %d", node.Coord, len(node.Ends))
		}
	}
}

func TestPropagateLabelsLeavesFullyLabeledSquareUnchanged(t *testing.T) {
	g := Build(square())
	for _, e := range g.Edges {
		if e.Label.Left != Interior || e.Label.Right != Exterior {
			t.Errorf("expected Interior/Exterior label preserved, got %+v", e.Label)
		}
	}
	for _, node := range g.Nodes {
		if node.OnBoundary {
			t.Errorf("did not expect a consistent square to mark any node as conflicted")
		}
	}
}

func TestMergeCoincidentCombinesReversedDuplicate(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	inputs := []EdgeInput{
		{P0: a, P1: b, Label: Label{Left: Interior, Right: None}},
		{P0: b, P1: a, Label: Label{Left: Exterior, Right: None}},
	}
	merged := MergeCoincident(inputs)
	if len(merged) != 1 {
		t.Fatalf("expected the reversed duplicate to merge into 1 edge, got %d", len(merged))
	}
	got := merged[0].Label
	if got.Left != Interior || got.Right != Exterior {
		t.Errorf("expected combined label {Interior,Exterior}, got %+v", got)
	}
}

func TestMergeCoincidentConflictForcesBoundary(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	inputs := []EdgeInput{
		{P0: a, P1: b, Label: Label{Left: Interior, Right: Exterior}},
		{P0: a, P1: b, Label: Label{Left: Exterior, Right: Interior}},
	}
	merged := MergeCoincident(inputs)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged edge, got %d", len(merged))
	}
	if merged[0].Label.Left != Boundary || merged[0].Label.Right != Boundary {
		t.Errorf("expected a conflicting duplicate forced to Boundary/Boundary, got %+v", merged[0].Label)
	}
}

func TestSortEdgeEndsOrdersByAngle(t *testing.T) {
	// four edges radiating from the origin along the axes; CCW order
	// starting anywhere should visit East, North, West, South.
	origin := geom.Point{X: 0, Y: 0}
	inputs := []EdgeInput{
		{P0: origin, P1: geom.Point{X: 0, Y: 10}}, // N
		{P0: origin, P1: geom.Point{X: -10, Y: 0}}, // W
		{P0: origin, P1: geom.Point{X: 0, Y: -10}}, // S
		{P0: origin, P1: geom.Point{X: 10, Y: 0}},  // E
	}
	g := NewGraph()
	for _, e := range inputs {
		g.AddEdge(e.P0, e.P1, e.Label, e.Context)
	}
	g.SortEdgeEnds()

	node := g.Nodes[g.index[origin]]
	var dirs []geom.Point
	for _, endID := range node.Ends {
		dirs = append(dirs, g.Ends[endID].To)
	}
	// atan2 ascending order: South (-pi/2), East (0), North (pi/2), West (pi).
	want := []geom.Point{{X: 0, Y: -10}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}}
	if len(dirs) != len(want) {
		t.Fatalf("expected %d edge-ends, got %d", len(want), len(dirs))
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v (full order %v)", i, want[i], dirs[i], dirs)
		}
	}
}

func TestPropagateLabelsKeepsKnownSides(t *testing.T) {
	// a single segment whose sides are both already EXTERIOR has no NONE
	// side to fill, so Build leaves its label unchanged.
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	g := Build([]EdgeInput{
		{P0: a, P1: b, Label: Label{Left: Exterior, Right: Exterior}},
	})
	if g.Edges[0].Label.Left != Exterior || g.Edges[0].Label.Right != Exterior {
		t.Errorf("expected both sides to remain Exterior, got %+v", g.Edges[0].Label)
	}
}
