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

// Package polybuild assembles the Polygon/MultiPolygon result from a
// labeled planar graph: it selects the boundary edges, traces them into
// closed rings, classifies each ring as a shell or a hole, and nests holes
// under their containing shell.
package polybuild

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/planargraph"
	"github.com/simplegeo/jts/predicate"
)

// Ring is one traced, unclosed sequence of points (first point not
// repeated at the end).
type Ring struct {
	Pts   []geom.Point
	shell bool
}

// IsShell reports whether the ring's points wind counter-clockwise.
func (r Ring) IsShell() bool { return r.shell }

// isBoundary reports whether an edge's two side labels differ, which is
// the selection rule for ring tracing (spec.md §4.6 step 1). Edges that
// planargraph.PropagateLabels forced to Boundary/Boundary on both sides
// never satisfy this and are correctly excluded: nothing downstream can
// tell which side of a genuinely conflicted edge is "in".
func isBoundary(e planargraph.Edge) bool {
	return e.Label.Left != e.Label.Right
}

// TraceRings extracts every ring from g's boundary edges. Each boundary
// edge contributes exactly one directed edge-end to exactly one ring: the
// end whose effective RIGHT side is EXTERIOR, i.e. the direction in which
// walking the edge keeps INTERIOR on the left hand.
func TraceRings(g *planargraph.Graph) ([]Ring, error) {
	consumed := make([]bool, len(g.Ends))
	var rings []Ring

	for startID, start := range g.Ends {
		if consumed[startID] || !isBoundary(g.Edges[start.Edge]) {
			continue
		}
		left, right := g.EndSides(startID)
		if right != planargraph.Exterior || left != planargraph.Interior {
			continue
		}

		pts, err := walkRing(g, startID, consumed)
		if err != nil {
			return nil, err
		}
		rings = append(rings, Ring{Pts: pts, shell: predicate.IsCCW(pts)})
	}

	return rings, nil
}

// walkRing follows the outward-facing boundary direction starting at
// startID until it returns to the starting edge-end, marking every traversed
// edge-end as consumed.
func walkRing(g *planargraph.Graph, startID int, consumed []bool) ([]geom.Point, error) {
	pts := []geom.Point{g.Ends[startID].To}
	// the ring's first coordinate is the node the walk begins from, not
	// the one it first arrives at; record it before stepping.
	startNode := g.Ends[startID].Node
	pts[0] = g.Nodes[startNode].Coord

	cur := startID
	for {
		consumed[cur] = true
		end := g.Ends[cur]
		pts = append(pts, end.To)

		next, err := nextRingEnd(g, end.Twin)
		if err != nil {
			return nil, err
		}
		if next == startID {
			break
		}
		if consumed[next] {
			return nil, fmt.Errorf("polybuild: ring trace revisited edge-end %d without reaching its start", next)
		}
		cur = next
	}

	// drop the repeated closing coordinate; Ring.Pts is unclosed.
	return pts[:len(pts)-1], nil
}

// nextRingEnd finds the directed edge-end that continues a ring after
// arriving via twinOfArrival (the reverse of the edge just walked): the
// next one before it in the node's CCW-sorted order, which is the
// immediate clockwise neighbor and so keeps the same face (the one with
// INTERIOR on the left) on this hand as the walk continues.
func nextRingEnd(g *planargraph.Graph, twinOfArrival int) (int, error) {
	node := g.Nodes[g.Ends[twinOfArrival].Node]
	n := len(node.Ends)
	idx := -1
	for i, id := range node.Ends {
		if id == twinOfArrival {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, fmt.Errorf("polybuild: edge-end %d missing from its own node's edge list", twinOfArrival)
	}
	return node.Ends[(idx-1+n)%n], nil
}
