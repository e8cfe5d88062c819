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

// PropagateLabels fills in NONE side-locations left behind by the
// generator pass. Around a node, edge-ends are already sorted CCW
// (SortEdgeEnds); the wedge swept CCW from one edge-end to the next is a
// single face, bounded by that edge-end's own LEFT side and the next
// edge-end's RIGHT side. Reconciling the two against each other and
// against whatever is already known propagates location around the node;
// because edges share storage between their two ends, progress at one
// node can unlock progress at another, so this repeats to a fixed point.
func (g *Graph) PropagateLabels() {
	for {
		changed := false
		for i := range g.Nodes {
			if g.propagateAtNode(i) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

func (g *Graph) propagateAtNode(nodeID int) bool {
	ends := g.Nodes[nodeID].Ends
	n := len(ends)
	if n == 0 {
		return false
	}

	changed := false
	for i := 0; i < n; i++ {
		e0 := &g.Ends[ends[i]]
		e1 := &g.Ends[ends[(i+1)%n]]

		left0, right0 := effectiveSides(g, e0)
		left1, right1 := effectiveSides(g, e1)

		face := combine(left0, right1)
		if face == Boundary {
			g.Nodes[nodeID].OnBoundary = true
		}

		if left0 != face {
			setEffectiveLeft(g, e0, face)
			changed = true
		}
		if right1 != face {
			setEffectiveRight(g, e1, face)
			changed = true
		}
		_ = right0
		_ = left1
	}
	return changed
}

// effectiveSides returns an edge-end's LEFT/RIGHT as seen walking outward
// from the node along this end, accounting for the end being the
// edge's forward or backward half.
func effectiveSides(g *Graph, end *EdgeEnd) (left, right Location) {
	lbl := g.Edges[end.Edge].Label
	if end.Forward {
		return lbl.Left, lbl.Right
	}
	return lbl.Right, lbl.Left
}

// EndSides is the exported form of effectiveSides, for callers (polybuild's
// ring tracer) that need an edge-end's resolved LEFT/RIGHT without reaching
// into Edge.Label and re-deriving the Forward/backward swap themselves.
func (g *Graph) EndSides(endID int) (left, right Location) {
	return effectiveSides(g, &g.Ends[endID])
}

func setEffectiveLeft(g *Graph, end *EdgeEnd, loc Location) {
	lbl := &g.Edges[end.Edge].Label
	if end.Forward {
		lbl.Left = loc
	} else {
		lbl.Right = loc
	}
}

func setEffectiveRight(g *Graph, end *EdgeEnd, loc Location) {
	lbl := &g.Edges[end.Edge].Label
	if end.Forward {
		lbl.Right = loc
	} else {
		lbl.Left = loc
	}
}
