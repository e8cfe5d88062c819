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
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// EdgeInput is one noded, labeled edge to be added to a Graph. Context
// carries through from noding.NodedEdge (and ultimately from whichever
// ring/line the offset curve was generated from).
type EdgeInput struct {
	P0, P1  geom.Point
	Label   Label
	Context interface{}
}

// Edge is a noded segment stored in a Graph's arena. Edges are always
// referenced by index (EdgeID), never by pointer, so that the graph can be
// built, searched and discarded as a single unit per buffer call.
type Edge struct {
	P0, P1   geom.Point
	N0, N1   int // node indices
	Label    Label
	Context  interface{}
	consumed bool // never set: polybuild tracks traced edge-ends in a slice of its own
}

// EdgeEnd is a directed reference to an Edge from one of its two nodes.
type EdgeEnd struct {
	Edge    int
	Node    int
	To      geom.Point // the edge's other endpoint; direction is Node->To
	Angle   float64
	Forward bool // true if this end starts at Edge.P0
	Twin    int
	used    bool
}

// Node is a coordinate-keyed graph vertex. Ends is populated in arbitrary
// order by AddEdge and sorted into CCW azimuthal order by SortEdgeEnds.
type Node struct {
	Coord      geom.Point
	Ends       []int
	OnBoundary bool
}

// Graph is an arena of nodes, edges and edge-ends built for a single buffer
// call. The zero value is not usable; construct with NewGraph or Build.
type Graph struct {
	Nodes []Node
	Edges []Edge
	Ends  []EdgeEnd
	index map[geom.Point]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[geom.Point]int)}
}

// Build merges coincident edges in inputs, adds the result to a fresh
// graph, sorts every node's edge-ends into CCW order and propagates side
// labels. The returned graph is ready for polybuild's ring tracer.
func Build(inputs []EdgeInput) *Graph {
	g := NewGraph()
	for _, e := range MergeCoincident(inputs) {
		g.AddEdge(e.P0, e.P1, e.Label, e.Context)
	}
	g.SortEdgeEnds()
	g.PropagateLabels()
	return g
}

func (g *Graph) internNode(p geom.Point) int {
	if id, ok := g.index[p]; ok {
		return id
	}
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{Coord: p})
	g.index[p] = id
	return id
}

// AddEdge interns p0 and p1 as nodes (first pass) and then creates the
// edge and its two symmetric edge-ends (second pass), per the two-pass
// build contract.
func (g *Graph) AddEdge(p0, p1 geom.Point, label Label, context interface{}) int {
	n0 := g.internNode(p0)
	n1 := g.internNode(p1)

	eid := len(g.Edges)
	g.Edges = append(g.Edges, Edge{P0: p0, P1: p1, N0: n0, N1: n1, Label: label, Context: context})

	fwdID := len(g.Ends)
	g.Ends = append(g.Ends, EdgeEnd{
		Edge: eid, Node: n0, To: p1, Forward: true,
		Angle: math.Atan2(p1.Y-p0.Y, p1.X-p0.X),
	})
	bwdID := len(g.Ends)
	g.Ends = append(g.Ends, EdgeEnd{
		Edge: eid, Node: n1, To: p0, Forward: false,
		Angle: math.Atan2(p0.Y-p1.Y, p0.X-p1.X),
	})
	g.Ends[fwdID].Twin = bwdID
	g.Ends[bwdID].Twin = fwdID

	g.Nodes[n0].Ends = append(g.Nodes[n0].Ends, fwdID)
	g.Nodes[n1].Ends = append(g.Nodes[n1].Ends, bwdID)

	return eid
}

// SortEdgeEnds arranges every node's edge-ends into CCW azimuthal order.
// Edge-ends with identical angle (collinear edges on either side of the
// node) are never merged; ties are broken by edge-end index, keeping them
// as distinct slots in the circular order.
func (g *Graph) SortEdgeEnds() {
	for i := range g.Nodes {
		ends := g.Nodes[i].Ends
		sort.Slice(ends, func(a, b int) bool {
			ea, eb := g.Ends[ends[a]], g.Ends[ends[b]]
			if ea.Angle != eb.Angle {
				return ea.Angle < eb.Angle
			}
			return ends[a] < ends[b]
		})
	}
}
