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

package noding

import (
	"sort"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/chain"
	"github.com/simplegeo/jts/precision"
	"github.com/simplegeo/jts/predicate"
)

// Noder snap-rounds a collection of segment strings against hot pixels
// derived from their mutual intersections, using a monotone-chain index to
// avoid testing every pair of segments directly.
type Noder struct {
	pm precision.Model
}

// New returns a Noder that snaps to pm's grid.
func New(pm precision.Model) *Noder {
	return &Noder{pm: pm}
}

// Node fully nodes strings: every two segments in the output either share
// an endpoint or are interior-disjoint. The result is a flat list of
// two-point edges; Context is copied from the SegmentString each edge was
// cut from.
func (n *Noder) Node(strings []*SegmentString) ([]NodedEdge, error) {
	gridSize := n.pm.GridSize()
	if gridSize == 0 {
		gridSize = 1e-9
	}

	idx := chain.NewIndex()
	chainsByString := make([][]*chain.Chain, len(strings))
	for si, ss := range strings {
		if len(ss.Pts) < 2 {
			continue
		}
		cs := chain.Build(ss.Pts)
		chainsByString[si] = cs
		for _, c := range cs {
			idx.Insert(si, c)
		}
	}

	hotPixels := make(map[geom.Point]*HotPixel)
	addHotPixel := func(p geom.Point) {
		key := n.pm.MakePrecise(p)
		if _, ok := hotPixels[key]; ok {
			return
		}
		hotPixels[key] = NewHotPixel(key, gridSize)
	}

	for _, ss := range strings {
		for _, p := range ss.Pts {
			addHotPixel(p)
		}
	}

	for si := range strings {
		for _, ci := range chainsByString[si] {
			for _, hit := range idx.Query(ci.Envelope()) {
				sj := hit.StringIndex
				if sj < si {
					continue
				}
				cj := hit.Chain
				ci.ComputeOverlaps(cj, func(s0, s1 int) {
					if si == sj && s0 == s1 {
						return
					}
					p0, p1 := strings[si].Pts[s0], strings[si].Pts[s0+1]
					q0, q1 := strings[sj].Pts[s1], strings[sj].Pts[s1+1]
					inter := predicate.ComputeIntersection(p0, p1, q0, q1, n.pm.MakePrecise)
					if !inter.HasIntersection() {
						return
					}
					addHotPixel(inter.Pt0)
					if inter.Kind == predicate.SegmentIntersection {
						addHotPixel(inter.Pt1)
					}
				})
			}
		}
	}

	var out []NodedEdge
	for _, ss := range strings {
		edges, err := n.nodeString(ss, hotPixels)
		if err != nil {
			return nil, err
		}
		out = append(out, edges...)
	}
	return out, nil
}

func (n *Noder) nodeString(ss *SegmentString, hotPixels map[geom.Point]*HotPixel) ([]NodedEdge, error) {
	pts := ss.Pts
	var out []NodedEdge
	for i := 0; i < len(pts)-1; i++ {
		p0 := n.pm.MakePrecise(pts[i])
		p1 := n.pm.MakePrecise(pts[i+1])

		type crossing struct {
			t  float64
			pt geom.Point
		}
		var crossings []crossing
		for _, hp := range hotPixels {
			if hp.Center == p0 || hp.Center == p1 {
				continue
			}
			if hp.Intersects(p0, p1) {
				crossings = append(crossings, crossing{t: projectParam(p0, p1, hp.Center), pt: hp.Center})
			}
		}
		sort.Slice(crossings, func(a, b int) bool { return crossings[a].t < crossings[b].t })

		chainPts := make([]geom.Point, 0, len(crossings)+2)
		chainPts = append(chainPts, p0)
		for _, c := range crossings {
			chainPts = append(chainPts, c.pt)
		}
		chainPts = append(chainPts, p1)

		dedup := chainPts[:1]
		for _, p := range chainPts[1:] {
			if p != dedup[len(dedup)-1] {
				dedup = append(dedup, p)
			}
		}

		if len(dedup) < 2 {
			if pts[i] != pts[i+1] {
				return nil, newTopologyError("snap collapsed a non-degenerate segment to zero length", p0)
			}
			continue
		}
		for k := 0; k < len(dedup)-1; k++ {
			out = append(out, NodedEdge{P0: dedup[k], P1: dedup[k+1], Context: ss.Context})
		}
	}
	return out, nil
}

// projectParam returns the parametric position of p's projection onto the
// line through p0 and p1, used only to order hot-pixel crossings along a
// segment; it is not itself a distance or containment test.
func projectParam(p0, p1, p geom.Point) float64 {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	denom := dx*dx + dy*dy
	if denom == 0 {
		return 0
	}
	return ((p.X-p0.X)*dx + (p.Y-p0.Y)*dy) / denom
}
