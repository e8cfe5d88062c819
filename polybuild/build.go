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
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/planargraph"
	"github.com/simplegeo/jts/predicate"
)

type shellCandidate struct {
	ring  Ring
	area  float64
	holes []Ring
}

// Build traces g's boundary into rings, classifies and nests them, and
// assembles the result. A graph with no boundary edges produces an empty
// geom.MultiPolygon, matching spec.md's "empty result if no shells
// survive" rule.
func Build(g *planargraph.Graph) (geom.MultiPolygon, error) {
	rings, err := TraceRings(g)
	if err != nil {
		return nil, err
	}

	var shells []*shellCandidate
	var holes []Ring
	for _, r := range rings {
		if r.IsShell() {
			shells = append(shells, &shellCandidate{ring: r, area: math.Abs(predicate.SignedArea(r.Pts))})
		} else {
			holes = append(holes, r)
		}
	}

	for _, hole := range holes {
		owner, err := smallestContainingShell(shells, hole)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			owner.holes = append(owner.holes, hole)
		}
		// a hole with no containing shell describes a degenerate buffer
		// (e.g. a hole ring left over from a fully-eroded shell); it is
		// simply dropped rather than emitted as an orphan.
	}

	mp := make(geom.MultiPolygon, 0, len(shells))
	for _, s := range shells {
		mp = append(mp, assemblePolygon(s))
	}
	return mp, nil
}

func smallestContainingShell(shells []*shellCandidate, hole Ring) (*shellCandidate, error) {
	if len(hole.Pts) == 0 {
		return nil, fmt.Errorf("polybuild: empty hole ring")
	}
	probe := hole.Pts[0]

	var best *shellCandidate
	for _, s := range shells {
		if !predicate.IsPointInRing(probe, s.ring.Pts) {
			continue
		}
		if best == nil || s.area < best.area {
			best = s
		}
	}
	return best, nil
}

func assemblePolygon(s *shellCandidate) geom.Polygon {
	poly := make(geom.Polygon, 0, 1+len(s.holes))
	poly = append(poly, closeRing(s.ring.Pts))
	for _, h := range s.holes {
		poly = append(poly, closeRing(h.Pts))
	}
	return poly
}

// closeRing appends the ring's first point to its end, matching the OGC
// convention geom.Polygon's rings are expected to follow.
func closeRing(pts []geom.Point) []geom.Point {
	closed := make([]geom.Point, len(pts)+1)
	copy(closed, pts)
	closed[len(pts)] = pts[0]
	return closed
}
