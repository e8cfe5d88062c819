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

import "github.com/ctessum/geom"

type nodePair struct {
	a, b geom.Point
}

// MergeCoincident collapses edges from inputs that share the same two
// endpoints (in either direction) into a single edge, combining their
// labels with combineLabel. Distinct offset-curve generators (a shell and
// an abutting hole, say) can legally produce the same noded edge; without
// this merge the duplicate would appear twice in the graph with two
// independent, possibly contradictory, label guesses.
func MergeCoincident(inputs []EdgeInput) []EdgeInput {
	byKey := make(map[nodePair]int, len(inputs))
	merged := make([]EdgeInput, 0, len(inputs))

	for _, e := range inputs {
		key := nodePair{e.P0, e.P1}
		if greaterPoint(e.P0, e.P1) {
			key = nodePair{e.P1, e.P0}
		}

		if idx, ok := byKey[key]; ok {
			existing := merged[idx]
			label := e.Label
			// labels are combined in the direction of the edge kept first
			if existing.P0 != e.P0 {
				label = Label{Left: e.Label.Right, Right: e.Label.Left}
			}
			merged[idx].Label = combineLabel(existing.Label, label)
			continue
		}

		byKey[key] = len(merged)
		merged = append(merged, e)
	}

	return merged
}

// greaterPoint gives edges a canonical endpoint order so that an edge and
// its reverse hash to the same key.
func greaterPoint(a, b geom.Point) bool {
	if a.X != b.X {
		return a.X > b.X
	}
	return a.Y > b.Y
}
