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

package chain

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestBuildSingleChainForMonotoneLine(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 4}}
	chains := Build(pts)
	if len(chains) != 1 {
		t.Fatalf("expected a single monotone chain, got %d", len(chains))
	}
	if chains[0].Start != 0 || chains[0].End != 3 {
		t.Errorf("chain range = [%d,%d], want [0,3]", chains[0].Start, chains[0].End)
	}
}

func TestBuildSplitsAtQuadrantChange(t *testing.T) {
	// NE quadrant then SE quadrant: the chain must split at the turn.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	chains := Build(pts)
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}
	if chains[0].Start != 0 || chains[0].End != 1 {
		t.Errorf("first chain = [%d,%d], want [0,1]", chains[0].Start, chains[0].End)
	}
	if chains[1].Start != 1 || chains[1].End != 2 {
		t.Errorf("second chain = [%d,%d], want [1,2]", chains[1].Start, chains[1].End)
	}
}

func TestChainEnvelope(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 3}}
	chains := Build(pts)
	env := chains[0].Envelope()
	if env.Min != (geom.Point{X: 0, Y: 0}) || env.Max != (geom.Point{X: 2, Y: 3}) {
		t.Errorf("envelope = %v, want [0,0]-[2,3]", env)
	}
}

func TestComputeOverlapsFindsCrossingSegments(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 4}}
	b := []geom.Point{{X: 0, Y: 4}, {X: 4, Y: 0}}
	ca := Build(a)[0]
	cb := Build(b)[0]
	var pairs [][2]int
	ca.ComputeOverlaps(cb, func(s0, s1 int) {
		pairs = append(pairs, [2]int{s0, s1})
	})
	if len(pairs) != 1 || pairs[0] != [2]int{0, 0} {
		t.Errorf("expected exactly one overlapping pair (0,0), got %v", pairs)
	}
}

func TestComputeOverlapsNoneWhenDisjoint(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	b := []geom.Point{{X: 10, Y: 10}, {X: 11, Y: 11}}
	ca := Build(a)[0]
	cb := Build(b)[0]
	called := false
	ca.ComputeOverlaps(cb, func(s0, s1 int) { called = true })
	if called {
		t.Errorf("expected no overlaps for disjoint chains")
	}
}

func TestIndexQueryReturnsInsertedEntries(t *testing.T) {
	idx := NewIndex()
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	for _, c := range Build(pts) {
		idx.Insert(7, c)
	}
	hits := idx.Query(&geom.Bounds{Min: geom.Point{X: -1, Y: -1}, Max: geom.Point{X: 3, Y: 3}})
	if len(hits) == 0 {
		t.Fatalf("expected at least one hit")
	}
	for _, h := range hits {
		if h.StringIndex != 7 {
			t.Errorf("StringIndex = %d, want 7", h.StringIndex)
		}
	}
}
