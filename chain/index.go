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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Entry is a single monotone chain registered in an Index, tagged with the
// index of the segment string it came from so the noder can tell which
// chains belong to the same string (and so may legitimately share an
// endpoint without that counting as a crossing).
type Entry struct {
	StringIndex int
	Chain       *Chain
}

// Bounds implements rtree.Spatial.
func (e *Entry) Bounds() *geom.Bounds {
	return e.Chain.Envelope()
}

// Index is a spatial index of monotone chains drawn from any number of
// segment strings, used by the noder to cut the set of segment pairs it
// must test for intersection down to those whose chains plausibly overlap.
type Index struct {
	tree *rtree.Rtree
}

// NewIndex returns an empty chain index.
func NewIndex() *Index {
	return &Index{tree: rtree.NewTree(4, 10)}
}

// Insert registers a chain belonging to the segment string stringIndex.
func (idx *Index) Insert(stringIndex int, c *Chain) {
	idx.tree.Insert(&Entry{StringIndex: stringIndex, Chain: c})
}

// Query returns every entry whose envelope intersects env.
func (idx *Index) Query(env *geom.Bounds) []*Entry {
	hits := idx.tree.SearchIntersect(env)
	out := make([]*Entry, len(hits))
	for i, h := range hits {
		out[i] = h.(*Entry)
	}
	return out
}
