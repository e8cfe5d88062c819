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

// Package chain partitions a polyline into monotone chains, the unit the
// noding stage uses to cut down the number of segment pairs it has to test
// for intersection. A monotone chain is a run of consecutive segments that
// all point into the same quadrant, so the envelope of any sub-range of the
// chain is just the envelope of its two endpoints.
package chain

import "github.com/ctessum/geom"

// Chain is a monotone run of points pts[Start:End+1].
type Chain struct {
	Pts        []geom.Point
	Start, End int
	env        *geom.Bounds
}

// Envelope returns (and caches) the axis-aligned bounding box of the chain.
func (c *Chain) Envelope() *geom.Bounds {
	if c.env == nil {
		env := geom.NewBoundsPoint(c.Pts[c.Start])
		env.Extend(geom.NewBoundsPoint(c.Pts[c.End]))
		c.env = env
	}
	return c.env
}

// Build partitions pts into monotone chains. pts must contain at least two
// points and no two consecutive points may be equal; a two-point input
// yields a single chain.
func Build(pts []geom.Point) []*Chain {
	starts := startIndices(pts)
	chains := make([]*Chain, 0, len(starts)-1)
	for i := 0; i < len(starts)-1; i++ {
		chains = append(chains, &Chain{Pts: pts, Start: starts[i], End: starts[i+1]})
	}
	return chains
}

func startIndices(pts []geom.Point) []int {
	start := 0
	starts := []int{start}
	for start < len(pts)-1 {
		last := findChainEnd(pts, start)
		starts = append(starts, last)
		start = last
	}
	return starts
}

func findChainEnd(pts []geom.Point, start int) int {
	chainQuad := QuadrantOf(pts[start], pts[start+1])
	last := start + 1
	for last < len(pts) {
		if QuadrantOf(pts[last-1], pts[last]) != chainQuad {
			break
		}
		last++
	}
	return last - 1
}

// OverlapAction is invoked for each pair of candidate segments, identified
// by the index of their first endpoint in each chain's Pts slice, whose
// bounding boxes overlap.
type OverlapAction func(start0, start1 int)

// ComputeOverlaps finds all pairs of segments between c and other whose
// envelopes overlap, by recursively bisecting both chains' index ranges and
// pruning ranges whose combined envelope cannot intersect. This is what
// makes pairing two chains of length n and m cost O(log n + log m) per
// overlapping pair, rather than O(n*m) for the naive approach.
func (c *Chain) ComputeOverlaps(other *Chain, action OverlapAction) {
	c.computeOverlaps(c.Start, c.End, other, other.Start, other.End, action)
}

// computeOverlaps operates on point-index ranges [start0,end0] and
// [start1,end1]. The base case is a range spanning exactly one segment
// (end-start == 1) on both sides; anything wider is bisected at its
// midpoint and each quarter is checked (and recursed into) only if its
// envelope overlaps the other range's envelope.
func (c *Chain) computeOverlaps(start0, end0 int, other *Chain, start1, end1 int, action OverlapAction) {
	if end0-start0 == 1 && end1-start1 == 1 {
		if rangesOverlap(c.Pts, start0, end0, other.Pts, start1, end1) {
			action(start0, start1)
		}
		return
	}
	if !rangesOverlap(c.Pts, start0, end0, other.Pts, start1, end1) {
		return
	}

	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2

	if start0 < mid0 {
		if start1 < mid1 {
			c.computeOverlaps(start0, mid0, other, start1, mid1, action)
		}
		if mid1 < end1 {
			c.computeOverlaps(start0, mid0, other, mid1, end1, action)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			c.computeOverlaps(mid0, end0, other, start1, mid1, action)
		}
		if mid1 < end1 {
			c.computeOverlaps(mid0, end0, other, mid1, end1, action)
		}
	}
}

func rangesOverlap(pts0 []geom.Point, start0, end0 int, pts1 []geom.Point, start1, end1 int) bool {
	b0 := geom.NewBoundsPoint(pts0[start0])
	b0.Extend(geom.NewBoundsPoint(pts0[end0]))
	b1 := geom.NewBoundsPoint(pts1[start1])
	b1.Extend(geom.NewBoundsPoint(pts1[end1]))
	return b0.Overlaps(b1)
}
