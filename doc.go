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

// Package buffer computes Minkowski buffers of planar Simple Features
// geometries (Point, LineString, Polygon and their Multi- variants, plus
// GeometryCollection) at a signed distance, with round, flat, or square
// end caps on open lines and points.
//
// The pipeline is a straight port of JTS's BufferOp: generate a raw
// (self-intersecting) offset curve per input component (package
// offsetcurve), snap-round every curve against its mutual intersections
// into a noded, pairwise-disjoint edge set (package noding), assemble
// those edges into a labeled planar graph (package planargraph), and trace
// the graph's boundary edges into shells and holes (package polybuild).
// Buffer itself adds a precision-fallback driver on top: if any stage
// reports a topology exception, the whole pipeline is retried at
// successively coarser fixed precision until it succeeds or the fallback
// ladder is exhausted.
//
// Package validate offers a cheap post-hoc sanity check (envelope, area
// sign, and a densified Hausdorff distance bound) for callers who want to
// assert the result looks right without re-deriving the proof themselves.
package buffer
