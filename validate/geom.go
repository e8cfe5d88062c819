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

package validate

import "github.com/ctessum/geom"

func isPolygonal(g geom.Geom) bool {
	switch g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return true
	default:
		return false
	}
}

func isEmpty(g geom.Geom) bool {
	switch t := g.(type) {
	case nil:
		return true
	case geom.Point:
		return false
	case geom.MultiPoint:
		return len(t) == 0
	case geom.LineString:
		return len(t) == 0
	case geom.MultiLineString:
		return len(t) == 0
	case geom.Polygon:
		return len(t) == 0
	case geom.MultiPolygon:
		return len(t) == 0
	case geom.GeometryCollection:
		return len(t) == 0
	default:
		return false
	}
}

func polygonalArea(g geom.Geom) float64 {
	switch t := g.(type) {
	case geom.Polygon:
		return t.Area()
	case geom.MultiPolygon:
		return t.Area()
	default:
		return 0
	}
}

// boundaryPoints flattens every coordinate reachable from g's rings,
// lines, or points into one slice, for use as a Hausdorff-distance sample
// set. Order is not meaningful to the caller.
func boundaryPoints(g geom.Geom) []geom.Point {
	switch t := g.(type) {
	case nil:
		return nil
	case geom.Point:
		return []geom.Point{t}
	case geom.MultiPoint:
		return append([]geom.Point(nil), t...)
	case geom.LineString:
		return append([]geom.Point(nil), t...)
	case geom.MultiLineString:
		var out []geom.Point
		for _, l := range t {
			out = append(out, l...)
		}
		return out
	case geom.Polygon:
		var out []geom.Point
		for _, ring := range t {
			out = append(out, ring...)
		}
		return out
	case geom.MultiPolygon:
		var out []geom.Point
		for _, p := range t {
			out = append(out, boundaryPoints(p)...)
		}
		return out
	case geom.GeometryCollection:
		var out []geom.Point
		for _, sub := range t {
			out = append(out, boundaryPoints(sub)...)
		}
		return out
	default:
		return nil
	}
}
