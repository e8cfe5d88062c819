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

package buffer

import (
	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/noding"
	"github.com/simplegeo/jts/offsetcurve"
	"github.com/simplegeo/jts/planargraph"
	"github.com/simplegeo/jts/predicate"
)

// curveLabel is the noding.SegmentString.Context every generated curve
// carries, so the label chosen here (by generator type, per spec.md §4.5)
// survives noding and is read straight back off in edgeInputs.
type curveLabel struct {
	label planargraph.Label
}

// lineLabel puts the buffer body on the right: LineCurve closes point and
// line curves into clockwise loops.
var (
	shellLabel = curveLabel{label: planargraph.Label{Left: planargraph.Interior, Right: planargraph.Exterior}}
	holeLabel  = curveLabel{label: planargraph.Label{Left: planargraph.Exterior, Right: planargraph.Interior}}
	lineLabel  = curveLabel{label: planargraph.Label{Left: planargraph.Exterior, Right: planargraph.Interior}}
)

// generateCurves walks g and produces one raw offset-curve SegmentString
// per line, ring, or point component. Every polygon ring is offset away
// from the polygon's material for a positive distance and into it for a
// negative one (see polygonCurves). Lines and points contribute nothing
// when distance <= 0.
func generateCurves(g geom.Geom, distance float64, oc *offsetcurve.Builder) ([]*noding.SegmentString, error) {
	switch t := g.(type) {
	case nil:
		return nil, nil
	case geom.Point:
		return pointCurve(t, distance, oc), nil
	case *geom.Point:
		return pointCurve(*t, distance, oc), nil
	case geom.MultiPoint:
		var out []*noding.SegmentString
		for _, p := range t {
			out = append(out, pointCurve(p, distance, oc)...)
		}
		return out, nil
	case geom.LineString:
		return lineCurve(t, distance, oc), nil
	case geom.MultiLineString:
		var out []*noding.SegmentString
		for _, l := range t {
			out = append(out, lineCurve(l, distance, oc)...)
		}
		return out, nil
	case geom.Polygon:
		return polygonCurves(t, distance, oc), nil
	case geom.MultiPolygon:
		var out []*noding.SegmentString
		for _, p := range t {
			out = append(out, polygonCurves(p, distance, oc)...)
		}
		return out, nil
	case geom.GeometryCollection:
		var out []*noding.SegmentString
		for _, sub := range t {
			curves, err := generateCurves(sub, distance, oc)
			if err != nil {
				return nil, err
			}
			out = append(out, curves...)
		}
		return out, nil
	default:
		return nil, newInvalidInputError("unsupported geometry type")
	}
}

func pointCurve(p geom.Point, distance float64, oc *offsetcurve.Builder) []*noding.SegmentString {
	if distance <= 0 {
		return nil
	}
	pts := oc.LineCurve([]geom.Point{p}, distance)
	if len(pts) < 3 {
		return nil
	}
	return []*noding.SegmentString{{Pts: pts, Context: lineLabel}}
}

func lineCurve(l geom.LineString, distance float64, oc *offsetcurve.Builder) []*noding.SegmentString {
	if distance <= 0 || len(l) < 2 {
		return nil
	}
	pts := oc.LineCurve([]geom.Point(l), distance)
	if len(pts) < 3 {
		return nil
	}
	return []*noding.SegmentString{{Pts: pts, Context: lineLabel}}
}

// polygonCurves offsets each ring of p. The side and label picked for a
// shell or a hole hold for a CCW ring (material to the left of a shell and
// to the right of a hole); a CW ring (predicate.IsCCW false) has its offset
// side and its label's Left/Right both swapped, mirroring the runtime
// normalization OffsetCurveSetBuilder.addPolygonRing performs, so either
// winding is accepted for shells and holes alike. A negative distance
// flips the side once more and is handed to RingCurve as its magnitude,
// so that corner classification sees the side the offset really lies on.
func polygonCurves(p geom.Polygon, distance float64, oc *offsetcurve.Builder) []*noding.SegmentString {
	var out []*noding.SegmentString
	for i, ring := range p {
		if len(ring) < 4 {
			continue
		}
		isShellRing := i == 0

		side := offsetcurve.Right
		label := shellLabel.label
		if !isShellRing {
			side = offsetcurve.Left
			label = holeLabel.label
		}
		if !predicate.IsCCW(ring) {
			side = flipSide(side)
			label = swapLabel(label)
		}
		ringDistance := distance
		if distance < 0 {
			side = flipSide(side)
			ringDistance = -distance
		}

		// RingCurve expects the closed OGC form (first point repeated at
		// the end), which is exactly how geom.Polygon stores its rings.
		pts := oc.RingCurve(ring, side, ringDistance)
		if len(pts) < 3 {
			continue
		}
		out = append(out, &noding.SegmentString{Pts: pts, Context: curveLabel{label: label}})
	}
	return out
}

func flipSide(s offsetcurve.Side) offsetcurve.Side {
	if s == offsetcurve.Right {
		return offsetcurve.Left
	}
	return offsetcurve.Right
}

func swapLabel(l planargraph.Label) planargraph.Label {
	return planargraph.Label{Left: l.Right, Right: l.Left}
}

// edgeInputs converts noded edges back into labeled planargraph.EdgeInput,
// reading each edge's generator label off the SegmentString context that
// survived noding.
func edgeInputs(edges []noding.NodedEdge) []planargraph.EdgeInput {
	out := make([]planargraph.EdgeInput, 0, len(edges))
	for _, e := range edges {
		if e.P0 == e.P1 {
			continue
		}
		ctx, _ := e.Context.(curveLabel)
		out = append(out, planargraph.EdgeInput{P0: e.P0, P1: e.P1, Label: ctx.label})
	}
	return out
}
