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

// Package offsetcurve builds the raw (unnoded) offset curve for a single
// line, ring or point component of a geometry being buffered. The curve it
// emits will generally self-intersect; resolving that is the job of the
// noding and planar-graph stages downstream. Every point it emits is
// rounded through a precision.Model before being appended.
package offsetcurve

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/predicate"
	"github.com/simplegeo/jts/precision"
)

// Side identifies which side of a directed segment an offset curve lies on.
type Side int

const (
	Left  Side = 1
	Right Side = -1
)

// CapStyle selects how an offset curve terminates the two ends of an open
// line. The numeric values match the root package's CapStyle (options.go).
type CapStyle int

const (
	CapRound  CapStyle = 1
	CapFlat   CapStyle = 2
	CapSquare CapStyle = 3
)

const piOver2 = math.Pi / 2.0

// maxClosingSegLen bounds how long a synthetic closing segment inserted at
// a sharp inside turn may be before it is considered suspect; kept for
// parity with the reference algorithm's tuning constant, though the Go
// port does not currently special-case it.
const maxClosingSegLen = 3.0

// Builder computes raw offset curves at a fixed distance and quadrant
// resolution. A Builder is stateful across a single call to LineCurve or
// RingCurve and must not be used concurrently from multiple goroutines, but
// may be reused sequentially for many calls.
type Builder struct {
	precisionModel  precision.Model
	filletAngleQuantum float64
	endCapStyle     CapStyle

	distance           float64
	maxCurveSegmentError float64
	pts                []geom.Point

	s0, s1, s2   geom.Point
	seg0, seg1   predicate.Segment
	offset0      predicate.Segment
	offset1      predicate.Segment
	side         Side
}

// NewBuilder constructs a Builder with the given precision model and
// fillet resolution. quadrantSegments is clamped to a minimum of 1.
func NewBuilder(pm precision.Model, quadrantSegments int) *Builder {
	if quadrantSegments < 1 {
		quadrantSegments = 1
	}
	return &Builder{
		precisionModel:     pm,
		filletAngleQuantum: piOver2 / float64(quadrantSegments),
		endCapStyle:        CapRound,
	}
}

// SetEndCapStyle changes the cap style used by LineCurve for subsequent
// calls.
func (b *Builder) SetEndCapStyle(style CapStyle) {
	b.endCapStyle = style
}

// LineCurve computes the raw offset curve of an open line string at the
// given distance. A non-positive distance yields an empty curve, matching
// the convention that a degenerate buffer of a line has no area. A single
// input point degenerates to an end cap centered on that point.
func (b *Builder) LineCurve(inputPts []geom.Point, distance float64) []geom.Point {
	if distance <= 0.0 {
		return nil
	}
	b.init(distance)
	if len(inputPts) <= 1 {
		switch b.endCapStyle {
		case CapRound:
			b.addCircle(inputPts[0], distance)
		case CapSquare:
			b.addSquare(inputPts[0], distance)
		}
	} else {
		b.computeLineBufferCurve(inputPts)
	}
	return b.coordinates()
}

// RingCurve computes the raw offset curve of a closed ring at the given
// distance, on the given side. A ring with two or fewer points degenerates
// to LineCurve. A zero distance returns the ring unchanged.
func (b *Builder) RingCurve(inputPts []geom.Point, side Side, distance float64) []geom.Point {
	b.init(distance)
	if len(inputPts) <= 2 {
		return b.LineCurve(inputPts, distance)
	}
	if distance == 0.0 {
		out := make([]geom.Point, len(inputPts))
		copy(out, inputPts)
		return out
	}
	b.computeRingBufferCurve(inputPts, side)
	return b.coordinates()
}

func (b *Builder) init(distance float64) {
	b.distance = distance
	b.maxCurveSegmentError = distance * (1 - math.Cos(b.filletAngleQuantum/2.0))
	b.pts = nil
}

func (b *Builder) coordinates() []geom.Point {
	if len(b.pts) > 1 {
		start, end := b.pts[0], b.pts[1]
		if start != end {
			b.addPt(start)
		}
	}
	out := make([]geom.Point, len(b.pts))
	copy(out, b.pts)
	return out
}

func (b *Builder) computeLineBufferCurve(inputPts []geom.Point) {
	n := len(inputPts) - 1

	// left side
	b.initSideSegments(inputPts[0], inputPts[1], Left)
	for i := 2; i <= n; i++ {
		b.addNextSegment(inputPts[i], true)
	}
	b.addLastSegment()
	b.addLineEndCap(inputPts[n-1], inputPts[n])

	// right side, traversed backwards
	b.initSideSegments(inputPts[n], inputPts[n-1], Left)
	for i := n - 2; i >= 0; i-- {
		b.addNextSegment(inputPts[i], true)
	}
	b.addLastSegment()
	b.addLineEndCap(inputPts[1], inputPts[0])

	b.closePts()
}

func (b *Builder) computeRingBufferCurve(inputPts []geom.Point, side Side) {
	n := len(inputPts) - 1
	b.initSideSegments(inputPts[n-1], inputPts[0], side)
	for i := 1; i <= n; i++ {
		b.addNextSegment(inputPts[i], i != 1)
	}
	b.closePts()
}

func (b *Builder) addPt(pt geom.Point) {
	bufPt := b.precisionModel.MakePrecise(pt)
	if len(b.pts) >= 1 && b.pts[len(b.pts)-1] == bufPt {
		return
	}
	b.pts = append(b.pts, bufPt)
}

func (b *Builder) closePts() {
	if len(b.pts) < 1 {
		return
	}
	start := b.pts[0]
	last := b.pts[len(b.pts)-1]
	if start == last {
		return
	}
	b.pts = append(b.pts, start)
}

func (b *Builder) initSideSegments(s1, s2 geom.Point, side Side) {
	b.s1 = s1
	b.s2 = s2
	b.side = side
	b.seg1 = predicate.Segment{P0: s1, P1: s2}
	b.offset1 = computeOffsetSegment(b.seg1, side, b.distance)
}

func (b *Builder) addNextSegment(p geom.Point, addStartPoint bool) {
	b.s0 = b.s1
	b.s1 = b.s2
	b.s2 = p
	b.seg0 = predicate.Segment{P0: b.s0, P1: b.s1}
	b.offset0 = computeOffsetSegment(b.seg0, b.side, b.distance)
	b.seg1 = predicate.Segment{P0: b.s1, P1: b.s2}
	b.offset1 = computeOffsetSegment(b.seg1, b.side, b.distance)

	if b.s1 == b.s2 {
		return
	}

	orientation := predicate.ComputeOrientation(b.s0, b.s1, b.s2)
	outsideTurn := (orientation == predicate.Clockwise && b.side == Left) ||
		(orientation == predicate.CounterClockwise && b.side == Right)

	switch {
	case orientation == predicate.Collinear:
		inter := predicate.ComputeIntersection(b.s0, b.s1, b.s1, b.s2, b.precisionModel.MakePrecise)
		if inter.Kind == predicate.SegmentIntersection {
			// segments are collinear but reversed: bridge the gap with a
			// full half-circle fillet in the clockwise sense. This only
			// happens for open lines; polygon rings never have two
			// consecutive antiparallel segments without self-intersecting.
			b.addFillet(b.s1, b.offset0.P1, b.offset1.P0, predicate.Clockwise, b.distance)
		}
	case outsideTurn:
		if addStartPoint {
			b.addPt(b.offset0.P1)
		}
		b.addFillet(b.s1, b.offset0.P1, b.offset1.P0, orientation, b.distance)
		b.addPt(b.offset1.P0)
	default:
		inter := predicate.ComputeIntersection(b.offset0.P0, b.offset0.P1, b.offset1.P0, b.offset1.P1, b.precisionModel.MakePrecise)
		if inter.HasIntersection() {
			b.addPt(inter.Pt0)
			return
		}
		// The offsets don't meet: either the corner is near-parallel
		// (use one of the offset endpoints) or genuinely sharp (bridge
		// through the original vertex so the curve stays continuous).
		if distanceBetween(b.offset0.P1, b.offset1.P0) < b.distance/1000.0 {
			b.addPt(b.offset0.P1)
		} else {
			b.addPt(b.offset0.P1)
			b.addPt(b.s1)
			b.addPt(b.offset1.P0)
		}
	}
}

func (b *Builder) addLastSegment() {
	b.addPt(b.offset1.P1)
}

func computeOffsetSegment(seg predicate.Segment, side Side, distance float64) predicate.Segment {
	sideSign := 1.0
	if side == Right {
		sideSign = -1.0
	}
	dx := seg.P1.X - seg.P0.X
	dy := seg.P1.Y - seg.P0.Y
	length := math.Hypot(dx, dy)
	ux := sideSign * distance * dx / length
	uy := sideSign * distance * dy / length
	return predicate.Segment{
		P0: geom.Point{X: seg.P0.X - uy, Y: seg.P0.Y + ux},
		P1: geom.Point{X: seg.P1.X - uy, Y: seg.P1.Y + ux},
	}
}

func distanceBetween(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func (b *Builder) addLineEndCap(p0, p1 geom.Point) {
	seg := predicate.Segment{P0: p0, P1: p1}
	offsetL := computeOffsetSegment(seg, Left, b.distance)
	offsetR := computeOffsetSegment(seg, Right, b.distance)

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	angle := math.Atan2(dy, dx)

	switch b.endCapStyle {
	case CapRound:
		b.addPt(offsetL.P1)
		b.addFilletByAngle(p1, angle+math.Pi/2, angle-math.Pi/2, predicate.Clockwise, b.distance)
		b.addPt(offsetR.P1)
	case CapFlat:
		b.addPt(offsetL.P1)
		b.addPt(offsetR.P1)
	case CapSquare:
		sideOffsetX := math.Abs(b.distance) * math.Cos(angle)
		sideOffsetY := math.Abs(b.distance) * math.Sin(angle)
		b.addPt(geom.Point{X: offsetL.P1.X + sideOffsetX, Y: offsetL.P1.Y + sideOffsetY})
		b.addPt(geom.Point{X: offsetR.P1.X + sideOffsetX, Y: offsetR.P1.Y + sideOffsetY})
	}
}

// addFillet adds a fillet curve between two points p0 and p1 on a circle
// of the given distance centered at p, including the endpoints themselves.
func (b *Builder) addFillet(p, p0, p1 geom.Point, direction predicate.Orientation, distance float64) {
	dx0 := p0.X - p.X
	dy0 := p0.Y - p.Y
	startAngle := math.Atan2(dy0, dx0)
	dx1 := p1.X - p.X
	dy1 := p1.Y - p.Y
	endAngle := math.Atan2(dy1, dx1)

	if direction == predicate.Clockwise {
		if startAngle <= endAngle {
			startAngle += 2.0 * math.Pi
		}
	} else {
		if startAngle >= endAngle {
			startAngle -= 2.0 * math.Pi
		}
	}
	b.addPt(p0)
	b.addFilletByAngle(p, startAngle, endAngle, direction, distance)
	b.addPt(p1)
}

// addFilletByAngle adds the points of a fillet from startAngle up to, but
// not including, endAngle: the point at startAngle is added, and the
// caller adds the end point itself.
func (b *Builder) addFilletByAngle(p geom.Point, startAngle, endAngle float64, direction predicate.Orientation, distance float64) {
	directionFactor := 1.0
	if direction == predicate.Clockwise {
		directionFactor = -1.0
	}

	totalAngle := math.Abs(startAngle - endAngle)
	nSegs := int(totalAngle/b.filletAngleQuantum + 0.5)
	if nSegs < 1 {
		return
	}

	angleInc := totalAngle / float64(nSegs)
	for currAngle := 0.0; currAngle < totalAngle; currAngle += angleInc {
		angle := startAngle + directionFactor*currAngle
		b.addPt(geom.Point{X: p.X + distance*math.Cos(angle), Y: p.Y + distance*math.Sin(angle)})
	}
}

func (b *Builder) addCircle(p geom.Point, distance float64) {
	b.addPt(geom.Point{X: p.X + distance, Y: p.Y})
	b.addFilletByAngle(p, 0.0, 2.0*math.Pi, predicate.Clockwise, distance)
}

func (b *Builder) addSquare(p geom.Point, distance float64) {
	b.addPt(geom.Point{X: p.X + distance, Y: p.Y + distance})
	b.addPt(geom.Point{X: p.X + distance, Y: p.Y - distance})
	b.addPt(geom.Point{X: p.X - distance, Y: p.Y - distance})
	b.addPt(geom.Point{X: p.X - distance, Y: p.Y + distance})
	b.addPt(geom.Point{X: p.X + distance, Y: p.Y + distance})
}
