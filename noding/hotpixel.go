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

// Package noding turns the raw, self-intersecting offset curves emitted by
// offsetcurve into a fully noded set of two-point segments, by snap-rounding
// every intersection onto a grid of hot pixels.
package noding

import (
	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/predicate"
)

// HotPixel is the axis-aligned square of side width centered on a rounded
// node coordinate. Any segment that geometrically enters the square is
// snapped so that it passes through Center instead.
type HotPixel struct {
	Center    geom.Point
	halfWidth float64
}

// NewHotPixel returns the hot pixel of the given side length centered on
// center. A non-positive width is replaced by a tiny epsilon, so that a
// floating precision model (which has no grid) still gets pixels narrow
// enough to only catch points that are already bit-for-bit equal to Center.
func NewHotPixel(center geom.Point, width float64) *HotPixel {
	if width <= 0 {
		width = 1e-9
	}
	return &HotPixel{Center: center, halfWidth: width / 2}
}

// Envelope returns the pixel's bounding square.
func (hp *HotPixel) Envelope() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: hp.Center.X - hp.halfWidth, Y: hp.Center.Y - hp.halfWidth},
		Max: geom.Point{X: hp.Center.X + hp.halfWidth, Y: hp.Center.Y + hp.halfWidth},
	}
}

func (hp *HotPixel) containsPoint(p geom.Point) bool {
	env := hp.Envelope()
	return p.X >= env.Min.X && p.X <= env.Max.X && p.Y >= env.Min.Y && p.Y <= env.Max.Y
}

func (hp *HotPixel) corners() [4]geom.Point {
	env := hp.Envelope()
	return [4]geom.Point{
		{X: env.Min.X, Y: env.Min.Y},
		{X: env.Max.X, Y: env.Min.Y},
		{X: env.Max.X, Y: env.Max.Y},
		{X: env.Min.X, Y: env.Max.Y},
	}
}

// Intersects reports whether the closed segment [p0,p1] enters hp's square,
// either by passing through its interior or by an endpoint lying within it.
func (hp *HotPixel) Intersects(p0, p1 geom.Point) bool {
	env := hp.Envelope()
	segEnv := &geom.Bounds{Min: p0, Max: p0}
	segEnv.Extend(&geom.Bounds{Min: p1, Max: p1})
	if !env.Overlaps(segEnv) {
		return false
	}
	if hp.containsPoint(p0) || hp.containsPoint(p1) {
		return true
	}
	corners := hp.corners()
	for i := 0; i < 4; i++ {
		s0, s1 := corners[i], corners[(i+1)%4]
		if predicate.ComputeIntersection(p0, p1, s0, s1, nil).HasIntersection() {
			return true
		}
	}
	return false
}
