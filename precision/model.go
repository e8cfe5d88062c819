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

// Package precision implements the coordinate-rounding policy that the
// noder and offset-curve builder snap every emitted point through. A
// precision model is either floating (no rounding) or fixed to a grid of
// spacing 1/scale.
package precision

import (
	"math"

	"github.com/ctessum/geom"
)

// Kind distinguishes the two precision-model variants.
type Kind int

const (
	// Floating performs no rounding; every double-precision value is kept
	// as computed.
	Floating Kind = iota
	// Fixed rounds every ordinate to the nearest multiple of 1/Scale.
	Fixed
)

// Model is a coordinate-rounding policy. The zero value is a floating
// model. Construct a fixed model with NewFixed.
type Model struct {
	kind  Kind
	scale float64
}

// NewFloating returns a precision model that performs no rounding.
func NewFloating() Model {
	return Model{kind: Floating}
}

// NewFixed returns a precision model that snaps ordinates to the grid
// 1/scale. scale must be greater than zero.
func NewFixed(scale float64) Model {
	if scale <= 0 {
		panic("precision: fixed scale must be > 0")
	}
	return Model{kind: Fixed, scale: scale}
}

// Kind reports whether m is Floating or Fixed.
func (m Model) Kind() Kind { return m.kind }

// Scale returns the model's scale factor. It is 1 for a floating model,
// for which scale has no effect on MakePrecise.
func (m Model) Scale() float64 {
	if m.kind == Floating {
		return 1
	}
	return m.scale
}

// GridSize returns the spacing between representable ordinates, 1/scale.
// For a floating model this is 0 (no grid).
func (m Model) GridSize() float64 {
	if m.kind == Floating {
		return 0
	}
	return 1 / m.scale
}

// MakePreciseValue rounds a single ordinate to the model's grid:
// round(v*scale)/scale. It is idempotent and order-preserving, so applying
// it twice, or to values that were already equal, leaves them equal.
func (m Model) MakePreciseValue(v float64) float64 {
	if m.kind == Floating {
		return v
	}
	return math.Round(v*m.scale) / m.scale
}

// MakePrecise rounds both ordinates of p to the model's grid.
func (m Model) MakePrecise(p geom.Point) geom.Point {
	if m.kind == Floating {
		return p
	}
	return geom.Point{X: m.MakePreciseValue(p.X), Y: m.MakePreciseValue(p.Y)}
}

// MakePreciseSlice rounds every point of pts in place and returns it.
func (m Model) MakePreciseSlice(pts []geom.Point) []geom.Point {
	if m.kind == Floating {
		return pts
	}
	for i, p := range pts {
		pts[i] = m.MakePrecise(p)
	}
	return pts
}

// ScaleFactorForDigits computes a scale factor that limits the combined
// geometry envelope and buffer distance to at most maxPrecisionDigits
// significant digits, mirroring BufferOp.precisionScaleFactor in the
// reference implementation this package is modeled on.
func ScaleFactorForDigits(env *geom.Bounds, distance float64, maxPrecisionDigits int) float64 {
	envSize := math.Max(env.Max.X-env.Min.X, env.Max.Y-env.Min.Y)
	expandBy := 0.0
	if distance > 0 {
		expandBy = distance
	}
	bufEnvSize := envSize + 2*expandBy
	if bufEnvSize <= 0 {
		bufEnvSize = 1
	}
	bufEnvLog10 := int(math.Log(bufEnvSize)/math.Log(10) + 1.0)
	minUnitLog10 := bufEnvLog10 - maxPrecisionDigits
	return math.Pow(10.0, float64(-minUnitLog10))
}
