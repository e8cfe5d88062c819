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

// Package validate is a post-hoc sanity check for a computed buffer
// result: it never re-derives the buffer, it only asks whether the result
// looks like a plausible buffer of the given input at the given distance.
// Every check is short-circuited on first failure, mirroring
// BufferResultValidator/BufferDistanceValidator in the reference
// implementation.
package validate

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/simplegeo/jts/config"
)

// MaxDistanceDiffFrac is the §4.8 distance-check tolerance: the densified
// Hausdorff distance between result and input boundary must lie within
// this fraction of |distance|.
const MaxDistanceDiffFrac = 0.01

// envelopePaddingFrac is the §4.8 envelope-expansion slack.
const envelopePaddingFrac = 0.01

// densifyFraction bounds the spacing of points sampled along a boundary before
// computing the discrete Hausdorff distance; finer than this adds cost
// without meaningfully tightening the check.
const densifyFraction = 0.1

// Warning is a soft validation failure: Validate still returns a bool, but
// a failure is explained here rather than raised as an error.
type Warning struct {
	Location geom.Point
	Message  string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s at (%g, %g)", w.Message, w.Location.X, w.Location.Y)
}

// Validate reports whether result looks like a legal buffer of input at
// distance, using the spec's hard-coded MaxDistanceDiffFrac tolerance. On
// failure, the returned Warning carries a location and a human-readable
// message; Validate never returns an error, only a bool.
func Validate(input geom.Geom, distance float64, result geom.Geom) (bool, *Warning) {
	return ValidateWithTolerance(input, distance, result, MaxDistanceDiffFrac)
}

// ValidateWithConfig runs Validate using cfg.DistanceTolerranceFraction
// (see config.Default and config.LoadDefaults, SPEC_FULL.md §4.10) in place
// of the hard-coded MaxDistanceDiffFrac. A nil cfg is equivalent to
// config.Default().
func ValidateWithConfig(input geom.Geom, distance float64, result geom.Geom, cfg *config.Defaults) (bool, *Warning) {
	if cfg == nil {
		cfg = config.Default()
	}
	return ValidateWithTolerance(input, distance, result, cfg.DistanceTolerranceFraction)
}

// ValidateWithTolerance is Validate with the distance-check tolerance
// (fraction of |distance|) taken as a parameter instead of the
// MaxDistanceDiffFrac constant.
func ValidateWithTolerance(input geom.Geom, distance float64, result geom.Geom, maxDistanceDiffFrac float64) (bool, *Warning) {
	if ok, w := checkResultType(result); !ok {
		return false, w
	}

	if isEmpty(input) {
		if !isEmpty(result) {
			return false, &Warning{Message: "expected an empty result for an empty input"}
		}
		return true, nil
	}

	if distance <= 0 && !isPolygonal(input) {
		if !isEmpty(result) {
			return false, &Warning{Message: "expected an empty result for a non-positive distance on non-polygonal input"}
		}
		return true, nil
	}

	if isEmpty(result) && distance > 0 {
		return false, &Warning{Message: "result is unexpectedly empty for a positive distance"}
	}

	if ok, w := checkEnvelope(input, distance, result); !ok {
		return false, w
	}
	if ok, w := checkAreaSign(input, distance, result); !ok {
		return false, w
	}
	if ok, w := checkDistance(input, distance, result, maxDistanceDiffFrac); !ok {
		return false, w
	}
	return true, nil
}

func checkResultType(result geom.Geom) (bool, *Warning) {
	switch result.(type) {
	case geom.Polygon, geom.MultiPolygon, nil:
		return true, nil
	default:
		return false, &Warning{Message: "result is not a Polygon or MultiPolygon"}
	}
}

func checkEnvelope(input geom.Geom, distance float64, result geom.Geom) (bool, *Warning) {
	if distance < 0 {
		return true, nil
	}
	inEnv := input.Bounds()
	resEnv := result.Bounds()
	if inEnv == nil || resEnv == nil {
		return true, nil
	}

	expected := &geom.Bounds{
		Min: geom.Point{X: inEnv.Min.X - distance, Y: inEnv.Min.Y - distance},
		Max: geom.Point{X: inEnv.Max.X + distance, Y: inEnv.Max.Y + distance},
	}
	pad := envelopePaddingFrac * math.Abs(distance)
	if resEnv.Min.X-pad > expected.Min.X || resEnv.Min.Y-pad > expected.Min.Y ||
		resEnv.Max.X+pad < expected.Max.X || resEnv.Max.Y+pad < expected.Max.Y {
		return false, &Warning{
			Location: geom.Point{X: resEnv.Min.X, Y: resEnv.Min.Y},
			Message:  "result envelope does not contain the expanded input envelope",
		}
	}
	return true, nil
}

func checkAreaSign(input geom.Geom, distance float64, result geom.Geom) (bool, *Warning) {
	if !isPolygonal(input) {
		return true, nil
	}
	inArea := polygonalArea(input)
	resArea := polygonalArea(result)
	diff := resArea - inArea
	switch {
	case distance > 0 && diff < -areaEps(inArea):
		return false, &Warning{Message: "result area is smaller than input area for a positive distance"}
	case distance < 0 && diff > areaEps(inArea):
		return false, &Warning{Message: "result area is larger than input area for a negative distance"}
	}
	return true, nil
}

func areaEps(a float64) float64 {
	return 1e-9 * math.Max(a, 1)
}

func checkDistance(input geom.Geom, distance float64, result geom.Geom, maxDistanceDiffFrac float64) (bool, *Warning) {
	inputPts := densify(boundaryPoints(input), densifyFraction*math.Max(math.Abs(distance), 1))
	resultPts := densify(boundaryPoints(result), densifyFraction*math.Max(math.Abs(distance), 1))
	if len(inputPts) == 0 || len(resultPts) == 0 {
		return true, nil
	}

	hd := math.Max(directedHausdorff(resultPts, inputPts), directedHausdorff(inputPts, resultPts))
	lo := math.Abs(distance) * (1 - maxDistanceDiffFrac)
	hi := math.Abs(distance) * (1 + maxDistanceDiffFrac)
	if hd < lo || hd > hi {
		return false, &Warning{
			Location: resultPts[0],
			Message:  fmt.Sprintf("boundary Hausdorff distance %.6g outside expected range [%.6g, %.6g]", hd, lo, hi),
		}
	}
	return true, nil
}

// directedHausdorff returns sup_{a in from} inf_{b in to} dist(a,b).
func directedHausdorff(from, to []geom.Point) float64 {
	worst := 0.0
	for _, a := range from {
		best := math.Inf(1)
		for _, b := range to {
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < best {
				best = d
			}
		}
		if best > worst {
			worst = best
		}
	}
	return worst
}

// densify inserts extra points along each consecutive pair so that no gap
// exceeds maxSegment, which keeps the discrete Hausdorff distance from
// missing a poorly-sampled stretch of a long edge.
func densify(pts []geom.Point, maxSegment float64) []geom.Point {
	if maxSegment <= 0 || len(pts) < 2 {
		return pts
	}
	out := make([]geom.Point, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		out = append(out, p0)
		length := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		steps := int(length / maxSegment)
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps+1)
			out = append(out, geom.Point{X: p0.X + t*(p1.X-p0.X), Y: p0.Y + t*(p1.Y-p0.Y)})
		}
	}
	out = append(out, pts[len(pts)-1])
	return out
}
