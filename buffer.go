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
	"math"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"

	"github.com/simplegeo/jts/config"
	"github.com/simplegeo/jts/noding"
	"github.com/simplegeo/jts/offsetcurve"
	"github.com/simplegeo/jts/planargraph"
	"github.com/simplegeo/jts/polybuild"
	"github.com/simplegeo/jts/precision"
)

// Buffer computes the buffer of g at distance, using DefaultQuadrantSegments
// and DefaultCapStyle.
func Buffer(g geom.Geom, distance float64) (geom.Geom, error) {
	return BufferWithParams(g, distance, DefaultQuadrantSegments, DefaultCapStyle, nil)
}

// BufferQ computes the buffer of g at distance, approximating quarter-circle
// fillets with quadrantSegments straight segments.
func BufferQ(g geom.Geom, distance float64, quadrantSegments int) (geom.Geom, error) {
	return BufferWithParams(g, distance, quadrantSegments, DefaultCapStyle, nil)
}

// BufferFull computes the buffer of g at distance with explicit fillet
// resolution and end-cap style.
func BufferFull(g geom.Geom, distance float64, quadrantSegments int, capStyle CapStyle) (geom.Geom, error) {
	return BufferWithParams(g, distance, quadrantSegments, capStyle, nil)
}

// BufferWithParams is the full entry point, additionally taking a logger
// for the precision-fallback driver's diagnostics (see SPEC_FULL.md §4.9).
// A nil logger defaults to logrus.StandardLogger().
func BufferWithParams(g geom.Geom, distance float64, quadrantSegments int, capStyle CapStyle, logger logrus.FieldLogger) (geom.Geom, error) {
	return bufferWithConfig(g, distance, quadrantSegments, capStyle, maxPrecisionDigits, logger)
}

// BufferWithConfig runs the buffer pipeline tuned by cfg (see config.Default
// and config.LoadDefaults, SPEC_FULL.md §4.10), instead of this package's
// hard-coded defaults. A nil cfg is equivalent to config.Default().
func BufferWithConfig(g geom.Geom, distance float64, cfg *config.Defaults, logger logrus.FieldLogger) (geom.Geom, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return bufferWithConfig(g, distance, cfg.QuadrantSegments, CapStyle(cfg.CapStyle), cfg.MaxPrecisionDigits, logger)
}

func bufferWithConfig(g geom.Geom, distance float64, quadrantSegments int, capStyle CapStyle, maxPrecisionDigits int, logger logrus.FieldLogger) (geom.Geom, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if err := validateInput(g, distance, quadrantSegments, capStyle); err != nil {
		return nil, err
	}

	if g == nil || isEmptyGeom(g) {
		return geom.MultiPolygon{}, nil
	}

	if distance <= 0 && !isPolygonal(g) {
		return geom.MultiPolygon{}, nil
	}

	d := &driver{
		geom:               g,
		distance:           distance,
		quadrantSegments:   quadrantSegments,
		capStyle:           capStyle,
		maxPrecisionDigits: maxPrecisionDigits,
		logger:             logger,
	}
	return d.run()
}

type driver struct {
	geom               geom.Geom
	distance           float64
	quadrantSegments   int
	capStyle           CapStyle
	maxPrecisionDigits int
	logger             logrus.FieldLogger
}

// run executes the TRY_FLOAT -> TRY_FIXED(12) -> ... -> TRY_FIXED(0) -> FAIL
// state machine from spec.md §4.7.
func (d *driver) run() (geom.Geom, error) {
	if result, err := d.attempt(precision.NewFloating()); err == nil {
		return result, nil
	} else {
		if _, ok := err.(InvalidInputError); ok {
			return nil, err
		}
		lastErr := err
		d.logger.WithFields(logrus.Fields{"component": "buffer", "precisionDigits": "float", "err": lastErr}).
			Warn("topology exception at floating precision, retrying with reduced precision")

		env := d.geom.Bounds()
		for k := d.maxPrecisionDigits; k >= 0; k-- {
			var pm precision.Model
			if env == nil {
				pm = precision.NewFixed(1)
			} else {
				scale := precision.ScaleFactorForDigits(env, d.distance, k)
				pm = precision.NewFixed(scale)
			}

			result, err := d.attempt(pm)
			if err == nil {
				d.logger.WithFields(logrus.Fields{"precisionDigits": k, "scale": pm.Scale()}).
					Info("buffer completed at reduced precision")
				return result, nil
			}
			lastErr = err
			d.logger.WithFields(logrus.Fields{"component": "buffer", "precisionDigits": k, "err": err}).
				Warn("topology exception at reduced precision, retrying")
		}

		d.logger.WithFields(logrus.Fields{"component": "buffer", "err": lastErr}).
			Error("buffer failed at every fallback precision")
		return nil, asTopologyException(lastErr)
	}
}

// attempt runs the full offsetcurve -> noding -> planargraph -> polybuild
// pipeline once at a fixed precision model, returning a TopologyException
// (wrapped) on any invariant failure so run can retry at lower precision.
func (d *driver) attempt(pm precision.Model) (geom.Geom, error) {
	oc := offsetcurve.NewBuilder(pm, d.quadrantSegments)
	oc.SetEndCapStyle(offsetcurve.CapStyle(d.capStyle))

	curves, err := generateCurves(d.geom, d.distance, oc)
	if err != nil {
		return nil, err
	}
	if len(curves) == 0 {
		return geom.MultiPolygon{}, nil
	}

	noder := noding.New(pm)
	nodedEdges, err := noder.Node(curves)
	if err != nil {
		return nil, asTopologyException(err)
	}

	inputs := edgeInputs(nodedEdges)
	if len(inputs) == 0 {
		return geom.MultiPolygon{}, nil
	}
	g := planargraph.Build(inputs)

	result, err := polybuild.Build(g)
	if err != nil {
		return nil, asTopologyException(err)
	}
	return result, nil
}

func validateInput(g geom.Geom, distance float64, quadrantSegments int, capStyle CapStyle) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return newInvalidInputError("distance must be finite")
	}
	if quadrantSegments < 1 {
		return newInvalidInputError("quadrantSegments must be >= 1")
	}
	if !capStyle.valid() {
		return newInvalidInputError("unknown cap style")
	}
	if g == nil {
		return nil
	}
	return validateCoordinates(g)
}

func validateCoordinates(g geom.Geom) error {
	b := g.Bounds()
	if b == nil {
		return nil
	}
	for _, v := range []float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newInvalidInputError("geometry contains a NaN or infinite coordinate")
		}
	}
	return nil
}

func isEmptyGeom(g geom.Geom) bool {
	switch t := g.(type) {
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

func isPolygonal(g geom.Geom) bool {
	switch g.(type) {
	case geom.Polygon, geom.MultiPolygon:
		return true
	default:
		return false
	}
}
