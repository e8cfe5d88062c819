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
	"fmt"

	"github.com/ctessum/geom"
)

// InvalidInputError is returned when the input geometry or parameters do
// not satisfy the operation's input contract: NaN/infinite coordinates, an
// unrecognized geometry subtype, a quadrant-segment count below 1, or an
// unknown cap style.
type InvalidInputError struct {
	Reason string
}

func newInvalidInputError(reason string) InvalidInputError {
	return InvalidInputError{Reason: reason}
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("buffer: invalid input: %s", e.Reason)
}

// TopologyException signals that a noding or labeling invariant failed
// while building the buffer at a given precision. It is caught internally
// by the precision-fallback driver and is only returned to the caller once
// every fallback precision has been exhausted.
type TopologyException struct {
	Reason   string
	Location *geom.Point
}

func newTopologyException(reason string, loc *geom.Point) TopologyException {
	return TopologyException{Reason: reason, Location: loc}
}

func (e TopologyException) Error() string {
	if e.Location != nil {
		return fmt.Sprintf("buffer: topology exception at (%g, %g): %s", e.Location.X, e.Location.Y, e.Reason)
	}
	return fmt.Sprintf("buffer: topology exception: %s", e.Reason)
}

// NonRepresentableError describes a numerical primitive, such as the
// intersection of two near-parallel lines, that could not be computed. No
// stage of the pipeline constructs it, so callers never see it; any error
// the precision-fallback driver gives up on is returned as a
// TopologyException.
type NonRepresentableError struct {
	Reason string
}

func newNonRepresentableError(reason string) NonRepresentableError {
	return NonRepresentableError{Reason: reason}
}

func (e NonRepresentableError) Error() string {
	return fmt.Sprintf("buffer: non-representable result: %s", e.Reason)
}

// asTopologyException wraps any error raised by the pipeline into a
// TopologyException, which is the only error kind the precision-fallback
// driver in buffer.go knows how to catch and retry.
func asTopologyException(err error) TopologyException {
	if te, ok := err.(TopologyException); ok {
		return te
	}
	return newTopologyException(err.Error(), nil)
}
