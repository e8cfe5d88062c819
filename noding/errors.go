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

package noding

import (
	"fmt"

	"github.com/ctessum/geom"
)

// TopologyError is raised when the noding invariants cannot be satisfied at
// the active precision: Node raises it when a snap collapses an entire
// non-degenerate segment to zero length. It is raised in no other case; a
// segment passing through a hot pixel is not checked for a representable
// entry coordinate. The root buffer package catches this and retries at a
// coarser precision.
type TopologyError struct {
	Reason   string
	Location geom.Point
}

func newTopologyError(reason string, loc geom.Point) TopologyError {
	return TopologyError{Reason: reason, Location: loc}
}

func (e TopologyError) Error() string {
	return fmt.Sprintf("noding: %s at (%g, %g)", e.Reason, e.Location.X, e.Location.Y)
}
