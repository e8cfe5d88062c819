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

import "github.com/ctessum/geom"

// SegmentString is one of the raw offset-curve polylines fed into a Noder.
// Context carries an opaque tag the caller can use to recover which input
// ring or line the string was generated from, after noding has split it
// into many independent pieces.
type SegmentString struct {
	Pts     []geom.Point
	Context interface{}
}

// NodedEdge is a single two-point output segment of Node, carrying forward
// its originating SegmentString's Context.
type NodedEdge struct {
	P0, P1  geom.Point
	Context interface{}
}
