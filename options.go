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

// CapStyle specifies how the buffer curve of a line or point is terminated.
type CapStyle int

const (
	// CapRound terminates the buffer with a circular arc.
	CapRound CapStyle = 1
	// CapFlat abuts the buffer curve directly between the two offset
	// endpoints, with no cap geometry inserted.
	CapFlat CapStyle = 2
	// CapSquare extends the offset segments by the buffer distance and
	// joins them with a square corner.
	CapSquare CapStyle = 3
)

func (c CapStyle) valid() bool {
	return c == CapRound || c == CapFlat || c == CapSquare
}

// DefaultQuadrantSegments is the number of straight segments used to
// approximate a 90 degree fillet when the caller does not specify one. It
// gives a maximum chord error of about 0.5% of the buffer distance.
const DefaultQuadrantSegments = 8

// DefaultCapStyle is the end-cap style used when the caller does not
// specify one.
const DefaultCapStyle = CapRound

// maxPrecisionDigits bounds the number of fixed-precision fallback states
// the driver in buffer.go will try (TRY_FIXED(12) down to TRY_FIXED(0)).
const maxPrecisionDigits = 12
