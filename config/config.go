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

// Package config holds the tunable defaults for the buffer pipeline: the
// fillet resolution, end-cap style, precision-fallback ladder depth, and
// the result validator's distance tolerance. None of it is required to
// call buffer.Buffer directly, which has its own hard-coded defaults; it
// exists for callers who want to tune or load these knobs from a file
// instead of hard-coding them at each call site.
package config

import "github.com/BurntSushi/toml"

// Defaults bundles every tunable constant the buffer pipeline reads.
type Defaults struct {
	QuadrantSegments          int
	CapStyle                  int
	MaxPrecisionDigits        int
	DistanceTolerranceFraction float64
}

// Default returns the spec's hard-coded constants: Q=8, ROUND caps, a
// 12-digit precision-fallback ladder, and a 1% distance tolerance.
func Default() *Defaults {
	return &Defaults{
		QuadrantSegments:          8,
		CapStyle:                  1, // ROUND
		MaxPrecisionDigits:        12,
		DistanceTolerranceFraction: 0.01,
	}
}

// LoadDefaults reads a TOML file and overlays it on Default(); fields
// absent from the file keep their default value.
func LoadDefaults(path string) (*Defaults, error) {
	d := Default()
	if _, err := toml.DecodeFile(path, d); err != nil {
		return nil, err
	}
	return d, nil
}
