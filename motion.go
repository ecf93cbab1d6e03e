// seehuhn.de/go/motion - path-following animation geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package motion moves objects along vector paths.
//
// A [Sampler] flattens a path into line segments, indexes them by arc
// length, and reports the position and direction of travel at any fraction
// of the total length. Rotation is blended near the joints between
// segments, so that an object following the path turns smoothly.
// A [Transition] drives a Sampler from elapsed time.
package motion

//go:generate go run ./testcases/export
