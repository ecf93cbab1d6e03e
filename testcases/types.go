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

// Package testcases contains named paths with known arc lengths, for use
// in tests, benchmarks and the trace tools.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single sampling test.
type TestCase struct {
	Name     string        // lowercase a-z, 0-9 and _ only
	Path     path.Path     // the geometry to sample
	CTM      matrix.Matrix // transformation matrix (zero-value means no transform)
	Flatness float64       // curve flattening tolerance (zero means default)

	// Length is the expected total arc length after flattening.
	Length float64

	// Tolerance is the allowed deviation from Length. Zero means the
	// length is exact up to rounding errors.
	Tolerance float64
}

// Find returns the test case with the given category and name, written
// as "category_name".
func Find(name string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

type yieldFunc = func(path.Command, []vec.Vec2) bool

func moveTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield yieldFunc, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

func closePath(yield yieldFunc) bool {
	return yield(path.CmdClose, nil)
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, p := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	open := polyline(pts...)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, pts := range open {
			if !yield(cmd, pts) {
				return
			}
		}
		closePath(yield)
	}
}
