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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:   "two_lines",
		Path:   twoLines(),
		Length: 100,
	},
	{
		Name:   "two_squares",
		Path:   concat(rectangle(0, 0, 20, 20), rectangle(50, 50, 90, 90)),
		Length: 240,
	},
	{
		Name:   "trailing_move",
		Path:   concat(polyline(pt(0, 0), pt(10, 0)), polyline(pt(50, 50))),
		Length: 10,
	},
	{
		Name:   "move_only",
		Path:   polyline(pt(5, 5)),
		Length: 0,
	},
	{
		Name:   "empty",
		Path:   func(yield func(path.Command, []vec.Vec2) bool) {},
		Length: 0,
	},
	{
		Name:   "close_only",
		Path:   polygon(pt(10, 10)),
		Length: 0,
	},
	{
		// drawing commands before the first move-to are ignored
		Name:   "missing_move",
		Path:   lineBeforeMove(),
		Length: 30,
	},
}

// twoLines builds two disjoint horizontal and vertical lines.
func twoLines() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, 0, 0) || !lineTo(yield, 50, 0) {
			return
		}
		if !moveTo(yield, 100, 100) {
			return
		}
		lineTo(yield, 100, 150)
	}
}

func lineBeforeMove() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !lineTo(yield, 100, 100) {
			return
		}
		if !moveTo(yield, 0, 0) {
			return
		}
		lineTo(yield, 0, 30)
	}
}

// concat joins several paths into one.
func concat(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
