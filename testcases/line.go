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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var lineCases = []TestCase{
	{
		Name:   "corner",
		Path:   polyline(pt(0, 0), pt(100, 0), pt(100, 100)),
		Length: 200,
	},
	{
		Name:   "horizontal",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Length: 44,
	},
	{
		Name:   "zigzag",
		Path:   zigzag(0, 0, 30, 40, 4),
		Length: 200,
	},
	{
		Name:   "square_closed",
		Path:   rectangle(0, 0, 100, 100),
		Length: 400,
	},
	{
		Name:   "triangle_closed",
		Path:   polygon(pt(0, 0), pt(30, 0), pt(0, 40)),
		Length: 120,
	},
	{
		// every chord spans 144° of a circle with radius 25
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Length: 10 * 25 * math.Sin(72*math.Pi/180),
	},
}

// zigzag builds an open path of n teeth, each advancing by (dx, ±dy).
func zigzag(x, y, dx, dy float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !moveTo(yield, x, y) {
			return
		}
		for i := range n {
			x += dx
			if i%2 == 0 {
				y += dy
			} else {
				y -= dy
			}
			if !lineTo(yield, x, y) {
				return
			}
		}
	}
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		// five points, connecting every second point
		pts := make([]vec.Vec2, 5)
		for i := range 5 {
			angle := float64(i)*2*math.Pi/5 - math.Pi/2
			pts[i] = vec.Vec2{
				X: cx + r*math.Cos(angle),
				Y: cy + r*math.Sin(angle),
			}
		}

		// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
		order := []int{0, 2, 4, 1, 3}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[order[0]]}) {
			return
		}
		for _, i := range order[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pts[i]}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
