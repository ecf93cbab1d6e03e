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
package motion

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkNewSampler measures flattening and chain construction for an
// "O" shape at different scales.
func BenchmarkNewSampler(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				NewSampler(oPath, matrix.Identity, DefaultFlatness)
			}
		})
	}
}

// BenchmarkPositionAt measures position queries on chains of different
// lengths.
func BenchmarkPositionAt(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		for _, tangent := range []bool{false, true} {
			b.Run(fmt.Sprintf("%dx%d/tangent=%t", size, size, tangent), func(b *testing.B) {
				center := float64(size) / 2
				oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)
				s := NewSampler(oPath, matrix.Identity, DefaultFlatness)

				b.ReportAllocs()
				i := 0
				for b.Loop() {
					s.PositionAt(float64(i%1000)/999, tangent)
					i++
				}
			})
		}
	}
}

// makeOPath creates an "O" shape: two concentric circles with opposite
// orientation, as two subpaths.
func makeOPath(cx, cy, outerR, innerR float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !addCircleToPath(yield, cx, cy, outerR, false) {
			return
		}
		addCircleToPath(yield, cx, cy, innerR, true)
	}
}

// addCircleToPath adds a circle to a path using cubic Bézier curves.
// Uses a stack-allocated buffer to avoid heap allocations.
func addCircleToPath(yield func(path.Command, []vec.Vec2) bool, cx, cy, r float64, clockwise bool) bool {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if clockwise {
		s = -1
	}

	var buf [3]vec.Vec2

	buf[0] = vec.Vec2{X: cx, Y: cy - r}
	if !yield(path.CmdMoveTo, buf[:1]) {
		return false
	}
	quarters := [4][3]vec.Vec2{
		{{X: cx + s*kr, Y: cy - r}, {X: cx + s*r, Y: cy - kr}, {X: cx + s*r, Y: cy}},
		{{X: cx + s*r, Y: cy + kr}, {X: cx + s*kr, Y: cy + r}, {X: cx, Y: cy + r}},
		{{X: cx - s*kr, Y: cy + r}, {X: cx - s*r, Y: cy + kr}, {X: cx - s*r, Y: cy}},
		{{X: cx - s*r, Y: cy - kr}, {X: cx - s*kr, Y: cy - r}, {X: cx, Y: cy - r}},
	}
	for _, q := range quarters {
		buf = q
		if !yield(path.CmdCubeTo, buf[:3]) {
			return false
		}
	}
	return yield(path.CmdClose, nil)
}
