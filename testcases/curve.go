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
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:      "circle",
		Path:      circle(0, 0, 50).Iter(),
		Flatness:  0.25,
		Length:    2 * math.Pi * 50,
		Tolerance: 1,
	},
	{
		Name:      "quarter_arc",
		Path:      quarterArc(50).Iter(),
		Flatness:  0.25,
		Length:    math.Pi * 50 / 2,
		Tolerance: 0.5,
	},
	{
		// B'(t) = (100, 200-400t), integrated in closed form
		Name:      "quadratic",
		Path:      quadraticCurveOpen(0, 0, 50, 100, 100, 0).Iter(),
		Flatness:  0.25,
		Length:    (100*math.Sqrt(50000) + 5000*math.Log((200+math.Sqrt(50000))/100)) / 200,
		Tolerance: 0.5,
	},
	{
		// a cubic with collinear control points is a straight line
		Name:   "straight_cubic",
		Path:   cubicCurveOpen(0, 0, 10, 0, 20, 0, 30, 0).Iter(),
		Length: 30,
	},
	{
		Name:      "s_curve",
		Path:      sCurveQuadratic(10, 32, 54, 32).Iter(),
		Flatness:  0.25,
		Length:    sCurveQuadraticLength(10, 32, 54, 32),
		Tolerance: 0.5,
	},
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)). // First quadratic curves up
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).     // Second quadratic curves down
		Close()
}

// sCurveQuadraticLength returns the length of sCurveQuadratic for a
// horizontal baseline, including the closing line.
func sCurveQuadraticLength(x1, y1, x2, y2 float64) float64 {
	// Both halves are congruent symmetric quadratics of width w and
	// control point height 20, so B'(t) = (w, 40-80t).
	w := (x2 - x1) / 2
	half := symmetricQuadLength(w, 40)
	return 2*half + math.Hypot(x2-x1, y2-y1)
}

// symmetricQuadLength returns the length of a quadratic Bezier with
// derivative (w, h-2ht), for t in [0, 1].
func symmetricQuadLength(w, h float64) float64 {
	// substitute u = h - 2ht
	F := func(u float64) float64 {
		r := math.Hypot(w, u)
		return u/2*r + w*w/2*math.Log(u+r)
	}
	return (F(h) - F(-h)) / (2 * h)
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).                                 // start at right
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)). // top-right quadrant
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)). // top-left quadrant
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)). // bottom-left quadrant
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)). // bottom-right quadrant
		Close()
}

// quarterArc builds an open quarter circle around the origin.
func quarterArc(r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r))
}
