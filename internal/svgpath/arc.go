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
package svgpath

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcTo appends the elliptical arc from p0 to p1 to res, as a sequence of
// cubic Bézier curves each spanning at most 90°.
// Zero radii give a straight line; coinciding end points give nothing.
func arcTo(res *path.Data, p0 vec.Vec2, rx, ry, rot float64, large, sweep bool, p1 vec.Vec2) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		res.LineTo(p1)
		return
	}

	c, rx, ry, theta0, theta1 := arcToCenter(p0, rx, ry, rot, large, sweep, p1)
	phi := rot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	ellipse := func(theta float64) (pt, deriv vec.Vec2) {
		sin, cos := math.Sincos(theta)
		ex, ey := rx*cos, ry*sin
		dx, dy := -rx*sin, ry*cos
		pt = vec.Vec2{
			X: c.X + cosPhi*ex - sinPhi*ey,
			Y: c.Y + sinPhi*ex + cosPhi*ey,
		}
		deriv = vec.Vec2{
			X: cosPhi*dx - sinPhi*dy,
			Y: sinPhi*dx + cosPhi*dy,
		}
		return pt, deriv
	}

	delta := theta1 - theta0
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	start, d0 := ellipse(theta0)
	for i := 1; i <= n; i++ {
		end, d1 := ellipse(theta0 + float64(i)*step)
		if i == n {
			end = p1
		}
		res.CubeTo(start.Add(d0.Mul(k)), end.Sub(d1.Mul(k)), end)
		start, d0 = end, d1
	}
}

// arcToCenter converts the endpoint parametrisation of an elliptical arc
// to the centre parametrisation. It returns the centre, the radii (scaled
// up if they are too small to reach p1) and the start and end angles in
// radians. The sign of theta1-theta0 gives the direction of the arc.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes.
func arcToCenter(p0 vec.Vec2, rx, ry, rot float64, large, sweep bool, p1 vec.Vec2) (c vec.Vec2, rxOut, ryOut, theta0, theta1 float64) {
	phi := rot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2
	x1p := cosPhi*hx + sinPhi*hy
	y1p := -sinPhi*hx + cosPhi*hy

	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if radiiCheck > 1 {
		s := math.Sqrt(radiiCheck)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if sq := num / den; sq > 0 {
		coef = math.Sqrt(sq)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	c = vec.Vec2{
		X: cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2,
	}

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta0 = math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return c, rx, ry, theta0, theta0 + delta
}
