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

import "math"

// Interpolator maps linear time progress in [0, 1] to path progress.
type Interpolator interface {
	// Curve returns the progress for time fraction t.
	// Implementations must map 0 to 0 and 1 to 1.
	Curve(t float64) float64
}

// InterpolatorFunc adapts an ordinary function to the Interpolator
// interface.
type InterpolatorFunc func(t float64) float64

// Curve implements the Interpolator interface.
func (f InterpolatorFunc) Curve(t float64) float64 {
	return f(clamp01(t))
}

// Standard interpolators.
//
// The easing curves are quadratic for the first (or last) fifth of the
// time and linear in between, with matching slopes at the transitions.
var (
	Linear Interpolator = InterpolatorFunc(func(t float64) float64 {
		return t
	})

	Discrete Interpolator = InterpolatorFunc(func(t float64) float64 {
		if t < 1 {
			return 0
		}
		return 1
	})

	EaseIn Interpolator = InterpolatorFunc(easeIn)

	EaseOut Interpolator = InterpolatorFunc(func(t float64) float64 {
		return 1 - easeIn(1-t)
	})

	EaseBoth Interpolator = InterpolatorFunc(func(t float64) float64 {
		switch {
		case t < 0.2:
			return 3.125 * t * t
		case t > 0.8:
			return -3.125*t*t + 6.25*t - 2.125
		default:
			return 1.25*t - 0.125
		}
	})
)

func easeIn(t float64) float64 {
	if t < 0.2 {
		return 25.0 / 9.0 * t * t
	}
	return 10.0/9.0*t - 1.0/9.0
}

// Spline returns an interpolator following the cubic Bézier curve from
// (0, 0) to (1, 1) with control points (x1, y1) and (x2, y2), as used for
// CSS timing functions. x1 and x2 are clamped to [0, 1] so that the curve
// is a function of time.
func Spline(x1, y1, x2, y2 float64) Interpolator {
	return &spline{
		x1: clamp01(x1), y1: y1,
		x2: clamp01(x2), y2: y2,
	}
}

type spline struct {
	x1, y1, x2, y2 float64
}

// Curve implements the Interpolator interface.
func (s *spline) Curve(t float64) float64 {
	t = clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	u := s.solveX(t)
	return bezier1D(s.y1, s.y2, u)
}

// solveX finds the curve parameter u with x(u) = x.
// Newton iteration is tried first; bisection is the fallback.
func (s *spline) solveX(x float64) float64 {
	u := x
	for range 8 {
		err := bezier1D(s.x1, s.x2, u) - x
		if math.Abs(err) < splineEpsilon {
			return u
		}
		d := bezierSlope1D(s.x1, s.x2, u)
		if math.Abs(d) < 1e-6 {
			break
		}
		u -= err / d
	}

	lo, hi := 0.0, 1.0
	u = x
	for range 64 {
		v := bezier1D(s.x1, s.x2, u)
		if math.Abs(v-x) < splineEpsilon {
			break
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// bezier1D evaluates the coordinate of a cubic Bézier with end points 0
// and 1 and control values c1, c2.
func bezier1D(c1, c2, u float64) float64 {
	omu := 1 - u
	return 3*omu*omu*u*c1 + 3*omu*u*u*c2 + u*u*u
}

func bezierSlope1D(c1, c2, u float64) float64 {
	omu := 1 - u
	return 3*omu*omu*c1 + 6*omu*u*(c2-c1) + 3*u*u*(1-c2)
}

func clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

const splineEpsilon = 1e-9
