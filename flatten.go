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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// NewSampler flattens p and returns a Sampler for the result.
//
// All points of p are mapped through ctm; the zero matrix is treated as
// the identity. Curves are replaced by polygons which deviate from the
// curve by at most flatness, measured after the transformation. If
// flatness is not positive, DefaultFlatness is used.
func NewSampler(p path.Path, ctm matrix.Matrix, flatness float64) *Sampler {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}
	f := &flattener{CTM: ctm, Flatness: flatness}

	b := &Builder{}
	f.walk(p, b)
	return b.Sampler()
}

// flattener converts a path into move-to, line-to and close-path
// commands in device space.
type flattener struct {
	CTM      matrix.Matrix
	Flatness float64
}

// walk feeds the flattened version of p into b.
// Curve commands are flattened in user space and the resulting points
// are transformed to device space.
func (f *flattener) walk(p path.Path, b *Builder) {
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	lineTo := func(_, to vec.Vec2) {
		b.LineTo(f.apply(to))
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
			b.MoveTo(f.apply(current))

		case path.CmdLineTo:
			lineTo(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1], lineTo)
			current = pts[1]

		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2], lineTo)
			current = pts[2]

		case path.CmdClose:
			b.Close()
			current = subpath
		}
	}
}

// apply maps a user space point to device space.
func (f *flattener) apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*p.X + f.CTM[2]*p.Y + f.CTM[4],
		Y: f.CTM[1]*p.X + f.CTM[3]*p.Y + f.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (f *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic replaces the quadratic curve p0, p1, p2 (user space)
// by n chords of equal parameter step. The deviation bound
// |p0 - 2p1 + p2|/4 is measured after the linear part of the CTM.
func (f *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	bend := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	dev := f.transformLinear(bend).Length()

	n := 1
	if dev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.Flatness)))
	}
	n = max(1, min(n, maxCurveSegments))

	from := p0
	for i := 1; i <= n; i++ {
		to := p2
		if i < n {
			t := float64(i) / float64(n)
			s := 1 - t
			to = p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		}
		emit(from, to)
		from = to
	}
}

// flattenCubic replaces the cubic curve p0, ..., p3 (user space) by
// chords, with the chord count taken from Wang's formula in device space.
func (f *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	a := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	b := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(a.Length(), b.Length())

	n := 1
	if m > 0 {
		if k := math.Sqrt(0.75 * m / f.Flatness); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	n = max(1, min(n, maxCurveSegments))

	from := p0
	for i := 1; i <= n; i++ {
		to := p3
		if i < n {
			t := float64(i) / float64(n)
			s := 1 - t
			to = p0.Mul(s * s * s).
				Add(p1.Mul(3 * s * s * t)).
				Add(p2.Mul(3 * s * t * t)).
				Add(p3.Mul(t * t * t))
		}
		emit(from, to)
		from = to
	}
}

const (
	// DefaultFlatness is the curve flattening tolerance used when none is
	// given, in device units.
	DefaultFlatness = 1.0

	// maxCurveSegments is the most chords produced for a single curve.
	maxCurveSegments = 1 << 16
)
