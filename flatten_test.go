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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestFlattenLineScaling(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 5})

	cases := []struct {
		ctm  matrix.Matrix
		want float64
	}{
		{matrix.Matrix{}, 5},
		{matrix.Identity, 5},
		{matrix.Scale(3, 3), 15},
		{matrix.Identity.Translate(100, -7), 5},
		{matrix.RotateDeg(17), 5},
	}
	for _, c := range cases {
		s := NewSampler(p.Iter(), c.ctm, 0)
		if got := s.TotalLength(); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("CTM %v: length %g, want %g", c.ctm, got, c.want)
		}
	}
}

func TestFlattenCircle(t *testing.T) {
	const r = 100.0
	circle := makeOPath(0, 0, r, r/2)

	prevErr := math.Inf(1)
	for _, flatness := range []float64{4, 1, 0.25, 0.05} {
		s := NewSampler(circle, matrix.Identity, flatness)
		want := 3 * math.Pi * r
		got := s.TotalLength()

		// an inscribed polygon is always shorter than the curve
		errAbs := want - got
		if errAbs < -0.5 {
			t.Errorf("flatness %g: length %g exceeds %g", flatness, got, want)
		}
		if errAbs > prevErr+1e-9 {
			t.Errorf("flatness %g: error %g did not decrease", flatness, errAbs)
		}
		prevErr = errAbs
	}
	if prevErr > 0.5 {
		t.Errorf("finest flattening is off by %g", prevErr)
	}
}

func TestFlattenInDeviceSpace(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0})

	small := NewSampler(p.Iter(), matrix.Identity, 1)
	large := NewSampler(p.Iter(), matrix.Scale(10, 10), 1)
	if large.Len() <= small.Len() {
		t.Errorf("scaled curve has %d segments, unscaled %d", large.Len(), small.Len())
	}
}

func TestFlattenEndpointExact(t *testing.T) {
	end := vec.Vec2{X: 33.3, Y: 71.7}
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: -50, Y: 80}, end)

	s := NewSampler(p.Iter(), matrix.Identity, 0.1)
	var last vec.Vec2
	for seg := range s.Segments() {
		last = seg.End
	}
	if last != end {
		t.Errorf("curve ends at %v, want %v", last, end)
	}
}

func TestFlattenDegenerateCurve(t *testing.T) {
	// all control points coincide
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		CubeTo(vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 2, Y: 12})

	s := NewSampler(p.Iter(), matrix.Identity, 0)
	if got := s.TotalLength(); got != 10 {
		t.Errorf("length %g, want 10", got)
	}
}

func TestFlattenNaNFlatness(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 50, Y: 100}, vec.Vec2{X: 100, Y: 0})

	want := NewSampler(p.Iter(), matrix.Identity, DefaultFlatness)
	got := NewSampler(p.Iter(), matrix.Identity, math.NaN())
	if got.Len() != want.Len() || got.TotalLength() != want.TotalLength() {
		t.Errorf("NaN flatness: %d segments, length %g; want %d, %g",
			got.Len(), got.TotalLength(), want.Len(), want.TotalLength())
	}
}

func TestFlattenSegmentCap(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 50, Y: 100}, vec.Vec2{X: 100, Y: 0})

	s := NewSampler(p.Iter(), matrix.Scale(1e6, 1e6), 1e-6)
	if got, want := s.Len(), 1+maxCurveSegments; got != want {
		t.Errorf("got %d segments, want %d", got, want)
	}
}
