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
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

func TestFraction(t *testing.T) {
	type step struct {
		elapsed time.Duration
		frac    float64
		done    bool
	}
	cases := []struct {
		name  string
		tr    Transition
		steps []step
	}{
		{
			name: "single",
			tr:   Transition{Duration: time.Second, CycleCount: 1},
			steps: []step{
				{-time.Second, 0, false},
				{0, 0, false},
				{500 * time.Millisecond, 0.5, false},
				{time.Second, 1, true},
				{5 * time.Second, 1, true},
			},
		},
		{
			name: "zero_count",
			tr:   Transition{Duration: time.Second},
			steps: []step{
				{250 * time.Millisecond, 0.25, false},
				{time.Second, 1, true},
			},
		},
		{
			name: "repeat",
			tr:   Transition{Duration: time.Second, CycleCount: 3},
			steps: []step{
				{1250 * time.Millisecond, 0.25, false},
				{2750 * time.Millisecond, 0.75, false},
				{3 * time.Second, 1, true},
			},
		},
		{
			name: "auto_reverse",
			tr:   Transition{Duration: time.Second, CycleCount: 2, AutoReverse: true},
			steps: []step{
				{250 * time.Millisecond, 0.25, false},
				{1250 * time.Millisecond, 0.75, false},
				{1750 * time.Millisecond, 0.25, false},
				{2 * time.Second, 0, true},
			},
		},
		{
			name: "indefinite",
			tr:   Transition{Duration: time.Second, CycleCount: Indefinite},
			steps: []step{
				{10250 * time.Millisecond, 0.25, false},
				{1000 * time.Hour, 0, false},
			},
		},
		{
			name: "zero_duration",
			tr:   Transition{CycleCount: 1},
			steps: []step{
				{0, 1, true},
			},
		},
		{
			name: "ease_both",
			tr:   Transition{Duration: time.Second, CycleCount: 1, Interpolator: EaseBoth},
			steps: []step{
				{100 * time.Millisecond, 0.03125, false},
				{500 * time.Millisecond, 0.5, false},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, s := range c.steps {
				frac, done := c.tr.Fraction(s.elapsed)
				if math.Abs(frac-s.frac) > 1e-12 || done != s.done {
					t.Errorf("%v: got (%g, %t), want (%g, %t)",
						s.elapsed, frac, done, s.frac, s.done)
				}
			}
		})
	}
}

func TestFrame(t *testing.T) {
	tr := NewTransition(sampler(t, "line_corner"), time.Second)
	tr.Interpolator = Linear
	tr.Center = vec.Vec2{X: 10, Y: 10}

	pose, done := tr.Frame(250 * time.Millisecond)
	want := Pose{Translate: vec.Vec2{X: 40, Y: -10}}
	if d := cmp.Diff(want, pose, cmpopts.EquateApprox(0, 1e-9)); d != "" || done {
		t.Errorf("unoriented: done=%t %s", done, d)
	}

	tr.Orientation = OrientationOrthogonalToTangent
	pose, _ = tr.Frame(250 * time.Millisecond)
	want = Pose{Translate: vec.Vec2{X: 40, Y: -10}, Rotate: 90, Oriented: true}
	if d := cmp.Diff(want, pose, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("oriented: %s", d)
	}

	pose, done = tr.Frame(2 * time.Second)
	want = Pose{Translate: vec.Vec2{X: 90, Y: 90}, Rotate: 0, Oriented: true}
	if d := cmp.Diff(want, pose, cmpopts.EquateApprox(0, 1e-9)); d != "" || !done {
		t.Errorf("finished: done=%t %s", done, d)
	}
}

func TestNewTransitionDefaults(t *testing.T) {
	s := sampler(t, "line_horizontal")
	tr := NewTransition(s, 3*time.Second)
	if tr.Sampler() != s {
		t.Error("wrong sampler")
	}
	if tr.CycleCount != 1 || tr.Duration != 3*time.Second || tr.AutoReverse {
		t.Errorf("unexpected defaults: %+v", tr)
	}
	if got := tr.Interpolator.Curve(0.1); got != EaseBoth.Curve(0.1) {
		t.Errorf("default interpolator is not ease-both")
	}
}

func TestOrientationString(t *testing.T) {
	cases := map[Orientation]string{
		OrientationNone:                "none",
		OrientationOrthogonalToTangent: "orthogonal-to-tangent",
		Orientation(7):                 "Orientation(7)",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
