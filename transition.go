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
	"time"

	"seehuhn.de/go/geom/vec"
)

// Orientation selects whether an object following a path is rotated.
type Orientation int

const (
	// OrientationNone keeps the object's rotation unchanged.
	OrientationNone Orientation = iota

	// OrientationOrthogonalToTangent rotates the object so that it faces
	// the direction of travel.
	OrientationOrthogonalToTangent
)

func (o Orientation) String() string {
	switch o {
	case OrientationNone:
		return "none"
	case OrientationOrthogonalToTangent:
		return "orthogonal-to-tangent"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Indefinite as a cycle count makes a Transition repeat forever.
const Indefinite = -1

// Pose is the transformation to apply to an object for one frame.
type Pose struct {
	// Translate moves the object's centre onto the path.
	Translate vec.Vec2

	// Rotate is the rotation in degrees. It is only valid if Oriented is
	// set; otherwise the object keeps its current rotation.
	Rotate   float64
	Oriented bool
}

// Transition moves an object along a path over time.
//
// The caller owns the clock: Frame is called with the time elapsed since
// the start of the transition, and the resulting Pose is applied to the
// object.
type Transition struct {
	// Duration is the length of one cycle. A non-positive duration
	// finishes the transition immediately.
	Duration time.Duration

	// CycleCount is the number of cycles to run, or Indefinite.
	// Zero is treated as one.
	CycleCount int

	// AutoReverse makes every second cycle run backwards.
	AutoReverse bool

	// Interpolator maps time within a cycle to path progress.
	// Nil means Linear.
	Interpolator Interpolator

	// Orientation controls whether the object is rotated.
	Orientation Orientation

	// Center is the object's centre in the path's coordinate system when
	// no translation is applied.
	Center vec.Vec2

	sampler *Sampler
}

// NewTransition returns a transition along the path sampled by s, with a
// single cycle of duration d and ease-both timing.
func NewTransition(s *Sampler, d time.Duration) *Transition {
	return &Transition{
		Duration:     d,
		CycleCount:   1,
		Interpolator: EaseBoth,
		sampler:      s,
	}
}

// Sampler returns the sampler the transition follows.
func (t *Transition) Sampler() *Sampler {
	return t.sampler
}

// Fraction returns the path progress after the given elapsed time, and
// whether the transition has finished.
func (t *Transition) Fraction(elapsed time.Duration) (float64, bool) {
	cycles := t.CycleCount
	if cycles == 0 {
		cycles = 1
	}

	if t.Duration <= 0 {
		return t.endFraction(cycles), true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	if cycles != Indefinite {
		total := time.Duration(cycles) * t.Duration
		if cycles < 0 || total/time.Duration(cycles) != t.Duration {
			cycles = Indefinite // negative count or overflow
		} else if elapsed >= total {
			return t.endFraction(cycles), true
		}
	}

	cycle := elapsed / t.Duration
	within := float64(elapsed%t.Duration) / float64(t.Duration)
	if t.AutoReverse && cycle%2 == 1 {
		within = 1 - within
	}
	return t.curve(within), false
}

// endFraction returns the progress at the end of the last cycle.
func (t *Transition) endFraction(cycles int) float64 {
	if t.AutoReverse && cycles%2 == 0 {
		return t.curve(0)
	}
	return t.curve(1)
}

func (t *Transition) curve(within float64) float64 {
	if t.Interpolator == nil {
		return Linear.Curve(within)
	}
	return t.Interpolator.Curve(within)
}

// Frame returns the pose after the given elapsed time, and whether the
// transition has finished.
func (t *Transition) Frame(elapsed time.Duration) (Pose, bool) {
	frac, done := t.Fraction(elapsed)
	return t.PoseAt(frac), done
}

// PoseAt returns the pose at path progress frac.
func (t *Transition) PoseAt(frac float64) Pose {
	oriented := t.Orientation == OrientationOrthogonalToTangent
	pos := t.sampler.PositionAt(frac, oriented)

	pose := Pose{Translate: pos.Point().Sub(t.Center)}
	if oriented {
		pose.Rotate = pos.Rotation
		pose.Oriented = true
	}
	return pose
}
