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

	"seehuhn.de/go/geom/vec"
)

// Position is a point on a path together with the direction of travel.
type Position struct {
	X, Y float64

	// Rotation is the direction of travel in degrees, in [0, 360).
	// 0° points along +y and 90° along +x.
	// Rotation is only set if the tangent was requested.
	Rotation float64
}

// Point returns the position as a vector.
func (p Position) Point() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Direction returns the unit vector pointing in the direction of travel.
func (p Position) Direction() vec.Vec2 {
	sin, cos := math.Sincos(p.Rotation * math.Pi / 180)
	return vec.Vec2{X: sin, Y: cos}
}

// PositionAt returns the point at the fraction alpha of the total arc
// length. Alpha is clamped to [0, 1]. If wantTangent is set, the
// direction of travel is computed as well; near segment joints it is
// blended between the adjoining segments.
//
// An empty sampler, or one with zero total length, always returns the
// origin.
func (s *Sampler) PositionAt(alpha float64, wantTangent bool) Position {
	if s.total <= 0 || len(s.segs) == 0 {
		return Position{}
	}

	if !(alpha > 0) { // also catches NaN
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	target := alpha * s.total

	idx := s.findSegment(0, len(s.segs)-1, target)
	seg := &s.segs[idx]

	lengthBefore := seg.cumLength - seg.length
	partLength := target - lengthBefore
	ratio := 0.0
	if seg.length > 0 {
		ratio = partLength / seg.length
	}

	pos := Position{
		X: seg.from.X + (seg.to.X-seg.from.X)*ratio,
		Y: seg.from.Y + (seg.to.Y-seg.from.Y)*ratio,
	}
	if wantTangent {
		pos.Rotation = s.rotation(seg, partLength)
	}
	return pos
}

// rotation returns the direction of travel at distance partLength from
// the start of seg, blended with the neighbouring segments inside the
// smooth zone.
func (s *Sampler) rotation(seg *segment, partLength float64) float64 {
	z := min(SmoothZone, seg.length/2)

	if partLength < z && seg.prev >= 0 && !s.segs[seg.prev].moveTo {
		prev := &s.segs[seg.prev]
		return interpolateAngle(prev.angle, seg.angle, partLength/z/2+0.5)
	}

	dist := seg.length - partLength
	if dist < z && seg.next >= 0 && !s.segs[seg.next].moveTo {
		next := &s.segs[seg.next]
		return interpolateAngle(seg.angle, next.angle, (z-dist)/z/2)
	}

	return seg.angle
}

// findSegment returns the index of the first segment in [begin, end]
// whose cumulative length exceeds length, or end if there is none.
// A move-to segment is never returned unless it is the first segment of
// the chain; the preceding segment is used instead.
func (s *Sampler) findSegment(begin, end int, length float64) int {
	for begin < end {
		middle := begin + (end-begin)/2
		if s.segs[middle].cumLength > length {
			end = middle
		} else {
			begin = middle + 1
		}
	}
	if s.segs[begin].moveTo && begin > 0 {
		return s.findSegment(begin-1, begin-1, length)
	}
	return begin
}

// interpolateAngle blends the angles a and b (in degrees) along the
// shorter arc between them. The result is in [0, 360).
func interpolateAngle(a, b, ratio float64) float64 {
	if math.Abs(b-a) > 180 {
		if b > a {
			b -= 360
		} else {
			b += 360
		}
	}
	return normalizeAngle(a + ratio*(b-a))
}
