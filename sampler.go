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
	"iter"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// segment is one element of the flattened path.
// Segments are stored in a slice; prev and next are indices into that
// slice, with -1 meaning "no link".
type segment struct {
	moveTo bool
	from   vec.Vec2 // start point, used for position interpolation
	to     vec.Vec2 // terminal point

	length    float64 // distance from "from" to "to" (zero for move-to)
	cumLength float64 // sum of lengths of this and all earlier segments
	angle     float64 // direction of travel in degrees, in [0, 360)

	prev int // predecessor for rotation blending
	next int // successor for rotation blending
}

// Segment is a read-only view of one element of a Sampler's segment chain.
type Segment struct {
	MoveTo           bool     // pen lift, starts a new subpath
	End              vec.Vec2 // terminal point
	Length           float64  // length of this segment
	CumulativeLength float64  // arc length from the start of the path
	Angle            float64  // direction of travel in degrees, in [0, 360)
}

// Sampler answers position and orientation queries along a flattened
// path, indexed by arc length. A Sampler is immutable once built and
// may be queried from any number of goroutines.
type Sampler struct {
	segs  []segment
	total float64
}

// Builder assembles a Sampler from a stream of already flattened
// move-to, line-to and close-path commands.
//
// The zero value is ready to use. Calling Sampler returns the Builder
// to its zero value.
type Builder struct {
	segs []segment

	// last and subpath hold segment index + 1, so that 0 means "none".
	last    int // the current segment
	subpath int // the active subpath's move-to
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p vec.Vec2) {
	var from vec.Vec2
	var cum float64
	prev := b.last - 1
	if prev >= 0 {
		from = b.segs[prev].to
		cum = b.segs[prev].cumLength
	}

	idx := b.append(segment{
		moveTo:    true,
		from:      from,
		to:        p,
		cumLength: cum,
		prev:      prev,
		next:      -1,
	})
	b.subpath = idx + 1
}

// LineTo adds a straight segment from the current point to p.
// Segments shorter than one unit are dropped, except for the first
// segment of a subpath. LineTo is ignored before the first MoveTo.
func (b *Builder) LineTo(p vec.Vec2) {
	b.lineTo(p)
}

// Close adds a segment back to the start of the current subpath and links
// it forward to the first segment of the subpath, so that rotation near
// the end of the subpath is blended into the direction it started with.
func (b *Builder) Close() {
	if b.subpath == 0 {
		return
	}
	move := b.subpath - 1

	idx, ok := b.lineTo(b.segs[move].to)
	if !ok {
		// Already at the subpath origin, up to flattening noise.
		// The current segment takes the role of the closing segment.
		idx = b.last - 1
	}

	first := b.segs[move].next
	if first < 0 || first == idx || b.segs[idx].moveTo {
		return
	}
	b.segs[idx].next = first
}

// Sampler returns the finished Sampler.
func (b *Builder) Sampler() *Sampler {
	s := &Sampler{segs: b.segs}
	if n := len(s.segs); n > 0 {
		s.total = s.segs[n-1].cumLength
	}
	*b = Builder{}

	Logger().Debug("path sampler built",
		slog.Int("segments", len(s.segs)),
		slog.Float64("length", s.total))
	return s
}

// lineTo appends a line segment ending at p, unless it is flattening
// noise. It returns the index of the new segment and whether a segment
// was added.
func (b *Builder) lineTo(p vec.Vec2) (int, bool) {
	if b.last == 0 {
		return -1, false
	}
	cur := b.last - 1
	last := &b.segs[cur]

	d := p.Sub(last.to)
	length := d.Length()
	if length < minSegmentLength && !last.moveTo {
		return -1, false
	}

	idx := b.append(segment{
		from:      last.to,
		to:        p,
		length:    length,
		cumLength: last.cumLength + length,
		angle:     tangentAngle(d),
		prev:      cur,
		next:      -1,
	})
	return idx, true
}

// append adds seg to the chain, links it to the current segment and
// makes it the current segment. A move-to does not replace the link
// from a closing segment back to the start of its subpath.
func (b *Builder) append(seg segment) int {
	idx := len(b.segs)
	b.segs = append(b.segs, seg)
	if cur := b.last - 1; cur >= 0 && (b.segs[cur].next < 0 || !seg.moveTo) {
		b.segs[cur].next = idx
	}
	b.last = idx + 1
	return idx
}

// tangentAngle returns the direction of d in degrees, in [0, 360).
// The angle is measured from the positive y-axis towards the positive
// x-axis, so that travel along +x gives 90° and travel along +y gives 0°.
func tangentAngle(d vec.Vec2) float64 {
	return normalizeAngle(math.Atan2(d.X, d.Y) * 180 / math.Pi)
}

// normalizeAngle wraps a (in degrees) into [0, 360).
func normalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	if a < -360 || a >= 720 {
		a = math.Mod(a, 360)
	}
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	return a
}

// TotalLength returns the arc length of the flattened path.
func (s *Sampler) TotalLength() float64 {
	return s.total
}

// Len returns the number of segments in the chain, including move-to
// segments.
func (s *Sampler) Len() int {
	return len(s.segs)
}

// Segments iterates over the segment chain in path order.
func (s *Sampler) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range s.segs {
			seg := &s.segs[i]
			if !yield(Segment{
				MoveTo:           seg.moveTo,
				End:              seg.to,
				Length:           seg.length,
				CumulativeLength: seg.cumLength,
				Angle:            seg.angle,
			}) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all segment end points.
// The result is the zero rectangle for an empty sampler.
func (s *Sampler) Bounds() rect.Rect {
	if len(s.segs) == 0 {
		return rect.Rect{}
	}
	p := s.segs[0].to
	bbox := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for i := 1; i < len(s.segs); i++ {
		p := s.segs[i].to
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	return bbox
}

// Numerical constants for the sampler.
const (
	// minSegmentLength is the shortest line segment kept in the chain.
	// Shorter segments are treated as flattening noise and dropped, unless
	// they start a subpath.
	minSegmentLength = 1.0

	// SmoothZone is the maximal distance from a segment joint, in path
	// units, over which rotation is blended between adjacent segments.
	SmoothZone = 10.0
)
