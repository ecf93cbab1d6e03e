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
// Package trace draws a sampled path together with direction marks, for
// visual inspection of sampler output.
//
// The path is drawn in the sampler's coordinate system, with the y-axis
// pointing down. Direction marks are small triangles placed at evenly
// spaced fractions of the arc length, pointing in the direction of travel.
package trace

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/motion"
)

// Options controls the appearance of a trace.
type Options struct {
	// Width and Height give the page size. If either is zero, the page is
	// sized to fit the path with a margin.
	Width, Height int

	// Marks is the number of direction marks. Zero draws no marks.
	Marks int

	// ArrowSize is the length of a direction mark.
	// Zero means DefaultArrowSize.
	ArrowSize float64

	// LineWidth is the width of the path outline.
	// Zero means DefaultLineWidth.
	LineWidth float64
}

// Default values for Options fields.
const (
	DefaultArrowSize = 8.0
	DefaultLineWidth = 1.0
)

// layout holds the resolved options for one trace.
type layout struct {
	width, height int
	offset        vec.Vec2
	arrowSize     float64
	lineWidth     float64
	marks         []motion.Position
}

func newLayout(s *motion.Sampler, opt *Options) *layout {
	if opt == nil {
		opt = &Options{}
	}
	l := &layout{
		width:     opt.Width,
		height:    opt.Height,
		arrowSize: opt.ArrowSize,
		lineWidth: opt.LineWidth,
	}
	if l.arrowSize <= 0 {
		l.arrowSize = DefaultArrowSize
	}
	if l.lineWidth <= 0 {
		l.lineWidth = DefaultLineWidth
	}

	if l.width <= 0 || l.height <= 0 {
		margin := l.arrowSize + l.lineWidth + 4
		bbox := s.Bounds()
		l.offset = vec.Vec2{X: margin - bbox.LLx, Y: margin - bbox.LLy}
		l.width = int(math.Ceil(bbox.URx-bbox.LLx+2*margin))
		l.height = int(math.Ceil(bbox.URy-bbox.LLy+2*margin))
	}

	for i := range opt.Marks {
		alpha := 0.0
		if opt.Marks > 1 {
			alpha = float64(i) / float64(opt.Marks-1)
		}
		l.marks = append(l.marks, s.PositionAt(alpha, true))
	}
	return l
}

// arrow returns the corners of the direction mark at pos, in path
// coordinates: the tip first, then the two base corners.
func (l *layout) arrow(pos motion.Position) [3]vec.Vec2 {
	p := pos.Point()
	dir := pos.Direction()
	normal := vec.Vec2{X: -dir.Y, Y: dir.X}

	size := l.arrowSize
	base := p.Sub(dir.Mul(size / 2))
	return [3]vec.Vec2{
		p.Add(dir.Mul(size / 2)),
		base.Add(normal.Mul(size / 3)),
		base.Sub(normal.Mul(size / 3)),
	}
}

// WritePDF writes a single-page PDF file showing the path and its
// direction marks.
func WritePDF(fname string, s *motion.Sampler, opt *Options) error {
	l := newLayout(s, opt)

	paper := &pdf.Rectangle{
		URx: float64(l.width),
		URy: float64(l.height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; paths assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(l.height)})
	page.Transform(matrix.Identity.Translate(l.offset.X, l.offset.Y))

	var segs []motion.Segment
	drawn := false
	for seg := range s.Segments() {
		segs = append(segs, seg)
		drawn = drawn || !seg.MoveTo
	}
	if drawn {
		page.SetStrokeColor(pdfcolor.DeviceGray(0.5))
		page.SetLineWidth(l.lineWidth)
		for _, seg := range segs {
			if seg.MoveTo {
				page.MoveTo(seg.End.X, seg.End.Y)
			} else {
				page.LineTo(seg.End.X, seg.End.Y)
			}
		}
		page.Stroke()
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	for _, pos := range l.marks {
		pts := l.arrow(pos)
		page.MoveTo(pts[0].X, pts[0].Y)
		page.LineTo(pts[1].X, pts[1].Y)
		page.LineTo(pts[2].X, pts[2].Y)
		page.ClosePath()
		page.Fill()
	}

	return page.Close()
}

// WritePNG renders the path and its direction marks to a grey-scale PNG
// image, black on white.
func WritePNG(w io.Writer, s *motion.Sampler, opt *Options) error {
	return png.Encode(w, Render(s, opt))
}

// Render rasterises the path and its direction marks.
func Render(s *motion.Sampler, opt *Options) *image.Gray {
	l := newLayout(s, opt)

	img := image.NewGray(image.Rect(0, 0, l.width, l.height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	// Each primitive is rasterised on its own, so that overlapping
	// outlines with opposite orientation do not cancel.
	ras := vector.NewRasterizer(l.width, l.height)
	line := image.NewUniform(color.Gray{Y: 128})
	var prev vec.Vec2
	for seg := range s.Segments() {
		end := seg.End.Add(l.offset)
		if !seg.MoveTo {
			ras.Reset(l.width, l.height)
			addLine(ras, prev, end, l.lineWidth)
			ras.Draw(img, img.Bounds(), line, image.Point{})
		}
		prev = end
	}

	mark := image.NewUniform(color.Gray{Y: 0})
	for _, pos := range l.marks {
		pts := l.arrow(pos)
		for i := range pts {
			pts[i] = pts[i].Add(l.offset)
		}
		ras.Reset(l.width, l.height)
		ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		ras.LineTo(float32(pts[1].X), float32(pts[1].Y))
		ras.LineTo(float32(pts[2].X), float32(pts[2].Y))
		ras.ClosePath()
		ras.Draw(img, img.Bounds(), mark, image.Point{})
	}

	return img
}

// addLine adds a rectangle of the given width around the line from a to b.
// Zero-length lines are drawn as a square.
func addLine(ras *vector.Rasterizer, a, b vec.Vec2, width float64) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		d = vec.Vec2{X: 1}
	} else {
		d = d.Mul(1 / length)
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2)
	a = a.Sub(d.Mul(width / 2))
	b = b.Add(d.Mul(width / 2))

	corners := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	ras.MoveTo(float32(corners[0].X), float32(corners[0].Y))
	for _, c := range corners[1:] {
		ras.LineTo(float32(c.X), float32(c.Y))
	}
	ras.ClosePath()
}
