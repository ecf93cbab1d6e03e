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
package trace

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/motion"
	"seehuhn.de/go/motion/testcases"
)

func corner() *motion.Sampler {
	var b motion.Builder
	b.MoveTo(vec.Vec2{X: 10, Y: 20})
	b.LineTo(vec.Vec2{X: 110, Y: 20})
	b.LineTo(vec.Vec2{X: 110, Y: 110})
	return b.Sampler()
}

func TestRenderLine(t *testing.T) {
	img := Render(corner(), &Options{Width: 130, Height: 130, LineWidth: 3})

	if got := img.Bounds().Dx(); got != 130 {
		t.Errorf("width %d, want 130", got)
	}
	if y := img.GrayAt(60, 20).Y; y > 160 {
		t.Errorf("pixel on the path has value %d", y)
	}
	if y := img.GrayAt(110, 60).Y; y > 160 {
		t.Errorf("pixel on the path has value %d", y)
	}
	if y := img.GrayAt(60, 60).Y; y != 255 {
		t.Errorf("pixel away from the path has value %d", y)
	}
}

func TestRenderMarks(t *testing.T) {
	dark := func(opt *Options) int {
		img := Render(corner(), opt)
		n := 0
		for _, v := range img.Pix {
			if v < 64 {
				n++
			}
		}
		return n
	}

	without := dark(&Options{Width: 130, Height: 130})
	with := dark(&Options{Width: 130, Height: 130, Marks: 5, ArrowSize: 10})
	if without != 0 {
		t.Errorf("%d black pixels without marks", without)
	}
	if with < 5*10 {
		t.Errorf("only %d black pixels with marks", with)
	}
}

func TestFitLayout(t *testing.T) {
	l := newLayout(corner(), &Options{})
	margin := DefaultArrowSize + DefaultLineWidth + 4
	if want := int(100 + 2*margin); l.width != want {
		t.Errorf("width %d, want %d", l.width, want)
	}
	if want := int(90 + 2*margin); l.height != want {
		t.Errorf("height %d, want %d", l.height, want)
	}
	if want := (vec.Vec2{X: margin - 10, Y: margin - 20}); l.offset != want {
		t.Errorf("offset %v, want %v", l.offset, want)
	}
}

func TestArrow(t *testing.T) {
	l := &layout{arrowSize: 8}
	pts := l.arrow(motion.Position{X: 50, Y: 50, Rotation: 90})

	want := vec.Vec2{X: 54, Y: 50}
	if pts[0].Sub(want).Length() > 1e-9 {
		t.Errorf("tip at %v, want %v", pts[0], want)
	}
	for _, p := range pts[1:] {
		if d := p.X - 46; d > 1e-9 || d < -1e-9 {
			t.Errorf("base corner %v not behind the position", p)
		}
	}
}

func TestWritePNG(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WritePNG(buf, corner(), &Options{Marks: 3})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Empty() {
		t.Error("empty image")
	}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"line_square_closed", "subpath_empty", "curve_circle"} {
		tc, ok := testcases.Find(name)
		if !ok {
			t.Fatalf("test case %q not found", name)
		}
		s := motion.NewSampler(tc.Path, tc.CTM, tc.Flatness)

		fname := filepath.Join(dir, name+".pdf")
		if err := WritePDF(fname, s, &Options{Marks: 8}); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s: missing PDF header", name)
		}
	}
}
