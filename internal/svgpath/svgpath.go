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
// Package svgpath reads path data in the syntax of the SVG "d" attribute.
//
// All commands of SVG 1.1 are supported. Elliptical arcs are converted to
// cubic Bézier curves, so the resulting path only contains move-to,
// line-to, quadratic, cubic and close-path commands.
package svgpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrSyntax is returned (wrapped) for malformed path data.
var ErrSyntax = errors.New("invalid SVG path data")

// Parse converts SVG path data to a path.
// Empty input gives an empty path.
func Parse(d string) (*path.Data, error) {
	p := &parser{buf: []byte(d), res: &path.Data{}}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.res, nil
}

// MustParse is like Parse but panics on error.
// It is intended for fixed path data in programs and tests.
func MustParse(d string) *path.Data {
	res, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return res
}

type parser struct {
	buf []byte
	pos int
	res *path.Data

	current vec.Vec2 // current point
	start   vec.Vec2 // start of the current subpath
	ctrl    vec.Vec2 // last control point, for S and T
	prevCmd byte
}

func (p *parser) run() error {
	p.skipCommaWhitespace()
	if p.pos >= len(p.buf) {
		return nil
	}
	if c := p.buf[p.pos]; c != 'M' && c != 'm' {
		return p.errorf("path must start with a move-to, found %q", c)
	}

	for {
		p.skipCommaWhitespace()
		if p.pos >= len(p.buf) {
			return nil
		}

		cmd := p.prevCmd
		if c := p.buf[p.pos]; isCommand(c) {
			cmd = c
			p.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return p.errorf("unexpected %q", c)
		}

		if err := p.command(cmd); err != nil {
			return err
		}

		// extra coordinate pairs after a move-to are implicit line-tos
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		p.prevCmd = cmd
	}
}

func (p *parser) command(cmd byte) error {
	rel := cmd >= 'a'
	base := vec.Vec2{}
	if rel {
		base = p.current
	}

	switch cmd {
	case 'M', 'm':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.res.MoveTo(pt)
		p.current, p.start = pt, pt

	case 'Z', 'z':
		p.res.Close()
		p.current = p.start

	case 'L', 'l':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		p.res.LineTo(pt)
		p.current = pt

	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: base.X + x, Y: p.current.Y}
		p.res.LineTo(pt)
		p.current = pt

	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		pt := vec.Vec2{X: p.current.X, Y: base.Y + y}
		p.res.LineTo(pt)
		p.current = pt

	case 'C', 'c':
		pts, err := p.points(base, 3)
		if err != nil {
			return err
		}
		p.res.CubeTo(pts[0], pts[1], pts[2])
		p.ctrl, p.current = pts[1], pts[2]

	case 'S', 's':
		pts, err := p.points(base, 2)
		if err != nil {
			return err
		}
		c1 := p.current
		if isOneOf(p.prevCmd, "CcSs") {
			c1 = p.current.Mul(2).Sub(p.ctrl)
		}
		p.res.CubeTo(c1, pts[0], pts[1])
		p.ctrl, p.current = pts[0], pts[1]

	case 'Q', 'q':
		pts, err := p.points(base, 2)
		if err != nil {
			return err
		}
		p.res.QuadTo(pts[0], pts[1])
		p.ctrl, p.current = pts[0], pts[1]

	case 'T', 't':
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		c := p.current
		if isOneOf(p.prevCmd, "QqTt") {
			c = p.current.Mul(2).Sub(p.ctrl)
		}
		p.res.QuadTo(c, pt)
		p.ctrl, p.current = c, pt

	case 'A', 'a':
		rx, err := p.number()
		if err != nil {
			return err
		}
		ry, err := p.number()
		if err != nil {
			return err
		}
		rot, err := p.number()
		if err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		pt, err := p.point(base)
		if err != nil {
			return err
		}
		arcTo(p.res, p.current, rx, ry, rot, large, sweep, pt)
		p.current = pt

	default:
		return p.errorf("unknown command %q", cmd)
	}
	return nil
}

func (p *parser) skipCommaWhitespace() {
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) number() (float64, error) {
	p.skipCommaWhitespace()
	f, n := strconv.ParseFloat(p.buf[p.pos:])
	if n == 0 {
		if p.pos >= len(p.buf) {
			return 0, p.errorf("unexpected end of data")
		}
		return 0, p.errorf("expected number, found %q", p.buf[p.pos])
	}
	p.pos += n
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, p.errorf("number out of range")
	}
	return f, nil
}

// flag reads an arc flag. Flags are single digits and may be written
// without a separator, as in "a1 1 0 00 5 5".
func (p *parser) flag() (bool, error) {
	p.skipCommaWhitespace()
	if p.pos >= len(p.buf) {
		return false, p.errorf("unexpected end of data")
	}
	switch c := p.buf[p.pos]; c {
	case '0', '1':
		p.pos++
		return c == '1', nil
	default:
		return false, p.errorf("expected flag, found %q", c)
	}
}

func (p *parser) point(base vec.Vec2) (vec.Vec2, error) {
	x, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: base.X + x, Y: base.Y + y}, nil
}

func (p *parser) points(base vec.Vec2, n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		pt, err := p.point(base)
		if err != nil {
			return nil, err
		}
		res[i] = pt
	}
	return res, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func isCommand(c byte) bool {
	return isOneOf(c, "MmZzLlHhVvCcSsQqTtAa")
}

func isOneOf(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}
