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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:   "scaled_square",
		Path:   rectangle(0, 0, 10, 10),
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Length: 80,
	},
	{
		Name:   "rotated_corner",
		Path:   polyline(pt(0, 0), pt(100, 0), pt(100, 100)),
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
		Length: 200,
	},
	{
		Name:   "stretched_horizontal",
		Path:   polyline(pt(0, 0), pt(20, 0)),
		CTM:    matrix.Scale(2, 1),
		Length: 40,
	},
	{
		Name:   "stretched_vertical",
		Path:   polyline(pt(5, 0), pt(5, 10)),
		CTM:    matrix.Scale(1, 3),
		Length: 30,
	},
	{
		// a shrunk path drops segments which become shorter than one unit
		Name:   "shrunk_steps",
		Path:   polyline(pt(0, 0), pt(10, 0), pt(11, 0), pt(12, 0), pt(20, 0)),
		CTM:    matrix.Scale(0.5, 0.5),
		Length: 10,
	},
}
