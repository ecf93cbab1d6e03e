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

var noiseCases = []TestCase{
	{
		// the sub-unit step after a regular segment is dropped
		Name:   "subunit_step",
		Path:   polyline(pt(0, 0), pt(10, 0), pt(10.5, 0)),
		Length: 10,
	},
	{
		// the first segment of a subpath is kept, however short
		Name:   "subunit_first",
		Path:   polyline(pt(0, 0), pt(0.5, 0), pt(10, 0)),
		Length: 10,
	},
	{
		// the closing segment is shorter than one unit
		Name:   "noisy_close",
		Path:   polygon(pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100), pt(0, 0.5)),
		Length: 399.5,
	},
	{
		// sub-unit steps accumulate until they reach one unit
		Name:   "creeping",
		Path:   polyline(pt(0, 0), pt(10, 0), pt(10.4, 0), pt(10.8, 0), pt(11.2, 0)),
		Length: 11.2,
	},
}
