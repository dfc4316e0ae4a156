// seehuhn.de/go/raycast - a ray-casting glyph rasteriser
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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(&path.Data{}, pt(10, 10), pt(54, 10), pt(32, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "square",
		Path:   rectangle(&path.Data{}, 12, 12, 52, 52),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "concave_quad",
		Path:   polygon(&path.Data{}, pt(8, 8), pt(56, 8), pt(32, 24), pt(32, 56)),
		Width:  64,
		Height: 64,
	},
	{
		// self-intersecting: the centre pentagon is a hole under even-odd
		Name:   "star",
		Path:   fivePointStar(32, 32, 26),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "offset_rectangle",
		Path:   rectangle(&path.Data{}, 10.3, 10.7, 50.6, 40.2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_sliver",
		Path:   polygon(&path.Data{}, pt(4, 30), pt(60, 31), pt(60, 33)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Path:   zigzag(6, 12, 58, 52, 6),
		Width:  64,
		Height: 64,
	},
}

// fivePointStar builds a five-pointed star by connecting every second
// corner of a regular pentagon.
func fivePointStar(cx, cy, r float64) *path.Data {
	var corners [5]vec.Vec2
	for i := range corners {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		corners[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(&path.Data{}, corners[0], corners[2], corners[4], corners[1], corners[3])
}

// zigzag builds a band with a saw-tooth top edge of n teeth.
func zigzag(x1, y1, x2, y2 float64, n int) *path.Data {
	pts := []vec.Vec2{pt(x1, y1), pt(x2, y1)}
	step := (x2 - x1) / float64(n)
	for i := n; i > 0; i-- {
		x := x1 + float64(i)*step
		pts = append(pts, pt(x, y2), pt(x-step/2, (y1+y2)/2))
	}
	pts = append(pts, pt(x1, y2))
	return polygon(&path.Data{}, pts...)
}
