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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		// the overlap is a hole under even-odd
		Name: "overlapping_rectangles",
		Path: rectangle(rectangle(&path.Data{},
			10, 10, 40, 40),
			24, 24, 54, 54),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ring",
		Path:   rectangle(rectangle(&path.Data{}, 7, 7, 57, 57), 20, 20, 44, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
	},
	{
		// outer and inner contour, like the letter o
		Name:   "letter_o",
		Path:   circle(circle(&path.Data{}, 32, 32, 26), 32, 32, 15),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_ring",
		Path:   quadraticRing(32, 32, 26, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2, size float64) *path.Data {
	p := polygon(&path.Data{}, pt(cx1, cy1+size), pt(cx1-size, cy1-size), pt(cx1+size, cy1-size))
	return polygon(p, pt(cx2, cy2+size), pt(cx2-size, cy2-size), pt(cx2+size, cy2-size))
}

// multipleRings builds three square rings with holes.
func multipleRings(cx, cy float64) *path.Data {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
	p := &path.Data{}
	for _, r := range rings {
		p = rectangle(p, r.cx-r.outer, r.cy-r.outer, r.cx+r.outer, r.cy+r.outer)
		p = rectangle(p, r.cx-r.inner, r.cy-r.inner, r.cx+r.inner, r.cy+r.inner)
	}
	return p
}

// quadraticRing builds a ring from two octagon-like contours of quadratic
// Bezier curves, the way TrueType glyphs describe round shapes.
func quadraticRing(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	for _, r := range []float64{outer, inner} {
		p = p.MoveTo(pt(cx+r, cy)).
			QuadTo(pt(cx+r, cy+r), pt(cx, cy+r)).
			QuadTo(pt(cx-r, cy+r), pt(cx-r, cy)).
			QuadTo(pt(cx-r, cy-r), pt(cx, cy-r)).
			QuadTo(pt(cx+r, cy-r), pt(cx+r, cy)).
			Close()
	}
	return p
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) *path.Data {
	const (
		size    = 5.0
		spacing = 14.0
	)
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			cx := 15.0 + float64(col)*spacing
			cy := 15.0 + float64(row)*spacing
			p = polygon(p, pt(cx, cy+size), pt(cx-size, cy-size), pt(cx+size, cy-size))
		}
	}
	return p
}
