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

// Package testcases provides outlines for testing and benchmarking the
// rasteriser.
//
// Coordinates use a y-up system, in pixels of the test canvas.  All points,
// including control points, lie inside the canvas.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string     // lowercase a-z, 0-9 and _ only
	Path   *path.Data // the outline, filled with the even-odd rule
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"polygon": polygonCases,
	"curve":   curveCases,
	"subpath": subpathCases,
}

// Find returns the test case with the given category and name.
func Find(category, name string) (TestCase, bool) {
	for _, tc := range All[category] {
		if tc.Name == name {
			return tc, true
		}
	}
	return TestCase{}, false
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given points.
func polygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// rectangle adds an axis-aligned rectangle to p.
func rectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return polygon(p, pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}
