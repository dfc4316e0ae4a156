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

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 14, 32, 58, 54, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 36, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(10, 32, 54, 32),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 14, 20, 54, 44, 54, 54, 14),
		Width:  64,
		Height: 64,
	},
	{
		// the closing chord crosses the curve three times
		Name:   "cubic_wave",
		Path:   cubicCurve(6, 20, 18, 60, 46, 4, 58, 44),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Path:   circle(&path.Data{}, 32, 32, 25),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "pie",
		Path:   pie(32, 32, 24, 3),
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1+20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2-20), pt(x2, y2)).
		Close()
}

// circle adds a circle, made of four cubic Bezier curves, to p.  The
// contour runs counter-clockwise.
func circle(p *path.Data, cx, cy, r float64) *path.Data {
	return ellipseTo(p, cx, cy, r, r)
}

func ellipse(cx, cy, rx, ry float64) *path.Data {
	return ellipseTo(&path.Data{}, cx, cy, rx, ry)
}

func ellipseTo(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// pie builds a circular sector of the given number of quadrants (1-4),
// starting at the positive x axis.
func pie(cx, cy, r float64, quadrants int) *path.Data {
	k := r * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx, cy)).
		LineTo(pt(cx+r, cy))
	arcs := [4][3][2]float64{
		{{cx + r, cy + k}, {cx + k, cy + r}, {cx, cy + r}},
		{{cx - k, cy + r}, {cx - r, cy + k}, {cx - r, cy}},
		{{cx - r, cy - k}, {cx - k, cy - r}, {cx, cy - r}},
		{{cx + k, cy - r}, {cx + r, cy - k}, {cx + r, cy}},
	}
	for _, a := range arcs[:min(max(quadrants, 1), 4)] {
		p = p.CubeTo(pt(a[0][0], a[0][1]), pt(a[1][0], a[1][1]), pt(a[2][0], a[2][1]))
	}
	return p.Close()
}
