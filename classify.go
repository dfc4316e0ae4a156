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

package raycast

import "seehuhn.de/go/geom/vec"

// Crossings returns the signed sum of the intersections between the
// segments and the ray from p in direction [RayDir].
func Crossings(p vec.Vec2, segs []Segment) int {
	count := 0
	for _, s := range segs {
		count += s.Intersect(p, RayDir)
	}
	return count
}

// Inside reports whether p lies inside the outline formed by segs, using
// the even-odd rule.  The point p is given in font design units.
func Inside(p vec.Vec2, segs []Segment) bool {
	return Crossings(p, segs)%2 != 0
}

// ShouldFill reports whether the point (x, y), given in device pixels
// relative to the lower left corner (xMin, yMin) of the glyph's bounding
// box, lies inside the outline.
func ShouldFill(x, y, xMin, yMin float64, sc Scale, segs []Segment) bool {
	p := vec.Vec2{
		X: sc.ToFontUnits(x) + xMin,
		Y: sc.ToFontUnits(y) + yMin,
	}
	return Inside(p, segs)
}

// Filled reports whether the pixel-space point (x, y) of the glyph's pixel
// grid lies inside the outline.
func (o *Outline) Filled(x, y float64, sc Scale) bool {
	return ShouldFill(x, y, o.BBox.LLx, o.BBox.LLy, sc, o.Segments)
}
