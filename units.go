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

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// PointsPerInch is the number of typographic points in one inch.
const PointsPerInch = 72

// Scale maps between font design units and device pixels.
type Scale struct {
	// PointSize is the font size in points.
	PointSize float64

	// Resolution is the pixel density of the device, in pixels per inch.
	Resolution float64

	// UnitsPerEm is the number of font design units in one em.
	UnitsPerEm float64
}

// Ratio returns the number of device pixels per font design unit.
func (s Scale) Ratio() float64 {
	return s.PointSize * s.Resolution / (PointsPerInch * s.UnitsPerEm)
}

// ToPixels converts a length in font design units to device pixels.
func (s Scale) ToPixels(v float64) float64 {
	return v * s.Ratio()
}

// ToFontUnits converts a length in device pixels to font design units.
// This is the inverse of ToPixels.
func (s Scale) ToFontUnits(v float64) float64 {
	return v / s.Ratio()
}

// GlyphSize returns the number of pixel columns and rows needed to cover
// a bounding box given in font design units.
func (s Scale) GlyphSize(bbox rect.Rect) (width, height int) {
	r := s.Ratio()
	width = int(math.Ceil((bbox.URx - bbox.LLx) * r))
	height = int(math.Ceil((bbox.URy - bbox.LLy) * r))
	return max(width, 0), max(height, 0)
}
