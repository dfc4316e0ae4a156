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

package demo

import (
	"image"
	"image/color"

	"seehuhn.de/go/raycast"
)

// DrawPage paints the configured text in black onto a white page with a
// border at the margin.  With e the point size taken as a pixel count, the
// first glyph's pixel grid starts e pixels right of the left border, with
// its bottom 3e pixels below the top border.  Lines wrap before the right
// border.
func DrawPage(dst *image.Gray, r *raycast.Renderer, src raycast.OutlineSource, cfg *Config) (image.Point, error) {
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}

	b := dst.Bounds()
	m := cfg.Margin
	border := image.Rect(b.Min.X+m, b.Min.Y+m, b.Max.X-m, b.Max.Y-m)
	black := color.Gray{}
	for x := border.Min.X; x < border.Max.X; x++ {
		dst.SetGray(x, border.Min.Y, black)
		dst.SetGray(x, border.Max.Y-1, black)
	}
	for y := border.Min.Y; y < border.Max.Y; y++ {
		dst.SetGray(border.Min.X, y, black)
		dst.SetGray(border.Max.X-1, y, black)
	}

	em := int(cfg.PointSize)
	pen := image.Point{X: m + em, Y: b.Dy() - (m + 3*em)}
	r.WrapWidth = max(border.Dx()-3*em, 0)
	return r.DrawText(dst, src, cfg.Text, pen)
}
