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

// Package raycast rasterises glyph outlines by casting a horizontal ray
// from every sample point and applying the even-odd rule to the number of
// outline crossings.
//
// Outlines are given in font design units, with y pointing up.  Pixel
// grids start at the lower left corner of the glyph's bounding box.
// Display coordinates, as used by [Canvas], have y pointing down.
package raycast

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/raycast/testcases"
)

// Canvas is the drawing surface of the host display.  The origin is the
// top left corner, with y increasing downwards.  *image.Gray implements
// Canvas.
type Canvas interface {
	Bounds() image.Rectangle
	SetGray(x, y int, c color.Gray)
}

// OutlineSource supplies glyph outlines for [Renderer.DrawText].
type OutlineSource interface {
	Outline(r rune) (*Outline, error)
}

// ToDisplay converts a point from the font coordinate system (y up) to
// display coordinates (y down) on a canvas of the given height.
func ToDisplay(x, y, canvasHeight int) image.Point {
	return image.Point{X: x, Y: canvasHeight - y}
}

// Renderer converts glyph outlines to gray pixels.
// The caller creates one instance and reuses it for multiple glyphs.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// PointSize is the font size in points.
	PointSize float64

	// Resolution is the pixel density of the display, in pixels per inch.
	Resolution float64

	// Mode selects the number of samples per pixel.
	Mode Supersampling

	// LineSpacing is the vertical distance between lines of text in
	// pixels, used by DrawText.
	LineSpacing int

	// WrapWidth is the horizontal distance from the start of a line after
	// which DrawText starts a new line.  Zero disables wrapping.
	WrapWidth int

	hits  []int     // per-pixel sample counts for one row
	cover []float32 // per-pixel coverage for one row
}

// NewRenderer returns a Renderer for 32pt text on a 144 dpi display, with
// 3×3 supersampling.
func NewRenderer() *Renderer {
	return &Renderer{
		PointSize:   defaultPointSize,
		Resolution:  defaultResolution,
		Mode:        ThreeByThree,
		LineSpacing: 4 * defaultPointSize,
	}
}

// Scale returns the unit conversion for a font with the given em size.
func (r *Renderer) Scale(unitsPerEm float64) Scale {
	return Scale{
		PointSize:  r.PointSize,
		Resolution: r.Resolution,
		UnitsPerEm: unitsPerEm,
	}
}

// Rasterise computes the pixel coverage of the glyph.  Coverage is
// delivered row by row, starting with the bottom row y = 0 of the glyph's
// pixel grid.  The coverage slice passed to emit is only valid for the
// duration of the callback.
func (r *Renderer) Rasterise(o *Outline, emit func(y int, coverage []float32)) {
	n := r.Mode.Grid()
	samples := float32(n * n)
	r.eachRow(o, func(y int, hits []int) {
		r.cover = slices.Grow(r.cover[:0], len(hits))[:len(hits)]
		for i, h := range hits {
			r.cover[i] = float32(h) / samples
		}
		emit(y, r.cover)
	})
}

// eachRow calls fn with the number of filled samples of every pixel, one
// row at a time.
func (r *Renderer) eachRow(o *Outline, fn func(y int, hits []int)) {
	sc := r.Scale(o.UnitsPerEm)
	width, height := sc.GlyphSize(o.BBox)
	if width == 0 || height == 0 {
		return
	}
	n := r.Mode.Grid()

	r.hits = slices.Grow(r.hits[:0], width)[:width]
	for y := range height {
		for x := range width {
			r.hits[x] = o.hits(x, y, sc, n)
		}
		fn(y, r.hits)
	}
}

// DrawGlyph paints the glyph onto dst.  The pen position gives the lower
// left corner of the glyph's pixel grid, in the font coordinate system of
// the canvas.
//
// Without supersampling, only filled pixels are painted (black).  With
// supersampling, every pixel of the grid is painted with its gray level.
//
// The return value is the display position of the corner of the glyph's
// bounding box opposite the font origin, where the next glyph can be
// placed.
func (r *Renderer) DrawGlyph(dst Canvas, o *Outline, pen image.Point) image.Point {
	bounds := dst.Bounds()
	h := bounds.Dy()
	n := r.Mode.Grid()
	samples := float64(n * n)

	r.eachRow(o, func(y int, hits []int) {
		for x, count := range hits {
			if r.Mode == None && count == 0 {
				continue
			}
			// pixel rows cover [y, y+1); the display addresses their top edge
			pt := ToDisplay(pen.X+x, pen.Y+y+1, h).Add(bounds.Min)
			if !pt.In(bounds) {
				continue
			}
			dst.SetGray(pt.X, pt.Y, color.Gray{Y: GrayLevel(float64(count) / samples)})
		}
	})

	return r.cursor(o, pen, h)
}

func (r *Renderer) cursor(o *Outline, pen image.Point, canvasHeight int) image.Point {
	sc := r.Scale(o.UnitsPerEm)
	xMax := int(sc.ToPixels(o.BBox.URx))
	yMax := int(sc.ToPixels(o.BBox.URy))
	return ToDisplay(pen.X+xMax, pen.Y+yMax, canvasHeight)
}

// DrawText paints a string onto dst, one glyph after the other.  Lines are
// separated by "\n" and by wrapping at WrapWidth.  The pen gives the
// position of the first glyph, as for DrawGlyph.
//
// The return value is the display position of the final pen position.
func (r *Renderer) DrawText(dst Canvas, src OutlineSource, text string, pen image.Point) (image.Point, error) {
	h := dst.Bounds().Dy()
	x, y := pen.X, pen.Y
	for i, line := range strings.Split(norm.NFC.String(text), "\n") {
		if i > 0 {
			x = pen.X
			y -= r.LineSpacing
		}
		for _, c := range line {
			if r.WrapWidth > 0 && x > pen.X+r.WrapWidth {
				x = pen.X
				y -= r.LineSpacing
			}
			o, err := src.Outline(c)
			if err != nil {
				return ToDisplay(x, y, h), fmt.Errorf("drawing %q: %w", c, err)
			}
			next := r.DrawGlyph(dst, o, image.Point{X: x, Y: y})
			x = next.X
		}
	}
	Logger().Debug("text drawn", "runes", len(text), "mode", r.Mode.String())
	return ToDisplay(x, y, h), nil
}

// RenderExample renders a test case into a coverage buffer.  The buffer is
// in row-major order with the top row first.  Each byte represents
// coverage from 0 (empty) to 255 (full); pixels outside the glyph's grid
// are left unchanged.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int, mode Supersampling) {
	o := fixtureOutline(tc)
	r := &Renderer{
		PointSize:  fixtureScale.PointSize,
		Resolution: fixtureScale.Resolution,
		Mode:       mode,
	}
	x0 := int(o.BBox.LLx)
	y0 := int(o.BBox.LLy)
	r.Rasterise(o, func(y int, coverage []float32) {
		row := height - 1 - (y0 + y)
		if row < 0 || row >= height {
			return
		}
		line := buf[row*stride:]
		for i, c := range coverage {
			col := x0 + i
			if col < 0 || col >= width {
				continue
			}
			line[col] = byte(max(0, min(255, int(c*256))))
		}
	})
}

// fixtureOutline converts a test case path to an outline whose pixel grid
// is aligned with the canvas pixels.
func fixtureOutline(tc testcases.TestCase) *Outline {
	o := FromPath(tc.Path, FixtureUnitsPerEm)
	o.BBox = rect.Rect{
		LLx: math.Floor(o.BBox.LLx),
		LLy: math.Floor(o.BBox.LLy),
		URx: math.Ceil(o.BBox.URx),
		URy: math.Ceil(o.BBox.URy),
	}
	return o
}

// FixtureUnitsPerEm is the em size used for test case paths.  Rendered
// with a point size of FixtureUnitsPerEm at 72 dpi, one design unit maps
// to one pixel.
const FixtureUnitsPerEm = 72

var fixtureScale = Scale{
	PointSize:  FixtureUnitsPerEm,
	Resolution: PointsPerInch,
	UnitsPerEm: FixtureUnitsPerEm,
}

const (
	defaultPointSize  = 32
	defaultResolution = 144
)
