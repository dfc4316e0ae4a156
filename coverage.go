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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// edge is a straight piece of the flattened outline, in pixel coordinates
// of the glyph grid.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// AreaRasteriser computes the exact area coverage of every pixel of a
// glyph grid.  Curves are flattened to line segments first.  The result is
// used as the ground truth for judging the point-sampled coverage of
// [Renderer].
//
// Internal buffers grow as needed and are reused between calls.
type AreaRasteriser struct {
	// Flatness is the curve flattening tolerance in pixels.
	// Must be > 0.
	Flatness float64

	ctm       matrix.Matrix // font design units to glyph grid pixels
	edges     []edge
	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // cover weighted by the horizontal position
	crossings []float64 // y values where an edge crosses a pixel column
}

// NewAreaRasteriser returns an AreaRasteriser with a flattening tolerance
// of a quarter pixel.
func NewAreaRasteriser() *AreaRasteriser {
	return &AreaRasteriser{
		Flatness: defaultFlatness,
		ctm:      matrix.Identity,
	}
}

// Rasterise computes the even-odd area coverage of the glyph at the given
// scale.  Rows are delivered bottom to top, each covering the full width
// of the glyph grid.  The coverage slice passed to emit is only valid for
// the duration of the callback.
func (r *AreaRasteriser) Rasterise(o *Outline, sc Scale, emit func(y int, coverage []float32)) {
	width, height := sc.GlyphSize(o.BBox)
	if width == 0 || height == 0 {
		return
	}

	q := sc.Ratio()
	r.ctm = matrix.Matrix{q, 0, 0, q, -o.BBox.LLx * q, -o.BBox.LLy * q}

	r.edges = r.edges[:0]
	for _, s := range o.Segments {
		switch s.Kind {
		case Line:
			r.addEdge(s.Start, s.End)
		case Quad:
			r.flattenQuadratic(s.Start, s.Ctrl1, s.End)
		case Cubic:
			r.flattenCubic(s.Start, s.Ctrl1, s.Ctrl2, s.End)
		}
	}

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	for i := range r.edges {
		e := &r.edges[i]
		yLo := max(int(math.Floor(min(e.y0, e.y1))), 0)
		yHi := min(int(math.Floor(max(e.y0, e.y1)))+1, height)
		for y := yLo; y < yHi; y++ {
			row := y * width
			r.accumulate(e, y, r.cover[row:row+width], r.area[row:row+width])
		}
	}

	for y := range height {
		row := y * width
		coverage := r.cover[row : row+width]
		integrateEvenOdd(coverage, r.area[row:row+width])
		emit(y, coverage)
	}
}

func (r *AreaRasteriser) apply(p vec.Vec2) vec.Vec2 {
	m := r.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// addEdge appends the line from p0 to p1, given in font design units.
// Horizontal lines do not contribute to the coverage and are dropped.
func (r *AreaRasteriser) addEdge(p0, p1 vec.Vec2) {
	d0 := r.apply(p0)
	d1 := r.apply(p1)
	dy := d1.Y - d0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: d0.X, y0: d0.Y,
		x1: d1.X, y1: d1.Y,
		dxdy: (d1.X - d0.X) / dy,
	})
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments,
// with the number of pieces chosen from the pixel-space deviation
// (P0 - 2P1 + P2)/4.
func (r *AreaRasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.apply(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Sub(r.apply(vec.Vec2{}))
	n := 1
	if d := dev.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := vec.Vec2{X: quadAt(p0.X, p1.X, p2.X, t), Y: quadAt(p0.Y, p1.Y, p2.Y, t)}
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of pieces.
func (r *AreaRasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	origin := r.apply(vec.Vec2{})
	d1 := r.apply(p0.Sub(p1.Mul(2)).Add(p2)).Sub(origin)
	d2 := r.apply(p1.Sub(p2.Mul(2)).Add(p3)).Sub(origin)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := vec.Vec2{X: cubicAt(p0.X, p1.X, p2.X, p3.X, t), Y: cubicAt(p0.Y, p1.Y, p2.Y, p3.Y, t)}
		r.addEdge(prev, pt)
		prev = pt
	}
}

// accumulate adds the contribution of e within the scanline [y, y+1) to
// one row of the cover and area buffers.
//
// An edge piece of signed height h inside pixel i adds h to cover[i] and
// h*(1-xFrac) to area[i], where xFrac is the position of the piece within
// the pixel.  The coverage of pixel i is then area[i] plus the sum of
// cover[j] for all j < i.  Pieces left of the grid go to pixel 0 in full;
// pieces right of the grid are dropped.
func (r *AreaRasteriser) accumulate(e *edge, y int, cover, area []float32) {
	width := len(cover)
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	// split the piece wherever it crosses into the next pixel column
	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			yAtX := e.y0 + dydx*(float64(x)-e.x0)
			if yAtX > yTop && yAtX < yBot {
				r.crossings = append(r.crossings, yAtX)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		h := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < 0:
			cover[0] += h
			area[0] += h
		case pix < width:
			cover[pix] += h
			area[pix] += h * float32(1-(xMid-float64(pix)))
		}
	}
}

// integrateEvenOdd converts one row of cover and area values into
// coverage, folding the signed area according to the even-odd rule.
// The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]

		raw = float32(math.Abs(float64(raw)))
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - float32(math.Abs(float64(1-mod)))
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent, in pixels,
	// for an edge to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
