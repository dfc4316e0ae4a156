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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline is the vector description of a single glyph.
//
// An Outline is not modified after construction and can be shared freely.
type Outline struct {
	// Segments lists the contours of the glyph, in font design units.
	Segments []Segment

	// BBox is the bounding box of the glyph in font design units.  The
	// lower left corner is the origin of the glyph's pixel grid.
	BBox rect.Rect

	// UnitsPerEm is the size of the em square of the font.
	UnitsPerEm float64
}

// IsEmpty reports whether the outline has no drawing segments.
func (o *Outline) IsEmpty() bool {
	for _, s := range o.Segments {
		if s.Kind != Origin && s.Kind != Close {
			return false
		}
	}
	return true
}

// Centre returns the centre of the glyph's bounding box, in font design
// units.
func (o *Outline) Centre() vec.Vec2 {
	return vec.Vec2{
		X: (o.BBox.LLx + o.BBox.URx) / 2,
		Y: (o.BBox.LLy + o.BBox.URy) / 2,
	}
}

// Builder constructs an [Outline] from a stream of drawing commands.
//
// Every drawing command starts at the end point of the previous one.
// Contours are closed with a straight line if they do not end where they
// started, and a MoveTo while a contour is open closes that contour.  This
// makes command streams with and without explicit close events equivalent.
type Builder struct {
	segs    []Segment
	current vec.Vec2
	subpath vec.Vec2
	open    bool
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p vec.Vec2) {
	if b.open {
		b.Close()
	}
	b.segs = append(b.segs, Segment{Kind: Origin, Start: p, End: p})
	b.current = p
	b.subpath = p
	b.open = true
}

// LineTo appends a straight line to p.
func (b *Builder) LineTo(p vec.Vec2) {
	b.ensureOpen()
	b.segs = append(b.segs, Segment{Kind: Line, Start: b.current, End: p})
	b.current = p
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at p.
func (b *Builder) QuadTo(c, p vec.Vec2) {
	b.ensureOpen()
	b.segs = append(b.segs, Segment{Kind: Quad, Start: b.current, Ctrl1: c, End: p})
	b.current = p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2,
// ending at p.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) {
	b.ensureOpen()
	b.segs = append(b.segs, Segment{Kind: Cubic, Start: b.current, Ctrl1: c1, Ctrl2: c2, End: p})
	b.current = p
}

// Close ends the current contour.  Calling Close when no contour is open
// has no effect.
func (b *Builder) Close() {
	if !b.open {
		return
	}
	if b.current != b.subpath {
		b.segs = append(b.segs, Segment{Kind: Line, Start: b.current, End: b.subpath})
	}
	b.segs = append(b.segs, Segment{Kind: Close})
	b.current = b.subpath
	b.open = false
}

// ensureOpen starts an implicit contour at the current point, for drawing
// commands which follow a Close without a MoveTo.
func (b *Builder) ensureOpen() {
	if !b.open {
		b.MoveTo(b.current)
	}
}

// Outline closes any open contour and returns the collected segments.
// The Builder is reset and can be reused.
func (b *Builder) Outline(bbox rect.Rect, unitsPerEm float64) *Outline {
	b.Close()
	o := &Outline{
		Segments:   b.segs,
		BBox:       bbox,
		UnitsPerEm: unitsPerEm,
	}
	*b = Builder{}
	return o
}

// Segments returns the segments collected so far, without closing the
// current contour.
func (b *Builder) Segments() []Segment {
	return b.segs
}

// FromPath converts a path to an outline.  The bounding box is the box
// spanned by all points of the path, including control points.
func FromPath(p *path.Data, unitsPerEm float64) *Outline {
	b := &Builder{}
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(p.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			b.LineTo(p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			b.QuadTo(p.Coords[coordIdx], p.Coords[coordIdx+1])
			coordIdx += 2
		case path.CmdCubeTo:
			b.CubeTo(p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			coordIdx += 3
		case path.CmdClose:
			b.Close()
		}
	}
	return b.Outline(controlBox(p.Coords), unitsPerEm)
}

// Path converts the outline back to a path.
func (o *Outline) Path() *path.Data {
	p := &path.Data{}
	for _, s := range o.Segments {
		switch s.Kind {
		case Origin:
			p = p.MoveTo(s.Start)
		case Line:
			p = p.LineTo(s.End)
		case Quad:
			p = p.QuadTo(s.Ctrl1, s.End)
		case Cubic:
			p = p.CubeTo(s.Ctrl1, s.Ctrl2, s.End)
		case Close:
			p = p.Close()
		}
	}
	return p
}

func controlBox(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	box := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range pts {
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	return box
}
