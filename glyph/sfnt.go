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

package glyph

import (
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast"
)

func parseSFNT(data []byte) (*Font, error) {
	var (
		sf  *sfnt.Font
		err error
	)
	if isCollection(data) {
		var c *sfnt.Collection
		c, err = sfnt.ParseCollection(data)
		if err == nil {
			sf, err = c.Font(0)
		}
	} else {
		sf, err = sfnt.Parse(data)
	}
	if err != nil {
		return nil, err
	}
	return &Font{
		backend:    SFNT,
		unitsPerEm: float64(sf.UnitsPerEm()),
		sfnt:       sf,
	}, nil
}

func isCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == "ttcf"
}

// ppem is the scale at which sfnt reports one pixel per font design unit.
// The 26.6 fixed point values keep the fractional part of implied
// on-curve points; fromFixed converts them back to design units.
func (f *Font) ppem() fixed.Int26_6 {
	return fixed.I(int(f.sfnt.UnitsPerEm()))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func (f *Font) sfntIndex(r rune) (sfnt.GlyphIndex, error) {
	gid, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, err
	}
	if gid == 0 {
		return 0, ErrGlyphNotFound
	}
	return gid, nil
}

func (f *Font) sfntOutline(r rune) (*raycast.Outline, error) {
	gid, err := f.sfntIndex(r)
	if err != nil {
		return nil, err
	}
	segs, err := f.sfnt.LoadGlyph(&f.buf, gid, f.ppem(), nil)
	if err != nil {
		return nil, err
	}

	// sfnt uses a y-down coordinate system
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: fromFixed(p.X), Y: -fromFixed(p.Y)}
	}

	// segs is only valid until the next use of the buffer
	b := &raycast.Builder{}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	segments := b.Segments()

	bbox, err := f.sfntBBox(gid)
	if err != nil {
		return nil, err
	}
	raycast.Logger().Debug("glyph loaded", "backend", "sfnt", "rune", string(r), "segments", len(segments))
	return b.Outline(bbox, f.unitsPerEm), nil
}

func (f *Font) sfntBBox(gid sfnt.GlyphIndex) (rect.Rect, error) {
	bounds, _, err := f.sfnt.GlyphBounds(&f.buf, gid, f.ppem(), xfont.HintingNone)
	if err != nil {
		return rect.Rect{}, err
	}
	return rect.Rect{
		LLx: fromFixed(bounds.Min.X),
		LLy: -fromFixed(bounds.Max.Y),
		URx: fromFixed(bounds.Max.X),
		URy: -fromFixed(bounds.Min.Y),
	}, nil
}

// bbox returns the bounding box of the glyph for r.  The caller must hold
// f.mu.
func (f *Font) bbox(r rune) (rect.Rect, error) {
	if f.backend == SFNT {
		gid, err := f.sfntIndex(r)
		if err != nil {
			return rect.Rect{}, err
		}
		return f.sfntBBox(gid)
	}

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return rect.Rect{}, ErrGlyphNotFound
	}
	return f.goTextBBox(gid, nil), nil
}

func pointBox(pts []vec.Vec2) rect.Rect {
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
