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
	"bytes"
	"errors"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raycast"
)

func parseGoText(data []byte) (*Font, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, errors.New("no fonts found")
	}
	face := faces[0]
	return &Font{
		backend:    GoText,
		unitsPerEm: float64(face.Upem()),
		face:       face,
	}, nil
}

func (f *Font) goTextOutline(r rune) (*raycast.Outline, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return nil, ErrGlyphNotFound
	}
	data, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, errors.New("glyph has no outline data")
	}

	pt := func(p opentype.SegmentPoint) vec.Vec2 {
		return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}

	b := &raycast.Builder{}
	var pts []vec.Vec2
	for _, s := range data.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			b.MoveTo(pt(s.Args[0]))
			pts = append(pts, pt(s.Args[0]))
		case opentype.SegmentOpLineTo:
			b.LineTo(pt(s.Args[0]))
			pts = append(pts, pt(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			b.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
			pts = append(pts, pt(s.Args[0]), pt(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			b.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
			pts = append(pts, pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}

	raycast.Logger().Debug("glyph loaded", "backend", "gotext", "rune", string(r), "segments", len(b.Segments()))
	return b.Outline(f.goTextBBox(gid, pts), f.unitsPerEm), nil
}

// goTextBBox returns the glyph's bounding box from the font's extents
// table, or the box of the given outline points if the font has none.
func (f *Font) goTextBBox(gid font.GID, pts []vec.Vec2) rect.Rect {
	ext, ok := f.face.GlyphExtents(gid)
	if !ok {
		return pointBox(pts)
	}
	x0 := float64(ext.XBearing)
	x1 := x0 + float64(ext.Width)
	y0 := float64(ext.YBearing)
	y1 := y0 + float64(ext.Height)
	return rect.Rect{
		LLx: min(x0, x1),
		LLy: min(y0, y1),
		URx: max(x0, x1),
		URy: max(y0, y1),
	}
}
