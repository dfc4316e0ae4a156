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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func polygonOutline(unitsPerEm float64, pts ...vec.Vec2) *Outline {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return FromPath(p.Close(), unitsPerEm)
}

func TestInsidePolygons(t *testing.T) {
	triangle := polygonOutline(1000, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 50, Y: 100})
	square := polygonOutline(1000, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 0, Y: 100})
	// an arrow head pointing up, with a notch at the bottom
	concave := polygonOutline(1000, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 50, Y: 30}, vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 50, Y: 100})

	cases := []struct {
		name string
		o    *Outline
		p    vec.Vec2
		want bool
	}{
		{"triangle centre", triangle, vec.Vec2{X: 50, Y: 33.3}, true},
		{"triangle left", triangle, vec.Vec2{X: 10, Y: 50.5}, false},
		{"triangle right", triangle, vec.Vec2{X: 90, Y: 50.5}, false},
		{"triangle below", triangle, vec.Vec2{X: 50, Y: -1.5}, false},
		{"square centre", square, vec.Vec2{X: 50, Y: 50.5}, true},
		{"square corner", square, vec.Vec2{X: 1, Y: 98.5}, true},
		{"square outside", square, vec.Vec2{X: 150, Y: 50.5}, false},
		{"square left", square, vec.Vec2{X: -10, Y: 50.5}, false},
		{"concave tip", concave, vec.Vec2{X: 50, Y: 80.5}, true},
		{"concave notch", concave, vec.Vec2{X: 50, Y: 10.5}, false},
		{"concave left wing", concave, vec.Vec2{X: 10, Y: 10.5}, true},
		{"concave right wing", concave, vec.Vec2{X: 90, Y: 10.5}, true},
	}
	for _, c := range cases {
		if got := Inside(c.p, c.o.Segments); got != c.want {
			t.Errorf("%s: got %t, want %t (crossings %d)",
				c.name, got, c.want, Crossings(c.p, c.o.Segments))
		}
	}
}

// TestNegativeOddCrossings checks that an odd negative total still counts
// as inside.
func TestNegativeOddCrossings(t *testing.T) {
	// counter-clockwise square: the ray from inside hits the upward right
	// edge from its left side
	square := polygonOutline(1000, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10})
	p := vec.Vec2{X: 5, Y: 5.5}
	if n := Crossings(p, square.Segments); n != -1 {
		t.Fatalf("crossings: got %d, want -1", n)
	}
	if !Inside(p, square.Segments) {
		t.Error("point not inside")
	}
}

func TestUnitSquare(t *testing.T) {
	o := polygonOutline(1000,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1000, Y: 0},
		vec.Vec2{X: 1000, Y: 1000}, vec.Vec2{X: 0, Y: 1000})
	if !Inside(vec.Vec2{X: 500, Y: 500}, o.Segments) {
		t.Error("(500, 500) should be filled")
	}
	if Inside(vec.Vec2{X: 1500, Y: 500}, o.Segments) {
		t.Error("(1500, 500) should not be filled")
	}
}

func TestShouldFill(t *testing.T) {
	// a square at an offset, in a font with 2048 units per em
	o := polygonOutline(2048,
		vec.Vec2{X: 100, Y: -200}, vec.Vec2{X: 740, Y: -200},
		vec.Vec2{X: 740, Y: 440}, vec.Vec2{X: 100, Y: 440})
	sc := Scale{PointSize: 32, Resolution: 144, UnitsPerEm: 2048}
	if o.BBox != (rect.Rect{LLx: 100, LLy: -200, URx: 740, URy: 440}) {
		t.Fatalf("unexpected bbox %v", o.BBox)
	}

	w, h := sc.GlyphSize(o.BBox)
	if w != 20 || h != 20 {
		t.Fatalf("grid size: got %dx%d, want 20x20", w, h)
	}
	for y := range h {
		for x := range w {
			px, py := float64(x)+0.5, float64(y)+0.5
			if !ShouldFill(px, py, o.BBox.LLx, o.BBox.LLy, sc, o.Segments) {
				t.Errorf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
	if ShouldFill(20.5, 10.5, o.BBox.LLx, o.BBox.LLy, sc, o.Segments) {
		t.Error("pixel right of the glyph filled")
	}
	if o.Filled(-0.5, 10.5, sc) {
		t.Error("pixel left of the glyph filled")
	}
}

func TestRing(t *testing.T) {
	p := &path.Data{}
	for _, r := range []float64{40, 20} {
		p = p.MoveTo(vec.Vec2{X: 50 - r, Y: 50 - r}).
			LineTo(vec.Vec2{X: 50 + r, Y: 50 - r}).
			LineTo(vec.Vec2{X: 50 + r, Y: 50 + r}).
			LineTo(vec.Vec2{X: 50 - r, Y: 50 + r}).
			Close()
	}
	o := FromPath(p, 1000)

	if Inside(vec.Vec2{X: 50, Y: 50.5}, o.Segments) {
		t.Error("hole is filled")
	}
	if !Inside(vec.Vec2{X: 20, Y: 50.5}, o.Segments) {
		t.Error("ring is not filled")
	}
}

// TestVertexOnRay pins the behaviour for rays through a contour vertex:
// both lines meeting at the vertex report a hit, so the point is
// classified as outside, while points just above and below are inside.
func TestVertexOnRay(t *testing.T) {
	diamond := polygonOutline(1000,
		vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 10, Y: 5},
		vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 0, Y: 5})

	p := vec.Vec2{X: 2, Y: 5}
	if got := Crossings(p, diamond.Segments); got != -2 {
		t.Errorf("crossings through the vertex: got %d, want -2", got)
	}
	if Inside(p, diamond.Segments) {
		t.Error("ray through the vertex classified as inside")
	}
	for _, dy := range []float64{-1e-4, 1e-4} {
		q := vec.Vec2{X: 2, Y: 5 + dy}
		if got := Crossings(q, diamond.Segments); got != -1 {
			t.Errorf("y=%g: got %d crossings, want -1", q.Y, got)
		}
		if !Inside(q, diamond.Segments) {
			t.Errorf("y=%g: not inside", q.Y)
		}
	}
}
