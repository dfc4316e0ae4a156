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

func TestBuilderCloses(t *testing.T) {
	b := &Builder{}
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 10, Y: 0})
	b.QuadTo(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10})
	// no Close: the next MoveTo closes the contour
	b.MoveTo(vec.Vec2{X: 2, Y: 2})
	b.LineTo(vec.Vec2{X: 4, Y: 2})
	b.LineTo(vec.Vec2{X: 2, Y: 4})
	b.Close()
	o := b.Outline(rect.Rect{URx: 10, URy: 10}, 1000)

	kinds := []Kind{Origin, Line, Quad, Line, Close, Origin, Line, Line, Line, Close}
	if len(o.Segments) != len(kinds) {
		t.Fatalf("got %d segments, want %d", len(o.Segments), len(kinds))
	}
	for i, k := range kinds {
		if o.Segments[i].Kind != k {
			t.Errorf("segment %d: got %s, want %s", i, o.Segments[i].Kind, k)
		}
	}
	if end := o.Segments[3].End; end != (vec.Vec2{}) {
		t.Errorf("closing line ends at %v", end)
	}

	// the builder is reset
	if len(b.Segments()) != 0 {
		t.Error("builder not reset")
	}
}

func TestBuilderNoDoubleClose(t *testing.T) {
	b := &Builder{}
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 10, Y: 0})
	b.LineTo(vec.Vec2{X: 0, Y: 0})
	b.Close()
	b.Close()
	o := b.Outline(rect.Rect{}, 1000)
	if n := len(o.Segments); n != 4 {
		t.Errorf("got %d segments, want 4", n)
	}
}

func TestChainInvariant(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		CubeTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 15, Y: 10}, vec.Vec2{X: 20, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: -5}).
		MoveTo(vec.Vec2{X: 30, Y: 0}).
		QuadTo(vec.Vec2{X: 35, Y: 5}, vec.Vec2{X: 40, Y: 0}).
		Close()
	o := FromPath(p, 1000)

	var prev, start vec.Vec2
	for i, s := range o.Segments {
		switch s.Kind {
		case Origin:
			start, prev = s.Start, s.End
		case Close:
			if prev != start {
				t.Errorf("segment %d: contour ends at %v, started at %v", i, prev, start)
			}
		default:
			if s.Start != prev {
				t.Errorf("segment %d: starts at %v, previous ended at %v", i, s.Start, prev)
			}
			prev = s.End
		}
	}

	want := rect.Rect{LLx: 0, LLy: -5, URx: 40, URy: 10}
	if o.BBox != want {
		t.Errorf("bbox: got %v, want %v", o.BBox, want)
	}
}

func TestPathRoundTrip(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		QuadTo(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 0}).
		Close()
	o := FromPath(p, 1000)
	o2 := FromPath(o.Path(), 1000)
	if len(o.Segments) != len(o2.Segments) {
		t.Fatalf("got %d segments, want %d", len(o2.Segments), len(o.Segments))
	}
	for i := range o.Segments {
		if o.Segments[i] != o2.Segments[i] {
			t.Errorf("segment %d: %v != %v", i, o2.Segments[i], o.Segments[i])
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !(&Outline{}).IsEmpty() {
		t.Error("zero outline not empty")
	}
	o := &Outline{Segments: []Segment{{Kind: Origin}, {Kind: Close}}}
	if !o.IsEmpty() {
		t.Error("markers only outline not empty")
	}
	if edgeOutline().IsEmpty() {
		t.Error("rectangle is empty")
	}
	if c := edgeOutline().Centre(); c != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("centre: got %v", c)
	}
}
