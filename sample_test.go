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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// unitScale maps one font design unit to one pixel.
var unitScale = Scale{PointSize: 72, Resolution: 72, UnitsPerEm: 72}

func TestSupersamplingString(t *testing.T) {
	want := []string{"none", "2x2", "3x3", "4x4"}
	for i, m := range Modes {
		if got := m.String(); got != want[i] {
			t.Errorf("%d: got %q, want %q", i, got, want[i])
		}
		back, err := ParseSupersampling(m.String())
		if err != nil || back != m {
			t.Errorf("%s: parsed as %v, %v", m, back, err)
		}
		if m.Grid() != i+1 {
			t.Errorf("%s: grid %d", m, m.Grid())
		}
	}
	if _, err := ParseSupersampling("5x5"); err == nil {
		t.Error("5x5 accepted")
	}
}

func TestSupersamplingNext(t *testing.T) {
	m := None
	var seen []Supersampling
	for range 4 {
		seen = append(seen, m)
		m = m.Next()
	}
	want := []Supersampling{None, TwoByTwo, ThreeByThree, None}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle: got %v, want %v", seen, want)
		}
	}
	if FourByFour.Next() != None {
		t.Error("4x4 does not return to none")
	}
}

func TestSampleOffset(t *testing.T) {
	cases := []struct {
		i, n int
		want float64
	}{
		{0, 1, 0.5},
		{0, 2, 0.25},
		{1, 2, 0.75},
		{0, 3, 1.0 / 6},
		{1, 3, 0.5},
		{2, 3, 5.0 / 6},
		{3, 4, 0.875},
	}
	for _, c := range cases {
		if got := SampleOffset(c.i, c.n); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("SampleOffset(%d, %d) = %g, want %g", c.i, c.n, got, c.want)
		}
	}
}

func TestSubpixelOffset(t *testing.T) {
	cases := []struct {
		off  float64
		n    int
		want float64
	}{
		{0.3, 1, 0.5},
		{0.1, 2, 0.25},
		{0.6, 2, 0.75},
		{0.0, 3, 1.0 / 6},
		{0.99, 3, 5.0 / 6},
		{0.5, 4, 0.625},
		{1.0, 4, 0.875},
	}
	for _, c := range cases {
		if got := SubpixelOffset(c.off, c.n); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("SubpixelOffset(%g, %d) = %g, want %g", c.off, c.n, got, c.want)
		}
	}
}

func TestGrayLevel(t *testing.T) {
	cases := []struct {
		coverage float64
		want     uint8
	}{
		{0, 255},
		{1, 0},
		{0.5, 127},
		{1.0 / 3, 170},
		{2.0 / 3, 85},
		{-0.5, 255},
		{1.5, 0},
	}
	for _, c := range cases {
		if got := GrayLevel(c.coverage); got != c.want {
			t.Errorf("GrayLevel(%g) = %d, want %d", c.coverage, got, c.want)
		}
	}
}

// edgeOutline returns a rectangle whose left edge lies 0.4 pixels into the
// first pixel column of its grid.
func edgeOutline() *Outline {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0.4, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 0.4, Y: 10}).
		Close()
	o := FromPath(p, unitScale.UnitsPerEm)
	o.BBox = rect.Rect{URx: 10, URy: 10}
	return o
}

func TestCoverage(t *testing.T) {
	o := edgeOutline()
	const exact = 0.6

	want := map[Supersampling]float64{
		None:         1,
		TwoByTwo:     0.5,
		ThreeByThree: 2.0 / 3,
		FourByFour:   0.5,
	}
	for _, mode := range Modes {
		got := o.Coverage(0, 3, unitScale, mode)
		if got < 0 || got > 1 {
			t.Errorf("%s: coverage %g out of range", mode, got)
		}
		if math.Abs(got-want[mode]) > 1e-12 {
			t.Errorf("%s: got %g, want %g", mode, got, want[mode])
		}
		if full := o.Coverage(5, 3, unitScale, mode); full != 1 {
			t.Errorf("%s: interior pixel coverage %g", mode, full)
		}
	}

	err1 := math.Abs(o.Coverage(0, 3, unitScale, None) - exact)
	err3 := math.Abs(o.Coverage(0, 3, unitScale, ThreeByThree) - exact)
	if err3 >= err1 {
		t.Errorf("3x3 error %g not below 1x1 error %g", err3, err1)
	}
}
