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
	"fmt"
	"math"
	"strings"
)

// Supersampling selects how many point samples are taken per pixel.
type Supersampling int

const (
	// None takes a single sample at the pixel centre.
	None Supersampling = iota

	// TwoByTwo averages a 2×2 grid of samples.
	TwoByTwo

	// ThreeByThree averages a 3×3 grid of samples.
	ThreeByThree

	// FourByFour averages a 4×4 grid of samples.
	FourByFour
)

// Modes lists all sampling modes, in order of increasing sample count.
var Modes = []Supersampling{None, TwoByTwo, ThreeByThree, FourByFour}

// Grid returns the number of samples per pixel along each axis.
func (m Supersampling) Grid() int {
	switch m {
	case TwoByTwo:
		return 2
	case ThreeByThree:
		return 3
	case FourByFour:
		return 4
	default:
		return 1
	}
}

func (m Supersampling) String() string {
	if m == None {
		return "none"
	}
	n := m.Grid()
	return fmt.Sprintf("%dx%d", n, n)
}

// Next returns the mode which follows m in the interactive cycle
// none → 2x2 → 3x3 → none.
func (m Supersampling) Next() Supersampling {
	switch m {
	case None:
		return TwoByTwo
	case TwoByTwo:
		return ThreeByThree
	default:
		return None
	}
}

// ParseSupersampling converts the output of [Supersampling.String] back
// to a sampling mode.
func ParseSupersampling(s string) (Supersampling, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if s == m.String() {
			return m, nil
		}
	}
	switch s {
	case "", "1x1":
		return None, nil
	}
	return None, fmt.Errorf("unknown supersampling mode %q", s)
}

// SampleOffset returns the position of sample i out of n, evenly spaced
// over a unit pixel.
func SampleOffset(i, n int) float64 {
	return float64(i)/float64(n) + 0.5/float64(n)
}

// SubpixelOffset returns the sample position of the n×n grid bucket which
// contains the offset off ∈ [0, 1).
func SubpixelOffset(off float64, n int) float64 {
	factor := 1 / float64(n)
	i := int(math.Floor(off / factor))
	i = min(max(i, 0), n-1)
	return SampleOffset(i, n)
}

// Coverage returns the fraction of samples inside the outline, for the
// pixel with lower left corner (px, py) of the glyph's pixel grid.
// For [None] the result is either 0 or 1.
func (o *Outline) Coverage(px, py int, sc Scale, mode Supersampling) float64 {
	return float64(o.hits(px, py, sc, mode.Grid())) / float64(mode.Grid()*mode.Grid())
}

// hits counts the samples of an n×n grid which are inside the outline.
func (o *Outline) hits(px, py int, sc Scale, n int) int {
	x0 := float64(px)
	y0 := float64(py)
	count := 0
	for i := range n {
		for j := range n {
			if o.Filled(x0+SampleOffset(i, n), y0+SampleOffset(j, n), sc) {
				count++
			}
		}
	}
	return count
}

// GrayLevel converts coverage to a gray value for black glyphs on a white
// background: full coverage gives 0, no coverage gives 255.
func GrayLevel(coverage float64) uint8 {
	coverage = min(max(coverage, 0), 1)
	return uint8(255 * (1 - coverage))
}
