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
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrEmptyGlyph is returned by the accuracy measurements when the glyph
// grid has no pixels.
var ErrEmptyGlyph = errors.New("glyph has no pixels")

// Metrics holds one accuracy figure per sampling mode.
type Metrics struct {
	None         float64
	TwoByTwo     float64
	ThreeByThree float64
	FourByFour   float64

	// Samples is the number of trials (for Score) or pixels (for
	// AreaError) the figures are based on.
	Samples int
}

// Get returns the figure for the given sampling mode.
func (m Metrics) Get(mode Supersampling) float64 {
	switch mode {
	case TwoByTwo:
		return m.TwoByTwo
	case ThreeByThree:
		return m.ThreeByThree
	case FourByFour:
		return m.FourByFour
	default:
		return m.None
	}
}

func (m *Metrics) set(mode Supersampling, v float64) {
	switch mode {
	case TwoByTwo:
		m.TwoByTwo = v
	case ThreeByThree:
		m.ThreeByThree = v
	case FourByFour:
		m.FourByFour = v
	default:
		m.None = v
	}
}

func (m Metrics) String() string {
	return fmt.Sprintf("none=%.4f 2x2=%.4f 3x3=%.4f 4x4=%.4f (n=%d)",
		m.None, m.TwoByTwo, m.ThreeByThree, m.FourByFour, m.Samples)
}

// Score estimates how often point sampling classifies a random point of
// the glyph grid correctly.
//
// Each trial picks a random pixel and a random position inside it.  The
// classification at that position is the reference.  For None it is
// compared to the classification at the pixel centre, for the N×N modes
// to the classification at the centre of the sub-pixel containing the
// random position.  The result is the fraction of agreeing trials per
// mode.
//
// If rng is nil, a fixed seed is used.
func Score(o *Outline, sc Scale, samples int, rng *rand.Rand) (Metrics, error) {
	width, height := sc.GlyphSize(o.BBox)
	if width == 0 || height == 0 {
		return Metrics{}, ErrEmptyGlyph
	}
	if samples <= 0 {
		return Metrics{}, fmt.Errorf("invalid sample count %d", samples)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}

	var correct [4]int
	for range samples {
		x := float64(rng.IntN(width))
		y := float64(rng.IntN(height))
		dx := rng.Float64()
		dy := rng.Float64()

		want := o.Filled(x+dx, y+dy, sc)
		for i, mode := range Modes {
			n := mode.Grid()
			got := o.Filled(x+SubpixelOffset(dx, n), y+SubpixelOffset(dy, n), sc)
			if got == want {
				correct[i]++
			}
		}
	}

	res := Metrics{Samples: samples}
	for i, mode := range Modes {
		res.set(mode, float64(correct[i])/float64(samples))
	}
	Logger().Debug("glyph scored", "samples", samples, "metrics", res.String())
	return res, nil
}

// AreaError measures the mean absolute difference between the
// point-sampled coverage of every pixel and its exact area coverage.
func AreaError(o *Outline, sc Scale) (Metrics, error) {
	width, height := sc.GlyphSize(o.BBox)
	if width == 0 || height == 0 {
		return Metrics{}, ErrEmptyGlyph
	}

	exact := make([]float64, width*height)
	NewAreaRasteriser().Rasterise(o, sc, func(y int, coverage []float32) {
		for x, c := range coverage {
			exact[y*width+x] = float64(c)
		}
	})

	res := Metrics{Samples: width * height}
	for _, mode := range Modes {
		sum := 0.0
		for y := range height {
			for x := range width {
				sum += math.Abs(o.Coverage(x, y, sc, mode) - exact[y*width+x])
			}
		}
		res.set(mode, sum/float64(res.Samples))
	}
	return res, nil
}
