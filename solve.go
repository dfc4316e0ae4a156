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

import "math"

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0.
// A double root is returned once.  If all coefficients are zero, every x
// is a root and nil is returned: there is no isolated crossing to count.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4*sc0
	if !isFinite(arg) {
		// discriminant overflow: x^2 + sc1*x ≈ 0 gives one root
		return rootPair(-sc1, sc0)
	}
	switch {
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	}

	// avoid cancellation between -sc1 and the square root
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return rootPair(root1, sc0)
}

// rootPair completes root1 with the second root sc0/root1 (Vieta).
func rootPair(root1, sc0 float64) []float64 {
	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	return nil
}

// solveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0, in no
// particular order.
//
// This follows Jim Blinn, "How to Solve a Cubic Equation", as described at
// https://momentsingraphics.de/CubicRoots.html .
func solveCubic(a, b, c, d float64) []float64 {
	scale := max(math.Abs(b), math.Abs(c), math.Abs(d))
	if math.Abs(a) <= cubicDegenerate*scale {
		return solveQuadratic(b, c, d)
	}

	const oneThird = 1.0 / 3.0
	aRecip := 1 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !isFinite(c2) || !isFinite(c1) || !isFinite(c0) {
		return solveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		if t1 == 0 {
			return []float64{-c2} // triple root
		}
		return []float64{t1 - c2, -2*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*thCos - c2,
		t*0.5*(-thCos+ss3) - c2,
		t*0.5*(-thCos-ss3) - c2,
	}
}

// cubicDegenerate is the relative size below which the leading coefficient
// of a cubic is treated as zero.
const cubicDegenerate = 1e-12

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
