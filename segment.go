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
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies the drawing primitive stored in a [Segment].
type Kind uint8

const (
	// Origin marks the start of a subpath. Start and End are the same point.
	Origin Kind = iota

	// Line is a straight line from Start to End.
	Line

	// Quad is a quadratic Bézier curve with control point Ctrl1.
	Quad

	// Cubic is a cubic Bézier curve with control points Ctrl1 and Ctrl2.
	Cubic

	// Close marks the end of a subpath. It carries no coordinates.
	Close
)

func (k Kind) String() string {
	switch k {
	case Origin:
		return "Origin"
	case Line:
		return "Line"
	case Quad:
		return "Quad"
	case Cubic:
		return "Cubic"
	case Close:
		return "Close"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is one primitive of a glyph outline, in font design units.
//
// Inside an [Outline], every Line, Quad and Cubic segment starts where the
// previous segment ended.
type Segment struct {
	Kind  Kind
	Start vec.Vec2
	Ctrl1 vec.Vec2 // Quad and Cubic only
	Ctrl2 vec.Vec2 // Cubic only
	End   vec.Vec2
}

// RayDir is the direction of the rays used for point classification.
var RayDir = vec.Vec2{X: 1, Y: 0}

// Intersect returns the number of times the ray with origin p and direction
// dir crosses the segment.
//
// Hits on Line segments are signed by the side of the segment on which p
// lies, so that the sum over a closed contour encodes the winding
// direction.  Curve hits are always counted as +1.  Only the parity of the
// total is used for filling.
func (s Segment) Intersect(p, dir vec.Vec2) int {
	switch s.Kind {
	case Line:
		return s.intersectLine(p, dir)
	case Quad:
		return s.intersectQuad(p, dir)
	case Cubic:
		return s.intersectCubic(p, dir)
	default: // Origin, Close
		return 0
	}
}

// intersectLine solves p + t1*dir = Start + t2*(End-Start).
func (s Segment) intersectLine(p, dir vec.Vec2) int {
	v1 := p.Sub(s.Start)
	v2 := s.End.Sub(s.Start)
	v3 := vec.Vec2{X: -dir.Y, Y: dir.X}

	t1 := math.NaN()
	t2 := math.NaN()
	if den := v2.Dot(v3); den != 0 {
		t1 = cross(v2, v1) / den
		t2 = v1.Dot(v3) / den
	}

	// NaN compares false, so parallel segments fall through.
	if t1 >= 0 && t2 >= 0 && t2 <= 1 {
		return side(p, s.Start, s.End)
	}
	return 0
}

// intersectQuad moves p to the origin and rotates dir onto the positive
// x-axis.  The ray then crosses the curve wherever y(t) = 0 and x(t) > 0.
func (s Segment) intersectQuad(p, dir vec.Vec2) int {
	a := toRayFrame(s.Start, p, dir)
	b := toRayFrame(s.Ctrl1, p, dir)
	c := toRayFrame(s.End, p, dir)

	if a.X < 0 && b.X < 0 && c.X < 0 {
		return 0
	}
	if (a.Y > 0 && b.Y > 0 && c.Y > 0) || (a.Y < 0 && b.Y < 0 && c.Y < 0) {
		return 0
	}

	count := 0
	for _, t := range solveQuadratic(a.Y-2*b.Y+c.Y, 2*(b.Y-a.Y), a.Y) {
		if t < 0 || t > 1 {
			continue
		}
		if quadAt(a.X, b.X, c.X, t) > 0 {
			count++
		}
	}
	return count
}

// intersectCubic works like intersectQuad, without the early rejection.
func (s Segment) intersectCubic(p, dir vec.Vec2) int {
	a := toRayFrame(s.Start, p, dir)
	b := toRayFrame(s.Ctrl1, p, dir)
	c := toRayFrame(s.Ctrl2, p, dir)
	d := toRayFrame(s.End, p, dir)

	c3 := -a.Y + 3*b.Y - 3*c.Y + d.Y
	c2 := 3*a.Y - 6*b.Y + 3*c.Y
	c1 := 3*b.Y - 3*a.Y
	c0 := a.Y

	count := 0
	for _, t := range solveCubic(c3, c2, c1, c0) {
		if t < 0 || t > 1 {
			continue
		}
		if cubicAt(a.X, b.X, c.X, d.X, t) > 0 {
			count++
		}
	}
	return count
}

// toRayFrame expresses q relative to the ray origin p, in a frame where
// the ray direction is the positive x-axis.  For dir = (1, 0) this is a
// plain translation.
func toRayFrame(q, p, dir vec.Vec2) vec.Vec2 {
	d := q.Sub(p)
	if dir == RayDir {
		return d
	}
	return vec.Vec2{X: d.Dot(dir), Y: cross(dir, d)}
}

// side reports on which side of the directed line from a to b the point p
// lies: -1 for left, +1 for right, 0 if p is on the line.
func side(p, a, b vec.Vec2) int {
	c := cross(b.Sub(a), p.Sub(a))
	switch {
	case c > 0:
		return -1
	case c < 0:
		return 1
	default:
		return 0
	}
}

func cross(u, v vec.Vec2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// quadAt evaluates one coordinate of a quadratic Bézier curve.
func quadAt(p0, p1, p2, t float64) float64 {
	omt := 1 - t
	return omt*omt*p0 + 2*omt*t*p1 + t*t*p2
}

// cubicAt evaluates one coordinate of a cubic Bézier curve.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	omt := 1 - t
	return omt*omt*omt*p0 + 3*omt*omt*t*p1 + 3*omt*t*t*p2 + t*t*t*p3
}
