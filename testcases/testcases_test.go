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

package testcases

import (
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			full := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", full)
			}
			if seen[full] {
				t.Errorf("%s: duplicate name", full)
			}
			seen[full] = true

			got, ok := Find(category, tc.Name)
			if !ok || got.Name != tc.Name {
				t.Errorf("%s: Find failed", full)
			}
		}
	}
}

// TestInsideCanvas checks that all points, including control points, lie
// inside the canvas.
func TestInsideCanvas(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if len(tc.Path.Coords) == 0 {
				t.Errorf("%s_%s: empty path", category, tc.Name)
			}
			for _, p := range tc.Path.Coords {
				if p.X < 0 || p.Y < 0 || p.X > float64(tc.Width) || p.Y > float64(tc.Height) {
					t.Errorf("%s_%s: point %v outside %dx%d canvas",
						category, tc.Name, p, tc.Width, tc.Height)
				}
			}
		}
	}
}
