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

// Package glyph loads glyph outlines from TrueType and OpenType fonts.
//
// Two font parsers are supported, see [Backend].  Both produce the same
// [raycast.Outline] for a given glyph, in font design units with y
// pointing up.
package glyph

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"

	"github.com/go-text/typesetting/font"

	"seehuhn.de/go/raycast"
)

// ErrGlyphNotFound is returned when a font has no glyph for a rune.
var ErrGlyphNotFound = errors.New("glyph not found")

// Backend selects the font parser.
type Backend int

const (
	// SFNT parses fonts with golang.org/x/image/font/sfnt.
	SFNT Backend = iota

	// GoText parses fonts with github.com/go-text/typesetting.
	GoText
)

func (b Backend) String() string {
	switch b {
	case SFNT:
		return "sfnt"
	case GoText:
		return "gotext"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend converts the output of [Backend.String] back to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "sfnt", "":
		return SFNT, nil
	case "gotext", "go-text":
		return GoText, nil
	}
	return 0, fmt.Errorf("unknown font backend %q", s)
}

// Font is a parsed font.  It is safe for concurrent use.
type Font struct {
	backend    Backend
	unitsPerEm float64

	mu   sync.Mutex
	sfnt *sfnt.Font
	buf  sfnt.Buffer
	face *font.Face
}

// Open reads and parses the font file at path.
func Open(path string, backend Backend) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, backend)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a font from its binary representation.  For font
// collections, the first font is used.
func Parse(data []byte, backend Backend) (*Font, error) {
	switch backend {
	case SFNT:
		return parseSFNT(data)
	case GoText:
		return parseGoText(data)
	default:
		return nil, fmt.Errorf("unknown font backend %d", int(backend))
	}
}

// Backend returns the parser used for the font.
func (f *Font) Backend() Backend {
	return f.backend
}

// UnitsPerEm returns the size of the em square in font design units.
func (f *Font) UnitsPerEm() float64 {
	return f.unitsPerEm
}

// Outline returns the outline of the glyph for r.
//
// The space character has no contours.  It gets an empty outline which
// borrows the bounding box of 'a', so that text layout can advance past
// it.
func (f *Font) Outline(r rune) (*raycast.Outline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r == ' ' {
		bbox, err := f.bbox('a')
		if err != nil {
			return nil, fmt.Errorf("space: %w", err)
		}
		return &raycast.Outline{BBox: bbox, UnitsPerEm: f.unitsPerEm}, nil
	}

	var o *raycast.Outline
	var err error
	switch f.backend {
	case SFNT:
		o, err = f.sfntOutline(r)
	default:
		o, err = f.goTextOutline(r)
	}
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", r, err)
	}
	return o, nil
}
