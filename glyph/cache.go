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
	"sync"

	"seehuhn.de/go/raycast"
)

// Cache keeps fonts and glyph outlines in memory, so that repeated
// requests for the same glyph are served without touching the font file.
//
// A Cache is safe for concurrent use.  Outlines returned by the cache are
// shared and must not be modified.
type Cache struct {
	backend Backend

	mu       sync.Mutex
	fonts    map[string]*Font
	outlines map[cacheKey]*raycast.Outline
}

type cacheKey struct {
	path string
	r    rune
}

// NewCache returns an empty cache which parses fonts with the given
// backend.
func NewCache(backend Backend) *Cache {
	return &Cache{
		backend:  backend,
		fonts:    make(map[string]*Font),
		outlines: make(map[cacheKey]*raycast.Outline),
	}
}

// Font returns the font stored at path, loading it on first use.
func (c *Cache) Font(path string) (*Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.font(path)
}

func (c *Cache) font(path string) (*Font, error) {
	if f, ok := c.fonts[path]; ok {
		return f, nil
	}
	f, err := Open(path, c.backend)
	if err != nil {
		return nil, err
	}
	raycast.Logger().Debug("font loaded", "path", path, "backend", c.backend.String(), "upem", f.UnitsPerEm())
	c.fonts[path] = f
	return f, nil
}

// Outline returns the outline of the glyph for r in the font at path.
// Errors are not cached.
func (c *Cache) Outline(path string, r rune) (*raycast.Outline, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{path, r}
	if o, ok := c.outlines[key]; ok {
		return o, nil
	}

	f, err := c.font(path)
	if err != nil {
		return nil, err
	}
	o, err := f.Outline(r)
	if err != nil {
		return nil, err
	}
	raycast.Logger().Debug("outline cached", "path", path, "rune", string(r))
	c.outlines[key] = o
	return o, nil
}

// Len returns the number of cached outlines.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.outlines)
}

// Source returns an outline source for the font at path, for use with
// [raycast.Renderer.DrawText].
func (c *Cache) Source(path string) raycast.OutlineSource {
	return source{c: c, path: path}
}

type source struct {
	c    *Cache
	path string
}

func (s source) Outline(r rune) (*raycast.Outline, error) {
	return s.c.Outline(s.path, r)
}
