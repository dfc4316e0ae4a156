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

// Package demo holds the configuration and page layout shared by the
// glyphray and glyphview commands.
package demo

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/raycast"
	"seehuhn.de/go/raycast/glyph"
)

// Config collects the settings of a command.  Values come from the
// defaults, an optional TOML file and the command line, in increasing
// order of precedence.
type Config struct {
	// Font is the path of a TrueType or OpenType file.  If empty, the Go
	// Regular font is used.
	Font    string `toml:"font"`
	Backend string `toml:"backend"`

	PointSize  float64 `toml:"point_size"`
	Resolution float64 `toml:"resolution"`
	Mode       string  `toml:"mode"`

	Text   string `toml:"text"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Margin int    `toml:"margin"`

	// Samples is the number of random trials per glyph for scoring.
	Samples int    `toml:"samples"`
	Seed    uint64 `toml:"seed"`

	Verbose bool `toml:"verbose"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Backend:    glyph.SFNT.String(),
		PointSize:  32,
		Resolution: 144,
		Mode:       raycast.ThreeByThree.String(),
		Text:       "Sphinx of black quartz,\njudge my vow.",
		Width:      1300,
		Height:     800,
		Margin:     100,
		Samples:    10000,
		Seed:       1,
	}
}

func (c *Config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Font, "font", c.Font, "font file (default: Go Regular)")
	fs.StringVar(&c.Backend, "backend", c.Backend, "font parser: sfnt or gotext")
	fs.Float64Var(&c.PointSize, "size", c.PointSize, "font size in points")
	fs.Float64Var(&c.Resolution, "dpi", c.Resolution, "display resolution in pixels per inch")
	fs.StringVar(&c.Mode, "mode", c.Mode, "supersampling: none, 2x2, 3x3 or 4x4")
	fs.StringVar(&c.Text, "text", c.Text, "text to draw")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "canvas margin in pixels")
	fs.IntVar(&c.Samples, "samples", c.Samples, "random trials per glyph")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug messages")
}

// Parse registers the configuration flags on fs and parses args.  If the
// -config flag names a file, its values replace the defaults, and flags
// given on the command line replace the file values.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()
	cfg.bind(fs)
	configPath := fs.String("config", "", "TOML configuration file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *configPath == "" {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	fileCfg := Default()
	if err := fileCfg.Load(*configPath); err != nil {
		return nil, err
	}
	overlay := flag.NewFlagSet("overlay", flag.ContinueOnError)
	fileCfg.bind(overlay)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = overlay.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return nil, err
	}
	if err := fileCfg.validate(); err != nil {
		return nil, err
	}
	return fileCfg, nil
}

// Load reads a TOML file into c.  Keys missing from the file keep their
// current values; unknown keys are an error.
func (c *Config) Load(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%s: %s", path, strict.String())
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Encode returns c in TOML format.
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

func (c *Config) validate() error {
	if _, err := raycast.ParseSupersampling(c.Mode); err != nil {
		return err
	}
	if _, err := glyph.ParseBackend(c.Backend); err != nil {
		return err
	}
	switch {
	case !(c.PointSize > 0) || math.IsInf(c.PointSize, 0):
		return fmt.Errorf("invalid point size %g", c.PointSize)
	case !(c.Resolution > 0) || math.IsInf(c.Resolution, 0):
		return fmt.Errorf("invalid resolution %g", c.Resolution)
	case c.Width <= 2*c.Margin || c.Height <= 2*c.Margin || c.Margin < 0:
		return fmt.Errorf("canvas %dx%d too small for margin %d", c.Width, c.Height, c.Margin)
	}
	return nil
}

// Renderer returns a renderer for the configured size and sampling mode.
func (c *Config) Renderer() (*raycast.Renderer, error) {
	mode, err := raycast.ParseSupersampling(c.Mode)
	if err != nil {
		return nil, err
	}
	r := raycast.NewRenderer()
	r.PointSize = c.PointSize
	r.Resolution = c.Resolution
	r.Mode = mode
	r.LineSpacing = int(math.Ceil(4 * c.PointSize))
	return r, nil
}

// Source returns the glyph outlines of the configured font.
func (c *Config) Source() (raycast.OutlineSource, error) {
	backend, err := glyph.ParseBackend(c.Backend)
	if err != nil {
		return nil, err
	}
	if c.Font == "" {
		f, err := glyph.Parse(goregular.TTF, backend)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	cache := glyph.NewCache(backend)
	if _, err := cache.Font(c.Font); err != nil {
		return nil, err
	}
	return cache.Source(c.Font), nil
}
