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

// Command glyphview shows text drawn by the ray-casting rasteriser in a
// window.  Press S to cycle through the sampling modes none, 2x2 and 3x3,
// and Escape to quit.  The flags are the same as for glyphray.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/raycast"
	"seehuhn.de/go/raycast/internal/demo"
)

type Game struct {
	cfg    *demo.Config
	r      *raycast.Renderer
	src    raycast.OutlineSource
	page   *image.Gray
	img    *ebiten.Image
	dirty  bool
	logger *slog.Logger
}

func (g *Game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.r.Mode = g.r.Mode.Next()
		g.dirty = true
		g.logger.Info("sampling mode changed", "mode", g.r.Mode.String())
	}

	if g.dirty {
		if _, err := demo.DrawPage(g.page, g.r, g.src, g.cfg); err != nil {
			return err
		}
		if g.img != nil {
			g.img.Dispose()
		}
		g.img = ebiten.NewImageFromImage(g.page)
		g.dirty = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
	ebitenutil.DebugPrint(screen, "sampling: "+g.r.Mode.String()+"  [S] cycle  [Esc] quit")
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "glyphview:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("glyphview", flag.ContinueOnError)
	cfg, err := demo.Parse(fs, args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if cfg.Verbose {
		raycast.SetLogger(logger)
	}

	r, err := cfg.Renderer()
	if err != nil {
		return err
	}
	src, err := cfg.Source()
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("glyphview")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&Game{
		cfg:    cfg,
		r:      r,
		src:    src,
		page:   image.NewGray(image.Rect(0, 0, cfg.Width, cfg.Height)),
		dirty:  true,
		logger: logger,
	})
}
