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

// Command glyphray renders text with the ray-casting rasteriser and
// measures the accuracy of its sampling modes.
//
// Usage:
//
//	glyphray render [flags] [output.png]
//	glyphray score [flags]
//	glyphray config [flags]
//
// The render subcommand writes the text to a PNG file.  The score
// subcommand prints, for every character of the text, how often each
// sampling mode classifies random points correctly and how far its
// coverage is from the exact pixel area.  The config subcommand prints
// the effective settings in TOML format, suitable for the -config flag.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"unicode"

	"seehuhn.de/go/raycast"
	"seehuhn.de/go/raycast/internal/demo"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "glyphray:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing subcommand (render, score or config)")
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
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

	switch cmd {
	case "render":
		fname := "out.png"
		if fs.NArg() > 0 {
			fname = fs.Arg(0)
		}
		return render(cfg, fname, logger)
	case "score":
		return score(cfg, out)
	case "config":
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown subcommand %q", cmd)
	}
}

func render(cfg *demo.Config, fname string, logger *slog.Logger) (err error) {
	r, err := cfg.Renderer()
	if err != nil {
		return err
	}
	src, err := cfg.Source()
	if err != nil {
		return err
	}

	img := image.NewGray(image.Rect(0, 0, cfg.Width, cfg.Height))
	if _, err := demo.DrawPage(img, r, src, cfg); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	logger.Info("image written", "file", fname, "mode", r.Mode.String())
	return nil
}

func score(cfg *demo.Config, out io.Writer) error {
	r, err := cfg.Renderer()
	if err != nil {
		return err
	}
	src, err := cfg.Source()
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "glyph\tmeasure\tnone\t2x2\t3x3\t4x4\t")

	seen := make(map[rune]bool)
	for _, c := range cfg.Text {
		if unicode.IsSpace(c) || seen[c] {
			continue
		}
		seen[c] = true

		o, err := src.Outline(c)
		if err != nil {
			return err
		}
		sc := r.Scale(o.UnitsPerEm)

		hits, err := raycast.Score(o, sc, cfg.Samples, rng)
		if errors.Is(err, raycast.ErrEmptyGlyph) {
			continue
		} else if err != nil {
			return fmt.Errorf("%q: %w", c, err)
		}
		area, err := raycast.AreaError(o, sc)
		if err != nil {
			return fmt.Errorf("%q: %w", c, err)
		}

		printRow(w, c, "score", hits)
		printRow(w, c, "area error", area)
	}
	return w.Flush()
}

func printRow(w io.Writer, c rune, measure string, m raycast.Metrics) {
	fmt.Fprintf(w, "%q\t%s\t", c, measure)
	for _, mode := range raycast.Modes {
		fmt.Fprintf(w, "%.4f\t", m.Get(mode))
	}
	fmt.Fprintln(w)
}
