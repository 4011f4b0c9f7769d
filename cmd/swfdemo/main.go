// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command swfdemo builds a small synthetic movie and renders its frames
// to PNG files, exercising the full pipeline: timeline playback,
// gradient and solid fills, color transforms, filters and blend modes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
	"github.com/gogpu/swfkit/filter"
	"github.com/gogpu/swfkit/player"
	"github.com/gogpu/swfkit/render"
)

func main() {
	var (
		outDir = flag.String("out", "frames", "output directory for PNG frames")
		frames = flag.Int("frames", 12, "number of frames to render")
		width  = flag.Int("width", 320, "frame width in pixels")
		height = flag.Int("height", 240, "frame height in pixels")
		skin   = flag.String("skin", "", "skin name to select before rendering")
	)
	flag.Parse()

	swfkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(*outDir, *frames, *width, *height, *skin); err != nil {
		fmt.Fprintln(os.Stderr, "swfdemo:", err)
		os.Exit(1)
	}
}

func run(outDir string, frames, width, height int, skin string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	p, err := player.New(buildMovie(float32(width), float32(height)), 12, render.DefaultOptions())
	if err != nil {
		return err
	}
	p.OnComplete(func(e display.CompleteEvent) {
		swfkit.Logger().Info("timeline completed", "clip", e.Clip)
	})
	if skin != "" {
		p.SetSkin("badge", skin)
	}

	step := time.Second / 12
	for i := 0; i < frames; i++ {
		out := p.Render(width, height)
		path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := out.SavePNG(path); err != nil {
			return err
		}
		p.Advance(step)
	}
	return nil
}

// buildMovie assembles the synthetic display list: a gradient backdrop,
// a glowing spinner clip and a skinnable badge.
func buildMovie(w, h float32) *display.MovieClip {
	timeline := display.NewTimeline(24)
	timeline.SetLoop(true)
	timeline.SetLabel("start", 0)
	root := display.NewMovieClip("root", 0, timeline)

	// Backdrop: focal gradient over the full frame.
	backdrop := display.NewShape("backdrop", 1)
	backdrop.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: w, Y1: h}),
		swfkit.GradientFill{
			Gradient: &swfkit.Gradient{
				Shape:      swfkit.GradientFocal,
				Spread:     swfkit.SpreadPad,
				FocalPoint: 0.4,
				Stops: []swfkit.GradientStop{
					{Ratio: 0, Color: swfkit.RGB(0.13, 0.16, 0.28)},
					{Ratio: 1, Color: swfkit.RGB(0.02, 0.03, 0.08)},
				},
			},
			Matrix: swfkit.Scale(1/w, 1/h),
		},
	)
	root.AddChild(backdrop)

	// Spinner: a glowing square composited additively.
	spinner := display.NewShape("spinner", 2)
	spinner.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X0: -30, Y0: -30, X1: 30, Y1: 30}),
		swfkit.SolidFill{Color: swfkit.RGB(0.9, 0.55, 0.1)},
	)
	spinner.Base().Matrix = swfkit.Translate(w/2, h/2).Multiply(swfkit.Rotate(0.6))
	spinner.Base().Filters = filter.Chain{
		filter.NewBlur(2, 2, 2),
		filter.Glow{
			Color:           swfkit.RGBA(1, 0.8, 0.2, 1),
			Strength:        1.2,
			BlurX:           6,
			BlurY:           6,
			Passes:          3,
			CompositeSource: true,
		},
	}
	spinner.Base().BlendMode = swfkit.BlendAdd
	root.AddChild(spinner)

	// Badge: two mutually exclusive skins selected by name.
	badge := display.NewMovieClip("badge", 3, display.NewTimeline(1))
	badge.MarkSkinGroup()
	badge.Base().Matrix = swfkit.Translate(w-70, 20)

	gold := display.NewShape("gold", 0)
	gold.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: 50, Y1: 50}),
		swfkit.SolidFill{Color: swfkit.RGB(0.85, 0.7, 0.2)},
	)
	silver := display.NewShape("silver", 0)
	silver.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: 50, Y1: 50}),
		swfkit.SolidFill{Color: swfkit.RGB(0.75, 0.75, 0.8)},
	)
	badge.AddChild(gold)
	badge.AddChild(silver)
	badge.SetSkin("gold")
	root.AddChild(badge)

	return root
}
