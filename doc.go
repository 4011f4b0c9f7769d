// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swfkit reproduces the playback and compositing semantics of
// flash-movie animations inside Go rendering hosts.
//
// # Overview
//
// swfkit consumes a decoded display list (shapes, gradients, bitmaps,
// nested movie clips with timelines) as produced by an external SWF
// decoder, drives the timeline state machine, and renders frames with the
// original authoring tool's color algebra: premultiplied alpha,
// linear/sRGB conversion, gradient spread modes, color transforms,
// multi-pass filters and the restricted blend-mode set.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/swfkit/player"
//	    "github.com/gogpu/swfkit/render"
//	)
//
//	p, err := player.New(root, 24, render.DefaultOptions())
//	if err != nil {
//	    // malformed display list
//	}
//	p.Play()
//	p.Advance(dt)
//
//	out := p.Render(512, 512)
//	out.ToImage() // final sRGB composite
//
// # Architecture
//
// The library is organized into:
//   - Root package: color math, affine matrices, color transforms,
//     gradients, fills, pixel buffers
//   - display: display-object tree, timelines, skins, events
//   - filter: color matrix, blur, glow and bevel filter passes
//   - render: frame walking, draw-op lists, blending, software backend
//   - player: playback API and host glue
//
// # Coordinate System
//
// Shape geometry uses authoring-tool coordinates: origin at top-left,
// X right, Y down. Hosts with a flipped Y axis pass a view-flip matrix
// through render.Options rather than patching node transforms.
//
// # Color Pipeline
//
// All intermediate render targets hold premultiplied colors in the
// pipeline's working (linear) color space. Conversion to display sRGB
// happens exactly once, when a composite leaves the pipeline.
package swfkit
