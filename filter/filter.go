// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package filter implements the multi-pass filter pipeline: color
// matrix, blur, glow and bevel, executed in declared order over
// intermediate targets.
//
// All filters read and write premultiplied working-space pixmaps. Each
// filter's output is the next filter's input; the final output replaces
// the subtree's contribution to the parent composite.
package filter

import (
	"github.com/gogpu/swfkit"
)

// Filter is one pass of the pipeline.
//
// Apply reads src and writes the filtered result to dst. src and dst
// always have identical dimensions and are never the same pixmap.
type Filter interface {
	Apply(src, dst *swfkit.Pixmap)

	// ExpandBounds returns how far the filter's output can extend past
	// its input bounds. The frame renderer sizes a subtree's offscreen
	// target from the chained expansion, so glow halos and blur tails
	// are not clipped.
	ExpandBounds(in swfkit.Rect) swfkit.Rect

	// Impotent reports whether applying the filter can have no visible
	// effect, letting the renderer skip the pass entirely.
	Impotent() bool

	// Scaled returns a copy with pixel-space parameters (blur radii,
	// offsets) scaled by the world transform's scale factors.
	Scaled(x, y float32) Filter
}

// Chain applies filters in declared order.
type Chain []Filter

// Active returns the chain with impotent filters dropped.
func (c Chain) Active() Chain {
	out := make(Chain, 0, len(c))
	for _, f := range c {
		if f != nil && !f.Impotent() {
			out = append(out, f)
		}
	}
	return out
}

// Scaled returns the chain with every filter's pixel-space parameters
// scaled.
func (c Chain) Scaled(x, y float32) Chain {
	out := make(Chain, len(c))
	for i, f := range c {
		out[i] = f.Scaled(x, y)
	}
	return out
}

// ExpandBounds chains every filter's expansion.
func (c Chain) ExpandBounds(in swfkit.Rect) swfkit.Rect {
	for _, f := range c {
		in = f.ExpandBounds(in)
	}
	return in
}

// Apply runs the chain over src, alternating between two buffers.
// The returned pixmap is the last stage's output; src is not modified.
func (c Chain) Apply(src *swfkit.Pixmap) *swfkit.Pixmap {
	if len(c) == 0 {
		return src
	}
	cur := src
	spare := swfkit.NewPixmap(src.Width(), src.Height())
	for i, f := range c {
		f.Apply(cur, spare)
		cur, spare = spare, cur
		if i == 0 && len(c) > 1 {
			// src must survive unmodified; bring in the second
			// ping-pong buffer once a second stage exists.
			spare = swfkit.NewPixmap(src.Width(), src.Height())
		}
	}
	return cur
}
