// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display models the decoded display list: the tree of shapes,
// bitmaps and movie clips, the per-clip timelines that drive it, and the
// skin mechanism for swapping alternate subtrees.
//
// The tree is strictly owned: a MovieClip exclusively owns its children
// and a child's lifetime never exceeds its parent's. Timeline events are
// collected into an EventSink during traversal and delivered afterwards,
// so callbacks can never mutate the structure being walked.
package display

import (
	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/filter"
)

// DisplayObject is one node of the display list. The variant set is
// closed: *Shape, *Bitmap and *MovieClip. Renderers dispatch with an
// exhaustive type switch.
type DisplayObject interface {
	// Base returns the node's shared display state.
	Base() *Base

	// Bounds returns the node's bounds in its own local coordinates,
	// including active children.
	Bounds() swfkit.Rect

	// Advance steps the node's timeline state, collecting events into
	// sink. Leaves have no timeline and ignore the call.
	Advance(steps int, sink *EventSink)
}

// Base carries the display state shared by every node variant: local
// transforms, declared blend mode and filters, depth order, and the
// optional instance name used for skin lookup and events.
type Base struct {
	Name           string
	Depth          uint16
	Matrix         swfkit.Matrix
	ColorTransform swfkit.ColorTransform
	BlendMode      swfkit.BlendMode
	Filters        filter.Chain
	Visible        bool

	// active is cleared when a sibling skin is selected; inactive nodes
	// neither advance nor render.
	active bool

	// tint is an externally injected color transform composed after the
	// authored one, re-resolved every tick.
	tint *swfkit.ColorTransform
}

// newBase returns display state with identity transforms, Normal blend
// and the node active and visible.
func newBase(name string, depth uint16) Base {
	return Base{
		Name:           name,
		Depth:          depth,
		Matrix:         swfkit.Identity(),
		ColorTransform: swfkit.IdentityColorTransform(),
		BlendMode:      swfkit.BlendNormal,
		Visible:        true,
		active:         true,
	}
}

// Local returns the node's local transform for this tick: the authored
// matrix plus the authored color transform composed with any injected
// tint.
func (b *Base) Local() swfkit.Transform {
	ct := b.ColorTransform
	if b.tint != nil {
		ct = ct.Concat(*b.tint)
	}
	return swfkit.Transform{Matrix: b.Matrix, ColorTransform: ct}
}

// SetTint injects a dynamic color transform composed after the authored
// one. Pass nil to clear.
func (b *Base) SetTint(ct *swfkit.ColorTransform) {
	if ct == nil {
		b.tint = nil
		return
	}
	c := *ct
	b.tint = &c
}

// Active reports whether the node participates in advancing and
// rendering. Nodes start active; skin selection deactivates siblings.
func (b *Base) Active() bool {
	return b.active
}

// Renderable reports whether the node should be drawn this frame.
func (b *Base) Renderable() bool {
	return b.active && b.Visible
}
