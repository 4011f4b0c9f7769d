// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/filter"
)

// OpType identifies the type of a draw operation.
type OpType uint8

const (
	// OpTypeFillPath fills flattened vector geometry with a resolved fill.
	OpTypeFillPath OpType = iota
	// OpTypeDrawBitmap draws a bitmap display object.
	OpTypeDrawBitmap
	// OpTypePushLayer begins an isolated subtree with filters and/or a
	// blend mode.
	OpTypePushLayer
	// OpTypePopLayer ends the current layer: filters run, then the
	// result composites into the parent under the layer's blend mode.
	OpTypePopLayer
)

// opTypeNames maps OpType values to their string representation.
var opTypeNames = [...]string{
	OpTypeFillPath:   "FillPath",
	OpTypeDrawBitmap: "DrawBitmap",
	OpTypePushLayer:  "PushLayer",
	OpTypePopLayer:   "PopLayer",
}

// String returns the string representation of an OpType.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return "Unknown"
}

// Op is one recorded drawing operation. Ops carry fully resolved world
// transforms and color transforms; backends never re-walk the tree.
type Op interface {
	Type() OpType
}

// FillPathOp fills a path with a solid, gradient or bitmap fill.
type FillPathOp struct {
	Path *swfkit.Path
	Fill swfkit.Fill
	// Transform is the resolved world transform: device matrix plus
	// effective color transform.
	Transform swfkit.Transform
}

// Type implements Op.
func (FillPathOp) Type() OpType { return OpTypeFillPath }

// DrawBitmapOp draws a bitmap node through its resolved transform.
type DrawBitmapOp struct {
	Texture   *swfkit.Pixmap
	Smoothed  bool
	Transform swfkit.Transform
}

// Type implements Op.
func (DrawBitmapOp) Type() OpType { return OpTypeDrawBitmap }

// PushLayerOp scopes an intermediate render target for a filtered or
// blended subtree. Bounds are in device space, already expanded for the
// filter chain, so no pass clips a glow halo or blur tail. Each layer's
// target is acquired at push and released as soon as PopLayerOp
// composites it into the parent; sibling layers never alias.
type PushLayerOp struct {
	Bounds  swfkit.Rect
	Filters filter.Chain
	Blend   swfkit.BlendMode
}

// Type implements Op.
func (PushLayerOp) Type() OpType { return OpTypePushLayer }

// PopLayerOp closes the most recent PushLayerOp.
type PopLayerOp struct{}

// Type implements Op.
func (PopLayerOp) Type() OpType { return OpTypePopLayer }

// DrawList is the ordered operation sequence for one frame. Operations
// within a list are strictly ordered; only whole independent subtree
// layers may be executed concurrently by a backend.
type DrawList struct {
	ops []Op
}

// Ops returns the recorded operations in order.
func (l *DrawList) Ops() []Op {
	return l.ops
}

// Len returns the number of recorded operations.
func (l *DrawList) Len() int {
	return len(l.ops)
}

func (l *DrawList) push(op Op) {
	l.ops = append(l.ops, op)
}
