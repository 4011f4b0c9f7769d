// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
	"github.com/gogpu/swfkit/filter"
)

func solidSquare(name string, depth uint16, size float32, c swfkit.Color) *display.Shape {
	s := display.NewShape(name, depth)
	s.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: size, Y1: size}),
		swfkit.SolidFill{Color: c},
	)
	return s
}

func opTypes(list *DrawList) []OpType {
	out := make([]OpType, 0, list.Len())
	for _, op := range list.Ops() {
		out = append(out, op.Type())
	}
	return out
}

func TestBuildFrameFlatTree(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.AddChild(solidSquare("b", 2, 10, swfkit.White))
	root.AddChild(solidSquare("a", 1, 10, swfkit.Black))

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)

	got := opTypes(list)
	if len(got) != 2 || got[0] != OpTypeFillPath || got[1] != OpTypeFillPath {
		t.Fatalf("ops = %v, want two FillPath", got)
	}
	// Depth order: "a" (depth 1) draws before "b" (depth 2).
	first := list.Ops()[0].(FillPathOp)
	if first.Fill.(swfkit.SolidFill).Color != swfkit.Black {
		t.Error("lower depth did not draw first")
	}
}

func TestBuildFrameResolvesTransforms(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	child := display.NewMovieClip("child", 0, nil)
	child.Base().Matrix = swfkit.Translate(10, 0)
	child.Base().ColorTransform = swfkit.ColorTransform{
		Mult: swfkit.Color{R: 0.5, G: 1, B: 1, A: 1},
	}
	leaf := solidSquare("leaf", 0, 5, swfkit.White)
	leaf.Base().Matrix = swfkit.Translate(0, 10)
	child.AddChild(leaf)
	root.AddChild(child)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	if list.Len() != 1 {
		t.Fatalf("ops = %d, want 1", list.Len())
	}
	op := list.Ops()[0].(FillPathOp)

	p := op.Transform.Matrix.TransformPoint(swfkit.Point{})
	if !pointsEqual(p, swfkit.Point{X: 10, Y: 10}, 1e-5) {
		t.Errorf("resolved origin = %v, want (10,10)", p)
	}
	if op.Transform.ColorTransform.Mult.R != 0.5 {
		t.Errorf("resolved mult R = %v, want 0.5", op.Transform.ColorTransform.Mult.R)
	}
}

func pointsEqual(a, b swfkit.Point, eps float32) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < eps && dy < eps
}

func TestBuildFrameViewTransform(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.AddChild(solidSquare("s", 0, 5, swfkit.White))

	opts := DefaultOptions()
	opts.ViewTransform = swfkit.FlipY(100)
	list := BuildFrame(root, &opts)

	op := list.Ops()[0].(FillPathOp)
	p := op.Transform.Matrix.TransformPoint(swfkit.Point{})
	if !pointsEqual(p, swfkit.Point{X: 0, Y: 100}, 1e-5) {
		t.Errorf("view-transformed origin = %v, want (0,100)", p)
	}
}

func TestBuildFrameSkipsHidden(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	hidden := solidSquare("hidden", 0, 5, swfkit.White)
	hidden.Base().Visible = false
	root.AddChild(hidden)
	root.AddChild(solidSquare("shown", 1, 5, swfkit.White))

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	if list.Len() != 1 {
		t.Errorf("ops = %d, want 1 (hidden node skipped)", list.Len())
	}
}

func TestBuildFrameFilteredNodeGetsLayer(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := solidSquare("s", 0, 10, swfkit.White)
	s.Base().Filters = filter.Chain{filter.Blur{RadiusX: 2, RadiusY: 2, Passes: 1}}
	root.AddChild(s)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)

	got := opTypes(list)
	want := []OpType{OpTypePushLayer, OpTypeFillPath, OpTypePopLayer}
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}

	// Layer bounds include the blur expansion.
	push := list.Ops()[0].(PushLayerOp)
	if push.Bounds.X0 > -2 || push.Bounds.X1 < 12 {
		t.Errorf("layer bounds = %v, want expanded past [0,10]", push.Bounds)
	}
	if len(push.Filters) != 1 {
		t.Errorf("layer filters = %d, want 1", len(push.Filters))
	}
}

func TestBuildFrameImpotentFiltersNoLayer(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := solidSquare("s", 0, 10, swfkit.White)
	s.Base().Filters = filter.Chain{filter.Blur{}, filter.IdentityColorMatrix()}
	root.AddChild(s)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	if got := opTypes(list); len(got) != 1 || got[0] != OpTypeFillPath {
		t.Errorf("ops = %v, want bare FillPath", got)
	}
}

func TestBuildFrameFilterScalesWithZoom(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.Base().Matrix = swfkit.Scale(2, 2)
	s := solidSquare("s", 0, 10, swfkit.White)
	s.Base().Filters = filter.Chain{filter.Blur{RadiusX: 3, RadiusY: 3, Passes: 1}}
	root.AddChild(s)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	push := list.Ops()[0].(PushLayerOp)
	blur := push.Filters[0].(filter.Blur)
	if blur.RadiusX != 6 || blur.RadiusY != 6 {
		t.Errorf("scaled blur radii = %v, %v, want 6, 6", blur.RadiusX, blur.RadiusY)
	}
}

func TestBuildFrameBlendGetsLayer(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := solidSquare("s", 0, 10, swfkit.White)
	s.Base().BlendMode = swfkit.BlendMultiply
	root.AddChild(s)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	got := opTypes(list)
	if len(got) != 3 || got[0] != OpTypePushLayer {
		t.Fatalf("ops = %v, want layered multiply", got)
	}
	if push := list.Ops()[0].(PushLayerOp); push.Blend != swfkit.BlendMultiply {
		t.Errorf("layer blend = %v, want Multiply", push.Blend)
	}
}

func TestBuildFrameUnsupportedBlendFallsBack(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := solidSquare("s", 0, 10, swfkit.White)
	s.Base().BlendMode = swfkit.BlendHardLight
	root.AddChild(s)

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	// HardLight resolves to Normal at build time, so no layer is needed.
	if got := opTypes(list); len(got) != 1 || got[0] != OpTypeFillPath {
		t.Errorf("ops = %v, want bare FillPath", got)
	}
}

func TestBuildFrameNilRoot(t *testing.T) {
	opts := DefaultOptions()
	if got := BuildFrame(nil, &opts); got.Len() != 0 {
		t.Errorf("nil root produced %d ops", got.Len())
	}
}
