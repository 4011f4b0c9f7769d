// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
	"github.com/gogpu/swfkit/filter"
)

// BuildFrame walks the resolved display tree once and records the
// frame's ordered draw list. Transform resolution, filter scaling and
// blend fallback all happen here; executing the list needs no tree
// access.
func BuildFrame(root display.DisplayObject, opts *Options) *DrawList {
	list := &DrawList{}
	if root == nil {
		return list
	}
	stack := swfkit.NewTransformStack(swfkit.Transform{
		Matrix:         opts.ViewTransform,
		ColorTransform: swfkit.IdentityColorTransform(),
	})
	buildNode(list, root, stack)
	return list
}

func buildNode(list *DrawList, node display.DisplayObject, stack *swfkit.TransformStack) {
	base := node.Base()
	if !base.Renderable() {
		return
	}
	stack.Push(base.Local())
	defer stack.Pop()
	world := stack.Transform()

	// A subtree needs an isolated layer when it carries filters or any
	// blend other than plain Normal. Layer itself isolates and then
	// composites normally.
	filters := scaledFilters(base, world.Matrix)
	blend := resolveBlend(base.BlendMode)
	layered := len(filters) > 0 || blend != swfkit.BlendNormal
	if layered {
		bounds := filters.ExpandBounds(node.Bounds().Transform(world.Matrix))
		if bounds.IsEmpty() {
			return
		}
		list.push(PushLayerOp{Bounds: bounds, Filters: filters, Blend: blend})
		defer list.push(PopLayerOp{})
	}

	switch n := node.(type) {
	case *display.Shape:
		for _, dp := range n.Paths {
			if dp.Path == nil || dp.Fill == nil {
				continue
			}
			list.push(FillPathOp{Path: dp.Path, Fill: dp.Fill, Transform: world})
		}
	case *display.Bitmap:
		if n.Texture != nil {
			list.push(DrawBitmapOp{
				Texture:   n.Texture,
				Smoothed:  n.Smoothed,
				Transform: world,
			})
		}
	case *display.MovieClip:
		for _, child := range n.Children() {
			buildNode(list, child, stack)
		}
	}
}

// scaledFilters resolves a node's declared filter chain for this frame:
// impotent passes dropped, pixel-space parameters scaled by the world
// transform so blur radii track zoomed clips.
func scaledFilters(base *display.Base, world swfkit.Matrix) filter.Chain {
	active := base.Filters.Active()
	if len(active) == 0 {
		return nil
	}
	sx, sy := world.ScaleFactors()
	return active.Scaled(sx, sy).Active()
}
