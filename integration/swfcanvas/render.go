// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfcanvas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// RenderOptions controls how the composite is drawn to the target.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0).
	X, Y float32
}

// DefaultRenderOptions returns options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderTo draws the current composite to a gpucontext.TextureDrawer.
// This is the primary integration method: flush the CPU composite to
// the GPU texture, then draw it at the origin.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToEx draws the composite with positioning options.
func (c *Canvas) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	// First flush after creation or resize leaves a placeholder; create
	// the real host texture now that a creator is reachable.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA waits for the GPU internally, so once it
		// returns the old texture's descriptors are no longer in use.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("swfcanvas: NewTextureFromRGBA failed: %w", err)
		}

		// The composite is premultiplied; the host must pick the
		// BlendFactorOne pipeline for correct compositing.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex

		if c.oldTexture != nil {
			if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			c.oldTexture = nil
		}
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}

// RenderToPosition is a convenience method for rendering at a specific
// position.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	return c.RenderToEx(dc, RenderOptions{X: x, Y: y})
}
