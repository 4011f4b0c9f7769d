// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfcanvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/player"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a
	// closed canvas.
	ErrCanvasClosed = errors.New("swfcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("swfcanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("swfcanvas: nil DeviceProvider")

	// ErrNilPlayer is returned when a nil player is passed.
	ErrNilPlayer = errors.New("swfcanvas: nil player")

	// ErrInvalidRenderer is returned when the renderer doesn't implement
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("swfcanvas: renderer must implement gpucontext.TextureCreator")

	// ErrInvalidDrawContext is returned when the draw context doesn't
	// implement gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("swfcanvas: dc must implement gpucontext.TextureDrawer")
)

// textureDestroyer matches the host texture's Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas presents one movie player inside a gpucontext host. It owns
// the CPU composite target and the GPU texture it uploads to.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	player      *player.Player
	provider    gpucontext.DeviceProvider
	target      *swfkit.Pixmap
	texture     any  // lazy-created host texture
	oldTexture  any  // previous texture awaiting deferred destruction
	dirty       bool // needs GPU upload
	sizeChanged bool // resize pending, texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Canvas presenting the given player at the given size.
// The provider should come from the host's GPU context.
func New(provider gpucontext.DeviceProvider, p *player.Player, width, height int) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if p == nil {
		return nil, ErrNilPlayer
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		player:   p,
		provider: provider,
		target:   swfkit.NewPixmap(width, height),
		width:    width,
		height:   height,
		dirty:    true, // first Flush creates the texture
	}, nil
}

// Player returns the wrapped player. Returns nil if the canvas is
// closed.
func (c *Canvas) Player() *player.Player {
	if c.closed {
		return nil
	}
	return c.player
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Advance moves playback forward and recomposites the frame into the
// CPU target, flagging it for GPU upload.
func (c *Canvas) Advance(dt time.Duration) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.player.Advance(dt)
	c.target.Clear(swfkit.Color{})
	c.player.RenderInto(c.target)
	c.dirty = true
	return nil
}

// Resize changes canvas dimensions. This recreates the composite target
// and schedules the GPU texture for recreation.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	c.width = width
	c.height = height
	c.target = swfkit.NewPixmap(width, height)
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the composite to the GPU texture if dirty and returns
// the texture. The texture is created lazily on first Flush.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// A resized texture may still be referenced by in-flight GPU work;
	// keep it alive until RenderTo has uploaded through the creator,
	// which waits for the GPU internally.
	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	data := c.target.SRGBPix()

	if c.texture == nil {
		// Real texture creation needs a TextureCreator, available only
		// during RenderTo; store the upload request until then.
		c.texture = &pendingTexture{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("swfcanvas: texture update failed: %w", err)
		}
	}
	c.dirty = false
	return c.texture, nil
}

// Texture returns the current GPU texture without flushing. Returns nil
// if the texture hasn't been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases all resources associated with the Canvas. Close is
// idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}
	c.provider = nil
	return nil
}

// pendingTexture holds an upload request until a TextureCreator is
// available during RenderTo.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
