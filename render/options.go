// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render walks a resolved display tree into an ordered list of
// draw, filter and blend operations, and executes that list with a
// software backend. The operation list is the rendering contract: any
// backend that supports render-to-texture, alpha blending and
// per-fragment shading can consume it.
package render

import (
	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/cache"
)

// Options configures frame building and compositing.
type Options struct {
	// SaturatePolicy controls where color-transform clamping happens;
	// see swfkit.SaturatePolicy. The reference pipeline saturates late.
	SaturatePolicy swfkit.SaturatePolicy

	// ViewTransform is the fixed host coordinate-system correction
	// (typically swfkit.FlipY for Y-up hosts), composed above the root.
	// It is configuration, never baked into node transforms.
	ViewTransform swfkit.Matrix

	// BackdropCapture gates blend modes that need an arbitrary backdrop
	// texture. No current backend sets it; unsupported modes fall back
	// to Normal with a warning.
	BackdropCapture bool

	// Ramps caches baked gradient lookups across frames. Nil disables
	// caching; every gradient fill then bakes its own ramp.
	Ramps *cache.RampCache
}

// DefaultOptions returns options matching the reference pipeline:
// late saturation, identity view transform, a shared ramp cache.
func DefaultOptions() Options {
	return Options{
		SaturatePolicy: swfkit.SaturateLate,
		ViewTransform:  swfkit.Identity(),
		Ramps:          cache.New(0),
	}
}

// ramp returns the baked lookup for a gradient, via the cache when one
// is configured.
func (o *Options) ramp(g *swfkit.Gradient) *swfkit.Ramp {
	if o.Ramps != nil {
		return o.Ramps.GetOrBake(g)
	}
	return g.BakeRamp()
}
