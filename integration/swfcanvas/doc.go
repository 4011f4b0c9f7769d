// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package swfcanvas presents movie playback inside GPU-accelerated
// windows by managing the CPU-to-GPU pipeline automatically. The data
// flow is:
//
//	player (advance + composite) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, _ := swfcanvas.New(app.GPUContextProvider(), p, 800, 600)
//	defer canvas.Close()
//
//	// per frame
//	canvas.Advance(dt)
//	canvas.RenderTo(dc)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Create one Canvas per
// goroutine, or use external synchronization.
//
// # Integration Without Circular Imports
//
// This package depends only on gpucontext interfaces (DeviceProvider,
// TextureCreator, TextureDrawer), so any host that exposes them can
// present movies without a dependency cycle.
package swfcanvas
