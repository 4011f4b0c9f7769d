// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/swfkit"
)

// warnedBlends tracks unsupported blend tags already reported, so a mode
// used by thousands of fragments warns once per distinct tag.
var (
	warnedBlendsMu sync.Mutex
	warnedBlends   = map[swfkit.BlendMode]bool{}
)

// resolveBlend maps a declared blend mode to the one the compositor will
// execute. Unsupported modes degrade to Normal with a one-time warning;
// degraded visuals are expected, a crash is not.
func resolveBlend(mode swfkit.BlendMode) swfkit.BlendMode {
	if mode.Supported() {
		return mode
	}
	warnedBlendsMu.Lock()
	if !warnedBlends[mode] {
		warnedBlends[mode] = true
		swfkit.Logger().Warn("unsupported blend mode, rendering as Normal",
			"mode", mode.String(), "tag", uint8(mode))
	}
	warnedBlendsMu.Unlock()
	return swfkit.BlendNormal
}

// BlendPixel combines a premultiplied source sample with the
// premultiplied destination already written, channel-wise, then clamps.
// Layer isolates the subtree but composites normally; callers resolve
// unsupported modes before getting here.
func BlendPixel(mode swfkit.BlendMode, src, dst swfkit.Color) swfkit.Color {
	switch mode {
	case swfkit.BlendMultiply:
		return swfkit.Color{
			R: src.R * dst.R,
			G: src.G * dst.G,
			B: src.B * dst.B,
			A: src.A * dst.A,
		}.Clamp01()
	case swfkit.BlendScreen:
		return swfkit.Color{
			R: 1 - (1-src.R)*(1-dst.R),
			G: 1 - (1-src.G)*(1-dst.G),
			B: 1 - (1-src.B)*(1-dst.B),
			A: 1 - (1-src.A)*(1-dst.A),
		}.Clamp01()
	case swfkit.BlendLighten:
		return swfkit.Color{
			R: math32.Max(src.R, dst.R),
			G: math32.Max(src.G, dst.G),
			B: math32.Max(src.B, dst.B),
			A: math32.Max(src.A, dst.A),
		}.Clamp01()
	case swfkit.BlendDarken:
		return swfkit.Color{
			R: math32.Min(src.R, dst.R),
			G: math32.Min(src.G, dst.G),
			B: math32.Min(src.B, dst.B),
			A: math32.Min(src.A, dst.A),
		}.Clamp01()
	case swfkit.BlendAdd:
		return dst.Add(src).Clamp01()
	case swfkit.BlendSubtract:
		return swfkit.Color{
			R: dst.R - src.R,
			G: dst.G - src.G,
			B: dst.B - src.B,
			A: dst.A - src.A,
		}.Clamp01()
	default: // Normal, Layer
		return srcOver(src, dst)
	}
}

// srcOver is standard premultiplied source-over compositing.
func srcOver(src, dst swfkit.Color) swfkit.Color {
	inv := 1 - src.A
	return swfkit.Color{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}

// Composite blends a layer into dst at the given pixel offset under the
// declared mode. Pixels where the layer is fully transparent are left
// untouched for the non-Normal modes too, so a layer only affects the
// region it actually covered.
func Composite(dst, layer *swfkit.Pixmap, offX, offY int, mode swfkit.BlendMode) {
	mode = resolveBlend(mode)
	for y := 0; y < layer.Height(); y++ {
		dy := y + offY
		if dy < 0 || dy >= dst.Height() {
			continue
		}
		for x := 0; x < layer.Width(); x++ {
			dx := x + offX
			if dx < 0 || dx >= dst.Width() {
				continue
			}
			src := layer.Get(x, y)
			if src.A == 0 && src.R == 0 && src.G == 0 && src.B == 0 {
				continue
			}
			dst.Set(dx, dy, BlendPixel(mode, src, dst.Get(dx, dy)))
		}
	}
}
