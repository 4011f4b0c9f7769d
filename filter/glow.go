// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import "github.com/gogpu/swfkit"

// Glow composites a blurred silhouette of the source in a flat color,
// inside or outside the source's own alpha.
//
// The four Knockout/CompositeSource combinations and the inner/outer
// asymmetry of the default branch (inner multiplies by the destination
// alpha, outer does not) are authoring-tool quirks reproduced exactly;
// do not "fix" them.
type Glow struct {
	Color    swfkit.Color // straight sRGB filter color
	Strength float32
	BlurX    float32
	BlurY    float32
	Passes   int
	Inner    bool
	Knockout bool
	// CompositeSource blends the original content back into the glow.
	CompositeSource bool
}

// Apply implements Filter.
func (f Glow) Apply(src, dst *swfkit.Pixmap) {
	mask := blurredAlpha(src, f.BlurX, f.BlurY, f.Passes)

	// The working space is linear; the authored color converts once,
	// with alpha forced to 1 before strength scaling.
	base := swfkit.SRGBToLinearColor(f.Color)
	colorA := base.A
	base.A = 1

	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dest := src.Get(x, y)
			blurA := mask.Alpha(x, y)
			out := glowCombine(base, colorA, f.Strength, blurA, dest,
				f.Inner, f.Knockout, f.CompositeSource)
			dst.Set(x, y, out.Clamp01())
		}
	}
}

// glowCombine evaluates one fragment of the glow algebra.
// base has alpha 1; colorA is the authored filter color's alpha.
func glowCombine(base swfkit.Color, colorA, strength, blurA float32, dest swfkit.Color, inner, knockout, compositeSource bool) swfkit.Color {
	if inner {
		a := colorA * swfkit.Clamp01((1-blurA)*strength)
		glow := base.Scale(a).Scale(dest.A)
		switch {
		case knockout:
			return glow
		case compositeSource:
			return glow.Add(dest.Scale(1 - a))
		default:
			return glow
		}
	}
	a := colorA * swfkit.Clamp01(blurA*strength)
	switch {
	case knockout:
		return base.Scale(a).Scale(1 - dest.A)
	case compositeSource:
		return base.Scale(a).Scale(1 - dest.A).Add(dest)
	default:
		return base.Scale(a)
	}
}

// blurredAlpha isolates src's alpha channel and blurs it. The returned
// pixmap's alpha is the mask; color channels are zero.
func blurredAlpha(src *swfkit.Pixmap, blurX, blurY float32, passes int) *swfkit.Pixmap {
	w, h := src.Width(), src.Height()
	mask := swfkit.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, swfkit.Color{A: src.Alpha(x, y)})
		}
	}
	blur := Blur{RadiusX: blurX, RadiusY: blurY, Passes: passes}
	if blur.Impotent() {
		return mask
	}
	out := swfkit.NewPixmap(w, h)
	blur.Apply(mask, out)
	return out
}

// ExpandBounds implements Filter. Inner glows never paint outside the
// source; outer glows extend by the blur tail.
func (f Glow) ExpandBounds(in swfkit.Rect) swfkit.Rect {
	if f.Inner {
		return in
	}
	return Blur{RadiusX: f.BlurX, RadiusY: f.BlurY, Passes: f.Passes}.ExpandBounds(in)
}

// Impotent implements Filter. A zero-strength glow still erases content
// when knocked out, and an inner default-branch glow replaces content
// outright, so only the strengthless composite-source case is skippable.
func (f Glow) Impotent() bool {
	return f.Strength <= 0 && f.CompositeSource && !f.Knockout
}

// Scaled implements Filter.
func (f Glow) Scaled(x, y float32) Filter {
	f.BlurX *= abs(x)
	f.BlurY *= abs(y)
	return f
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
