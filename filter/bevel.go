// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/swfkit"
)

// Bevel lights one edge of the source with a highlight color and the
// opposite edge with a shadow color, each behaving like a Glow. The two
// contributions are combined against the destination under the shared
// Knockout/CompositeSource rules and summed.
type Bevel struct {
	Highlight         swfkit.Color // straight sRGB
	HighlightStrength float32
	Shadow            swfkit.Color // straight sRGB
	ShadowStrength    float32
	Distance          float32 // edge offset in pixels
	Angle             float32 // offset direction in radians
	BlurX             float32
	BlurY             float32
	Passes            int
	Inner             bool
	Knockout          bool
	CompositeSource   bool
}

// Apply implements Filter.
func (f Bevel) Apply(src, dst *swfkit.Pixmap) {
	mask := blurredAlpha(src, f.BlurX, f.BlurY, f.Passes)

	sin, cos := math32.Sincos(f.Angle)
	ox := int(math32.Round(cos * f.Distance))
	oy := int(math32.Round(sin * f.Distance))

	hlBase := swfkit.SRGBToLinearColor(f.Highlight)
	hlA := hlBase.A
	hlBase.A = 1
	shBase := swfkit.SRGBToLinearColor(f.Shadow)
	shA := shBase.A
	shBase.A = 1

	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dest := src.Get(x, y)

			// The lit edge is where the mask shifted away from the
			// light drops off; the shadowed edge is the reverse.
			toward := mask.Alpha(x+ox, y+oy)
			away := mask.Alpha(x-ox, y-oy)
			hlMask := swfkit.Clamp01(away - toward)
			shMask := swfkit.Clamp01(toward - away)

			// glowCombine's inner branch keys off (1-blurA); the bevel
			// masks are already edge intensities, so feed the
			// complement when inner.
			hlIn, shIn := hlMask, shMask
			if f.Inner {
				hlIn, shIn = 1-hlMask, 1-shMask
			}
			hl := glowCombine(hlBase, hlA, f.HighlightStrength, hlIn,
				dest, f.Inner, f.Knockout, false)
			sh := glowCombine(shBase, shA, f.ShadowStrength, shIn,
				dest, f.Inner, f.Knockout, false)
			out := hl.Add(sh)
			if f.CompositeSource && !f.Knockout {
				if f.Inner {
					a := swfkit.Clamp01(hlA*swfkit.Clamp01(hlMask*f.HighlightStrength) +
						shA*swfkit.Clamp01(shMask*f.ShadowStrength))
					out = out.Add(dest.Scale(1 - a))
				} else {
					out = out.Add(dest)
				}
			}
			dst.Set(x, y, out.Clamp01())
		}
	}
}

// ExpandBounds implements Filter.
func (f Bevel) ExpandBounds(in swfkit.Rect) swfkit.Rect {
	if f.Inner {
		return in
	}
	d := math32.Abs(f.Distance)
	return Blur{RadiusX: f.BlurX, RadiusY: f.BlurY, Passes: f.Passes}.
		ExpandBounds(in).Expand(d, d)
}

// Impotent implements Filter.
func (f Bevel) Impotent() bool {
	return f.HighlightStrength <= 0 && f.ShadowStrength <= 0 &&
		f.CompositeSource && !f.Knockout
}

// Scaled implements Filter.
func (f Bevel) Scaled(x, y float32) Filter {
	f.BlurX *= math32.Abs(x)
	f.BlurY *= math32.Abs(y)
	f.Distance *= math32.Abs(x)
	return f
}
