// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/swfkit"
)

// Blur is a separable multi-pass box blur. RadiusX and RadiusY are the
// kernel half-extents in pixels per axis; Passes repeats the box blur,
// which converges toward a Gaussian (the authoring tool's "quality").
//
// Blur operates directly on premultiplied color, like the reference
// renderer.
type Blur struct {
	RadiusX float32
	RadiusY float32
	Passes  int
}

// NewBlur creates a blur, clamping out-of-range parameters to the
// nearest valid value. Clamping is reported, not fatal.
func NewBlur(radiusX, radiusY float32, passes int) Blur {
	if radiusX < 0 || radiusY < 0 {
		swfkit.Logger().Warn("blur radius out of range, clamped",
			"radiusX", radiusX, "radiusY", radiusY)
		radiusX = math32.Max(radiusX, 0)
		radiusY = math32.Max(radiusY, 0)
	}
	if passes < 1 {
		passes = 1
	}
	return Blur{RadiusX: radiusX, RadiusY: radiusY, Passes: passes}
}

// Apply implements Filter.
func (f Blur) Apply(src, dst *swfkit.Pixmap) {
	rx := int(math32.Max(f.RadiusX, 0))
	ry := int(math32.Max(f.RadiusY, 0))
	passes := f.Passes
	if passes < 1 {
		passes = 1
	}
	if rx == 0 && ry == 0 {
		copy(dst.RGBA().Pix, src.RGBA().Pix)
		return
	}

	cur := src.Clone()
	tmp := swfkit.NewPixmap(src.Width(), src.Height())
	for p := 0; p < passes; p++ {
		if rx > 0 {
			boxBlurAxis(cur, tmp, rx, true)
			cur, tmp = tmp, cur
		}
		if ry > 0 {
			boxBlurAxis(cur, tmp, ry, false)
			cur, tmp = tmp, cur
		}
	}
	copy(dst.RGBA().Pix, cur.RGBA().Pix)
}

// boxBlurAxis runs one box-blur pass along an axis with a sliding-window
// running sum. Samples outside the pixmap are transparent.
func boxBlurAxis(src, dst *swfkit.Pixmap, radius int, horizontal bool) {
	w, h := src.Width(), src.Height()
	lines, length := h, w
	if !horizontal {
		lines, length = w, h
	}
	window := float32(2*radius + 1)

	at := func(line, i int) swfkit.Color {
		if horizontal {
			return src.Get(i, line)
		}
		return src.Get(line, i)
	}
	put := func(line, i int, c swfkit.Color) {
		if horizontal {
			dst.Set(i, line, c)
		} else {
			dst.Set(line, i, c)
		}
	}

	for line := 0; line < lines; line++ {
		var sum swfkit.Color
		for i := -radius; i <= radius; i++ {
			sum = sum.Add(at(line, i))
		}
		for i := 0; i < length; i++ {
			put(line, i, sum.Scale(1/window))
			sum = sum.Add(at(line, i+radius+1))
			trailing := at(line, i-radius)
			sum = swfkit.Color{
				R: sum.R - trailing.R,
				G: sum.G - trailing.G,
				B: sum.B - trailing.B,
				A: sum.A - trailing.A,
			}
		}
	}
}

// ExpandBounds implements Filter.
func (f Blur) ExpandBounds(in swfkit.Rect) swfkit.Rect {
	passes := float32(f.Passes)
	if passes < 1 {
		passes = 1
	}
	return in.Expand(math32.Max(f.RadiusX, 0)*passes, math32.Max(f.RadiusY, 0)*passes)
}

// Impotent implements Filter.
func (f Blur) Impotent() bool {
	return f.RadiusX <= 0 && f.RadiusY <= 0
}

// Scaled implements Filter.
func (f Blur) Scaled(x, y float32) Filter {
	f.RadiusX *= math32.Abs(x)
	f.RadiusY *= math32.Abs(y)
	return f
}
