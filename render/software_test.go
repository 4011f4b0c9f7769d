// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/swfkit"
	"github.com/gogpu/swfkit/display"
	"github.com/gogpu/swfkit/filter"
)

func renderTree(t *testing.T, root display.DisplayObject, w, h int) *swfkit.Pixmap {
	t.Helper()
	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	return NewSoftwareRenderer(opts).Render(list, w, h)
}

func TestRenderSolidFill(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.AddChild(solidSquare("s", 0, 8, swfkit.RGB(1, 0, 0)))

	out := renderTree(t, root, 10, 10)

	// Red is gamma-invariant at full intensity, so the working-space
	// pixel is exactly (1,0,0,1).
	if got := out.Get(4, 4); !colorsEqual(got, swfkit.Color{R: 1, A: 1}, 0.01) {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if a := out.Alpha(9, 9); a != 0 {
		t.Errorf("exterior alpha = %v, want 0", a)
	}
}

func TestRenderColorTransformTint(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := solidSquare("s", 0, 8, swfkit.RGB(1, 1, 1))
	s.Base().ColorTransform = swfkit.ColorTransform{
		Mult: swfkit.Color{R: 1, G: 0, B: 0, A: 1},
	}
	root.AddChild(s)

	out := renderTree(t, root, 10, 10)
	got := out.Get(4, 4)
	if !colorsEqual(got, swfkit.Color{R: 1, A: 1}, 0.01) {
		t.Errorf("tinted pixel = %v, want red", got)
	}
}

func TestRenderGradientFill(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := display.NewShape("s", 0)
	s.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: 16, Y1: 4}),
		swfkit.GradientFill{
			Gradient: &swfkit.Gradient{
				Stops: []swfkit.GradientStop{
					{Ratio: 0, Color: swfkit.RGBA(1, 0, 0, 1)},
					{Ratio: 1, Color: swfkit.RGBA(0, 0, 1, 1)},
				},
			},
			// Shape-local x in [0,16] maps to ramp position [0,1].
			Matrix: swfkit.Scale(1.0/16, 1),
		},
	)
	root.AddChild(s)

	out := renderTree(t, root, 16, 4)

	left := out.Get(0, 2).Unpremultiply()
	right := out.Get(15, 2).Unpremultiply()
	if left.R < 0.8 || left.B > 0.2 {
		t.Errorf("left sample = %v, want mostly red", left)
	}
	if right.B < 0.8 || right.R > 0.2 {
		t.Errorf("right sample = %v, want mostly blue", right)
	}
}

func TestRenderInvalidGradientTransparent(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := display.NewShape("s", 0)
	s.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: 8, Y1: 8}),
		swfkit.GradientFill{
			Gradient: &swfkit.Gradient{
				Stops: []swfkit.GradientStop{{Ratio: 0.5, Color: swfkit.White}},
			},
			Matrix: swfkit.Identity(),
		},
	)
	root.AddChild(s)

	out := renderTree(t, root, 8, 8)
	// The invalid fill renders transparent; playback continues.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if a := out.Alpha(x, y); a != 0 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want transparent", x, y, a)
			}
		}
	}
}

func TestRenderMultiplyLayer(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.AddChild(solidSquare("bg", 0, 8, swfkit.RGB(1, 1, 1)))
	overlay := solidSquare("overlay", 1, 8, swfkit.RGB(0.5, 0.5, 0.5))
	overlay.Base().BlendMode = swfkit.BlendMultiply
	root.AddChild(overlay)

	out := renderTree(t, root, 8, 8)
	got := out.Get(4, 4).Unpremultiply()
	// Multiply of mid-gray over white keeps mid-gray. The working space
	// is linear, so compare against the decoded sRGB value.
	want := swfkit.SRGBToLinear(0.5)
	if d := got.R - want; d < -0.02 || d > 0.02 {
		t.Errorf("multiplied R = %v, want ~%v", got.R, want)
	}
	if got.A < 0.99 {
		t.Errorf("multiplied alpha = %v, want 1", got.A)
	}
}

func TestRenderBlurLayer(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	s := display.NewShape("s", 0)
	s.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X0: 6, Y0: 6, X1: 10, Y1: 10}),
		swfkit.SolidFill{Color: swfkit.White},
	)
	s.Base().Filters = filter.Chain{filter.Blur{RadiusX: 2, RadiusY: 2, Passes: 1}}
	root.AddChild(s)

	out := renderTree(t, root, 16, 16)

	// The blur softens the edge: alpha just outside the rect is nonzero,
	// and the composite places the layer back at the right position.
	if a := out.Alpha(5, 8); a <= 0 {
		t.Error("no blur tail outside the rect")
	}
	if a := out.Alpha(8, 8); a <= 0.5 {
		t.Errorf("center alpha = %v, want mostly opaque", a)
	}
	if a := out.Alpha(0, 0); a != 0 {
		t.Errorf("far corner alpha = %v, want 0", a)
	}
}

func TestRenderBitmapNode(t *testing.T) {
	tex := swfkit.NewPixmap(2, 2)
	tex.Clear(swfkit.Color{G: 1, A: 1})

	root := display.NewMovieClip("root", 0, nil)
	bmp := display.NewBitmap("bmp", 0, tex)
	bmp.Base().Matrix = swfkit.Translate(2, 2).Multiply(swfkit.Scale(2, 2))
	root.AddChild(bmp)

	out := renderTree(t, root, 8, 8)
	if got := out.Get(3, 3); !colorsEqual(got, swfkit.Color{G: 1, A: 1}, 0.02) {
		t.Errorf("bitmap pixel = %v, want green", got)
	}
	if a := out.Alpha(1, 1); a != 0 {
		t.Errorf("outside bitmap alpha = %v, want 0", a)
	}
}

func TestRenderBitmapFill(t *testing.T) {
	tex := swfkit.NewPixmap(2, 1)
	tex.Set(0, 0, swfkit.Color{R: 1, A: 1})
	tex.Set(1, 0, swfkit.Color{B: 1, A: 1})

	root := display.NewMovieClip("root", 0, nil)
	s := display.NewShape("s", 0)
	s.AddPath(
		swfkit.NewPath().AddRect(swfkit.Rect{X1: 4, Y1: 2}),
		swfkit.BitmapFill{
			Texture:   tex,
			Matrix:    swfkit.Scale(0.5, 0.5), // 2x magnification
			Repeating: false,
		},
	)
	root.AddChild(s)

	out := renderTree(t, root, 4, 2)
	if got := out.Get(0, 0); !colorsEqual(got, swfkit.Color{R: 1, A: 1}, 0.02) {
		t.Errorf("left texel = %v, want red", got)
	}
	if got := out.Get(3, 0); !colorsEqual(got, swfkit.Color{B: 1, A: 1}, 0.02) {
		t.Errorf("right texel = %v, want blue", got)
	}
}

func TestRenderIntoComposites(t *testing.T) {
	root := display.NewMovieClip("root", 0, nil)
	root.AddChild(solidSquare("s", 0, 2, swfkit.RGBA(1, 0, 0, 0.5)))

	opts := DefaultOptions()
	list := BuildFrame(root, &opts)
	r := NewSoftwareRenderer(opts)

	dst := swfkit.NewPixmap(4, 4)
	dst.Clear(swfkit.Color{G: 1, A: 1})
	r.RenderInto(dst, list)

	got := dst.Get(0, 0)
	// Half-transparent red over opaque green: green survives at half.
	if got.G < 0.4 || got.G > 0.6 || got.A < 0.99 {
		t.Errorf("composited pixel = %v", got)
	}
}
