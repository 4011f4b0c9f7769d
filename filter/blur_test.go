// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/swfkit"
)

func TestNewBlurClampsNegatives(t *testing.T) {
	b := NewBlur(-5, 3, 0)
	if b.RadiusX != 0 || b.RadiusY != 3 {
		t.Errorf("radii = %v, %v, want 0, 3", b.RadiusX, b.RadiusY)
	}
	if b.Passes != 1 {
		t.Errorf("passes = %d, want 1", b.Passes)
	}
}

func TestBlurZeroRadiusCopies(t *testing.T) {
	src := swfkit.NewPixmap(3, 3)
	src.Set(1, 1, swfkit.Color{R: 1, A: 1})
	dst := swfkit.NewPixmap(3, 3)
	Blur{Passes: 1}.Apply(src, dst)
	if got := dst.Get(1, 1); !colorsEqual(got, swfkit.Color{R: 1, A: 1}, 0.01) {
		t.Errorf("zero-radius blur changed pixel to %v", got)
	}
}

func TestBlurSpreadsAndConservesEnergy(t *testing.T) {
	// A single opaque pixel spreads over the 3-wide window; total alpha
	// is conserved when nothing leaves the pixmap.
	src := swfkit.NewPixmap(9, 9)
	src.Set(4, 4, swfkit.Color{R: 1, G: 1, B: 1, A: 1})
	dst := swfkit.NewPixmap(9, 9)
	Blur{RadiusX: 1, RadiusY: 1, Passes: 1}.Apply(src, dst)

	center := dst.Alpha(4, 4)
	if math32.Abs(center-1.0/9) > 0.02 {
		t.Errorf("center alpha = %v, want ~1/9", center)
	}
	if a := dst.Alpha(3, 5); a <= 0 {
		t.Error("neighbor untouched by blur")
	}
	if a := dst.Alpha(6, 4); a != 0 {
		t.Errorf("pixel outside kernel reach has alpha %v", a)
	}

	var total float32
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			total += dst.Alpha(x, y)
		}
	}
	if math32.Abs(total-1) > 0.1 {
		t.Errorf("total alpha = %v, want ~1", total)
	}
}

func TestBlurEdgeSamplesTransparent(t *testing.T) {
	// Content at the border loses energy to the transparent outside.
	src := swfkit.NewPixmap(5, 1)
	src.Set(0, 0, swfkit.Color{A: 1})
	dst := swfkit.NewPixmap(5, 1)
	Blur{RadiusX: 1, Passes: 1}.Apply(src, dst)
	if a := dst.Alpha(0, 0); math32.Abs(a-1.0/3) > 0.02 {
		t.Errorf("edge alpha = %v, want ~1/3", a)
	}
}

func TestBlurMultiplePasses(t *testing.T) {
	src := swfkit.NewPixmap(11, 1)
	src.Set(5, 0, swfkit.Color{A: 1})

	one := swfkit.NewPixmap(11, 1)
	Blur{RadiusX: 1, Passes: 1}.Apply(src, one)
	two := swfkit.NewPixmap(11, 1)
	Blur{RadiusX: 1, Passes: 2}.Apply(src, two)

	// A second pass reaches pixels the first could not.
	if one.Alpha(3, 0) != 0 {
		t.Error("single pass reached radius 2")
	}
	if two.Alpha(3, 0) <= 0 {
		t.Error("second pass did not extend the spread")
	}
}

func TestBlurExpandBounds(t *testing.T) {
	in := swfkit.Rect{X1: 10, Y1: 10}
	got := Blur{RadiusX: 2, RadiusY: 3, Passes: 2}.ExpandBounds(in)
	want := swfkit.Rect{X0: -4, Y0: -6, X1: 14, Y1: 16}
	if got != want {
		t.Errorf("ExpandBounds = %v, want %v", got, want)
	}
}

func TestChainApply(t *testing.T) {
	src := swfkit.NewPixmap(5, 5)
	src.Set(2, 2, swfkit.Color{R: 1, A: 1})

	invert := IdentityColorMatrix()
	invert.Matrix[0] = -1
	invert.Matrix[4] = 255 // R = 1 - R

	chain := Chain{
		Blur{RadiusX: 1, Passes: 1},
		invert,
	}
	out := chain.Apply(src)

	if out == src {
		t.Fatal("chain returned the source pixmap")
	}
	// src must survive unmodified.
	if got := src.Get(2, 2); !colorsEqual(got, swfkit.Color{R: 1, A: 1}, 0.01) {
		t.Errorf("chain modified src: %v", got)
	}
	// Inverted blurred red: where alpha landed, R flips toward 0.
	u := out.Get(2, 2).Unpremultiply()
	if u.R > 0.2 {
		t.Errorf("inverted center R = %v, want near 0", u.R)
	}
}

func TestChainActive(t *testing.T) {
	chain := Chain{
		Blur{},                  // impotent
		IdentityColorMatrix(),   // impotent
		Blur{RadiusX: 1, Passes: 1},
		nil,
	}
	active := chain.Active()
	if len(active) != 1 {
		t.Fatalf("Active() kept %d filters, want 1", len(active))
	}
	if _, ok := active[0].(Blur); !ok {
		t.Errorf("Active()[0] = %T, want Blur", active[0])
	}
}

func TestChainEmptyApply(t *testing.T) {
	src := swfkit.NewPixmap(2, 2)
	if got := (Chain{}).Apply(src); got != src {
		t.Error("empty chain should return src unchanged")
	}
}
