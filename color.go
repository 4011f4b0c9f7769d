// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import (
	"github.com/chewxy/math32"
)

// Color represents a color with float32 components in [0, 1].
// Whether the components are premultiplied by alpha, and whether RGB is
// sRGB-encoded or linear, depends on context; the pixel pipeline states
// both at every boundary. Alpha is always linear.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = Color{}
)

// Premultiply returns the color with RGB scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply returns the color with the alpha scale removed.
// A fully transparent color unpremultiplies to transparent black.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Clamp01 restricts every component to [0, 1].
func (c Color) Clamp01() Color {
	return Color{
		R: Clamp01(c.R),
		G: Clamp01(c.G),
		B: Clamp01(c.B),
		A: Clamp01(c.A),
	}
}

// Lerp performs componentwise linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Add returns the componentwise sum of two colors, unclamped.
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}

// Clamp01 restricts a value to [0, 1].
func Clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SRGBToLinear converts an sRGB-encoded component to linear (EOTF).
// Input and output are in [0, 1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB encoding (OETF).
// Input and output are in [0, 1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearColor converts RGB from sRGB to linear space.
// Alpha is never gamma-encoded and passes through.
func SRGBToLinearColor(c Color) Color {
	return Color{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor converts RGB from linear to sRGB space.
// Alpha is never gamma-encoded and passes through.
func LinearToSRGBColor(c Color) Color {
	return Color{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}
