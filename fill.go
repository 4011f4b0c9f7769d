// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// Fill selects the draw path for one fill region of a shape. It is a
// closed set: SolidFill, GradientFill and BitmapFill. Backends dispatch
// with an exhaustive type switch; adding a fill kind is a closed-set
// extension here, not open inheritance.
type Fill interface {
	fillMarker()
}

// SolidFill paints a constant color.
type SolidFill struct {
	// Color is the authored straight (unpremultiplied) sRGB color.
	Color Color
}

func (SolidFill) fillMarker() {}

// GradientFill delegates per-fragment color to a gradient. Matrix maps
// shape-local coordinates to gradient UV space, where the unit square
// covers the ramp's defined domain.
type GradientFill struct {
	Gradient *Gradient
	Matrix   Matrix
}

func (GradientFill) fillMarker() {}

// BitmapFill samples a texture through its own coordinate transform.
// Matrix maps shape-local coordinates to texture pixel coordinates.
type BitmapFill struct {
	Texture   *Pixmap // working-space premultiplied texture
	Matrix    Matrix
	Smoothed  bool // bilinear sampling when set, nearest otherwise
	Repeating bool // tile the texture instead of clamping to its edge
}

func (BitmapFill) fillMarker() {}
