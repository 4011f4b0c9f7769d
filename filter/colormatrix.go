// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package filter

import "github.com/gogpu/swfkit"

// ColorMatrix transforms unpremultiplied RGBA through a 4x5 matrix.
// The 20 coefficients are row-major, one row per destination channel:
//
//	dst_c = m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]/255
//
// Offsets (the fifth column) use the authored 0..255 scale.
type ColorMatrix struct {
	Matrix [20]float32
}

// IdentityColorMatrix returns the matrix that leaves colors unchanged.
func IdentityColorMatrix() ColorMatrix {
	var m ColorMatrix
	m.Matrix[0] = 1
	m.Matrix[6] = 1
	m.Matrix[12] = 1
	m.Matrix[18] = 1
	return m
}

// Apply implements Filter.
func (f ColorMatrix) Apply(src, dst *swfkit.Pixmap) {
	m := &f.Matrix
	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := src.Get(x, y).Unpremultiply()
			out := swfkit.Color{
				R: m[0]*u.R + m[1]*u.G + m[2]*u.B + m[3]*u.A + m[4]/255,
				G: m[5]*u.R + m[6]*u.G + m[7]*u.B + m[8]*u.A + m[9]/255,
				B: m[10]*u.R + m[11]*u.G + m[12]*u.B + m[13]*u.A + m[14]/255,
				A: m[15]*u.R + m[16]*u.G + m[17]*u.B + m[18]*u.A + m[19]/255,
			}
			dst.Set(x, y, out.Clamp01().Premultiply())
		}
	}
}

// ExpandBounds implements Filter. Color matrices do not move pixels.
func (f ColorMatrix) ExpandBounds(in swfkit.Rect) swfkit.Rect {
	return in
}

// Impotent implements Filter.
func (f ColorMatrix) Impotent() bool {
	return f == IdentityColorMatrix()
}

// Scaled implements Filter. Color matrices have no pixel-space
// parameters.
func (f ColorMatrix) Scaled(x, y float32) Filter {
	return f
}
