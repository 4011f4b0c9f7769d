// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import "github.com/chewxy/math32"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// FlipY returns the fixed vertical-flip matrix for a viewport of the
// given height. Hosts whose Y axis points up pass this as the view
// transform; it is never baked into node-local transforms.
func FlipY(height float32) Matrix {
	return Matrix{A: 1, E: -1, F: height}
}

// Multiply multiplies two matrices (m * other), applying other first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math32.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// ScaleFactors returns the absolute X and Y scale the matrix applies,
// ignoring translation. Used to scale filter parameters with the world
// transform so blur radii track zoomed clips.
func (m Matrix) ScaleFactors() (x, y float32) {
	x = math32.Hypot(m.A, m.D)
	y = math32.Hypot(m.B, m.E)
	return x, y
}

// Point represents a 2D point or vector.
type Point struct {
	X, Y float32
}
