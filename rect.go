// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import "github.com/chewxy/math32"

// Rect is an axis-aligned rectangle with float32 coordinates.
// An empty rect has X0 > X1 or Y0 > Y1.
type Rect struct {
	X0, Y0 float32
	X1, Y1 float32
}

// EmptyRect returns a rect that unions as the identity element.
func EmptyRect() Rect {
	return Rect{
		X0: math32.Inf(1), Y0: math32.Inf(1),
		X1: math32.Inf(-1), Y1: math32.Inf(-1),
	}
}

// IsEmpty returns true if the rect contains no area.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Width returns the horizontal extent, or 0 for empty rects.
func (r Rect) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.X1 - r.X0
}

// Height returns the vertical extent, or 0 for empty rects.
func (r Rect) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Y1 - r.Y0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X0: math32.Min(r.X0, other.X0),
		Y0: math32.Min(r.Y0, other.Y0),
		X1: math32.Max(r.X1, other.X1),
		Y1: math32.Max(r.Y1, other.Y1),
	}
}

// UnionPoint grows the rect to contain the point.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
}

// Expand grows the rect by dx horizontally and dy vertically on every
// side. Empty rects stay empty.
func (r Rect) Expand(dx, dy float32) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Transform returns the axis-aligned bounds of the rect under an affine
// transform.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	out = out.UnionPoint(m.TransformPoint(Point{X: r.X0, Y: r.Y0}))
	out = out.UnionPoint(m.TransformPoint(Point{X: r.X1, Y: r.Y0}))
	out = out.UnionPoint(m.TransformPoint(Point{X: r.X0, Y: r.Y1}))
	out = out.UnionPoint(m.TransformPoint(Point{X: r.X1, Y: r.Y1}))
	return out
}
