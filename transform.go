// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// Transform bundles the world-space state resolved for a display object:
// its composed affine matrix and composed color transform.
type Transform struct {
	Matrix         Matrix
	ColorTransform ColorTransform
}

// IdentityTransform returns the transform with identity matrix and
// identity color transform.
func IdentityTransform() Transform {
	return Transform{
		Matrix:         Identity(),
		ColorTransform: IdentityColorTransform(),
	}
}

// Concat composes a child's local transform onto this transform,
// parent-then-child order for the matrix and the color-transform
// composition rule from [ColorTransform.Concat].
func (t Transform) Concat(child Transform) Transform {
	return Transform{
		Matrix:         t.Matrix.Multiply(child.Matrix),
		ColorTransform: t.ColorTransform.Concat(child.ColorTransform),
	}
}

// TransformStack tracks effective transforms while walking a display
// tree. The stack always holds at least the root transform; Push
// composes onto the current top and Pop restores the parent state.
//
// The resolver is pure bookkeeping: it has no side effects and is
// re-run from the root every tick, so any ancestor change is picked up
// on the next traversal.
type TransformStack struct {
	stack []Transform
}

// NewTransformStack creates a stack seeded with the given root
// transform. Hosts put the view-flip correction here.
func NewTransformStack(root Transform) *TransformStack {
	s := &TransformStack{stack: make([]Transform, 1, 16)}
	s.stack[0] = root
	return s
}

// Push composes a local transform onto the current effective transform.
func (s *TransformStack) Push(local Transform) {
	s.stack = append(s.stack, s.Transform().Concat(local))
}

// Pop restores the parent's effective transform.
// Popping the root is a programming error and panics.
func (s *TransformStack) Pop() {
	if len(s.stack) <= 1 {
		panic("swfkit: transform stack underflow")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Transform returns the current effective transform.
func (s *TransformStack) Transform() Transform {
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of composed levels, counting the root.
func (s *TransformStack) Depth() int {
	return len(s.stack)
}
