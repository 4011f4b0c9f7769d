// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// ColorTransform is the authoring tool's per-object color adjustment:
// each channel is multiplied by Mult and offset by Add, on
// unpremultiplied components.
//
//	out = in*Mult + Add
//
// Add components are normalized: an authored offset of 255 is stored
// as 1.0.
type ColorTransform struct {
	Mult Color
	Add  Color
}

// IdentityColorTransform returns the transform that leaves colors
// unchanged: Mult = (1,1,1,1), Add = (0,0,0,0).
func IdentityColorTransform() ColorTransform {
	return ColorTransform{Mult: Color{R: 1, G: 1, B: 1, A: 1}}
}

// IsIdentity returns true if applying the transform is a no-op.
func (ct ColorTransform) IsIdentity() bool {
	return ct.Mult == (Color{R: 1, G: 1, B: 1, A: 1}) && ct.Add == (Color{})
}

// Concat composes a child's local transform onto this (parent) transform.
// The child's adjustment is applied after the parent's, so the combined
// transform is:
//
//	mult = parent.Mult * child.Mult
//	add  = parent.Add * child.Mult + child.Add
//
// which matches applying child(parent(color)).
func (ct ColorTransform) Concat(child ColorTransform) ColorTransform {
	return ColorTransform{
		Mult: Color{
			R: ct.Mult.R * child.Mult.R,
			G: ct.Mult.G * child.Mult.G,
			B: ct.Mult.B * child.Mult.B,
			A: ct.Mult.A * child.Mult.A,
		},
		Add: Color{
			R: ct.Add.R*child.Mult.R + child.Add.R,
			G: ct.Add.G*child.Mult.G + child.Add.G,
			B: ct.Add.B*child.Mult.B + child.Add.B,
			A: ct.Add.A*child.Mult.A + child.Add.A,
		},
	}
}

// SaturatePolicy controls where clamping happens when a color transform
// pushes a channel outside [0, 1]. The authoring tool saturates after
// re-premultiplying; some backends saturate before. The two differ only
// when Mult/Add overflow a channel prior to alpha scaling.
type SaturatePolicy uint8

const (
	// SaturateEarly clamps on unpremultiplied components, before the
	// result is re-premultiplied.
	SaturateEarly SaturatePolicy = iota
	// SaturateLate re-premultiplies first and clamps the premultiplied
	// result, matching the reference pipeline.
	SaturateLate
)

// String returns a human-readable name for the policy.
func (p SaturatePolicy) String() string {
	switch p {
	case SaturateEarly:
		return "Early"
	case SaturateLate:
		return "Late"
	default:
		return "Unknown"
	}
}

// Apply runs a premultiplied color through the transform:
// unpremultiply, multiply-add, saturate per policy, re-premultiply.
func (ct ColorTransform) Apply(c Color, policy SaturatePolicy) Color {
	if ct.IsIdentity() {
		return c
	}
	u := c.Unpremultiply()
	u = Color{
		R: u.R*ct.Mult.R + ct.Add.R,
		G: u.G*ct.Mult.G + ct.Add.G,
		B: u.B*ct.Mult.B + ct.Add.B,
		A: u.A*ct.Mult.A + ct.Add.A,
	}
	if policy == SaturateLate {
		u.A = Clamp01(u.A)
		return u.Premultiply().Clamp01()
	}
	u = u.Clamp01()
	return u.Premultiply()
}
