// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/swfkit"
)

// SoftwareRenderer executes a DrawList on the CPU. It is the reference
// backend: every fragment goes through the same shading math a GPU
// backend would express in shader code, so its output doubles as the
// ground truth for tests.
//
// A renderer is not safe for concurrent use; run one per goroutine.
type SoftwareRenderer struct {
	opts Options

	// badGradients remembers gradients already reported invalid, so a
	// fill reused across frames warns once.
	badGradients map[*swfkit.Gradient]bool

	// scratch is reused across bitmap draws that need a per-pixel color
	// transform.
	scratch *swfkit.Pixmap
}

// NewSoftwareRenderer creates a renderer with the given options.
func NewSoftwareRenderer(opts Options) *SoftwareRenderer {
	return &SoftwareRenderer{
		opts:         opts,
		badGradients: make(map[*swfkit.Gradient]bool),
	}
}

// Render executes a draw list into a fresh transparent pixmap.
func (r *SoftwareRenderer) Render(list *DrawList, width, height int) *swfkit.Pixmap {
	dst := swfkit.NewPixmap(width, height)
	r.RenderInto(dst, list)
	return dst
}

// layerState is one open PushLayerOp: the parent target to composite
// back into and the layer's own offscreen target.
type layerState struct {
	op           PushLayerOp
	parent       *swfkit.Pixmap
	parentOrigin swfkit.Point
}

// RenderInto executes a draw list over an existing target, compositing
// on top of whatever the target already holds.
func (r *SoftwareRenderer) RenderInto(dst *swfkit.Pixmap, list *DrawList) {
	cur := dst
	var origin swfkit.Point
	var layers []layerState

	for _, op := range list.Ops() {
		switch o := op.(type) {
		case FillPathOp:
			r.fillPathOp(cur, origin, o)
		case DrawBitmapOp:
			r.drawBitmapOp(cur, origin, o)
		case PushLayerOp:
			layers = append(layers, layerState{
				op:           o,
				parent:       cur,
				parentOrigin: origin,
			})
			w := int(math32.Ceil(o.Bounds.X1)) - int(math32.Floor(o.Bounds.X0))
			h := int(math32.Ceil(o.Bounds.Y1)) - int(math32.Floor(o.Bounds.Y0))
			cur = swfkit.NewPixmap(w, h)
			origin = swfkit.Point{
				X: math32.Floor(o.Bounds.X0),
				Y: math32.Floor(o.Bounds.Y0),
			}
		case PopLayerOp:
			if len(layers) == 0 {
				swfkit.Logger().Error("unbalanced layer pop in draw list")
				continue
			}
			top := layers[len(layers)-1]
			layers = layers[:len(layers)-1]
			result := top.op.Filters.Apply(cur)
			Composite(top.parent, result,
				int(origin.X-top.parentOrigin.X),
				int(origin.Y-top.parentOrigin.Y),
				top.op.Blend)
			cur = top.parent
			origin = top.parentOrigin
		}
	}
}

// fillPathOp rasterizes one fill region into the current target.
func (r *SoftwareRenderer) fillPathOp(dst *swfkit.Pixmap, origin swfkit.Point, op FillPathOp) {
	m := swfkit.Translate(-origin.X, -origin.Y).Multiply(op.Transform.Matrix)
	sh := r.shaderFor(op.Fill, m, op.Transform.ColorTransform)
	if sh == nil {
		return
	}
	fillPath(dst, op.Path, m, sh)
}

// shaderFor builds the per-fragment shading closure for a fill under the
// given target-space matrix. A nil return means the fill contributes
// nothing (invalid gradient, missing texture).
func (r *SoftwareRenderer) shaderFor(fill swfkit.Fill, m swfkit.Matrix, ct swfkit.ColorTransform) shader {
	switch f := fill.(type) {
	case swfkit.SolidFill:
		c := r.shade(f.Color, ct)
		return func(float32, float32) swfkit.Color { return c }

	case swfkit.GradientFill:
		g := f.Gradient
		if g == nil {
			return nil
		}
		if err := g.Validate(); err != nil {
			if !r.badGradients[g] {
				r.badGradients[g] = true
				swfkit.Logger().Warn("invalid gradient, rendering fill transparent", "err", err)
			}
			return nil
		}
		ramp := r.opts.ramp(g)
		toUV := f.Matrix.Multiply(m.Invert())
		return func(x, y float32) swfkit.Color {
			uv := toUV.TransformPoint(swfkit.Point{X: x, Y: y})
			t := swfkit.ApplySpread(g.FindT(uv.X, uv.Y), g.Spread)
			return r.shade(ramp.Sample(t), ct)
		}

	case swfkit.BitmapFill:
		if f.Texture == nil {
			return nil
		}
		toTex := f.Matrix.Multiply(m.Invert())
		identity := ct.IsIdentity()
		return func(x, y float32) swfkit.Color {
			tp := toTex.TransformPoint(swfkit.Point{X: x, Y: y})
			c := sampleTexture(f.Texture, tp.X, tp.Y, f.Smoothed, f.Repeating)
			if identity {
				return c
			}
			s := swfkit.LinearToSRGBColor(c.Unpremultiply())
			return r.shade(s, ct)
		}

	default:
		return nil
	}
}

// shade runs a straight sRGB sample through the resolved color transform
// and converts it to the premultiplied working space.
func (r *SoftwareRenderer) shade(c swfkit.Color, ct swfkit.ColorTransform) swfkit.Color {
	p := ct.Apply(c.Premultiply(), r.opts.SaturatePolicy)
	return swfkit.SRGBToLinearColor(p.Unpremultiply()).Premultiply()
}

// sampleTexture reads a working-space texture at fractional pixel
// coordinates, bilinear when smoothed, with repeat or clamp addressing.
func sampleTexture(tex *swfkit.Pixmap, x, y float32, smoothed, repeating bool) swfkit.Color {
	if !smoothed {
		return texel(tex, int(math32.Floor(x)), int(math32.Floor(y)), repeating)
	}
	x -= 0.5
	y -= 0.5
	x0 := int(math32.Floor(x))
	y0 := int(math32.Floor(y))
	fx := x - float32(x0)
	fy := y - float32(y0)
	c00 := texel(tex, x0, y0, repeating)
	c10 := texel(tex, x0+1, y0, repeating)
	c01 := texel(tex, x0, y0+1, repeating)
	c11 := texel(tex, x0+1, y0+1, repeating)
	top := c00.Lerp(c10, fx)
	bot := c01.Lerp(c11, fx)
	return top.Lerp(bot, fy)
}

// texel reads one texel with the fill's addressing mode applied.
func texel(tex *swfkit.Pixmap, x, y int, repeating bool) swfkit.Color {
	w, h := tex.Width(), tex.Height()
	if repeating {
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h
	} else {
		x = clampInt(x, 0, w-1)
		y = clampInt(y, 0, h-1)
	}
	return tex.Get(x, y)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// drawBitmapOp draws a bitmap node through its device transform with
// golang.org/x/image/draw. Both source and destination hold
// premultiplied working-space pixels, so Over composites correctly
// without conversion.
func (r *SoftwareRenderer) drawBitmapOp(dst *swfkit.Pixmap, origin swfkit.Point, op DrawBitmapOp) {
	m := swfkit.Translate(-origin.X, -origin.Y).Multiply(op.Transform.Matrix)
	aff := f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
	interp := draw.Interpolator(draw.NearestNeighbor)
	if op.Smoothed {
		interp = draw.ApproxBiLinear
	}

	ct := op.Transform.ColorTransform
	if ct.IsIdentity() {
		interp.Transform(dst.RGBA(), aff, op.Texture.RGBA(), op.Texture.RGBA().Bounds(), draw.Over, nil)
		return
	}

	// A color transform needs per-pixel math on unpremultiplied sRGB
	// values, so the bitmap is transformed into a scratch target first.
	if r.scratch == nil || r.scratch.Width() != dst.Width() || r.scratch.Height() != dst.Height() {
		r.scratch = swfkit.NewPixmap(dst.Width(), dst.Height())
	} else {
		r.scratch.Clear(swfkit.Color{})
	}
	interp.Transform(r.scratch.RGBA(), aff, op.Texture.RGBA(), op.Texture.RGBA().Bounds(), draw.Src, nil)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := r.scratch.Get(x, y)
			if c.A == 0 && c.R == 0 && c.G == 0 && c.B == 0 {
				continue
			}
			s := swfkit.LinearToSRGBColor(c.Unpremultiply())
			dst.Set(x, y, srcOver(r.shade(s, ct), dst.Get(x, y)))
		}
	}
}
