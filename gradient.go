// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/chewxy/math32"
)

// GradientShape selects the mapping from 2D fill coordinates to the 1D
// ramp position.
type GradientShape uint8

const (
	// GradientLinear maps position along the X axis of gradient space.
	GradientLinear GradientShape = iota
	// GradientRadial maps distance from the center of gradient space.
	GradientRadial
	// GradientFocal is a radial gradient with an off-center focal point.
	GradientFocal
)

// String returns a human-readable name for the gradient shape.
func (s GradientShape) String() string {
	switch s {
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	case GradientFocal:
		return "Focal"
	default:
		return "Unknown"
	}
}

// SpreadMode defines how a gradient extends beyond its [0,1] domain.
type SpreadMode uint8

const (
	// SpreadPad extends edge colors beyond bounds.
	SpreadPad SpreadMode = iota
	// SpreadReflect mirrors the ramp with period 2.
	SpreadReflect
	// SpreadRepeat tiles the ramp with period 1.
	SpreadRepeat
)

// String returns a human-readable name for the spread mode.
func (m SpreadMode) String() string {
	switch m {
	case SpreadPad:
		return "Pad"
	case SpreadReflect:
		return "Reflect"
	case SpreadRepeat:
		return "Repeat"
	default:
		return "Unknown"
	}
}

// Interpolation is the color space the gradient's stops were authored in.
type Interpolation uint8

const (
	// InterpolationSRGB stops interpolate directly in sRGB.
	InterpolationSRGB Interpolation = iota
	// InterpolationLinearRGB stops were produced in a gamma-correct
	// pipeline; samples are converted linear→sRGB after ramp lookup.
	InterpolationLinearRGB
)

// GradientStop is a color at a ratio along the ramp.
type GradientStop struct {
	Ratio float32 // position in [0, 1]
	Color Color   // straight (unpremultiplied) sRGB color
}

// maxFocalPoint keeps the focal denominator away from zero; the
// authoring tool clamps to the same range.
const maxFocalPoint = 0.98

// Gradient describes a decoded gradient fill: shape, spread policy,
// focal point (Focal shape only), interpolation space and the ordered
// stop sequence.
type Gradient struct {
	Shape         GradientShape
	Spread        SpreadMode
	FocalPoint    float32 // in (-1, 1), used by GradientFocal only
	Interpolation Interpolation
	Stops         []GradientStop
}

// Validate checks the stop sequence. Gradients with fewer than two
// stops, ratios outside [0,1], or duplicate/descending ratios fail with
// ErrInvalidGradient.
func (g *Gradient) Validate() error {
	if len(g.Stops) < 2 {
		return fmt.Errorf("%w: %d stops", ErrInvalidGradient, len(g.Stops))
	}
	prev := float32(-1)
	for i, stop := range g.Stops {
		if stop.Ratio < 0 || stop.Ratio > 1 {
			return fmt.Errorf("%w: stop %d ratio %v outside [0,1]", ErrInvalidGradient, i, stop.Ratio)
		}
		if stop.Ratio <= prev {
			return fmt.Errorf("%w: stop %d ratio %v not ascending", ErrInvalidGradient, i, stop.Ratio)
		}
		prev = stop.Ratio
	}
	return nil
}

// FindT maps a point in gradient UV space to the raw ramp position,
// before the spread policy is applied.
//
// The focal formula divides by sqrt(1 - fp²·dy²) + fp·dx, which stays
// positive because the focal point is clamped inside (-0.98, 0.98).
func (g *Gradient) FindT(u, v float32) float32 {
	switch g.Shape {
	case GradientRadial:
		x := u*2 - 1
		y := v*2 - 1
		return math32.Hypot(x, y)
	case GradientFocal:
		fp := clampFocal(g.FocalPoint)
		x := u*2 - 1
		y := v*2 - 1
		dx := fp - x
		dy := -y
		l := math32.Hypot(dx, dy)
		if l == 0 {
			return 0
		}
		dx /= l
		dy /= l
		return l / (math32.Sqrt(1-fp*fp*dy*dy) + fp*dx)
	default: // GradientLinear
		return u
	}
}

// ApplySpread folds a raw ramp position into [0, 1] per the spread mode.
func ApplySpread(t float32, mode SpreadMode) float32 {
	switch mode {
	case SpreadRepeat:
		return fract(t)
	case SpreadReflect:
		if t < 0 {
			t = -t
		}
		k := math32.Floor(t)
		if int64(k)%2 == 0 {
			return t - k
		}
		return 1 - (t - k)
	default: // SpreadPad
		return Clamp01(t)
	}
}

// fract returns the positive fractional part of t, in [0, 1).
func fract(t float32) float32 {
	f := t - math32.Floor(t)
	if f >= 1 { // floor rounding at large magnitudes
		f = 0
	}
	return f
}

// clampFocal restricts the focal point to the stable range.
func clampFocal(fp float32) float32 {
	if fp > maxFocalPoint {
		return maxFocalPoint
	}
	if fp < -maxFocalPoint {
		return -maxFocalPoint
	}
	return fp
}

// Sample evaluates the gradient at a point in gradient UV space:
// shape mapping, spread, ramp lookup, then the linear→sRGB conversion
// for gradients authored in linear space. The result is a straight
// (unpremultiplied) sRGB color.
//
// Sample assumes a validated gradient; callers treat invalid gradients
// as fully transparent fills before getting here.
func (g *Gradient) Sample(u, v float32) Color {
	t := ApplySpread(g.FindT(u, v), g.Spread)
	c := g.colorAt(t)
	if g.Interpolation == InterpolationLinearRGB {
		c = LinearToSRGBColor(c)
	}
	return c
}

// colorAt interpolates the stop sequence at position t in [0, 1].
func (g *Gradient) colorAt(t float32) Color {
	stops := g.Stops
	if t <= stops[0].Ratio {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Ratio {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Ratio {
			lo, hi := stops[i-1], stops[i]
			span := hi.Ratio - lo.Ratio
			return lo.Color.Lerp(hi.Color, (t-lo.Ratio)/span)
		}
	}
	return last.Color
}

// RampSize is the resolution gradients are baked at, matching the
// 256-texel ramp textures the reference renderer samples.
const RampSize = 256

// Ramp is a gradient baked to a fixed-resolution 1D lookup. Baking the
// stop interpolation once lets per-fragment evaluation reduce to a
// lerped table read, exactly like sampling a ramp texture.
type Ramp struct {
	colors [RampSize]Color
	interp Interpolation
}

// BakeRamp renders the gradient's stop sequence into a Ramp.
func (g *Gradient) BakeRamp() *Ramp {
	r := &Ramp{interp: g.Interpolation}
	for i := range r.colors {
		r.colors[i] = g.colorAt(float32(i) / (RampSize - 1))
	}
	return r
}

// Sample reads the ramp at position t in [0, 1] with linear filtering
// between adjacent texels, applying the post-sample color space
// conversion for linear-interpolated gradients.
func (r *Ramp) Sample(t float32) Color {
	t = Clamp01(t)
	pos := t * (RampSize - 1)
	i := int(pos)
	if i >= RampSize-1 {
		i = RampSize - 2
	}
	c := r.colors[i].Lerp(r.colors[i+1], pos-float32(i))
	if r.interp == InterpolationLinearRGB {
		c = LinearToSRGBColor(c)
	}
	return c
}

// Hash returns a stable FNV-1a hash of the gradient's parameters and
// stops, used as the ramp-cache key.
func (g *Gradient) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	buf[0] = byte(g.Shape)
	buf[1] = byte(g.Spread)
	buf[2] = byte(g.Interpolation)
	binary.LittleEndian.PutUint32(buf[3:7], math.Float32bits(g.FocalPoint))
	_, _ = h.Write(buf[:7])
	for _, stop := range g.Stops {
		var sb [20]byte
		binary.LittleEndian.PutUint32(sb[0:], math.Float32bits(stop.Ratio))
		binary.LittleEndian.PutUint32(sb[4:], math.Float32bits(stop.Color.R))
		binary.LittleEndian.PutUint32(sb[8:], math.Float32bits(stop.Color.G))
		binary.LittleEndian.PutUint32(sb[12:], math.Float32bits(stop.Color.B))
		binary.LittleEndian.PutUint32(sb[16:], math.Float32bits(stop.Color.A))
		_, _ = h.Write(sb[:])
	}
	return h.Sum64()
}
