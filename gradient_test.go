// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

// tolerance for floating point comparisons
const gradientEpsilon = 0.001

func colorsEqual(c1, c2 Color, epsilon float32) bool {
	return math32.Abs(c1.R-c2.R) < epsilon &&
		math32.Abs(c1.G-c2.G) < epsilon &&
		math32.Abs(c1.B-c2.B) < epsilon &&
		math32.Abs(c1.A-c2.A) < epsilon
}

func testGradient() *Gradient {
	return &Gradient{
		Shape:  GradientLinear,
		Spread: SpreadPad,
		Stops: []GradientStop{
			{Ratio: 0, Color: RGBA(1, 0, 0, 1)},
			{Ratio: 1, Color: RGBA(0, 0, 1, 1)},
		},
	}
}

// --- Spread Tests ---

func TestApplySpread(t *testing.T) {
	tests := []struct {
		name string
		t    float32
		mode SpreadMode
		want float32
	}{
		{"pad negative", -0.5, SpreadPad, 0},
		{"pad zero", 0, SpreadPad, 0},
		{"pad middle", 0.5, SpreadPad, 0.5},
		{"pad one", 1, SpreadPad, 1},
		{"pad over", 1.5, SpreadPad, 1},

		{"repeat negative", -0.25, SpreadRepeat, 0.75},
		{"repeat zero", 0, SpreadRepeat, 0},
		{"repeat middle", 0.5, SpreadRepeat, 0.5},
		{"repeat one", 1, SpreadRepeat, 0},
		{"repeat 1.25", 1.25, SpreadRepeat, 0.25},
		{"repeat 2.5", 2.5, SpreadRepeat, 0.5},

		{"reflect negative", -0.25, SpreadReflect, 0.25},
		{"reflect zero", 0, SpreadReflect, 0},
		{"reflect middle", 0.5, SpreadReflect, 0.5},
		{"reflect one", 1, SpreadReflect, 1},
		{"reflect 1.25", 1.25, SpreadReflect, 0.75},
		{"reflect 1.5", 1.5, SpreadReflect, 0.5},
		{"reflect 2.0", 2.0, SpreadReflect, 0},
		{"reflect 2.25", 2.25, SpreadReflect, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySpread(tt.t, tt.mode)
			if math32.Abs(got-tt.want) > gradientEpsilon {
				t.Errorf("ApplySpread(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestSpreadRanges(t *testing.T) {
	// Pad always lands in [0,1]; Repeat in [0,1) with period 1; Reflect
	// mirrors with period 2.
	for _, raw := range []float32{-3.7, -1, -0.5, 0, 0.3, 1, 1.9, 2, 5.25} {
		pad := ApplySpread(raw, SpreadPad)
		if pad < 0 || pad > 1 {
			t.Errorf("pad(%v) = %v outside [0,1]", raw, pad)
		}
		rep := ApplySpread(raw, SpreadRepeat)
		if rep < 0 || rep >= 1 {
			t.Errorf("repeat(%v) = %v outside [0,1)", raw, rep)
		}
		if d := math32.Abs(ApplySpread(raw+1, SpreadRepeat) - rep); d > gradientEpsilon {
			t.Errorf("repeat(%v+1) differs from repeat(%v) by %v", raw, raw, d)
		}
		if d := math32.Abs(ApplySpread(2-raw, SpreadReflect) - ApplySpread(raw, SpreadReflect)); d > gradientEpsilon {
			t.Errorf("reflect(2-%v) differs from reflect(%v) by %v", raw, raw, d)
		}
	}
}

// --- FindT Tests ---

func TestFindT(t *testing.T) {
	tests := []struct {
		name  string
		shape GradientShape
		focal float32
		u, v  float32
		want  float32
	}{
		{"linear left", GradientLinear, 0, 0, 0.5, 0},
		{"linear middle", GradientLinear, 0, 0.5, 0.2, 0.5},
		{"linear right", GradientLinear, 0, 1, 0.9, 1},

		{"radial center", GradientRadial, 0, 0.5, 0.5, 0},
		{"radial right edge", GradientRadial, 0, 1, 0.5, 1},
		{"radial corner", GradientRadial, 0, 1, 1, math32.Sqrt2},

		{"focal at focus", GradientFocal, 0.5, 0.75, 0.5, 0},
		{"focal centered matches radial", GradientFocal, 0, 1, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gradient{Shape: tt.shape, FocalPoint: tt.focal}
			got := g.FindT(tt.u, tt.v)
			if math32.Abs(got-tt.want) > gradientEpsilon {
				t.Errorf("FindT(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestFindTFocalClamped(t *testing.T) {
	// Focal points outside the stable range clamp instead of dividing by
	// zero near the ramp edge.
	g := &Gradient{Shape: GradientFocal, FocalPoint: 1}
	got := g.FindT(0, 0.5)
	if math32.IsNaN(got) || math32.IsInf(got, 0) {
		t.Fatalf("FindT with extreme focal point = %v", got)
	}
}

// --- Validate Tests ---

func TestGradientValidate(t *testing.T) {
	tests := []struct {
		name  string
		stops []GradientStop
		ok    bool
	}{
		{"two stops", []GradientStop{{Ratio: 0}, {Ratio: 1}}, true},
		{"dense stops", []GradientStop{{Ratio: 0}, {Ratio: 0.25}, {Ratio: 0.5}, {Ratio: 1}}, true},
		{"no stops", nil, false},
		{"one stop", []GradientStop{{Ratio: 0}}, false},
		{"descending", []GradientStop{{Ratio: 0.5}, {Ratio: 0.25}}, false},
		{"duplicate", []GradientStop{{Ratio: 0.5}, {Ratio: 0.5}}, false},
		{"out of range", []GradientStop{{Ratio: 0}, {Ratio: 1.5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gradient{Stops: tt.stops}
			err := g.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidGradient) {
					t.Errorf("Validate() = %v, want ErrInvalidGradient", err)
				}
			}
		})
	}
}

// --- Sampling Tests ---

func TestGradientSample(t *testing.T) {
	g := testGradient()
	if got := g.Sample(0, 0); !colorsEqual(got, RGBA(1, 0, 0, 1), gradientEpsilon) {
		t.Errorf("Sample(0,0) = %v", got)
	}
	if got := g.Sample(1, 0); !colorsEqual(got, RGBA(0, 0, 1, 1), gradientEpsilon) {
		t.Errorf("Sample(1,0) = %v", got)
	}
	if got := g.Sample(0.5, 0); !colorsEqual(got, RGBA(0.5, 0, 0.5, 1), gradientEpsilon) {
		t.Errorf("Sample(0.5,0) = %v", got)
	}
}

func TestRampMatchesDirectSample(t *testing.T) {
	g := testGradient()
	ramp := g.BakeRamp()
	for _, pos := range []float32{0, 0.1, 0.37, 0.5, 0.82, 1} {
		direct := g.colorAt(pos)
		baked := ramp.Sample(pos)
		if !colorsEqual(direct, baked, 0.01) {
			t.Errorf("pos %v: direct %v, ramp %v", pos, direct, baked)
		}
	}
}

func TestRampLinearInterpolationConversion(t *testing.T) {
	// Linear-space gradients convert to sRGB after the ramp lookup, so a
	// mid-gray sample comes out brighter than the raw stop lerp.
	g := testGradient()
	g.Interpolation = InterpolationLinearRGB
	got := g.BakeRamp().Sample(0.5)
	want := LinearToSRGBColor(Color{R: 0.5, B: 0.5, A: 1})
	if !colorsEqual(got, want, 0.01) {
		t.Errorf("linear ramp sample = %v, want %v", got, want)
	}
}

// --- Hash Tests ---

func TestGradientHash(t *testing.T) {
	a := testGradient()
	b := testGradient()
	if a.Hash() != b.Hash() {
		t.Error("identical gradients hash differently")
	}
	b.Stops[1].Color.G = 0.5
	if a.Hash() == b.Hash() {
		t.Error("different stops hash equal")
	}
	c := testGradient()
	c.Spread = SpreadReflect
	if a.Hash() == c.Hash() {
		t.Error("different spread hashes equal")
	}
}
