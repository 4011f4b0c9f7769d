// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// The lookup tables give O(1) sRGB ↔ linear conversion for byte data,
// replacing per-pixel Pow calls. Texture upload and final-composite
// encode both run over every pixel, so this is on the hot path.

// srgbToLinearLUT converts an sRGB byte [0,255] to linear float32 [0,1].
var srgbToLinearLUT [256]float32

// linearToSRGBLUT converts linear float32 [0,1] to an sRGB byte.
// 4096 entries give 12-bit precision, sufficient for 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range srgbToLinearLUT {
		srgbToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
	for i := range linearToSRGBLUT {
		s := LinearToSRGB(float32(i) / 4095)
		linearToSRGBLUT[i] = uint8(Clamp01(s)*255 + 0.5)
	}
}

// SRGBByteToLinear converts an sRGB-encoded byte to a linear component.
func SRGBByteToLinear(s uint8) float32 {
	return srgbToLinearLUT[s]
}

// LinearToSRGBByte converts a linear component to an sRGB-encoded byte.
func LinearToSRGBByte(l float32) uint8 {
	idx := int(Clamp01(l)*4095 + 0.5)
	return linearToSRGBLUT[idx]
}

// linearByte converts a linear component to a linear byte with rounding.
func linearByte(l float32) uint8 {
	return uint8(Clamp01(l)*255 + 0.5)
}

// byteLinear converts a linear byte back to a float component.
func byteLinear(b uint8) float32 {
	return float32(b) / 255
}
