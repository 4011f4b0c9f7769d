// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// BlendMode is a display object's declared compositing mode.
//
// Only the modes that are pure functions of the layer's own premultiplied
// color and the destination already written are supported. Modes that
// need an arbitrary backdrop capture (Alpha, Erase, Overlay, HardLight,
// Difference, Invert) keep their decoded tag value but report false from
// Supported; the compositor renders them as Normal and warns once.
type BlendMode uint8

// Blend mode tag values follow the container format's numbering.
const (
	// BlendNormal is straight source-over compositing.
	BlendNormal BlendMode = 1
	// BlendLayer rasterizes the subtree as an isolated layer and then
	// composites it normally.
	BlendLayer BlendMode = 2
	// BlendMultiply multiplies layer and destination channels.
	BlendMultiply BlendMode = 3
	// BlendScreen inverts, multiplies and re-inverts.
	BlendScreen BlendMode = 4
	// BlendLighten keeps the channelwise maximum.
	BlendLighten BlendMode = 5
	// BlendDarken keeps the channelwise minimum.
	BlendDarken BlendMode = 6
	// BlendDifference is unsupported (needs abs over the backdrop).
	BlendDifference BlendMode = 7
	// BlendAdd sums layer and destination channels.
	BlendAdd BlendMode = 8
	// BlendSubtract subtracts the layer from the destination.
	BlendSubtract BlendMode = 9
	// BlendInvert is unsupported (operates on unpremultiplied backdrop).
	BlendInvert BlendMode = 10
	// BlendAlpha is unsupported (requires layer alpha tracking).
	BlendAlpha BlendMode = 11
	// BlendErase is unsupported (requires layer alpha tracking).
	BlendErase BlendMode = 12
	// BlendOverlay is unsupported (full backdrop expression).
	BlendOverlay BlendMode = 13
	// BlendHardLight is unsupported (full backdrop expression).
	BlendHardLight BlendMode = 14
)

// BlendModeFromTag converts a decoded tag value. Tag 0 is an alias for
// Normal in the container format. Unknown tags are preserved so the
// compositor can report them before falling back to Normal.
func BlendModeFromTag(tag uint8) BlendMode {
	if tag == 0 {
		return BlendNormal
	}
	return BlendMode(tag)
}

// Supported returns true if the compositor implements the mode exactly.
func (m BlendMode) Supported() bool {
	switch m {
	case BlendNormal, BlendLayer, BlendMultiply, BlendScreen,
		BlendLighten, BlendDarken, BlendAdd, BlendSubtract:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendLayer:
		return "Layer"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendLighten:
		return "Lighten"
	case BlendDarken:
		return "Darken"
	case BlendDifference:
		return "Difference"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendInvert:
		return "Invert"
	case BlendAlpha:
		return "Alpha"
	case BlendErase:
		return "Erase"
	case BlendOverlay:
		return "Overlay"
	case BlendHardLight:
		return "HardLight"
	default:
		return "Unknown"
	}
}
