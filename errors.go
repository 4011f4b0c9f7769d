// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import "errors"

// Common errors returned by swfkit operations.
var (
	// ErrInvalidGradient is returned when gradient stop data is malformed:
	// fewer than two stops, ratios outside [0,1], or duplicate/descending
	// ratios. A fill backed by an invalid gradient renders fully
	// transparent; rendering itself never fails on it.
	ErrInvalidGradient = errors.New("swfkit: invalid gradient")

	// ErrUnknownLabel is returned by label seeks when the timeline has no
	// frame mapped to the requested label. The current frame is unchanged.
	ErrUnknownLabel = errors.New("swfkit: unknown frame label")

	// ErrMalformedTree is returned when a decoded display list is
	// structurally invalid (nil children or a child reachable through two
	// parents). Instantiation of that asset fails; other instances are
	// unaffected.
	ErrMalformedTree = errors.New("swfkit: malformed display tree")
)
