// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import "github.com/gogpu/swfkit"

// DrawPath is one fill region of a shape: flattened geometry plus the
// fill that shades it.
type DrawPath struct {
	Path *swfkit.Path
	Fill swfkit.Fill
}

// Shape is a leaf display object: decoded vector geometry with one or
// more fill regions, drawn in declared order.
type Shape struct {
	base  Base
	Paths []DrawPath
}

// NewShape creates a shape at the given depth.
func NewShape(name string, depth uint16) *Shape {
	return &Shape{base: newBase(name, depth)}
}

// AddPath appends a fill region. Regions draw in insertion order.
func (s *Shape) AddPath(path *swfkit.Path, fill swfkit.Fill) *Shape {
	s.Paths = append(s.Paths, DrawPath{Path: path, Fill: fill})
	return s
}

// Base implements DisplayObject.
func (s *Shape) Base() *Base { return &s.base }

// Bounds implements DisplayObject.
func (s *Shape) Bounds() swfkit.Rect {
	b := swfkit.EmptyRect()
	for _, dp := range s.Paths {
		if dp.Path != nil {
			b = b.Union(dp.Path.Bounds())
		}
	}
	return b
}

// Advance implements DisplayObject. Shapes carry no timeline.
func (s *Shape) Advance(int, *EventSink) {}

// Bitmap is a leaf display object that draws a texture.
type Bitmap struct {
	base     Base
	Texture  *swfkit.Pixmap
	Smoothed bool
}

// NewBitmap creates a bitmap node at the given depth.
func NewBitmap(name string, depth uint16, texture *swfkit.Pixmap) *Bitmap {
	return &Bitmap{base: newBase(name, depth), Texture: texture}
}

// Base implements DisplayObject.
func (b *Bitmap) Base() *Base { return &b.base }

// Bounds implements DisplayObject.
func (b *Bitmap) Bounds() swfkit.Rect {
	if b.Texture == nil {
		return swfkit.EmptyRect()
	}
	return swfkit.Rect{
		X1: float32(b.Texture.Width()),
		Y1: float32(b.Texture.Height()),
	}
}

// Advance implements DisplayObject. Bitmaps carry no timeline.
func (b *Bitmap) Advance(int, *EventSink) {}
