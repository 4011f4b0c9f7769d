// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/gogpu/swfkit"
)

// shader produces the premultiplied working-space color for a device
// pixel center.
type shader func(x, y float32) swfkit.Color

// crossing is one edge intersection with the current scanline.
type crossing struct {
	x       float32
	winding int
}

// fillPath rasterizes a path under the given device matrix into dst,
// shading covered pixels and compositing them source-over. Coverage uses
// the nonzero winding rule sampled at pixel centers, the same rule the
// stencil-based GPU path takes.
func fillPath(dst *swfkit.Pixmap, path *swfkit.Path, m swfkit.Matrix, sh shader) {
	if path == nil || path.IsEmpty() {
		return
	}

	// Transform contours to device space once.
	contours := make([][]swfkit.Point, 0, len(path.Contours))
	minY, maxY := float32(math32.Inf(1)), float32(math32.Inf(-1))
	for _, c := range path.Contours {
		dc := make([]swfkit.Point, len(c))
		for i, p := range c {
			dp := m.TransformPoint(p)
			dc[i] = dp
			minY = math32.Min(minY, dp.Y)
			maxY = math32.Max(maxY, dp.Y)
		}
		contours = append(contours, dc)
	}

	y0 := int(math32.Floor(minY))
	y1 := int(math32.Ceil(maxY))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > dst.Height() {
		y1 = dst.Height()
	}

	var xs []crossing
	for y := y0; y < y1; y++ {
		yc := float32(y) + 0.5
		xs = xs[:0]
		for _, c := range contours {
			for i := range c {
				p0 := c[i]
				p1 := c[(i+1)%len(c)]
				switch {
				case p0.Y <= yc && p1.Y > yc:
					t := (yc - p0.Y) / (p1.Y - p0.Y)
					xs = append(xs, crossing{x: p0.X + t*(p1.X-p0.X), winding: 1})
				case p1.Y <= yc && p0.Y > yc:
					t := (yc - p1.Y) / (p0.Y - p1.Y)
					xs = append(xs, crossing{x: p1.X + t*(p0.X-p1.X), winding: -1})
				}
			}
		}
		if len(xs) == 0 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		winding := 0
		for i := 0; i < len(xs)-1; i++ {
			winding += xs[i].winding
			if winding == 0 {
				continue
			}
			fillSpan(dst, xs[i].x, xs[i+1].x, y, yc, sh)
		}
	}
}

// fillSpan shades the pixels whose centers fall inside [x0, x1) on one
// scanline.
func fillSpan(dst *swfkit.Pixmap, x0, x1 float32, y int, yc float32, sh shader) {
	start := int(math32.Ceil(x0 - 0.5))
	end := int(math32.Ceil(x1 - 0.5))
	if start < 0 {
		start = 0
	}
	if end > dst.Width() {
		end = dst.Width()
	}
	for x := start; x < end; x++ {
		src := sh(float32(x)+0.5, yc)
		if src.A == 0 && src.R == 0 && src.G == 0 && src.B == 0 {
			continue
		}
		dst.Set(x, y, srcOver(src, dst.Get(x, y)))
	}
}
