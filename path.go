// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

// Path is decoder-flattened fill geometry: closed contours of line
// segments in shape-local coordinates. The external decoder flattens
// curves before handing shapes over, so the core never re-tessellates.
//
// Winding follows the authoring data; fills rasterize with the nonzero
// winding rule.
type Path struct {
	Contours [][]Point
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// AddContour appends a closed contour. Contours with fewer than three
// points contribute no area and are dropped.
func (p *Path) AddContour(points []Point) *Path {
	if len(points) >= 3 {
		p.Contours = append(p.Contours, points)
	}
	return p
}

// AddRect appends a rectangle contour.
func (p *Path) AddRect(r Rect) *Path {
	return p.AddContour([]Point{
		{X: r.X0, Y: r.Y0},
		{X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1},
		{X: r.X0, Y: r.Y1},
	})
}

// IsEmpty returns true if the path has no contours.
func (p *Path) IsEmpty() bool {
	return len(p.Contours) == 0
}

// Bounds returns the path's axis-aligned bounds in shape-local space.
func (p *Path) Bounds() Rect {
	b := EmptyRect()
	for _, c := range p.Contours {
		for _, pt := range c {
			b = b.UnionPoint(pt)
		}
	}
	return b
}
