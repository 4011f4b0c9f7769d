// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swfkit

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular pixel buffer holding premultiplied colors in
// the pipeline's working (linear) color space. Every intermediate render
// target in the compositor is a Pixmap; conversion to display sRGB
// happens once, in ToImage or SRGBPix.
//
// The backing store is an image.RGBA so bitmap draws can go through
// golang.org/x/image/draw without copying. image.RGBA's premultiplied
// semantics match the pipeline's.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// RGBA returns the backing premultiplied image for draw interop.
// The pixel data is shared, not copied.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.img
}

// Get returns the premultiplied working-space color of a pixel.
// Out-of-bounds reads return transparent, matching sampling outside the
// normalized unit square in the filter pipeline.
func (p *Pixmap) Get(x, y int) Color {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return Color{}
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	return Color{
		R: byteLinear(s[0]),
		G: byteLinear(s[1]),
		B: byteLinear(s[2]),
		A: byteLinear(s[3]),
	}
}

// Set writes a premultiplied working-space color to a pixel.
// Out-of-bounds writes are dropped.
func (p *Pixmap) Set(x, y int, c Color) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	i := p.img.PixOffset(x, y)
	s := p.img.Pix[i : i+4 : i+4]
	s[0] = linearByte(c.R)
	s[1] = linearByte(c.G)
	s[2] = linearByte(c.B)
	s[3] = linearByte(c.A)
}

// Alpha returns the alpha of a pixel without decoding the color.
func (p *Pixmap) Alpha(x, y int) float32 {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return 0
	}
	return byteLinear(p.img.Pix[p.img.PixOffset(x, y)+3])
}

// Clear fills the entire pixmap with a premultiplied color.
func (p *Pixmap) Clear(c Color) {
	r := linearByte(c.R)
	g := linearByte(c.G)
	b := linearByte(c.B)
	a := linearByte(c.A)
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.Width(), p.Height())
	copy(out.img.Pix, p.img.Pix)
	return out
}

// FromImage converts a decoded (straight alpha, sRGB) image into a
// working-space texture: sRGB decode per channel, then premultiply.
func FromImage(src image.Image) *Pixmap {
	b := src.Bounds()
	p := NewPixmap(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, b16, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA() returns premultiplied 16-bit sRGB-encoded values.
			c := Color{
				R: float32(r) / 65535,
				G: float32(g) / 65535,
				B: float32(b16) / 65535,
				A: float32(a) / 65535,
			}
			u := c.Unpremultiply()
			u = SRGBToLinearColor(u)
			p.Set(x, y, u.Premultiply())
		}
	}
	return p
}

// ToImage converts the composite to a straight-alpha sRGB image
// suitable for PNG encoding or display.
func (p *Pixmap) ToImage() *image.NRGBA {
	w, h := p.Width(), p.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := p.Get(x, y).Unpremultiply()
			i := out.PixOffset(x, y)
			s := out.Pix[i : i+4 : i+4]
			s[0] = LinearToSRGBByte(u.R)
			s[1] = LinearToSRGBByte(u.G)
			s[2] = LinearToSRGBByte(u.B)
			s[3] = linearByte(u.A)
		}
	}
	return out
}

// SRGBPix returns the composite as premultiplied sRGB-encoded RGBA
// bytes, the layout GPU texture uploads and ebiten's WritePixels expect.
func (p *Pixmap) SRGBPix() []byte {
	w, h := p.Width(), p.Height()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.Get(x, y)
			u := c.Unpremultiply()
			u = LinearToSRGBColor(u).Premultiply()
			i := (y*w + x) * 4
			out[i+0] = linearByte(u.R)
			out[i+1] = linearByte(u.G)
			out[i+2] = linearByte(u.B)
			out[i+3] = linearByte(u.A)
		}
	}
	return out
}

// SavePNG writes the composite to a PNG file in display sRGB.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image over the working-space buffer.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Bounds()
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return p.img.ColorModel()
}
