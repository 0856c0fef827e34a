// seehuhn.de/go/threading - a walkthrough of threads in Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package threading

import (
	"bytes"
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
)

// BytesPerPixel is the number of bytes used to store one pixel.
const BytesPerPixel = 3

// Byte positions within a pixel.
const (
	ChannelGreen = 0
	ChannelRed   = 1
	ChannelBlue  = 2
)

// Bitmap is a square RGB image stored as a contiguous byte slice in
// row-major order. Each pixel occupies three bytes: the green value
// (derived from the row), the red value (derived from the column) and
// the blue value (always zero).
//
// Concurrent writers are safe as long as they write disjoint pixels.
type Bitmap struct {
	Size int    // side length in pixels
	Pix  []byte // len(Pix) == Size*Size*BytesPerPixel
}

// NewBitmap allocates a zeroed bitmap with the given side length.
func NewBitmap(size int) *Bitmap {
	return &Bitmap{
		Size: size,
		Pix:  make([]byte, size*size*BytesPerPixel),
	}
}

// Pixels returns the total number of pixels, Size².
func (b *Bitmap) Pixels() int {
	return b.Size * b.Size
}

// Offset returns the index of the first byte of pixel (x, y) in b.Pix.
func (b *Bitmap) Offset(x, y int) int {
	return (y*b.Size + x) * BytesPerPixel
}

// WritePixel computes the color of pixel (x, y) and stores it.
func (b *Bitmap) WritePixel(x, y int) {
	i := b.Offset(x, y)
	b.Pix[i], b.Pix[i+1], b.Pix[i+2] = PixelColor(x, y, b.Size)
}

// WriteIndex writes the pixel with the given flattened index y*Size+x.
func (b *Bitmap) WriteIndex(index int) {
	b.WritePixel(index%b.Size, index/b.Size)
}

// WriteRange writes all pixels with flattened index in r.
func (b *Bitmap) WriteRange(r Range) {
	for i := r.Start; i < r.End; i++ {
		b.WriteIndex(i)
	}
}

// PixelColor returns the three bytes stored for pixel (x, y) of a bitmap
// with side length size. The first byte scales y, the second byte scales
// x, both linearly onto 0-255; the third byte is always zero.
func PixelColor(x, y, size int) (green, red, blue byte) {
	green = scale(y, size)
	red = scale(x, size)
	return green, red, 0
}

// scale maps pos in [0, size) to round(pos/size*255).
func scale(pos, size int) byte {
	return byte(math.Round(float64(pos) / float64(size) * 255))
}

// Reset sets all bytes to zero.
func (b *Bitmap) Reset() {
	clear(b.Pix)
}

// Equal reports whether b and other have the same size and contents.
func (b *Bitmap) Equal(other *Bitmap) bool {
	return b.Size == other.Size && bytes.Equal(b.Pix, other.Pix)
}

// Bounds returns the device rectangle covered by the bitmap.
func (b *Bitmap) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(b.Size),
		URy: float64(b.Size),
	}
}

// Image converts the bitmap into an opaque NRGBA image.
// The result does not share memory with b.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Size, b.Size))
	for y := range b.Size {
		row := img.Pix[y*img.Stride:]
		for x := range b.Size {
			src := b.Pix[b.Offset(x, y):]
			dst := row[4*x:]
			dst[0] = src[1] // red
			dst[1] = src[0] // green
			dst[2] = src[2] // blue
			dst[3] = 255
		}
	}
	return img
}

// Channel extracts one byte of every pixel into a grayscale plane of
// Size*Size bytes. c must be 0, 1 or 2.
func (b *Bitmap) Channel(c int) []byte {
	plane := make([]byte, b.Pixels())
	for i := range plane {
		plane[i] = b.Pix[i*BytesPerPixel+c]
	}
	return plane
}
