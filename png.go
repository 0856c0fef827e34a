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
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// WritePNG encodes b as a PNG image. If thumb is positive and smaller than
// b.Size, the image is scaled down to thumb×thumb pixels first.
func WritePNG(w io.Writer, b *Bitmap, thumb int) error {
	var img image.Image = b.Image()
	if thumb > 0 && thumb < b.Size {
		dst := image.NewNRGBA(image.Rect(0, 0, thumb, thumb))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}
