// This file is part of kvist.
//
// kvist is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// kvist is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with kvist.  If not, see <https://www.gnu.org/licenses/>.

package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	// image formats decoded through image.Decode()
	_ "image/jpeg"
	_ "image/png"

	"github.com/kvisten/kvist/logger"
)

// Image is a decoded image asset. Pixel data is RGBA, 8 bits per channel,
// with rows ordered bottom-to-top to match texture coordinates where v=0 is
// the bottom of the texture.
type Image struct {
	file loadedFile

	Width  Pixels
	Height Pixels

	// Pix is tightly packed. stride is always Width*4
	Pix []byte

	// Generation increases on every successful (re)load. A renderer that
	// has uploaded the image to the GPU can compare generations to decide
	// whether to upload again.
	Generation int
}

func newImage(path string) (*Image, error) {
	img := &Image{file: newLoadedFile(path)}
	if err := img.reload(); err != nil {
		return nil, err
	}
	return img, nil
}

func (img *Image) reload() error {
	b, err := img.file.read()
	if err != nil {
		return err
	}

	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("asset: %s: %w", img.file.path, err)
	}

	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	// flip rows so the first row of Pix is the bottom of the image
	pix := make([]byte, len(rgba.Pix))
	stride := w * 4
	for y := range h {
		copy(pix[y*stride:(y+1)*stride], rgba.Pix[(h-1-y)*rgba.Stride:])
	}

	img.Width = w
	img.Height = h
	img.Pix = pix
	img.Generation++

	if img.Generation > 1 {
		logger.Logf(logger.Allow, "asset", "reloaded %s", img.file.path)
	}

	return nil
}
