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

// Package kernel is a CPU reference of the renderer's post-processing
// stages. The GPU programs in renderer/shaders do the real work; this
// package exists so the fixed arithmetic of those programs can be verified
// without a GL context.
package kernel

import (
	"github.com/chewxy/math32"
)

// Corners generated by the fullscreen vertex stage, indexed by vertex ID.
// Triangle fan order.
var Corners = [4][2]float32{
	{-1.0, -1.0},
	{1.0, -1.0},
	{1.0, 1.0},
	{-1.0, 1.0},
}

// UV derivation for a clip-space position.
func UV(pos [2]float32) [2]float32 {
	return [2]float32{pos[0]*0.5 + 0.5, pos[1]*0.5 + 0.5}
}

// Offsets of the nine blur taps in units of a quarter pixel.
var Offsets = [9][2]float32{
	{0, 0},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// WideWeights for the wide blur stage. Normalized by WideNorm.
var WideWeights = [9]float32{4, 2, 2, 2, 2, 1, 1, 1, 1}

// SoftWeights for the soft blur stage. Only the centre and the four
// orthogonal neighbours contribute. Normalized by SoftNorm.
var SoftWeights = [9]float32{4, 1, 1, 1, 1, 0, 0, 0, 0}

// Normalization constants for the blur stages.
const (
	WideNorm = 16.0
	SoftNorm = 8.0
)

// SoftAttenuation is the vertical fade applied by the soft blur stage.
func SoftAttenuation(v float32) float32 {
	return math32.Min(math32.Max(v+0.25, 0.0), 1.0) * 1.2
}

// Image is an RGBA pixel buffer with one float32 per channel. The layout
// matches a GL texture; row zero is the bottom of the image.
type Image struct {
	Width  int
	Height int
	Pix    []float32
}

// NewImage allocates a black transparent image.
func NewImage(width int, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*4),
	}
}

// SetRGBA sets a pixel.
func (img *Image) SetRGBA(x int, y int, r, g, b, a float32) {
	i := (y*img.Width + x) * 4
	img.Pix[i] = r
	img.Pix[i+1] = g
	img.Pix[i+2] = b
	img.Pix[i+3] = a
}

// RGBA returns a pixel.
func (img *Image) RGBA(x int, y int) (r, g, b, a float32) {
	i := (y*img.Width + x) * 4
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

// sample the image at a UV coordinate with clamp-to-edge addressing and
// nearest filtering.
func (img *Image) sample(u float32, v float32) (r, g, b float32) {
	x := int(u * float32(img.Width))
	y := int(v * float32(img.Height))
	x = min(max(x, 0), img.Width-1)
	y = min(max(y, 0), img.Height-1)
	r, g, b, _ = img.RGBA(x, y)
	return r, g, b
}

// uv of the centre of a pixel.
func (img *Image) uv(x int, y int) (u, v float32) {
	u = (float32(x) + 0.5) / float32(img.Width)
	v = (float32(y) + 0.5) / float32(img.Height)
	return u, v
}

// blur is the shared tap loop of both blur stages.
func blur(src *Image, pixelSize [2]float32, weights [9]float32, norm float32) *Image {
	dst := NewImage(src.Width, src.Height)

	// taps step by a quarter of the pixel size
	psX := pixelSize[0] * 0.25
	psY := pixelSize[1] * 0.25

	for y := range src.Height {
		for x := range src.Width {
			u, v := src.uv(x, y)

			var r, g, b float32
			for i, off := range Offsets {
				if weights[i] == 0 {
					continue
				}
				tr, tg, tb := src.sample(u+off[0]*psX, v+off[1]*psY)
				r += tr * weights[i]
				g += tg * weights[i]
				b += tb * weights[i]
			}

			dst.SetRGBA(x, y, r/norm, g/norm, b/norm, 1.0)
		}
	}

	return dst
}

// BlurWide reproduces the wide blur stage. Nine taps, weights 4,2,2,2,2 and
// 1,1,1,1, normalized by 16.
func BlurWide(src *Image, pixelSize [2]float32) *Image {
	return blur(src, pixelSize, WideWeights, WideNorm)
}

// BlurSoft reproduces the soft blur stage. Five contributing taps summing
// to 8, attenuated by the vertical fade.
func BlurSoft(src *Image, pixelSize [2]float32) *Image {
	dst := blur(src, pixelSize, SoftWeights, SoftNorm)

	for y := range dst.Height {
		_, v := dst.uv(0, y)
		fade := SoftAttenuation(v)
		for x := range dst.Width {
			r, g, b, a := dst.RGBA(x, y)
			dst.SetRGBA(x, y, r*fade, g*fade, b*fade, a)
		}
	}

	return dst
}

// Composite reproduces the compositing stage. The pixelwise sum of the two
// images with alpha forced to full opacity. Channel values are not clipped,
// matching the shader, where clipping is left to the output format.
func Composite(col *Image, white *Image) *Image {
	dst := NewImage(col.Width, col.Height)

	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = col.Pix[i] + white.Pix[i]
		dst.Pix[i+1] = col.Pix[i+1] + white.Pix[i+1]
		dst.Pix[i+2] = col.Pix[i+2] + white.Pix[i+2]
		dst.Pix[i+3] = 1.0
	}

	return dst
}
