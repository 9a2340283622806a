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

package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kvisten/kvist/asset"
	"github.com/kvisten/kvist/logger"
)

// hard limits of the sprite sheet. every image lives in a layer of one
// texture array so a frame can be drawn with a single texture bind.
const (
	SheetSize = 512
	MaxLayers = 512
)

// Layer of the sprite sheet holding one uploaded image.
type Layer int

// Region is a normalized area of one sprite sheet layer.
type Region struct {
	X, Y  float32
	W, H  float32
	Layer Layer
}

// a layer remembers where its image comes from so hot reloads can be
// spotted. the source is a function because some providers, fonts for one,
// build a fresh image on every reload
type sheetLayer struct {
	src        func() *asset.Image
	generation int
}

// SpriteSheet owns the texture array every sprite samples from. Images are
// uploaded into successive layers; they must fit within SheetSize on both
// axes.
type SpriteSheet struct {
	texture uint32
	layers  []sheetLayer

	// allocated depth of the texture array. grows as layers are added
	depth int32
}

// NewSpriteSheet is the preferred method of initialisation for the
// SpriteSheet type. Requires a current GL context.
func NewSpriteSheet() *SpriteSheet {
	sh := &SpriteSheet{}
	gl.GenTextures(1, &sh.texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sh.texture)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return sh
}

// Destroy the underlying texture.
func (sh *SpriteSheet) Destroy() {
	gl.DeleteTextures(1, &sh.texture)
}

// Add an image to the sheet, uploading it into the next free layer.
func (sh *SpriteSheet) Add(img *asset.Image) (Layer, error) {
	return sh.AddSource(func() *asset.Image { return img })
}

// AddSource adds an image provider to the sheet. The provider is asked for
// its current image on upload and refresh.
func (sh *SpriteSheet) AddSource(src func() *asset.Image) (Layer, error) {
	img := src()
	if img.Width > SheetSize || img.Height > SheetSize {
		return -1, fmt.Errorf("sheet: image is larger than %dx%d", SheetSize, SheetSize)
	}
	if len(sh.layers) >= MaxLayers {
		return -1, fmt.Errorf("sheet: all %d layers in use", MaxLayers)
	}

	layer := Layer(len(sh.layers))
	sh.layers = append(sh.layers, sheetLayer{src: src, generation: img.Generation})

	sh.reserve(int32(len(sh.layers)))
	sh.upload(layer)

	return layer, nil
}

// Refresh reuploads any layer whose image has been hot-reloaded. Call once
// per frame.
func (sh *SpriteSheet) Refresh() {
	for i := range sh.layers {
		l := &sh.layers[i]
		if img := l.src(); img.Generation != l.generation {
			l.generation = img.Generation
			sh.upload(Layer(i))
			logger.Logf(logger.Allow, "sheet", "layer %d refreshed", i)
		}
	}
}

// Whole returns the region covering an entire layer, sized to the image
// that was uploaded to it.
func (sh *SpriteSheet) Whole(layer Layer) Region {
	img := sh.layers[layer].src()
	return Region{
		X: 0, Y: 0,
		W:     float32(img.Width) / SheetSize,
		H:     float32(img.Height) / SheetSize,
		Layer: layer,
	}
}

// Grid divides a layer's image into cells of tw by th pixels and returns
// the region of the cell at (tx, ty). Cell (0, 0) is bottom left.
func (sh *SpriteSheet) Grid(layer Layer, tw, th, tx, ty int) Region {
	return Region{
		X:     float32(tx*tw) / SheetSize,
		Y:     float32(ty*th) / SheetSize,
		W:     float32(tw) / SheetSize,
		H:     float32(th) / SheetSize,
		Layer: layer,
	}
}

// Sprite creates a stamp sampling the region, initially sized to the
// region's extent in pixels.
func (sh *SpriteSheet) Sprite(reg Region) Sprite {
	return Sprite{inst: Instance{
		ScaleX: reg.W * SheetSize,
		ScaleY: reg.H * SheetSize,
		Color:  White,
		SheetX: reg.X, SheetY: reg.Y,
		Layer:  float32(reg.Layer),
		SheetW: reg.W, SheetH: reg.H,
	}}
}

// reserve grows the texture array to at least depth layers. Existing layers
// are reuploaded after a reallocation.
func (sh *SpriteSheet) reserve(depth int32) {
	if depth <= sh.depth {
		return
	}

	// grow in steps to avoid a reallocation per image
	alloc := max(sh.depth*2, 8)
	for alloc < depth {
		alloc *= 2
	}
	alloc = min(alloc, MaxLayers)

	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sh.texture)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0,
		gl.RGBA, SheetSize, SheetSize, alloc, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	sh.depth = alloc

	for i := range sh.layers[:len(sh.layers)-1] {
		sh.upload(Layer(i))
	}
}

// upload a layer's image into its slice of the texture array.
func (sh *SpriteSheet) upload(layer Layer) {
	img := sh.layers[layer].src()
	if img.Width > SheetSize || img.Height > SheetSize {
		// a reload can grow an image past the layer size. keep the old
		// texture data rather than corrupt the array
		logger.Logf(logger.Allow, "sheet", "layer %d: image no longer fits. not uploading", layer)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sh.texture)
	gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0,
		0, 0, int32(layer),
		int32(img.Width), int32(img.Height), 1,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Bind the sheet's texture to the given texture unit.
func (sh *SpriteSheet) bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, sh.texture)
}
