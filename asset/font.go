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
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/kvisten/kvist/logger"
)

// range of rasterized glyphs. printable ASCII
const (
	glyphFirst = ' '
	glyphLast  = '~'
)

// Glyph describes where a rune was placed in a font atlas and how to advance
// past it. All values are in pixels; Y is measured from the bottom of the
// atlas to match image coordinates.
type Glyph struct {
	Rune rune

	// position and size in the atlas
	X      Pixels
	Y      Pixels
	Width  Pixels
	Height Pixels

	// how far the pen moves after drawing this glyph
	Advance float32
}

// Font is a font asset rasterized to a glyph atlas at a fixed point size.
type Font struct {
	file loadedFile
	size float64

	atlas  *Image
	glyphs map[rune]Glyph

	// vertical pen advance for a new line, in pixels
	lineHeight float32
}

func newFont(path string, size float64) (*Font, error) {
	fnt := &Font{file: newLoadedFile(path), size: size}
	if err := fnt.reload(); err != nil {
		return nil, err
	}
	return fnt, nil
}

// Atlas returns the image all glyphs are rasterized into. White text on
// transparent background, suitable for tinting.
func (fnt *Font) Atlas() *Image {
	return fnt.atlas
}

// Glyph lookup for a rune. The second return value is false for runes
// outside the rasterized range.
func (fnt *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := fnt.glyphs[r]
	return g, ok
}

// LineHeight is the vertical advance between lines of text, in pixels.
func (fnt *Font) LineHeight() float32 {
	return fnt.lineHeight
}

func (fnt *Font) reload() error {
	b, err := fnt.file.read()
	if err != nil {
		return err
	}

	f, err := opentype.Parse(b)
	if err != nil {
		return fmt.Errorf("asset: %s: %w", fnt.file.path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: fnt.size,
		DPI:  72,
	})
	if err != nil {
		return fmt.Errorf("asset: %s: %w", fnt.file.path, err)
	}
	defer face.Close()

	reloaded := fnt.atlas != nil
	fnt.rasterize(face)

	if reloaded {
		logger.Logf(logger.Allow, "asset", "reloaded %s", fnt.file.path)
	}

	return nil
}

// rasterize every glyph in the supported range into a fresh atlas.
func (fnt *Font) rasterize(face font.Face) {
	metrics := face.Metrics()
	cellH := (metrics.Ascent + metrics.Descent).Ceil() + 1

	// widest glyph decides the cell width
	cellW := 1
	for r := rune(glyphFirst); r <= glyphLast; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		if w := adv.Ceil() + 1; w > cellW {
			cellW = w
		}
	}

	// glyphs are arranged in a fixed grid. wasteful compared to bin packing
	// but trivial to index and the atlas is rebuilt on every reload
	const cols = 16
	numGlyphs := int(glyphLast-glyphFirst) + 1
	rows := (numGlyphs + cols - 1) / cols

	dst := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, numGlyphs)
	atlasH := rows * cellH

	for i := 0; i < numGlyphs; i++ {
		r := rune(glyphFirst + i)
		col := i % cols
		row := i / cols

		x := col * cellW
		y := row * cellH

		drawer.Dot = fixed.P(x, y+metrics.Ascent.Ceil())
		adv, _ := face.GlyphAdvance(r)
		drawer.DrawString(string(r))

		glyphs[r] = Glyph{
			Rune:    r,
			X:       x,
			Y:       atlasH - y - cellH,
			Width:   cellW,
			Height:  cellH,
			Advance: float32(adv) / 64,
		}
	}

	// flip rows to the bottom-to-top order used by every Image
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	pix := make([]byte, len(dst.Pix))
	stride := w * 4
	for y := range h {
		copy(pix[y*stride:(y+1)*stride], dst.Pix[(h-1-y)*dst.Stride:])
	}

	var generation int
	if fnt.atlas != nil {
		generation = fnt.atlas.Generation
	}

	fnt.atlas = &Image{
		file:       fnt.file,
		Width:      w,
		Height:     h,
		Pix:        pix,
		Generation: generation + 1,
	}
	fnt.glyphs = glyphs
	fnt.lineHeight = float32(metrics.Height) / 64
}
