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
	"github.com/kvisten/kvist/asset"
)

// Text draws strings using a font whose glyph atlas has been uploaded to
// the sprite sheet. Create with Renderer.AddFont().
type Text struct {
	font  *asset.Font
	layer Layer
}

// AddFont uploads the font's glyph atlas to the sprite sheet and returns a
// Text for drawing with it. The atlas follows font hot-reloads like any
// other sheet layer.
func (rnd *Renderer) AddFont(fnt *asset.Font) (*Text, error) {
	layer, err := rnd.sheet.AddSource(fnt.Atlas)
	if err != nil {
		return nil, err
	}
	return &Text{font: fnt, layer: layer}, nil
}

// Push stamps for the string with the bottom left of the first glyph cell
// at (x, y). Newlines move the pen down by the font's line height. Runes
// without a rasterized glyph are skipped.
func (t *Text) Push(rnd *Renderer, s string, x float32, y float32, c Color) {
	penX := x
	penY := y

	for _, r := range s {
		if r == '\n' {
			penX = x
			penY -= t.font.LineHeight()
			continue
		}

		g, ok := t.font.Glyph(r)
		if !ok {
			continue
		}

		w := float32(g.Width)
		h := float32(g.Height)

		rnd.Push(Sprite{inst: Instance{
			X: penX + w/2, Y: penY + h/2,
			ScaleX: w, ScaleY: h,
			Color:  c,
			SheetX: float32(g.X) / SheetSize,
			SheetY: float32(g.Y) / SheetSize,
			Layer:  float32(t.layer),
			SheetW: w / SheetSize,
			SheetH: h / SheetSize,
		}})

		penX += g.Advance
	}
}

// Measure returns the width in pixels of the string's longest line.
func (t *Text) Measure(s string) float32 {
	var widest float32
	var line float32

	for _, r := range s {
		if r == '\n' {
			line = 0
			continue
		}
		if g, ok := t.font.Glyph(r); ok {
			line += g.Advance
			if line > widest {
				widest = line
			}
		}
	}

	return widest
}
