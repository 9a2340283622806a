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

// Color with float32 channels. Channel values above 1.0 are legal and feed
// the bloom pass.
type Color struct {
	R, G, B, A float32
}

// White is the no-tint color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Instance is the per-stamp data uploaded to the GPU. Field order matches
// the attribute layout of the sprite vertex program; keep them float32 and
// contiguous.
type Instance struct {
	X, Y     float32
	Rotation float32
	ScaleX   float32
	ScaleY   float32
	Color    Color

	// normalized sheet region. a negative layer means untextured
	SheetX, SheetY float32
	Layer          float32
	SheetW, SheetH float32
}

// number of float32 values in an Instance.
const instanceLen = 14

// Stamp is anything that can be pushed to the renderer for drawing this
// frame. Stamps are values; the placement helpers return modified copies so
// a base stamp can be reused.
type Stamp interface {
	instance() Instance
}

// Rect is an untextured rectangle stamp.
type Rect struct {
	inst Instance
}

// NewRect creates a unit white rectangle at the origin.
func NewRect() Rect {
	return Rect{inst: Instance{
		ScaleX: 1, ScaleY: 1,
		Color: White,
		Layer: -1,
	}}
}

// At places the rectangle.
func (r Rect) At(x float32, y float32) Rect {
	r.inst.X = x
	r.inst.Y = y
	return r
}

// Size sets the width and height.
func (r Rect) Size(w float32, h float32) Rect {
	r.inst.ScaleX = w
	r.inst.ScaleY = h
	return r
}

// Angle sets the rotation in radians.
func (r Rect) Angle(a float32) Rect {
	r.inst.Rotation = a
	return r
}

// Tint the rectangle.
func (r Rect) Tint(c Color) Rect {
	r.inst.Color = c
	return r
}

func (r Rect) instance() Instance {
	return r.inst
}

// Sprite is a textured stamp referring to a region of the sprite sheet.
// Construct with SpriteSheet.Sprite().
type Sprite struct {
	inst Instance
}

// At places the sprite.
func (s Sprite) At(x float32, y float32) Sprite {
	s.inst.X = x
	s.inst.Y = y
	return s
}

// Size sets the width and height in world units.
func (s Sprite) Size(w float32, h float32) Sprite {
	s.inst.ScaleX = w
	s.inst.ScaleY = h
	return s
}

// Angle sets the rotation in radians.
func (s Sprite) Angle(a float32) Sprite {
	s.inst.Rotation = a
	return s
}

// Tint multiplies the texture color.
func (s Sprite) Tint(c Color) Sprite {
	s.inst.Color = c
	return s
}

// Region changes the sheet region the sprite samples.
func (s Sprite) Region(reg Region) Sprite {
	s.inst.SheetX = reg.X
	s.inst.SheetY = reg.Y
	s.inst.SheetW = reg.W
	s.inst.SheetH = reg.H
	s.inst.Layer = float32(reg.Layer)
	return s
}

func (s Sprite) instance() Instance {
	return s.inst
}
