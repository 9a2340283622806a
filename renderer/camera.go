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
	"github.com/chewxy/math32"
)

// Camera positions the view over the world. World units are pixels at a
// zoom of 1.0.
type Camera struct {
	// centre of the view in world units
	X float32
	Y float32

	// scale factor. larger values zoom in
	Zoom float32

	// rotation of the view in radians
	Angle float32
}

// NewCamera is the preferred method of initialisation for the Camera type.
func NewCamera() Camera {
	return Camera{Zoom: 1.0}
}

// Move the camera centre by a delta in world units.
func (cam *Camera) Move(dx float32, dy float32) {
	cam.X += dx
	cam.Y += dy
}

// Matrix builds the world-to-clip transform for a viewport of the given
// size. Column-major, ready for UniformMatrix4fv.
func (cam Camera) Matrix(width int32, height int32) [16]float32 {
	px := 2.0 * cam.Zoom / float32(width)
	py := 2.0 * cam.Zoom / float32(height)

	c := math32.Cos(cam.Angle)
	s := math32.Sin(cam.Angle)

	// rotate by the negative camera angle around the camera centre, then
	// project to clip space
	var m [16]float32
	m[0] = px * c
	m[1] = -py * s
	m[4] = px * s
	m[5] = py * c
	m[10] = 1.0
	m[12] = px * (-c*cam.X - s*cam.Y)
	m[13] = py * (s*cam.X - c*cam.Y)
	m[15] = 1.0
	return m
}

// apply a column-major matrix to a 2D point.
func apply(m [16]float32, x float32, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
