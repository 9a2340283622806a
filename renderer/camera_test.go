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
	"testing"

	"github.com/chewxy/math32"

	"github.com/kvisten/kvist/test"
)

func TestCameraIdentity(t *testing.T) {
	cam := NewCamera()
	m := cam.Matrix(640, 480)

	// the camera centre lands in the centre of clip space
	x, y := apply(m, 0, 0)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, y, 0.0, 0.0001)

	// the viewport edges land on the clip space extremes
	x, y = apply(m, 320, 240)
	test.ExpectApproximate(t, x, 1.0, 0.0001)
	test.ExpectApproximate(t, y, 1.0, 0.0001)

	x, y = apply(m, -320, -240)
	test.ExpectApproximate(t, x, -1.0, 0.0001)
	test.ExpectApproximate(t, y, -1.0, 0.0001)
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera()
	cam.Move(100, 50)

	m := cam.Matrix(640, 480)

	// the point the camera looks at is the new clip space centre
	x, y := apply(m, 100, 50)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, y, 0.0, 0.0001)

	// the world origin has moved the other way
	x, _ = apply(m, 0, 0)
	test.ExpectSuccess(t, x < 0)
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera()
	cam.Zoom = 2.0

	m := cam.Matrix(640, 480)

	// at double zoom, half the distance covers the full viewport
	x, y := apply(m, 160, 120)
	test.ExpectApproximate(t, x, 1.0, 0.0001)
	test.ExpectApproximate(t, y, 1.0, 0.0001)
}

func TestCameraRotation(t *testing.T) {
	cam := NewCamera()
	cam.Angle = math32.Pi / 2

	// square viewport so rotation is not distorted by aspect
	m := cam.Matrix(200, 200)

	// a quarter turn maps the world x axis onto the view's vertical
	x, y := apply(m, 100, 0)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, math32.Abs(y), 1.0, 0.0001)

	// the centre is unaffected by rotation
	x, y = apply(m, 0, 0)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, y, 0.0, 0.0001)
}

func TestCameraRotationAboutCentre(t *testing.T) {
	cam := NewCamera()
	cam.X = 50
	cam.Y = 50
	cam.Angle = 1.2

	m := cam.Matrix(300, 300)

	// rotation is around the camera centre, wherever it is
	x, y := apply(m, 50, 50)
	test.ExpectApproximate(t, x, 0.0, 0.0001)
	test.ExpectApproximate(t, y, 0.0, 0.0001)

	// distance from the centre is preserved up to the projection scale
	x, y = apply(m, 150, 50)
	d := math32.Sqrt(x*x + y*y)
	test.ExpectApproximate(t, d, 100.0*2.0/300.0, 0.0001)
}
