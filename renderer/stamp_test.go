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
	"unsafe"

	"github.com/kvisten/kvist/test"
)

func TestRectDefaults(t *testing.T) {
	inst := NewRect().instance()

	test.ExpectEquality(t, inst.ScaleX, 1.0)
	test.ExpectEquality(t, inst.ScaleY, 1.0)
	test.ExpectEquality(t, inst.Color, White)

	// untextured stamps carry a negative layer
	test.ExpectSuccess(t, inst.Layer < 0)
}

func TestRectChaining(t *testing.T) {
	base := NewRect().Size(10, 20)

	// helpers return copies; the base stamp can be reused
	a := base.At(1, 2).Tint(RGB(1, 0, 0))
	b := base.At(3, 4).Angle(0.5)

	test.ExpectEquality(t, a.instance().X, 1.0)
	test.ExpectEquality(t, b.instance().X, 3.0)
	test.ExpectEquality(t, a.instance().Rotation, 0.0)
	test.ExpectEquality(t, b.instance().Rotation, 0.5)
	test.ExpectEquality(t, base.instance().X, 0.0)

	test.ExpectEquality(t, a.instance().ScaleX, 10.0)
	test.ExpectEquality(t, b.instance().ScaleY, 20.0)
}

func TestSpriteRegion(t *testing.T) {
	reg := Region{X: 0.25, Y: 0.5, W: 0.125, H: 0.125, Layer: 3}

	s := Sprite{}.Region(reg).At(5, 5)
	inst := s.instance()

	test.ExpectEquality(t, inst.SheetX, 0.25)
	test.ExpectEquality(t, inst.SheetY, 0.5)
	test.ExpectEquality(t, inst.SheetW, 0.125)
	test.ExpectEquality(t, inst.Layer, 3.0)
}

// the GPU reads Instance and particle values as tightly packed float32
// arrays; the struct layouts must match the declared lengths.
func TestGPULayoutSizes(t *testing.T) {
	test.ExpectEquality(t, unsafe.Sizeof(Instance{}), uintptr(instanceLen*4))
	test.ExpectEquality(t, unsafe.Sizeof(particle{}), uintptr(particleLen*4))
}
