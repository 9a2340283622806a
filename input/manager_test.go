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

package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kvisten/kvist/test"
)

// actions used throughout the tests.
const (
	actJump = iota
	actFire
	actMove
)

func TestPressedIsEdgeTriggered(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actJump, Key{Code: sdl.K_SPACE})

	m.NewFrame()
	m.apply(eventKey{key: sdl.K_SPACE, down: true})

	test.ExpectSuccess(t, m.Pressed(actJump))
	test.ExpectSuccess(t, m.Down(actJump))
	test.ExpectSuccess(t, !m.Released(actJump))

	// next frame the key is still down but is no longer "pressed"
	m.NewFrame()
	test.ExpectSuccess(t, !m.Pressed(actJump))
	test.ExpectSuccess(t, m.Down(actJump))

	m.apply(eventKey{key: sdl.K_SPACE, down: false})
	test.ExpectSuccess(t, m.Released(actJump))
	test.ExpectSuccess(t, !m.Down(actJump))

	m.NewFrame()
	test.ExpectSuccess(t, !m.Released(actJump))
}

func TestUpIsInverseOfDown(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actJump, Key{Code: sdl.K_SPACE}, Key{Code: sdl.K_UP})

	m.NewFrame()
	test.ExpectSuccess(t, m.Up(actJump))

	m.apply(eventKey{key: sdl.K_SPACE, down: true})
	test.ExpectSuccess(t, !m.Up(actJump))

	// still held through the other binding
	m.apply(eventKey{key: sdl.K_UP, down: true})
	m.apply(eventKey{key: sdl.K_SPACE, down: false})
	test.ExpectSuccess(t, !m.Up(actJump))

	m.apply(eventKey{key: sdl.K_UP, down: false})
	test.ExpectSuccess(t, m.Up(actJump))

	// an action with no bindings is neither up nor down
	test.ExpectSuccess(t, !m.Up(actMove))
	test.ExpectSuccess(t, !m.Down(actMove))
}

func TestKeyRepeatIgnored(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actJump, Key{Code: sdl.K_SPACE})

	m.NewFrame()
	m.apply(eventKey{key: sdl.K_SPACE, down: true})
	m.NewFrame()

	// OS level key repeat must not read as a fresh press
	m.apply(eventKey{key: sdl.K_SPACE, down: true, repeat: true})
	test.ExpectSuccess(t, !m.Pressed(actJump))
	test.ExpectSuccess(t, m.Down(actJump))
}

func TestMultipleBindings(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actFire, Key{Code: sdl.K_LCTRL}, MouseButton{Button: MouseLeft})
	m.Bind(actFire, ControllerButton{Controller: 0, Button: sdl.CONTROLLER_BUTTON_A})

	m.NewFrame()
	m.apply(eventMouseButton{button: MouseLeft, down: true})
	test.ExpectSuccess(t, m.Pressed(actFire))

	m.NewFrame()
	m.apply(eventControllerButton{id: 0, button: sdl.CONTROLLER_BUTTON_A, down: true})
	test.ExpectSuccess(t, m.Pressed(actFire))

	// mouse button still held
	test.ExpectSuccess(t, m.Down(actFire))

	m.apply(eventMouseButton{button: MouseLeft, down: false})
	m.apply(eventControllerButton{id: 0, button: sdl.CONTROLLER_BUTTON_A, down: false})
	test.ExpectSuccess(t, !m.Down(actFire))
}

func TestUnbind(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actJump, Key{Code: sdl.K_SPACE})
	m.Unbind(actJump)

	m.NewFrame()
	m.apply(eventKey{key: sdl.K_SPACE, down: true})
	test.ExpectSuccess(t, !m.Pressed(actJump))
}

func TestAxisDeadzone(t *testing.T) {
	m := NewManager[int]()
	d := ControllerAxis{Controller: 0, Axis: sdl.CONTROLLER_AXIS_LEFTX}
	m.Bind(actMove, d)

	m.NewFrame()

	// inside the deadzone reads as zero
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_LEFTX, value: 0.05})
	test.ExpectEquality(t, m.Value(actMove), 0.0)
	test.ExpectSuccess(t, !m.Down(actMove))

	// full deflection reads as full value
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_LEFTX, value: 1.0})
	test.ExpectApproximate(t, m.Value(actMove), 1.0, 0.0001)
	test.ExpectSuccess(t, m.Down(actMove))

	// negative deflections keep their sign
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_LEFTX, value: -1.0})
	test.ExpectApproximate(t, m.Value(actMove), -1.0, 0.0001)

	// the remapped range starts at zero just outside the deadzone
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_LEFTX, value: Deadzone})
	test.ExpectEquality(t, m.Value(actMove), 0.0)
}

func TestAxisDigital(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actFire, ControllerAxis{Controller: 0, Axis: sdl.CONTROLLER_AXIS_TRIGGERRIGHT})

	m.NewFrame()
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_TRIGGERRIGHT, value: 0.9})
	test.ExpectSuccess(t, m.Pressed(actFire))

	m.NewFrame()

	// easing off below the trigger limit releases the action
	m.apply(eventControllerAxis{id: 0, axis: sdl.CONTROLLER_AXIS_TRIGGERRIGHT, value: 0.05})
	test.ExpectSuccess(t, m.Released(actFire))
	test.ExpectSuccess(t, !m.Down(actFire))
}

func TestQuit(t *testing.T) {
	m := NewManager[int]()
	m.Bind(actJump, Quit{})

	test.ExpectSuccess(t, !m.Quit())

	m.NewFrame()
	m.apply(eventQuit{})
	test.ExpectSuccess(t, m.Quit())
	test.ExpectSuccess(t, m.Pressed(actJump))

	// quit is never reset
	m.NewFrame()
	test.ExpectSuccess(t, m.Quit())
}

func TestMouseMotion(t *testing.T) {
	m := NewManager[int]()

	m.NewFrame()
	m.apply(eventMouseMotion{x: 100, y: 50, relX: 10, relY: -5})
	m.apply(eventMouseMotion{x: 105, y: 55, relX: 5, relY: 5})

	x, y := m.Mouse()
	test.ExpectEquality(t, x, 105)
	test.ExpectEquality(t, y, 55)

	// relative motion accumulates over the frame
	rx, ry := m.MouseRel()
	test.ExpectEquality(t, rx, 15)
	test.ExpectEquality(t, ry, 0)

	// and resets on the next
	m.NewFrame()
	rx, ry = m.MouseRel()
	test.ExpectEquality(t, rx, 0)
	test.ExpectEquality(t, ry, 0)
}

func TestTextInput(t *testing.T) {
	m := NewManager[int]()

	m.NewFrame()
	m.apply(eventText{text: "he"})
	m.apply(eventText{text: "j"})
	test.ExpectEquality(t, m.Text(), "hej")

	m.NewFrame()
	test.ExpectEquality(t, m.Text(), "")
}
