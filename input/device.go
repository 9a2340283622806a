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
	"github.com/veandco/go-sdl2/sdl"
)

// ControllerID identifies an attached game controller. IDs are stable for
// the lifetime of the connection; a controller that is unplugged and plugged
// back in gets a new ID.
type ControllerID int32

// Device is a single physical input an action can be bound to. All Device
// implementations are comparable so they can key the state table.
type Device interface {
	device()
}

// Quit is the window close request.
type Quit struct{}

// Key on the keyboard.
type Key struct {
	Code sdl.Keycode
}

// MouseButton press.
type MouseButton struct {
	Button uint8
}

// mouse button values for MouseButton.Button.
const (
	MouseLeft   = uint8(sdl.BUTTON_LEFT)
	MouseMiddle = uint8(sdl.BUTTON_MIDDLE)
	MouseRight  = uint8(sdl.BUTTON_RIGHT)
)

// ControllerButton on a specific controller.
type ControllerButton struct {
	Controller ControllerID
	Button     sdl.GameControllerButton
}

// ControllerAxis on a specific controller. An axis is an analogue device but
// can also be queried digitally; it counts as pressed while its absolute
// value exceeds the trigger limit.
type ControllerAxis struct {
	Controller ControllerID
	Axis       sdl.GameControllerAxis
}

func (Quit) device()             {}
func (Key) device()              {}
func (MouseButton) device()      {}
func (ControllerButton) device() {}
func (ControllerAxis) device()   {}
