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

	"github.com/kvisten/kvist/logger"
)

// events are the internal representation of what the window system reported.
// decoupled from sdl.Event so state handling can be tested directly.
type event interface{}

type eventQuit struct{}

type eventKey struct {
	key    sdl.Keycode
	down   bool
	repeat bool
}

type eventMouseButton struct {
	button uint8
	down   bool
}

type eventMouseMotion struct {
	x, y       int32
	relX, relY int32
}

type eventControllerButton struct {
	id     ControllerID
	button sdl.GameControllerButton
	down   bool
}

type eventControllerAxis struct {
	id   ControllerID
	axis sdl.GameControllerAxis

	// normalised to the range -1.0 to 1.0
	value float32
}

type eventText struct {
	text string
}

// Poll drains the SDL event queue and folds every event into the state
// table. Implicitly starts a new frame; call once per frame in place of
// NewFrame().
func (m *Manager[T]) Poll() {
	m.NewFrame()

	for sdlEv := sdl.PollEvent(); sdlEv != nil; sdlEv = sdl.PollEvent() {
		switch sdlEv := sdlEv.(type) {
		case *sdl.QuitEvent:
			m.apply(eventQuit{})

		case *sdl.KeyboardEvent:
			m.apply(eventKey{
				key:    sdlEv.Keysym.Sym,
				down:   sdlEv.Type == sdl.KEYDOWN,
				repeat: sdlEv.Repeat > 0,
			})

		case *sdl.MouseButtonEvent:
			m.apply(eventMouseButton{
				button: sdlEv.Button,
				down:   sdlEv.Type == sdl.MOUSEBUTTONDOWN,
			})

		case *sdl.MouseMotionEvent:
			m.apply(eventMouseMotion{
				x:    sdlEv.X,
				y:    sdlEv.Y,
				relX: sdlEv.XRel,
				relY: sdlEv.YRel,
			})

		case *sdl.ControllerButtonEvent:
			m.apply(eventControllerButton{
				id:     ControllerID(sdlEv.Which),
				button: sdl.GameControllerButton(sdlEv.Button),
				down:   sdlEv.Type == sdl.CONTROLLERBUTTONDOWN,
			})

		case *sdl.ControllerAxisEvent:
			m.apply(eventControllerAxis{
				id:    ControllerID(sdlEv.Which),
				axis:  sdl.GameControllerAxis(sdlEv.Axis),
				value: float32(sdlEv.Value) / 32768.0,
			})

		case *sdl.TextInputEvent:
			m.apply(eventText{text: sdlEv.GetText()})

		case *sdl.ControllerDeviceEvent:
			switch sdlEv.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// Which is a device index for the added event
				m.controllers.open(int(sdlEv.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				// and an instance ID for the removed event
				m.controllers.closeOne(ControllerID(sdlEv.Which))
			}
		}
	}
}

// controllers tracks attached game controllers, keyed by joystick instance
// ID.
type controllers struct {
	pads map[ControllerID]*sdl.GameController
}

func newControllers() *controllers {
	return &controllers{
		pads: make(map[ControllerID]*sdl.GameController),
	}
}

func (c *controllers) open(deviceIndex int) {
	pad := sdl.GameControllerOpen(deviceIndex)
	if pad == nil || !pad.Attached() {
		logger.Logf(logger.Allow, "input", "could not open controller %d", deviceIndex)
		return
	}
	id := ControllerID(pad.Joystick().InstanceID())
	c.pads[id] = pad
	logger.Logf(logger.Allow, "input", "controller: %s", pad.Name())
}

func (c *controllers) closeOne(id ControllerID) {
	if pad, ok := c.pads[id]; ok {
		logger.Logf(logger.Allow, "input", "controller removed: %s", pad.Name())
		pad.Close()
		delete(c.pads, id)
	}
}

func (c *controllers) list() []ControllerID {
	l := make([]ControllerID, 0, len(c.pads))
	for id := range c.pads {
		l = append(l, id)
	}
	return l
}

func (c *controllers) rumble(id ControllerID, low float32, high float32, duration int) {
	pad, ok := c.pads[id]
	if !ok {
		return
	}
	err := pad.Rumble(uint16(low*0xffff), uint16(high*0xffff), uint32(duration))
	if err != nil {
		logger.Log(logger.Allow, "input", err)
	}
}

func (c *controllers) close() {
	for id, pad := range c.pads {
		pad.Close()
		delete(c.pads, id)
	}
}
