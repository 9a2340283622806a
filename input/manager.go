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
	"github.com/chewxy/math32"
)

// Deadzone for analogue sticks. Values closer to the centre than this read
// as zero; the remaining range is remapped to the full 0.0 to 1.0
const Deadzone = 0.10

// TriggerLimit is the absolute axis value above which an axis counts as
// pressed when queried digitally.
const TriggerLimit = 0.1

// state of one device. presses and releases are stamped with the frame they
// happened on
type state struct {
	down          bool
	framePressed  int
	frameReleased int
	value         float32
}

// Manager tracks the state of every bound device and answers queries about
// them in terms of actions. The action type is anything comparable; an
// integer or string enumeration of the things the player can do.
//
// NewFrame() must be called once per frame, before the frame's events are
// fed in. Queries distinguish "pressed this frame" from "held down" by
// comparing frame stamps.
type Manager[T comparable] struct {
	bindings map[T][]Device
	states   map[Device]*state

	frame int
	quit  bool

	mouseX, mouseY       int32
	mouseRelX, mouseRelY int32
	text                 string

	controllers *controllers
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager[T comparable]() *Manager[T] {
	return &Manager[T]{
		bindings:    make(map[T][]Device),
		states:      make(map[Device]*state),
		frame:       1,
		controllers: newControllers(),
	}
}

// Bind one or more devices to an action. Binding accumulates; binding a new
// device to an action keeps the previous devices too.
func (m *Manager[T]) Bind(action T, devices ...Device) {
	m.bindings[action] = append(m.bindings[action], devices...)
}

// Unbind all devices from an action.
func (m *Manager[T]) Unbind(action T) {
	delete(m.bindings, action)
}

// NewFrame advances the frame counter and clears per-frame accumulations.
// Call once per frame before feeding events.
func (m *Manager[T]) NewFrame() {
	m.frame++
	m.text = ""
	m.mouseRelX = 0
	m.mouseRelY = 0
}

// Pressed returns true if any device bound to the action was pressed this
// frame.
func (m *Manager[T]) Pressed(action T) bool {
	for _, d := range m.bindings[action] {
		if s, ok := m.states[d]; ok && s.down && s.framePressed == m.frame {
			return true
		}
	}
	return false
}

// Released returns true if any device bound to the action was released this
// frame.
func (m *Manager[T]) Released(action T) bool {
	for _, d := range m.bindings[action] {
		if s, ok := m.states[d]; ok && !s.down && s.frameReleased == m.frame {
			return true
		}
	}
	return false
}

// Down returns true while any device bound to the action is held.
func (m *Manager[T]) Down(action T) bool {
	for _, d := range m.bindings[action] {
		if s, ok := m.states[d]; ok && s.down {
			return true
		}
	}
	return false
}

// Up returns true while none of the devices bound to the action are held.
// An action with no bindings is neither up nor down.
func (m *Manager[T]) Up(action T) bool {
	if len(m.bindings[action]) == 0 {
		return false
	}
	return !m.Down(action)
}

// Value returns the analogue reading of the action. For digital devices the
// value is 1.0 while held. When several devices are bound the reading with
// the largest magnitude wins.
func (m *Manager[T]) Value(action T) float32 {
	var best float32
	for _, d := range m.bindings[action] {
		if s, ok := m.states[d]; ok {
			if math32.Abs(s.value) > math32.Abs(best) {
				best = s.value
			}
		}
	}
	return best
}

// Quit returns true once a quit request has been seen. It never resets.
func (m *Manager[T]) Quit() bool {
	return m.quit
}

// Mouse returns the cursor position in window coordinates.
func (m *Manager[T]) Mouse() (int, int) {
	return int(m.mouseX), int(m.mouseY)
}

// MouseRel returns how far the cursor moved this frame.
func (m *Manager[T]) MouseRel() (int, int) {
	return int(m.mouseRelX), int(m.mouseRelY)
}

// Text typed this frame, decoded from the platform's text input events.
// Empty on frames with no typing.
func (m *Manager[T]) Text() string {
	return m.text
}

// Controllers lists the currently attached controllers.
func (m *Manager[T]) Controllers() []ControllerID {
	return m.controllers.list()
}

// Rumble an attached controller. Intensity values are in the range 0.0 to
// 1.0 for the low and high frequency motors. Does nothing if the controller
// has no rumble support or is no longer attached.
func (m *Manager[T]) Rumble(id ControllerID, low float32, high float32, duration int) {
	m.controllers.rumble(id, low, high, duration)
}

// Close releases any opened controllers.
func (m *Manager[T]) Close() {
	m.controllers.close()
}

func (m *Manager[T]) state(d Device) *state {
	s, ok := m.states[d]
	if !ok {
		s = &state{}
		m.states[d] = s
	}
	return s
}

func (m *Manager[T]) press(d Device, value float32) {
	s := m.state(d)
	if !s.down {
		s.down = true
		s.framePressed = m.frame
	}
	s.value = value
}

func (m *Manager[T]) release(d Device) {
	s := m.state(d)
	if s.down {
		s.down = false
		s.frameReleased = m.frame
	}
	s.value = 0
}

// deadzoneRemap maps a raw axis reading to the deadzone adjusted range.
func deadzoneRemap(v float32) float32 {
	a := math32.Abs(v)
	if a < Deadzone {
		return 0
	}
	r := (a - Deadzone) / (1 - Deadzone)
	return math32.Copysign(r, v)
}

// apply a single event to the state table. separated from event polling so
// the state logic can be driven without a window system.
func (m *Manager[T]) apply(ev event) {
	switch ev := ev.(type) {
	case eventQuit:
		m.quit = true
		m.press(Quit{}, 1)

	case eventKey:
		d := Key{Code: ev.key}
		if ev.down {
			if !ev.repeat {
				m.press(d, 1)
			}
		} else {
			m.release(d)
		}

	case eventMouseButton:
		d := MouseButton{Button: ev.button}
		if ev.down {
			m.press(d, 1)
		} else {
			m.release(d)
		}

	case eventMouseMotion:
		m.mouseX = ev.x
		m.mouseY = ev.y
		m.mouseRelX += ev.relX
		m.mouseRelY += ev.relY

	case eventControllerButton:
		d := ControllerButton{Controller: ev.id, Button: ev.button}
		if ev.down {
			m.press(d, 1)
		} else {
			m.release(d)
		}

	case eventControllerAxis:
		d := ControllerAxis{Controller: ev.id, Axis: ev.axis}
		v := deadzoneRemap(ev.value)
		if math32.Abs(v) > TriggerLimit {
			m.press(d, v)
		} else {
			s := m.state(d)
			m.release(d)
			s.value = v
		}

	case eventText:
		m.text += ev.text
	}
}
