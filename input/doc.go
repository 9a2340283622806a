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

// Package input maps physical devices to game actions. The game defines an
// action type, binds keys, mouse buttons and controller inputs to actions,
// and then asks about actions rather than devices.
//
//	const (
//		Jump = iota
//		Shoot
//	)
//
//	inp := input.NewManager[int]()
//	inp.Bind(Jump, input.Key{Code: sdl.K_SPACE})
//
// Presses and releases are stamped with the frame they happen on, which is
// what lets Pressed() and Released() answer for the current frame only.
// Down() is true for the whole duration of a press.
package input
