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

// Package kvist is a small 2D game engine. The Game type owns the window,
// the GL context and the audio device, and exposes the engine subsystems
// (renderer, assets, input, audio, performance) as fields. Everything
// happens on the main goroutine inside the Run() loop.
//
// The subsystem packages are usable on their own where they don't touch
// the GPU or the audio device: the audio mixer, the input manager's
// binding logic, the asset decoders and the post-processing kernel
// reference are all plain Go.
package kvist
