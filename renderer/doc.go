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

// Package renderer draws 2D scenes with OpenGL. The frame is built from
// stamps (rectangles, sprites, text glyphs) and particle systems, drawn
// with instanced calls against a single sprite sheet texture array, into an
// offscreen scene texture.
//
// The scene then passes through a post-processing chain: a wide blur, a
// soft vertically-faded blur at half resolution, and a composite stage that
// adds the blurred image back over the scene. The chain's fixed arithmetic
// is mirrored by the renderer/kernel package, which is where it is tested.
//
// Particle motion is evaluated on the GPU; see renderer/shaders.
package renderer
