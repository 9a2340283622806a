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

// Package shaders embeds the GLSL source for every program the renderer
// uses.
package shaders

import _ "embed"

//go:embed "post.vert"
var PostVertexShader []byte

//go:embed "blur_wide.frag"
var BlurWideShader []byte

//go:embed "blur_soft.frag"
var BlurSoftShader []byte

//go:embed "composite.frag"
var CompositeShader []byte

//go:embed "sprite.vert"
var SpriteVertexShader []byte

//go:embed "sprite.frag"
var SpriteShader []byte

//go:embed "particle.vert"
var ParticleVertexShader []byte

//go:embed "particle.frag"
var ParticleShader []byte
