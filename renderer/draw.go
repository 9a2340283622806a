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
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kvisten/kvist/renderer/shaders"
)

// corners of the unit quad, drawn as a triangle strip.
var quadCorners = []float32{
	-0.5, -0.5,
	0.5, -0.5,
	-0.5, 0.5,
	0.5, 0.5,
}

// newQuadVBO uploads the unit quad and attaches it to the position
// attribute of the currently bound VAO.
func newQuadVBO(position uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadCorners)*4, gl.Ptr(quadCorners), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(position)
	gl.VertexAttribPointerWithOffset(position, 2, gl.FLOAT, false, 2*4, 0)
	return vbo
}

// instanceAttrib describes one per-instance attribute within the
// interleaved instance buffer.
type instanceAttrib struct {
	name string
	size int32
}

// setupInstanceAttribs binds the currently bound buffer's layout to the
// shader's per-instance attributes. stride is in float32 values.
func setupInstanceAttribs(sh *shader, attribs []instanceAttrib, stride int32) {
	var offset uintptr
	for _, a := range attribs {
		loc := sh.attrib(a.name)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, a.size, gl.FLOAT, false, stride*4, offset)
		gl.VertexAttribDivisor(loc, 1)
		offset += uintptr(a.size) * 4
	}
}

// spriteProgram draws batches of Instances with one instanced call.
type spriteProgram struct {
	shader

	view     int32
	texSheet int32

	vao     uint32
	quadVBO uint32
	instVBO uint32
}

func newSpriteProgram() *spriteProgram {
	prg := &spriteProgram{}
	prg.createProgram(string(shaders.SpriteVertexShader), string(shaders.SpriteShader))

	prg.view = prg.uniform("view")
	prg.texSheet = prg.uniform("tex_sheet")

	gl.GenVertexArrays(1, &prg.vao)
	gl.BindVertexArray(prg.vao)

	prg.quadVBO = newQuadVBO(prg.attrib("position"))

	gl.GenBuffers(1, &prg.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, prg.instVBO)
	setupInstanceAttribs(&prg.shader, []instanceAttrib{
		{"i_position", 2},
		{"i_rotation", 1},
		{"i_scale", 2},
		{"i_color", 4},
		{"i_sheet_pos", 3},
		{"i_sheet_size", 2},
	}, instanceLen)

	gl.BindVertexArray(0)

	return prg
}

func (prg *spriteProgram) destroy() {
	gl.DeleteBuffers(1, &prg.instVBO)
	gl.DeleteBuffers(1, &prg.quadVBO)
	gl.DeleteVertexArrays(1, &prg.vao)
	prg.shader.destroy()
}

func (prg *spriteProgram) draw(view [16]float32, sheet *SpriteSheet, instances []Instance) {
	if len(instances) == 0 {
		return
	}

	gl.UseProgram(prg.handle)
	gl.UniformMatrix4fv(prg.view, 1, false, &view[0])

	sheet.bind(0)
	gl.Uniform1i(prg.texSheet, 0)

	gl.BindVertexArray(prg.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, prg.instVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(instances)*instanceLen*4, gl.Ptr(instances), gl.STREAM_DRAW)

	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(len(instances)))
	gl.BindVertexArray(0)
}

// particleProgram draws a ParticleSystem with one instanced call. Motion is
// evaluated in the vertex program from the system clock.
type particleProgram struct {
	shader

	view     int32
	time     int32
	texSheet int32

	vao     uint32
	quadVBO uint32
	instVBO uint32
}

func newParticleProgram() *particleProgram {
	prg := &particleProgram{}
	prg.createProgram(string(shaders.ParticleVertexShader), string(shaders.ParticleShader))

	prg.view = prg.uniform("view")
	prg.time = prg.uniform("time")
	prg.texSheet = prg.uniform("tex_sheet")

	gl.GenVertexArrays(1, &prg.vao)
	gl.BindVertexArray(prg.vao)

	prg.quadVBO = newQuadVBO(prg.attrib("position"))

	gl.GenBuffers(1, &prg.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, prg.instVBO)
	setupInstanceAttribs(&prg.shader, []instanceAttrib{
		{"i_spawn_pos", 2},
		{"i_velocity", 2},
		{"i_acceleration", 2},
		{"i_kinematics", 4},
		{"i_angle", 2},
		{"i_scale", 4},
		{"i_color_start", 4},
		{"i_color_end", 4},
		{"i_sheet_pos", 3},
		{"i_sheet_size", 2},
	}, particleLen)

	gl.BindVertexArray(0)

	return prg
}

func (prg *particleProgram) destroy() {
	gl.DeleteBuffers(1, &prg.instVBO)
	gl.DeleteBuffers(1, &prg.quadVBO)
	gl.DeleteVertexArrays(1, &prg.vao)
	prg.shader.destroy()
}

func (prg *particleProgram) draw(view [16]float32, sheet *SpriteSheet, ps *ParticleSystem) {
	if len(ps.particles) == 0 {
		return
	}

	gl.UseProgram(prg.handle)
	gl.UniformMatrix4fv(prg.view, 1, false, &view[0])
	gl.Uniform1f(prg.time, ps.Clock())

	sheet.bind(0)
	gl.Uniform1i(prg.texSheet, 0)

	gl.BindVertexArray(prg.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, prg.instVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(ps.particles)*particleLen*4, gl.Ptr(ps.particles), gl.STREAM_DRAW)

	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(len(ps.particles)))
	gl.BindVertexArray(0)
}
