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

	"github.com/kvisten/kvist/renderer/framebuffer"
	"github.com/kvisten/kvist/renderer/shaders"
)

// blurShader runs one of the blur fragment stages over a source texture.
// The vertex stage generates a fullscreen quad from gl_VertexID so no
// vertex buffer is needed, only an empty VAO.
type blurShader struct {
	shader

	texCol    int32
	pixelSize int32
}

func newBlurShader(fragProgram []byte) *blurShader {
	sh := &blurShader{}
	sh.createProgram(string(shaders.PostVertexShader), string(fragProgram))
	sh.texCol = sh.uniform("tex_col")
	sh.pixelSize = sh.uniform("pixel_size")
	return sh
}

func (sh *blurShader) draw(vao uint32, srcTexture uint32, width int32, height int32) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, srcTexture)
	gl.Uniform1i(sh.texCol, 0)

	gl.Uniform2f(sh.pixelSize, 1.0/float32(width), 1.0/float32(height))

	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// compositeShader sums the scene texture and the bloom texture into
// whatever framebuffer is bound.
type compositeShader struct {
	shader

	texCol   int32
	texWhite int32
}

func newCompositeShader() *compositeShader {
	sh := &compositeShader{}
	sh.createProgram(string(shaders.PostVertexShader), string(shaders.CompositeShader))
	sh.texCol = sh.uniform("tex_col")
	sh.texWhite = sh.uniform("tex_white")
	return sh
}

func (sh *compositeShader) draw(vao uint32, colTexture uint32, whiteTexture uint32) {
	gl.UseProgram(sh.handle)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, colTexture)
	gl.Uniform1i(sh.texCol, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, whiteTexture)
	gl.Uniform1i(sh.texWhite, 1)

	gl.BindVertexArray(vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// postSequencer chains the post-processing stages over the rendered scene:
// wide blur, then soft blur, both at half resolution, then composite back
// over the scene at full resolution.
type postSequencer struct {
	seq *framebuffer.Sequence

	blurWide  *blurShader
	blurSoft  *blurShader
	composite *compositeShader

	// fullscreen quad geometry comes from gl_VertexID; the VAO carries no
	// attributes
	vao uint32

	// stand-in bloom texture for when the chain is disabled
	black uint32
}

func newPostSequencer() *postSequencer {
	pst := &postSequencer{
		seq:       framebuffer.NewSequence(2),
		blurWide:  newBlurShader(shaders.BlurWideShader),
		blurSoft:  newBlurShader(shaders.BlurSoftShader),
		composite: newCompositeShader(),
	}
	gl.GenVertexArrays(1, &pst.vao)

	gl.GenTextures(1, &pst.black)
	gl.BindTexture(gl.TEXTURE_2D, pst.black)
	empty := make([]uint8, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(empty))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	return pst
}

func (pst *postSequencer) destroy() {
	gl.DeleteTextures(1, &pst.black)
	gl.DeleteVertexArrays(1, &pst.vao)
	pst.composite.destroy()
	pst.blurSoft.destroy()
	pst.blurWide.destroy()
	pst.seq.Destroy()
}

// process the scene texture into the currently bound window surface.
func (pst *postSequencer) process(sceneTexture uint32, width int32, height int32, bloom bool) {
	white := pst.black

	if bloom {
		halfW := max(width/2, 1)
		halfH := max(height/2, 1)

		pst.seq.Setup(halfW, halfH)
		gl.Viewport(0, 0, halfW, halfH)

		wide := pst.seq.Process(0, func() {
			pst.blurWide.draw(pst.vao, sceneTexture, halfW, halfH)
		})
		white = pst.seq.Process(1, func() {
			pst.blurSoft.draw(pst.vao, wide, halfW, halfH)
		})
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	pst.composite.draw(pst.vao, sceneTexture, white)
}
