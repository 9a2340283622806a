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
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kvisten/kvist/logger"
	"github.com/kvisten/kvist/renderer/framebuffer"
)

// Renderer draws the frame. Stamps and particle systems are pushed during
// the frame; Draw() renders them into an offscreen scene texture and runs
// the post-processing chain into the window surface.
type Renderer struct {
	// Camera applied to all stamps and particles this frame
	Camera Camera

	// Bloom enables the blur stages of the post-processing chain. The
	// composite stage always runs
	Bloom bool

	width  int32
	height int32

	sheet     *SpriteSheet
	scene     *framebuffer.Sequence
	sprites   *spriteProgram
	particles *particleProgram
	post      *postSequencer

	instances []Instance
	systems   []*ParticleSystem
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. Requires a current GL context; the window system must have called
// gl.Init() already.
func NewRenderer(width int, height int) (*Renderer, error) {
	rnd := &Renderer{
		Camera: NewCamera(),
		Bloom:  true,
		width:  int32(width),
		height: int32(height),
	}

	var err error
	func() {
		// shader compilation failure panics deep in the GL helpers.
		// recover it into an error at this boundary
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("renderer: %v", r)
			}
		}()

		rnd.sheet = NewSpriteSheet()
		rnd.scene = framebuffer.NewSequence(1)
		rnd.sprites = newSpriteProgram()
		rnd.particles = newParticleProgram()
		rnd.post = newPostSequencer()
	}()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "renderer", "GL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return rnd, nil
}

// Destroy all GL resources held by the renderer.
func (rnd *Renderer) Destroy() {
	rnd.post.destroy()
	rnd.particles.destroy()
	rnd.sprites.destroy()
	rnd.scene.Destroy()
	rnd.sheet.Destroy()
}

// Resize the output surface.
func (rnd *Renderer) Resize(width int, height int) {
	rnd.width = int32(width)
	rnd.height = int32(height)
}

// Sheet returns the sprite sheet images are uploaded to.
func (rnd *Renderer) Sheet() *SpriteSheet {
	return rnd.sheet
}

// Push a stamp for drawing this frame. Stamps are drawn in push order.
func (rnd *Renderer) Push(s Stamp) {
	rnd.instances = append(rnd.instances, s.instance())
}

// PushParticles schedules a particle system for drawing this frame.
// Particles draw over stamps.
func (rnd *Renderer) PushParticles(ps *ParticleSystem) {
	rnd.systems = append(rnd.systems, ps)
}

// Draw everything pushed since the last Draw and present it through the
// post-processing chain. The pushed stamps and particle systems are
// forgotten afterwards.
func (rnd *Renderer) Draw() {
	rnd.sheet.Refresh()

	rnd.scene.Setup(rnd.width, rnd.height)
	rnd.scene.Clear(0)

	view := rnd.Camera.Matrix(rnd.width, rnd.height)

	sceneTexture := rnd.scene.Process(0, func() {
		gl.Viewport(0, 0, rnd.width, rnd.height)

		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.Disable(gl.DEPTH_TEST)

		rnd.sprites.draw(view, rnd.sheet, rnd.instances)
		for _, ps := range rnd.systems {
			rnd.particles.draw(view, rnd.sheet, ps)
		}
	})

	rnd.post.process(sceneTexture, rnd.width, rnd.height, rnd.Bloom)

	rnd.instances = rnd.instances[:0]
	rnd.systems = rnd.systems[:0]
}
