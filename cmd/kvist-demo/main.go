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

// A small demonstration game. Exercises sprites, particles, text, audio and
// input binding.
//
// All asset flags are optional. Without them the demo still runs, drawing
// untextured rects and a particle fountain.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/kvisten/kvist"
	"github.com/kvisten/kvist/asset"
	"github.com/kvisten/kvist/audio"
	"github.com/kvisten/kvist/debugger"
	"github.com/kvisten/kvist/input"
	"github.com/kvisten/kvist/logger"
	"github.com/kvisten/kvist/random"
	"github.com/kvisten/kvist/renderer"
	"github.com/kvisten/kvist/statsview"
	"github.com/veandco/go-sdl2/sdl"
)

type action int

const (
	moveUp action = iota
	moveDown
	moveLeft
	moveRight
	zoomIn
	zoomOut
	burst
	playSound
	toggleBloom
	dumpState
	quit
)

func main() {
	imagePath := flag.String("image", "", "png/jpeg to draw as sprites")
	audioPath := flag.String("audio", "", "wav/mp3/ogg to play on the spacebar")
	fontPath := flag.String("font", "", "ttf/otf for the overlay text")
	stats := flag.Bool("statsview", false, "run the runtime stats server (requires the statsview build tag)")
	flag.Parse()

	logger.SetEcho(os.Stderr, false)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	err := run(*imagePath, *audioPath, *fontPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(10)
	}
}

func run(imagePath string, audioPath string, fontPath string) error {
	gm, err := kvist.NewGame[action]("kvist demo")
	if err != nil {
		return err
	}
	defer gm.Destroy()

	gm.Input.Bind(moveUp, input.Key{Code: sdl.K_w}, input.Key{Code: sdl.K_UP})
	gm.Input.Bind(moveDown, input.Key{Code: sdl.K_s}, input.Key{Code: sdl.K_DOWN})
	gm.Input.Bind(moveLeft, input.Key{Code: sdl.K_a}, input.Key{Code: sdl.K_LEFT})
	gm.Input.Bind(moveRight, input.Key{Code: sdl.K_d}, input.Key{Code: sdl.K_RIGHT})
	gm.Input.Bind(zoomIn, input.Key{Code: sdl.K_e})
	gm.Input.Bind(zoomOut, input.Key{Code: sdl.K_q})
	gm.Input.Bind(burst, input.MouseButton{Button: input.MouseLeft},
		input.ControllerButton{Button: sdl.CONTROLLER_BUTTON_A})
	gm.Input.Bind(playSound, input.Key{Code: sdl.K_SPACE})
	gm.Input.Bind(toggleBloom, input.Key{Code: sdl.K_b})
	gm.Input.Bind(dumpState, input.Key{Code: sdl.K_F12})
	gm.Input.Bind(quit, input.Key{Code: sdl.K_ESCAPE})

	// sprite sheet region for the -image flag
	var sprite renderer.Sprite
	var region renderer.Region
	textured := false
	if imagePath != "" {
		id, err := gm.Assets.LoadImage(imagePath)
		if err != nil {
			return err
		}
		layer, err := gm.Renderer.Sheet().Add(gm.Assets.Image(id))
		if err != nil {
			return err
		}
		region = gm.Renderer.Sheet().Whole(layer)
		sprite = gm.Renderer.Sheet().Sprite(region)
		textured = true
	}

	var samples asset.Samples
	if audioPath != "" {
		id, err := gm.Assets.LoadAudio(audioPath)
		if err != nil {
			return err
		}
		samples = gm.Assets.Audio(id).Samples()
	}

	var overlay *renderer.Text
	if fontPath != "" {
		id, err := gm.Assets.LoadFont(fontPath, 18)
		if err != nil {
			return err
		}
		overlay, err = gm.Renderer.AddFont(gm.Assets.Font(id))
		if err != nil {
			return err
		}
	}

	// a continuous fountain at the origin. angles are radians: spray
	// upwards around pi/2, accelerate straight down
	fountain := renderer.NewParticleSystem()
	fountain.Lifetime = random.NewProperty(1.0, 2.5)
	fountain.VelocityAngle = random.NewProperty(80*math.Pi/180, 100*math.Pi/180)
	fountain.VelocityMagnitude = random.NewProperty(150, 300)
	fountain.AccelAngle = random.NewProperty(3*math.Pi/2, 3*math.Pi/2)
	fountain.AccelMagnitude = random.NewProperty(200, 200)
	fountain.Drag = random.NewProperty(0.2, 0.5)
	fountain.SpinDrag = random.NewProperty(0.5, 1.0)
	fountain.ScaleStartX = random.NewProperty(4, 8)
	fountain.ScaleStartY = random.NewProperty(4, 8)
	fountain.ScaleEndX = random.NewProperty(0, 1)
	fountain.ScaleEndY = random.NewProperty(0, 1)
	fountain.ColorStart = renderer.NewColorProperty(renderer.RGB(1.0, 0.8, 0.2))
	fountain.ColorEnd = renderer.NewColorProperty(renderer.Color{R: 1.0, G: 0.2, B: 0.1, A: 0.0})

	// bursts follow the mouse, spraying in all directions
	sparks := renderer.NewParticleSystem()
	sparks.Lifetime = random.NewProperty(0.3, 0.8)
	sparks.VelocityMagnitude = random.NewProperty(50, 250)
	sparks.Drag = random.NewProperty(2, 4)
	sparks.ScaleStartX = random.NewProperty(2, 4)
	sparks.ScaleStartY = random.NewProperty(2, 4)
	sparks.ColorStart = renderer.NewColorProperty(renderer.RGB(0.4, 0.8, 1.0))
	sparks.ColorEnd = renderer.NewColorProperty(renderer.Color{R: 0.1, G: 0.2, B: 1.0, A: 0.0})
	if textured {
		sparks.Sprites = []renderer.Region{region}
	}

	return gm.Run(func(dt float32) {
		if gm.Input.Pressed(quit) {
			gm.Quit()
		}

		cam := &gm.Renderer.Camera
		const camSpeed = 300
		if gm.Input.Down(moveUp) {
			cam.Move(0, camSpeed*dt)
		}
		if gm.Input.Down(moveDown) {
			cam.Move(0, -camSpeed*dt)
		}
		if gm.Input.Down(moveLeft) {
			cam.Move(-camSpeed*dt, 0)
		}
		if gm.Input.Down(moveRight) {
			cam.Move(camSpeed*dt, 0)
		}
		if gm.Input.Down(zoomIn) {
			cam.Zoom *= 1 + dt
		}
		if gm.Input.Down(zoomOut) {
			cam.Zoom /= 1 + dt
		}

		if gm.Input.Pressed(toggleBloom) {
			gm.Renderer.Bloom = !gm.Renderer.Bloom
			gm.Prefs.Bloom.Set(gm.Renderer.Bloom)
		}

		if gm.Input.Pressed(playSound) && len(samples.Data) > 0 {
			gm.Audio.Play(samples, audio.DefaultOptions())
		}

		if gm.Input.Pressed(dumpState) {
			err := debugger.DumpToFile("kvist-demo.dot", gm)
			if err != nil {
				logger.Log(logger.Allow, "demo", err)
			}
		}

		if gm.Input.Pressed(burst) {
			mx, my := gm.Input.Mouse()
			sparks.X, sparks.Y = mouseToWorld(gm, mx, my)
			sparks.Spawn(50)
		}

		fountain.Spawn(int(dt * 400))
		fountain.Update(dt)
		sparks.Update(dt)
		gm.Renderer.PushParticles(fountain)
		gm.Renderer.PushParticles(sparks)

		// a small grid of stamps behind the fountain
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				px := float32(x) * 100
				py := float32(y) * 100
				if textured {
					gm.Renderer.Push(sprite.At(px, py).Size(64, 64))
				} else {
					tint := renderer.RGB(0.2, 0.3, 0.4)
					gm.Renderer.Push(renderer.NewRect().At(px, py).Size(64, 64).Tint(tint))
				}
			}
		}

		if overlay != nil {
			_, recent := gm.Perf.FPS()
			x, y := mouseToWorld(gm, 10, 30)
			overlay.Push(gm.Renderer, fmt.Sprintf("%.1f fps", recent), x, y, renderer.White)
		}
	})
}

// mouseToWorld converts a window position to world coordinates. Camera
// rotation is not accounted for.
func mouseToWorld[T comparable](gm *kvist.Game[T], mx int, my int) (float32, float32) {
	w, h := gm.WindowSize()
	cam := gm.Renderer.Camera

	ndcX := 2*float32(mx)/float32(w) - 1
	ndcY := 1 - 2*float32(my)/float32(h)

	return cam.X + ndcX*float32(w)/(2*cam.Zoom), cam.Y + ndcY*float32(h)/(2*cam.Zoom)
}
