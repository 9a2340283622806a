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

package kvist

import (
	"strings"
	"time"

	"github.com/kvisten/kvist/asset"
	"github.com/kvisten/kvist/audio"
	"github.com/kvisten/kvist/input"
	"github.com/kvisten/kvist/logger"
	"github.com/kvisten/kvist/performance"
	"github.com/kvisten/kvist/performance/limiter"
	"github.com/kvisten/kvist/renderer"
	"github.com/kvisten/kvist/version"
)

// Game ties the engine together. The type parameter is the action type used
// for input binding, any comparable type will do but a defined constant type
// is the most convenient:
//
//	type action int
//
//	const (
//		jump action = iota
//		shoot
//	)
//
//	gm, err := kvist.NewGame[action]("example")
//
// The exported fields are the engine subsystems. They are safe to use
// directly from the update function.
type Game[T comparable] struct {
	Prefs    *Preferences
	Assets   *asset.System
	Input    *input.Manager[T]
	Renderer *renderer.Renderer
	Audio    *audio.Mixer
	Perf     *performance.Collector

	win    *window
	player *audio.Player
	lim    *limiter.FpsLimiter

	width  int
	height int

	lastFrame time.Time
	quit      bool
}

// NewGame is the preferred method of initialisation for the Game type. It
// must be called from the main goroutine and the returned Game must stay on
// that goroutine.
func NewGame[T comparable](title string) (*Game[T], error) {
	vers, rev, _ := version.Version()
	logger.Logf(logger.Allow, "kvist", "version %s (%s)", vers, rev)

	gm := &Game[T]{}

	var err error

	gm.Prefs, err = newPreferences()
	if err != nil {
		return nil, err
	}

	gm.win, err = newWindow(title,
		gm.Prefs.WindowWidth.Get().(int),
		gm.Prefs.WindowHeight.Get().(int))
	if err != nil {
		return nil, err
	}

	if gm.Prefs.VSync.Get().(bool) {
		gm.win.setSwapInterval(syncWithVerticalRetrace)
	} else {
		gm.win.setSwapInterval(syncImmediateUpdate)
	}

	gm.width, gm.height = gm.win.drawableSize()
	gm.Renderer, err = renderer.NewRenderer(gm.width, gm.height)
	if err != nil {
		_ = gm.win.destroy()
		return nil, err
	}
	gm.Renderer.Bloom = gm.Prefs.Bloom.Get().(bool)

	gm.Assets = asset.NewSystem()
	err = gm.Assets.Watch()
	if err != nil {
		// not fatal. the asset system polls modification times instead
		logger.Log(logger.Allow, "kvist", err)
	}

	gm.Input = input.NewManager[T]()

	gm.Audio = audio.NewMixer()
	gm.Audio.SetMasterGain(float32(gm.Prefs.MasterGain.Get().(float64)))
	gm.player, err = audio.NewPlayer(gm.Audio)
	if err != nil {
		// not fatal. the game runs without sound
		logger.Log(logger.Allow, "kvist", err)
		gm.player = nil
	}

	gm.Perf = performance.NewCollector()
	gm.Perf.SetWindow(performance.Window{Mode: performance.Silent})

	gm.lim, err = limiter.NewFPSLimiter(gm.Prefs.FrameCap.Get().(int))
	if err != nil {
		gm.Destroy()
		return nil, err
	}

	return gm, nil
}

// Quit ends the Run() loop at the end of the current frame.
func (gm *Game[T]) Quit() {
	gm.quit = true
}

// SetTitle changes the window title.
func (gm *Game[T]) SetTitle(title string) {
	gm.win.setTitle(title)
}

// SetFullscreen switches between fullscreen and windowed mode.
func (gm *Game[T]) SetFullscreen(set bool) {
	gm.win.setFullscreen(set)
}

// WindowSize returns the size of the drawable area in pixels.
func (gm *Game[T]) WindowSize() (int, int) {
	return gm.width, gm.height
}

// Run the game loop. The update function is called once per frame with the
// time in seconds since the previous frame. Input has been polled and assets
// reloaded by the time update is called; anything pushed to the Renderer
// during update is drawn when update returns.
//
// Run returns when the window is closed or after a call to Quit().
func (gm *Game[T]) Run(update func(dt float32)) error {
	gm.lastFrame = time.Now()

	for !gm.quit {
		gm.Input.Poll()
		if gm.Input.Quit() {
			gm.quit = true
		}

		// window may have been resized or moved to another display
		if w, h := gm.win.drawableSize(); w != gm.width || h != gm.height {
			gm.width, gm.height = w, h
			gm.Renderer.Resize(w, h)
		}

		err := gm.Assets.Reload()
		if err != nil {
			logger.Log(logger.Allow, "kvist", err)
		}

		now := time.Now()
		dt := float32(now.Sub(gm.lastFrame).Seconds())
		gm.lastFrame = now

		mk := gm.Perf.Start("update")
		update(dt)
		mk.End()

		mk = gm.Perf.Start("draw")
		gm.Renderer.Draw()
		mk.End()

		if gm.player != nil {
			err = gm.player.Service()
			if err != nil {
				logger.Log(logger.Allow, "kvist", err)
			}
		}

		gm.win.swap()

		if !gm.Prefs.VSync.Get().(bool) {
			gm.lim.Wait()
		}

		gm.Perf.Frame(perfLog{})
	}

	return nil
}

// Destroy the game, releasing the window, the GL context and the audio
// device. The Game must not be used afterwards.
func (gm *Game[T]) Destroy() {
	if gm.player != nil {
		_ = gm.player.Close()
		gm.player = nil
	}
	if gm.Input != nil {
		gm.Input.Close()
	}
	if gm.Assets != nil {
		_ = gm.Assets.Close()
	}
	if gm.Renderer != nil {
		gm.Renderer.Destroy()
	}
	if gm.win != nil {
		_ = gm.win.destroy()
		gm.win = nil
	}
}

// perfLog forwards performance reports to the central logger.
type perfLog struct{}

func (perfLog) Write(p []byte) (int, error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		logger.Log(logger.Allow, "performance", s)
	}
	return len(p), nil
}
