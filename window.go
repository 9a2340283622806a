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
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kvisten/kvist/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// window is the SDL window and the GL context attached to it. there is only
// ever one window and it belongs to the Game type.
type window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode
}

// list of swap interval values. these are the values defined and expected by
// the SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// newWindow is the preferred method of initialisation for the window type. on
// success the GL context is current on the calling goroutine and gl.Init()
// has been called.
func newWindow(title string, width int, height int) (*window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &window{}

	win.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", win.mode.RefreshRate)

	// a width or height of zero means a window sized relative to the display
	if width <= 0 || height <= 0 {
		width = int(float32(win.mode.W) * 0.80)
		height = int(float32(win.mode.H) * 0.80)
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		_ = win.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = gl.Init()
	if err != nil {
		_ = win.destroy()
		return nil, fmt.Errorf("gl: %w", err)
	}

	return win, nil
}

func (win *window) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// drawableSize returns the size of the GL drawable in pixels. on high-dpi
// displays this is larger than the window size.
func (win *window) drawableSize() (int, int) {
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (win *window) swap() {
	win.window.GLSwap()
}

func (win *window) setTitle(title string) {
	win.window.SetTitle(title)
}

func (win *window) setFullscreen(set bool) {
	if set {
		_ = win.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		_ = win.window.SetFullscreen(0)
	}
}

// destroy cleans up the window resources and shuts SDL down.
func (win *window) destroy() error {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}

	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			return err
		}
		win.window = nil
	}
	sdl.Quit()

	return nil
}
