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

	"github.com/kvisten/kvist/prefs"
	"github.com/kvisten/kvist/resources"
)

// Preferences for the engine. Saved and loaded from disk through the prefs
// package.
type Preferences struct {
	dsk *prefs.Disk

	// window dimensions on startup. zero means a size relative to the display
	WindowWidth  prefs.Int
	WindowHeight prefs.Int

	// synchronise buffer swaps with the monitor refresh rate. when disabled
	// the frame rate is capped by FrameCap instead
	VSync prefs.Bool

	// frame rate used when VSync is disabled
	FrameCap prefs.Int

	// enable the blur stages of the post-processing chain
	Bloom prefs.Bool

	// master gain applied to all mixed audio
	MasterGain prefs.Float
}

// sensible defaults for a freshly installed engine.
const (
	defVSync      = true
	defFrameCap   = 60
	defBloom      = true
	defMasterGain = 1.0
)

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("engine.window.width", &p.WindowWidth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("engine.window.height", &p.WindowHeight)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("engine.vsync", &p.VSync)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("engine.framecap", &p.FrameCap)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("engine.bloom", &p.Bloom)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("engine.audio.mastergain", &p.MasterGain)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.WindowWidth.Set(0)
	p.WindowHeight.Set(0)
	p.VSync.Set(defVSync)
	p.FrameCap.Set(defFrameCap)
	p.Bloom.Set(defBloom)
	p.MasterGain.Set(defMasterGain)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
