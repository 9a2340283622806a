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

package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Pixels is a marker type for the unit pixels.
type Pixels = int

// ImageID refers to an image loaded into a System.
type ImageID int

// AudioID refers to an audio file loaded into a System.
type AudioID int

// FontID refers to a font loaded into a System.
type FontID int

// System owns every asset loaded from disk; images, audio and fonts. All
// loads return a typed ID. The asset itself is retrieved with the
// corresponding getter function.
//
// Call Reload() once per frame to pick up on-disk changes. With Watch()
// enabled a change is noticed through fsnotify; without it every Reload()
// falls back to comparing file modification times.
type System struct {
	images []*Image
	audio  []*Audio
	fonts  []*Font

	watcher *watcher
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem() *System {
	return &System{}
}

// Watch for on-disk changes to loaded assets with a filesystem watcher. If
// the watcher cannot be created the system falls back to polling file
// modification times and an error is returned for information only.
func (sys *System) Watch() error {
	w, err := newWatcher()
	if err != nil {
		return fmt.Errorf("asset: %w", err)
	}
	sys.watcher = w

	// files loaded before Watch() was called need watching too
	for _, img := range sys.images {
		_ = w.add(img.file.path)
	}
	for _, aud := range sys.audio {
		_ = w.add(aud.file.path)
	}
	for _, fnt := range sys.fonts {
		_ = w.add(fnt.file.path)
	}

	return nil
}

// Close releases the filesystem watcher, if there is one.
func (sys *System) Close() error {
	if sys.watcher == nil {
		return nil
	}
	err := sys.watcher.close()
	sys.watcher = nil
	return err
}

// LoadImage loads a new image from disk.
func (sys *System) LoadImage(path string) (ImageID, error) {
	img, err := newImage(path)
	if err != nil {
		return -1, err
	}
	id := ImageID(len(sys.images))
	sys.images = append(sys.images, img)
	if sys.watcher != nil {
		_ = sys.watcher.add(img.file.path)
	}
	return id, nil
}

// LoadAudio loads a new sound from disk.
func (sys *System) LoadAudio(path string) (AudioID, error) {
	aud, err := newAudio(path)
	if err != nil {
		return -1, err
	}
	id := AudioID(len(sys.audio))
	sys.audio = append(sys.audio, aud)
	if sys.watcher != nil {
		_ = sys.watcher.add(aud.file.path)
	}
	return id, nil
}

// LoadFont loads a new font from disk, rasterized at the specified point
// size.
func (sys *System) LoadFont(path string, size float64) (FontID, error) {
	fnt, err := newFont(path, size)
	if err != nil {
		return -1, err
	}
	id := FontID(len(sys.fonts))
	sys.fonts = append(sys.fonts, fnt)
	if sys.watcher != nil {
		_ = sys.watcher.add(fnt.file.path)
	}
	return id, nil
}

// Image returns the image for the ID. Panics if the ID is invalid; an ID can
// only be invalid through programmer error.
func (sys *System) Image(id ImageID) *Image {
	if int(id) < 0 || int(id) >= len(sys.images) {
		panic(fmt.Sprintf("invalid image asset %d", id))
	}
	return sys.images[id]
}

// Audio returns the audio data for the ID. Panics if the ID is invalid.
func (sys *System) Audio(id AudioID) *Audio {
	if int(id) < 0 || int(id) >= len(sys.audio) {
		panic(fmt.Sprintf("invalid audio asset %d", id))
	}
	return sys.audio[id]
}

// Font returns the font for the ID. Panics if the ID is invalid.
func (sys *System) Font(id FontID) *Font {
	if int(id) < 0 || int(id) >= len(sys.fonts) {
		panic(fmt.Sprintf("invalid font asset %d", id))
	}
	return sys.fonts[id]
}

// Reload every asset that has changed on disk since it was last read.
// Assets that fail to reload keep their previous data; the error is
// returned but the remaining assets are still processed.
func (sys *System) Reload() error {
	var firstErr error

	changed := func(f *loadedFile) bool {
		if sys.watcher != nil {
			return sys.watcher.dirty(f.path)
		}
		return f.modified()
	}

	for _, img := range sys.images {
		if changed(&img.file) {
			if err := img.reload(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, aud := range sys.audio {
		if changed(&aud.file) {
			if err := aud.reload(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	for _, fnt := range sys.fonts {
		if changed(&fnt.file) {
			if err := fnt.reload(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// loadedFile records where an asset came from and when it was last read.
type loadedFile struct {
	path         string
	lastModified time.Time
}

// read the file, recording the modification time for later comparison.
func (f *loadedFile) read() ([]byte, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	f.lastModified = info.ModTime()

	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	return b, nil
}

// modified returns true if the file has changed on disk since the last call
// to read(). Modification is checked with os.Stat() and as such might not
// work on all filesystems.
func (f *loadedFile) modified() bool {
	info, err := os.Stat(f.path)
	if err != nil {
		return false
	}
	return !info.ModTime().Equal(f.lastModified)
}

func newLoadedFile(path string) loadedFile {
	return loadedFile{path: filepath.Clean(path)}
}
