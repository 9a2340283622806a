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
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/kvisten/kvist/logger"
)

// watcher marks asset files dirty when they change on disk.
//
// The containing directory is watched rather than the file itself. Many
// editors save by writing a new file and renaming it over the old one, which
// would break a watch on the file.
type watcher struct {
	fsw *fsnotify.Watcher

	crit    sync.Mutex
	files   map[string]bool
	changed map[string]bool

	done chan struct{}
}

func newWatcher() (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fsw:     fsw,
		files:   make(map[string]bool),
		changed: make(map[string]bool),
		done:    make(chan struct{}),
	}

	go w.run()

	return w, nil
}

func (w *watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p := filepath.Clean(ev.Name)
			w.crit.Lock()
			if w.files[p] {
				w.changed[p] = true
			}
			w.crit.Unlock()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "asset", err)
		}
	}
}

// add a file to the watch list.
func (w *watcher) add(path string) error {
	w.crit.Lock()
	w.files[filepath.Clean(path)] = true
	w.crit.Unlock()

	// adding the same directory twice is fine; fsnotify treats it as a no-op
	return w.fsw.Add(filepath.Dir(path))
}

// dirty returns true, once, if the file has changed since the last call.
func (w *watcher) dirty(path string) bool {
	w.crit.Lock()
	defer w.crit.Unlock()

	p := filepath.Clean(path)
	if w.changed[p] {
		delete(w.changed, p)
		return true
	}
	return false
}

func (w *watcher) close() error {
	close(w.done)
	return w.fsw.Close()
}
