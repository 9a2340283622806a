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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is the first line in a prefs file. Files without this
// line exactly as written are rejected.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// DefaultPrefsFile is the default filename of the main preferences file,
// relative to the resources path.
const DefaultPrefsFile = "kvist.prefs"

// Disk represents preference values that are loaded from and saved to disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the location of the prefs file; the file does not need to
// exist yet.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add places a prefs value under the management of the Disk instance. If the
// prefs file already contains a saved value for the key, the value is set
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use (%s)", key)
	}

	dsk.entries[key] = p

	// load single value if it exists on disk already
	saved, err := dsk.loadEntries()
	if err != nil {
		return err
	}
	if v, ok := saved[key]; ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// HasEntry returns true if the prefs file contains a saved value for the key,
// regardless of whether the key has been added to the Disk instance.
func (dsk *Disk) HasEntry(key string) (bool, error) {
	saved, err := dsk.loadEntries()
	if err != nil {
		return false, err
	}
	_, ok := saved[key]
	return ok, nil
}

// read the prefs file into a map of raw string values. entries belonging to
// other Disk instances sharing the same file are preserved through this map.
func (dsk *Disk) loadEntries() (map[string]string, error) {
	saved := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return saved, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boilerplate warning on first line
	if scanner.Scan() {
		if scanner.Text() != WarningBoilerPlate {
			return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
		}
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) == 2 {
			saved[kv[0]] = kv[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return saved, nil
}

// Load prefs from disk, setting every added value with a saved entry.
func (dsk *Disk) Load() error {
	saved, err := dsk.loadEntries()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if v, ok := saved[key]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %w", err)
			}
		}
	}

	return nil
}

// Save prefs to disk. Saved entries not managed by this Disk instance are
// preserved.
func (dsk *Disk) Save() error {
	// load any existing entries so that keys belonging to another Disk
	// instance are not lost
	saved, err := dsk.loadEntries()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		saved[key] = p.String()
	}

	// sorted keys give a stable file layout
	keys := make([]string, 0, len(saved))
	for key := range saved {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, saved[key]))
	}

	if _, err := f.WriteString(s.String()); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Reset all added values to their zero state. The reset values are not saved
// to disk automatically.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
