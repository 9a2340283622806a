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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kvisten/kvist/prefs"
	"github.com/kvisten/kvist/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "kvist_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		t.Logf("expected:\n%s", expected)
		t.Logf("in file:\n%s", string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectSuccess(t, err)

	err = v.Set(true)
	test.ExpectSuccess(t, err)

	// any string other than "true" sets a Bool to false
	err = w.Set("foo")
	test.ExpectSuccess(t, err)
	err = x.Set("true")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.ExpectSuccess(t, err)

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// setting a Bool with an unsupported type is an error
	err = v.Set(100)
	test.ExpectFailure(t, err)
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	err = dsk.Add("foo", &v)
	test.ExpectSuccess(t, err)

	err = v.Set("bar")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.ExpectSuccess(t, err)

	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectSuccess(t, err)
	err = dsk.Add("numberB", &w)
	test.ExpectSuccess(t, err)

	err = v.Set(10)
	test.ExpectSuccess(t, err)

	// test string conversion to int
	err = w.Set("99")
	test.ExpectSuccess(t, err)

	err = dsk.Save()
	test.ExpectSuccess(t, err)

	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	err = v.Set("---")
	test.ExpectFailure(t, err)

	err = v.Set(1.0)
	test.ExpectFailure(t, err)
}

func TestFloat(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Float
	err = dsk.Add("gain", &v)
	test.ExpectSuccess(t, err)

	err = v.Set(0.5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(float64), 0.5)

	err = v.Set("0.25")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.Get().(float64), 0.25)
}

// values saved by one Disk instance survive a round trip through a second
// instance sharing the same file
func TestLoadSave(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	err = dsk.Add("number", &v)
	test.ExpectSuccess(t, err)
	err = v.Set(42)
	test.ExpectSuccess(t, err)
	err = dsk.Save()
	test.ExpectSuccess(t, err)

	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w prefs.Int

	// Add sets the value from disk immediately
	err = dsk2.Add("number", &w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.Get().(int), 42)

	// HasEntry sees the saved key
	ok, err := dsk2.HasEntry("number")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)

	ok, err = dsk2.HasEntry("no such key")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

// hooks are called either side of the value being updated
func TestHooks(t *testing.T) {
	var v prefs.Bool

	var pre bool
	var post bool

	v.SetHookPre(func(val prefs.Value) error {
		pre = true

		// the hook sees the new value before it is stored
		test.ExpectEquality(t, val.(bool), true)
		test.ExpectEquality(t, v.Get().(bool), false)
		return nil
	})
	v.SetHookPost(func(val prefs.Value) error {
		post = true
		test.ExpectEquality(t, v.Get().(bool), true)
		return nil
	})

	err := v.Set(true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, pre)
	test.ExpectSuccess(t, post)
}
