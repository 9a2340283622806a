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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/kvisten/kvist/performance"
	"github.com/kvisten/kvist/test"
)

func TestCounters(t *testing.T) {
	col := performance.NewCollector()

	mk := col.Start("section")
	time.Sleep(time.Millisecond)
	mk.End()

	mk = col.Start("section")
	mk.End()

	col.BorrowCounters(func(counters map[string]*performance.Counter) {
		test.DemandEquality(t, len(counters), 1)
		ct, ok := counters["section"]
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, ct.Name, "section")
	})

	// the counter appears in the report
	w := &strings.Builder{}
	col.Frame(nil)
	col.Report(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "section"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "frame #1"))
}

func TestFrameCapture(t *testing.T) {
	col := performance.NewCollector()

	// frames are not captured when the window mode is Nothing
	col.SetWindow(performance.Window{Mode: performance.Nothing})
	col.Frame(nil)
	col.Frame(nil)
	test.ExpectEquality(t, col.NumFrames(), 0)

	col.SetWindow(performance.Window{Mode: performance.Silent})
	col.Frame(nil)
	col.Frame(nil)
	test.ExpectEquality(t, col.NumFrames(), 2)
}

func TestCaptureFor(t *testing.T) {
	col := performance.NewCollector()

	// capture two more frames and then stop
	col.SetWindow(performance.Window{Mode: performance.CaptureFor, N: 1})
	for range 10 {
		col.Frame(nil)
	}
	test.ExpectEquality(t, col.NumFrames(), 2)
}

func TestLogEvery(t *testing.T) {
	col := performance.NewCollector()
	w := &strings.Builder{}

	col.SetWindow(performance.Window{Mode: performance.LogEvery, N: 5})
	for range 9 {
		col.Frame(w)
	}

	// only frame 5 reported
	test.ExpectEquality(t, strings.Count(w.String(), "frame #"), 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "frame #5"))
}

func TestFPS(t *testing.T) {
	col := performance.NewCollector()

	average, recent := col.FPS()
	test.ExpectEquality(t, average, 0)
	test.ExpectEquality(t, recent, 0)

	for range 5 {
		time.Sleep(10 * time.Millisecond)
		col.Frame(nil)
	}

	average, _ = col.FPS()
	if average <= 0 || average > 110 {
		t.Errorf("implausible fps value: %v", average)
	}
}
