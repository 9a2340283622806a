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

package performance

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"
)

// weighting of the most recent frame in the moving average.
const frameWeighting = 0.8

// Counter accumulates call counts and time spent for one named site.
type Counter struct {
	Name string

	totalCalls     int
	callsThisFrame int
	totalTime      float64
	timeThisFrame  float64
}

func (ct *Counter) add(start time.Time) {
	d := time.Since(start).Seconds()
	ct.totalCalls++
	ct.callsThisFrame++
	ct.totalTime += d
	ct.timeThisFrame += d
}

// Marker measures the time between its creation with Collector.Start() and
// the call to End().
type Marker struct {
	col   *Collector
	name  string
	start time.Time
}

// End the measurement and record it against the named counter.
func (mk Marker) End() {
	mk.col.end(mk)
}

// Collector gathers frame times and named counters for the running game.
//
// The Frame() function must be called once per frame for the frame statistics
// to mean anything.
type Collector struct {
	crit sync.Mutex

	counters map[string]*Counter
	window   Window

	start         time.Time
	numFrames     int
	lastTime      float64
	weightedTime  float64
	totalTime     float64
	minFrameTime  float64
	maxFrameTime  float64
}

// NewCollector is the preferred method of initialisation for the Collector
// type.
func NewCollector() *Collector {
	return &Collector{
		counters:     make(map[string]*Counter),
		window:       Window{Mode: LogEvery, N: 100},
		start:        time.Now(),
		minFrameTime: math.MaxFloat64,
		maxFrameTime: -1,
	}
}

// Start a measurement against the named counter. The counter is created on
// first use.
func (col *Collector) Start(name string) Marker {
	return Marker{
		col:   col,
		name:  name,
		start: time.Now(),
	}
}

func (col *Collector) end(mk Marker) {
	col.crit.Lock()
	defer col.crit.Unlock()

	ct, ok := col.counters[mk.name]
	if !ok {
		ct = &Counter{Name: mk.name}
		col.counters[mk.name] = ct
	}
	ct.add(mk.start)
}

// SetWindow changes what the collector captures and when it reports.
func (col *Collector) SetWindow(w Window) {
	col.crit.Lock()
	defer col.crit.Unlock()
	col.window = w
}

// Frame marks the end of a frame, updating frame statistics and reporting
// according to the capture window.
func (col *Collector) Frame(report io.Writer) {
	col.crit.Lock()
	defer col.crit.Unlock()

	if !col.window.shouldCapture() {
		return
	}

	end := time.Now()
	frameTime := end.Sub(col.start).Seconds()

	col.window = col.window.step()
	col.start = end
	col.numFrames++
	col.totalTime += frameTime
	col.lastTime = frameTime
	if frameTime < col.minFrameTime {
		col.minFrameTime = frameTime
	}
	if frameTime > col.maxFrameTime {
		col.maxFrameTime = frameTime
	}
	col.weightedTime = col.weightedTime*(1.0-frameWeighting) + frameTime*frameWeighting

	if report != nil && col.window.shouldLog(col.numFrames) {
		col.report(report)
	}

	// per-frame tallies are reset every frame regardless of reporting
	for _, ct := range col.counters {
		ct.callsThisFrame = 0
		ct.timeThisFrame = 0
	}
}

// NumFrames returns the number of frames seen by the collector.
func (col *Collector) NumFrames() int {
	col.crit.Lock()
	defer col.crit.Unlock()
	return col.numFrames
}

// FPS returns the frame rate over the lifetime of the collector and the
// weighted rate over recent frames.
func (col *Collector) FPS() (average float64, recent float64) {
	col.crit.Lock()
	defer col.crit.Unlock()

	if col.numFrames == 0 || col.totalTime == 0 {
		return 0, 0
	}
	average = float64(col.numFrames) / col.totalTime
	if col.weightedTime > 0 {
		recent = 1.0 / col.weightedTime
	}
	return average, recent
}

// Report writes a summary of frame statistics and every counter to the
// io.Writer.
func (col *Collector) Report(output io.Writer) {
	col.crit.Lock()
	defer col.crit.Unlock()
	col.report(output)
}

// report() assumes the critical section is already held.
func (col *Collector) report(output io.Writer) {
	if col.numFrames == 0 {
		return
	}

	fmt.Fprintf(output, "frame #%d\nthis: %.5f wgh: %.5f avg: %.5f min: %.5f max: %.5f\n",
		col.numFrames,
		col.lastTime,
		col.weightedTime,
		col.totalTime/float64(col.numFrames),
		col.minFrameTime,
		col.maxFrameTime,
	)

	names := make([]string, 0, len(col.counters))
	for name := range col.counters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ct := col.counters[name]
		if ct.totalCalls == 0 {
			continue
		}
		var frame float64
		if ct.callsThisFrame > 0 {
			frame = ct.timeThisFrame / float64(ct.callsThisFrame)
		}
		fmt.Fprintf(output, " %s - frame: %.5f avg: %.5f calls: %d\n",
			ct.Name,
			frame,
			ct.totalTime/float64(ct.totalCalls),
			ct.totalCalls,
		)
	}
}

// BorrowCounters gives the provided function the critical section and access
// to the counters. The map must not be retained after the function returns.
func (col *Collector) BorrowCounters(f func(map[string]*Counter)) {
	col.crit.Lock()
	defer col.crit.Unlock()
	f(col.counters)
}
