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

// WindowMode controls what a Collector does with incoming frames.
type WindowMode int

// List of valid WindowMode values.
const (
	// do not capture anything at all
	Nothing WindowMode = iota

	// capture frame statistics but never report
	Silent

	// capture and report for N more frames, then stop capturing
	CaptureFor

	// capture always, report every N frames
	LogEvery

	// capture and report every frame
	Everything
)

// Window pairs a WindowMode with its frame count, for the modes that need
// one.
type Window struct {
	Mode WindowMode
	N    int
}

func (w Window) shouldLog(frame int) bool {
	switch w.Mode {
	case Everything, CaptureFor:
		return true
	case LogEvery:
		return w.N > 0 && frame%w.N == 0
	}
	return false
}

func (w Window) shouldCapture() bool {
	return w.Mode != Nothing
}

func (w Window) step() Window {
	if w.Mode == CaptureFor {
		if w.N <= 0 {
			return Window{Mode: Nothing}
		}
		return Window{Mode: CaptureFor, N: w.N - 1}
	}
	return w
}
