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

// Package performance measures frame times and arbitrary named sections of
// the game loop.
//
// A Marker measures one section:
//
//	mk := col.Start("particles")
//	particles.Update(delta)
//	mk.End()
//
// Collector.Frame() must be called once per frame. What is captured and how
// often a report is written is controlled by the capture Window.
//
// The limiter sub-package provides frame-rate limiting for the main loop.
// For deeper analysis, build with the statsview tag and see the statsview
// package.
package performance
