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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect functions record a test error and allow the test to continue.
// The Demand functions are the same except that failure is fatal to the test.
//
// How the nil type is handled by ExpectSuccess and ExpectFailure is not
// obvious and is worth describing. The nil type is considered a success,
// meaning that ExpectFailure fails and ExpectSuccess succeeds. This follows
// from how errors are usually returned (nil indicating no error).
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for later comparison with the Compare() function.
package test
