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

// Package random provides shaped random values for game effects.
//
// A Property selects values from a range; the assigned Distribute
// implementation decides the shape of the selection. The dice distributions
// (TwoDice, ThreeDice) approximate summed die rolls: biased to the middle of
// the range, which tends to look more natural than uniform randomness for
// things like particle lifetimes and velocities.
//
// The package source is seeded from the clock at startup. Seed() makes the
// sequence predictable, which tests rely on.
package random
