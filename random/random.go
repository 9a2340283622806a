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

package random

import (
	"math/rand/v2"
	"time"
)

// the source for all distributions. replaced wholesale by Seed()
var source *rand.Rand

func init() {
	s := uint64(time.Now().UnixNano())
	source = rand.New(rand.NewPCG(s, s))
}

// Seed the package source. Random values are predictable for a given seed,
// which is useful for tests and for game replays.
//
// The source is not safe for concurrent use. Sampling is expected to happen
// from the game loop only.
func Seed(seed uint64) {
	source = rand.New(rand.NewPCG(seed, seed))
}

// Distribute implementations shape how random values are spread over the
// interval [0, 1).
type Distribute interface {
	// Sample returns a random value in [0, 1).
	Sample() float32
}

// NoDice always returns 0.
type NoDice struct{}

// Sample implements the Distribute interface.
func (NoDice) Sample() float32 {
	return 0
}

// Uniform makes all values equally likely. No bias.
type Uniform struct{}

// Sample implements the Distribute interface.
func (Uniform) Sample() float32 {
	return source.Float32()
}

// TwoDice is biased towards 0.5. Looks like a triangle.
type TwoDice struct{}

// Sample implements the Distribute interface.
func (TwoDice) Sample() float32 {
	return (source.Float32() + source.Float32()) / 2.0
}

// ThreeDice is biased towards 0.5. Looks like a bell curve.
type ThreeDice struct{}

// Sample implements the Distribute interface.
func (ThreeDice) Sample() float32 {
	return (source.Float32() + source.Float32() + source.Float32()) / 3.0
}

// Square is biased towards 0. Looks like 1/x.
type Square struct{}

// Sample implements the Distribute interface.
func (Square) Sample() float32 {
	return source.Float32() * source.Float32()
}

// Intn returns a random value in [0, n) from the package source.
func Intn(n int) int {
	return source.IntN(n)
}

// Property takes a lower and upper bound and randomly selects values
// in-between, spread according to the assigned distribution.
type Property struct {
	Distribution Distribute
	Range        [2]float32
}

// NewProperty returns a Property over the given range with the ThreeDice
// distribution.
func NewProperty(lo float32, hi float32) Property {
	return Property{
		Distribution: ThreeDice{},
		Range:        [2]float32{lo, hi},
	}
}

// Sample a random value in the property's range. The zero value of Property
// has an empty range and always returns 0.
func (p Property) Sample() float32 {
	d := p.Distribution
	if d == nil {
		d = Uniform{}
	}
	return p.Range[0] + (p.Range[1]-p.Range[0])*d.Sample()
}
