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

package random_test

import (
	"testing"

	"github.com/kvisten/kvist/random"
	"github.com/kvisten/kvist/test"
)

const numSamples = 10000

func TestDistributionBounds(t *testing.T) {
	random.Seed(1)

	for _, d := range []random.Distribute{
		random.NoDice{},
		random.Uniform{},
		random.TwoDice{},
		random.ThreeDice{},
		random.Square{},
	} {
		for range numSamples {
			v := d.Sample()
			if v < 0 || v >= 1 {
				t.Fatalf("sample from %T out of bounds: %v", d, v)
			}
		}
	}
}

func TestNoDice(t *testing.T) {
	var d random.NoDice
	for range numSamples {
		test.ExpectEquality(t, d.Sample(), 0)
	}
}

// the mean of each distribution is a coarse but effective check of its shape
func TestDistributionMeans(t *testing.T) {
	random.Seed(1)

	mean := func(d random.Distribute) float64 {
		var acc float64
		for range numSamples {
			acc += float64(d.Sample())
		}
		return acc / numSamples
	}

	// uniform and the dice distributions are centred on 0.5
	test.ExpectApproximate(t, mean(random.Uniform{}), 0.5, 0.05)
	test.ExpectApproximate(t, mean(random.TwoDice{}), 0.5, 0.05)
	test.ExpectApproximate(t, mean(random.ThreeDice{}), 0.5, 0.05)

	// the square distribution is biased towards zero. the mean of the
	// product of two independent uniform values is 0.25
	test.ExpectApproximate(t, mean(random.Square{}), 0.25, 0.05)
}

func TestSeededSequence(t *testing.T) {
	var d random.Uniform

	random.Seed(99)
	a := []float32{d.Sample(), d.Sample(), d.Sample()}

	random.Seed(99)
	b := []float32{d.Sample(), d.Sample(), d.Sample()}

	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}
}

func TestProperty(t *testing.T) {
	random.Seed(1)

	p := random.NewProperty(-2.0, 2.0)
	for range numSamples {
		v := p.Sample()
		if v < -2.0 || v >= 2.0 {
			t.Fatalf("property sample out of range: %v", v)
		}
	}

	// an inverted range is allowed
	p = random.NewProperty(1.0, -1.0)
	for range numSamples {
		v := p.Sample()
		if v < -1.0 || v > 1.0 {
			t.Fatalf("property sample out of range: %v", v)
		}
	}

	// the zero value always returns 0
	var z random.Property
	test.ExpectEquality(t, z.Sample(), 0)
}

func TestIntn(t *testing.T) {
	random.Seed(1)
	for range numSamples {
		v := random.Intn(3)
		if v < 0 || v > 2 {
			t.Fatalf("Intn out of range: %v", v)
		}
	}
}
