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

package digest_test

import (
	"testing"

	"github.com/kvisten/kvist/digest"
	"github.com/kvisten/kvist/test"
)

func TestChaining(t *testing.T) {
	var a digest.Frame
	var b digest.Frame

	// the same data gives the same digest
	a.Add([]byte{1, 2, 3})
	b.Add([]byte{1, 2, 3})
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Count(), 1)

	// the digest is chained; adding in a different order gives a different
	// result
	a.Add([]byte{4, 5, 6})
	b.Reset()
	b.Add([]byte{4, 5, 6})
	b.Add([]byte{1, 2, 3})
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestReset(t *testing.T) {
	var a digest.Frame
	zero := a.Hash()

	a.Add([]byte{1})
	test.ExpectInequality(t, a.Hash(), zero)

	a.Reset()
	test.ExpectEquality(t, a.Hash(), zero)
	test.ExpectEquality(t, a.Count(), 0)
}
