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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/kvisten/kvist/debugger"
	"github.com/kvisten/kvist/test"
)

func TestDump(t *testing.T) {
	type inner struct {
		Count int
	}
	type outer struct {
		Name  string
		Child *inner
	}

	v := &outer{Name: "root", Child: &inner{Count: 3}}

	b := &strings.Builder{}
	debugger.Dump(b, v)

	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "root"))
}
