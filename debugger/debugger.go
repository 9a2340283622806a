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

// Package debugger helps with development-time inspection of a running
// game. The output is a graphviz dot description of the object graph,
// render it with something like:
//
//	dot -Tsvg dump.dot -o dump.svg
package debugger

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/kvisten/kvist/logger"
)

// Dump writes the object graph rooted at the supplied values to the
// io.Writer in graphviz dot format.
func Dump(output io.Writer, roots ...any) {
	memviz.Map(output, roots...)
}

// DumpToFile is a convenience around Dump(), writing the graph to the named
// file.
func DumpToFile(path string, roots ...any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer f.Close()

	memviz.Map(f, roots...)
	logger.Logf(logger.Allow, "debugger", "dumped state to %s", path)

	return nil
}
