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

// Package asset loads images, audio and fonts from disk and reloads them
// when they change. Every load returns a typed ID; the decoded asset is
// retrieved from the System with the corresponding getter.
//
// Images decode to RGBA with rows ordered bottom-to-top. Audio decodes to
// mono float32 samples at the source file's sample rate. Fonts rasterize to
// a glyph atlas at a fixed point size.
//
// Hot reloading is driven by calling Reload() once per frame. With Watch()
// enabled changes are detected with a filesystem watcher; otherwise file
// modification times are compared on every call.
package asset
