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

// Package resources locates the files the engine stores between runs;
// preferences most notably.
//
// Resource files are stored in the user's config directory, as reported by
// os.UserConfigDir(). If a directory named ".kvist" exists in the working
// directory it is used instead. This is the "portable" mode, useful during
// development when prefs files shouldn't leak into the user's real config.
package resources
