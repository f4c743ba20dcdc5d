// This file is part of Rawframe.
//
// Rawframe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rawframe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rawframe.  If not, see <https://www.gnu.org/licenses/>.

// Package paths builds the location of resources used by the application,
// for example the preferences file.
//
// For development builds the base path is ".rawframe" in the current working
// directory. Release builds, built with the "release" tag, place resources
// under the user's configuration directory, as returned by
// os.UserConfigDir().
//
// Directories are created as required by the ResourcePath() function.
package paths
