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

// Package prefs provides typed preference values that can be persisted to a
// file on disk.
//
// Values are added to a Disk instance under a key. Saving the Disk writes
// every key to the preferences file, preserving any keys in the file that
// belong to another Disk instance. Loading sets the value of every added
// key that is found in the file.
//
// Preference values can be overridden for a session with the command line
// stack. A prefs string has the form:
//
//	key::value; key::value
//
// and is pushed with PushCommandLineStack(). A value on the stack is used in
// place of the value in the file the next time the Disk is loaded.
package prefs
