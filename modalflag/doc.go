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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of modes: a command line where the first
// non-flag argument selects a mode, and where each mode has its own set of
// flags.
//
//	rawframe GL -scale 2
//
// Modes are set up with AddSubModes(). The first sub-mode is the default,
// used when no mode is given on the command line. After Parse() the selected
// mode is returned by Mode(). A call to NewMode() then prepares a new set of
// flags for the selected mode and Parse() is called again.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 1.0, "window scaling")
//		...
//	}
//
// Help is printed to the Output writer when "-help" is given for any mode.
package modalflag
