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

// Package termplay implements the frameloop.Platform interface for a text
// terminal. Each character cell shows two pixels by using the upper half
// block character, with the foreground colour for the top pixel and the
// background colour for the bottom pixel. The terminal must support 24 bit
// colour.
//
// The Platform is also an input.Poller for a single controller driven by the
// keyboard:
//
//	w a s d and cursor keys     stick
//	space or z                  A
//	x c v                       B X Y
//	[ ]                         shoulder buttons
//	q escape ctrl-c             quit
//
// Terminals do not report key releases so a key is considered held for a
// short number of frames after it was last seen. Key repeat from the
// terminal keeps a held key pressed.
package termplay
