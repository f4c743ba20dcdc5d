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

// Package input converts the raw state of up to four game controllers into
// the logical input model seen by a render callback.
//
// Raw state is supplied by a Poller. The logical model, GameInput, records
// for every tracked button whether it is down and how many times it changed
// state since the previous frame. Analogue sticks are normalised to the
// range -1.0 to 1.0 and record the interval travelled during the frame.
//
// A GameInput is produced by the Sample() function from the raw state of the
// current frame and the GameInput of the previous frame. The caller owns both
// snapshots and is expected to keep them double-buffered:
//
//	current := input.Sample(raw, &previous)
//	...
//	previous = current
//
// A disconnected controller is always reported in its default state,
// regardless of its state in the previous frame.
package input
