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

// Package frameloop runs the real-time loop that drives a render callback
// once per frame.
//
// Each call to Loop.Step() performs one iteration in a fixed order:
//
//  1. service the platform's pending messages. a quit message stops the
//     loop and nothing else happens for that iteration
//  2. sample the controllers. the down edge of the cancel button, if one
//     has been configured, also stops the loop
//  3. call the render callback with the back buffer and the new input
//     snapshot
//  4. query the extent of the presentation surface
//  5. present the back buffer, scaled to the extent
//  6. pace the loop (if a limiter is set), advance the frame clock and
//     report the frame time
//  7. the current input snapshot becomes the previous snapshot
//
// Once stopped the loop cannot be restarted.
//
// The loop is single threaded. It should be run from the main thread
// because some platforms (SDL in particular) require that windows and
// events are serviced from the thread that created them.
package frameloop
