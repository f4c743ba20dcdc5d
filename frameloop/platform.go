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

package frameloop

import (
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/pixels"
)

// Platform is the display side of the loop.
type Platform interface {
	// Service drains every pending platform message. It returns true if a
	// quit message was among them.
	Service() (quit bool)

	// Extent returns the current size of the presentation surface.
	Extent() (width int32, height int32)

	// Present displays the buffer, scaled to the width and height.
	Present(buf *pixels.Buffer, width int32, height int32) error
}

// Renderer is implemented by the render callback. Render() may write any
// pixel inside the buffer. The input snapshot is a copy and changes to it are
// not seen by the loop.
type Renderer interface {
	Render(buf *pixels.Buffer, inp input.GameInput)
}

// RenderFunc allows a function to be used as a Renderer.
type RenderFunc func(buf *pixels.Buffer, inp input.GameInput)

// Render implements the Renderer interface.
func (f RenderFunc) Render(buf *pixels.Buffer, inp input.GameInput) {
	f(buf, inp)
}
