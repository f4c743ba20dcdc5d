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

// Package game contains the render callback drawn by the frame loop. The
// callback is a placeholder: a scrolling blue/green gradient steered by the
// sticks of the connected controllers.
package game

import (
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/pixels"
)

// the number of pixels the gradient scrolls per frame when a stick is fully
// deflected
const stickSpeed = 8

// Gradient implements the frameloop.Renderer interface.
type Gradient struct {
	XOffset int32
	YOffset int32

	// scroll horizontally by one pixel every frame, regardless of input
	Drift bool
}

// Render moves the offsets by the input for this frame and then draws the
// gradient to the buffer.
func (g *Gradient) Render(buf *pixels.Buffer, inp input.GameInput) {
	for _, c := range inp.Controllers {
		if !c.Connected {
			continue
		}
		g.XOffset += int32(c.Stick.X.Stop * stickSpeed)
		g.YOffset += int32(c.Stick.Y.Stop * stickSpeed)
	}

	if g.Drift {
		g.XOffset++
	}

	for y := range buf.Height() {
		row, err := buf.Row(y)
		if err != nil {
			return
		}

		green := uint8(y + g.YOffset)
		for x := range buf.Width() {
			blue := uint8(x + g.XOffset)
			o := x * pixels.BytesPerPixel
			row[o] = blue
			row[o+1] = green
			row[o+2] = 0
			row[o+3] = 0
		}
	}
}

// Colour returns the packed value of the pixel at x, y for the current
// offsets.
func (g *Gradient) Colour(x int32, y int32) uint32 {
	return pixels.Pack(0, uint8(y+g.YOffset), uint8(x+g.XOffset))
}
