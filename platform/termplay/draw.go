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

package termplay

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/rawframe/pixels"
)

const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetStyle  = "\x1b[0m"
	upperHalf   = "▀"
)

var statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4))

// sample returns the pixel of the buffer that corresponds to the position in
// an image of the given width and height
func sample(buf *pixels.Buffer, x int32, y int32, width int32, height int32) uint32 {
	sx := x * buf.Width() / width
	sy := y * buf.Height() / height
	v, err := buf.At(sx, sy)
	if err != nil {
		return 0
	}
	return v
}

// draw the buffer scaled to width columns and height pixel rows. two pixel
// rows are drawn in every line of text
func draw(w io.Writer, buf *pixels.Buffer, width int32, height int32) error {
	if _, err := io.WriteString(w, cursorHome); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	for y := int32(0); y < height; y += 2 {
		// the previous colours are remembered so that escape sequences are
		// only written when the colour changes
		var fg, bg uint32
		first := true

		for x := range width {
			top := sample(buf, x, y, width, height)
			bottom := top
			if y+1 < height {
				bottom = sample(buf, x, y+1, width, height)
			}

			if first || top != fg {
				r, g, b := pixels.Unpack(top)
				if _, err := fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", r, g, b); err != nil {
					return err
				}
			}
			if first || bottom != bg {
				r, g, b := pixels.Unpack(bottom)
				if _, err := fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", r, g, b); err != nil {
					return err
				}
			}
			fg, bg = top, bottom
			first = false

			if _, err := io.WriteString(w, upperHalf); err != nil {
				return err
			}
		}

		// the terminal is in raw mode so a carriage return is required
		if _, err := io.WriteString(w, resetStyle+"\r\n"); err != nil {
			return err
		}
	}

	return nil
}

// drawStatus writes the status line, padded to the width of the terminal
func drawStatus(w io.Writer, status string, width int32) error {
	_, err := io.WriteString(w, statusStyle.Width(int(width)).MaxWidth(int(width)).Render(status)+resetStyle)
	return err
}
