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

//go:build !windows

package termplay

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// the size used if the terminal size can not be read
const (
	defaultCols = 80
	defaultRows = 24
)

// Platform implements the frameloop.Platform and input.Poller interfaces.
type Platform struct {
	tty *term.Term
	out *bufio.Writer

	kb     keyboard
	status string
}

// NewPlatform opens the controlling terminal and puts it into raw mode.
func NewPlatform() (*Platform, error) {
	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	plt := &Platform{
		tty: tty,
		out: bufio.NewWriter(os.Stdout),
	}

	plt.out.WriteString(hideCursor + clearScreen)
	if err := plt.out.Flush(); err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("termplay: %w", err)
	}

	return plt, nil
}

// Destroy restores the terminal to the state it was in before NewPlatform()
// was called.
func (plt *Platform) Destroy() {
	plt.out.WriteString(resetStyle + showCursor + "\r\n")
	_ = plt.out.Flush()

	if err := plt.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "termplay", err)
	}
	_ = plt.tty.Close()
}

// Service implements the frameloop.Platform interface.
func (plt *Platform) Service() bool {
	plt.kb.tick()

	n, err := plt.tty.Available()
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
		return false
	}
	if n == 0 {
		return false
	}

	b := make([]byte, n)
	n, err = plt.tty.Read(b)
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
		return false
	}

	return plt.kb.feed(b[:n])
}

// Poll implements the input.Poller interface. Only the first controller is
// ever connected.
func (plt *Platform) Poll(controller int) input.RawController {
	if controller != 0 {
		return input.RawController{}
	}
	return plt.kb.raw()
}

// Extent implements the frameloop.Platform interface. The width is the
// number of columns and the height is twice the number of rows, less the
// row used for the status line.
func (plt *Platform) Extent() (int32, int32) {
	cols, rows := defaultCols, defaultRows

	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 1 {
		cols, rows = int(ws.Col), int(ws.Row)
	}

	return int32(cols), int32(rows-1) * 2
}

// Observe is a frameloop reporter. The most recent report is shown in the
// status line.
func (plt *Platform) Observe(r frameloop.Report) {
	plt.status = fmt.Sprintf("frame %d :: %s :: %d connected", r.Frame, r, r.Input.NumConnected())
}

// Present implements the frameloop.Platform interface.
func (plt *Platform) Present(buf *pixels.Buffer, width int32, height int32) error {
	if err := draw(plt.out, buf, width, height); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}
	if err := drawStatus(plt.out, plt.status, width); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}
	if err := plt.out.Flush(); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}
	return nil
}
