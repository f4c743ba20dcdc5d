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

//go:build windows

package termplay

import (
	"errors"

	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/pixels"
)

// ErrUnsupported is returned by NewPlatform() on systems without a
// supported terminal.
var ErrUnsupported = errors.New("termplay: terminal platform not supported on windows")

// Platform is not available on windows.
type Platform struct {
	kb keyboard
}

// NewPlatform always returns ErrUnsupported.
func NewPlatform() (*Platform, error) {
	return nil, ErrUnsupported
}

func (plt *Platform) Destroy() {}

func (plt *Platform) Service() bool {
	return true
}

func (plt *Platform) Poll(controller int) input.RawController {
	return input.RawController{}
}

func (plt *Platform) Extent() (int32, int32) {
	return 0, 0
}

func (plt *Platform) Observe(r frameloop.Report) {}

func (plt *Platform) Present(buf *pixels.Buffer, width int32, height int32) error {
	return ErrUnsupported
}
