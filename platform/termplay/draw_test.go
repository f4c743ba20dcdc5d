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
	"strings"
	"testing"

	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/test"
)

func TestDraw(t *testing.T) {
	buf, err := pixels.NewBuffer(2, 2)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, buf.Set(0, 0, pixels.Pack(255, 0, 0)))
	test.DemandSuccess(t, buf.Set(0, 1, pixels.Pack(0, 0, 255)))
	test.DemandSuccess(t, buf.Set(1, 0, pixels.Pack(255, 0, 0)))
	test.DemandSuccess(t, buf.Set(1, 1, pixels.Pack(0, 0, 255)))

	w := &test.CompareWriter{}
	test.DemandSuccess(t, draw(w, buf, 2, 2))

	test.ExpectSuccess(t, w.Contains("\x1b[38;2;255;0;0m"))
	test.ExpectSuccess(t, w.Contains("\x1b[48;2;0;0;255m"))
	test.ExpectEquality(t, strings.Count(w.String(), upperHalf), 2)
	test.ExpectEquality(t, strings.Count(w.String(), "\r\n"), 1)

	// the colour of the second cell is unchanged and so is not repeated
	test.ExpectEquality(t, strings.Count(w.String(), "\x1b[38;2;"), 1)
}

func TestDrawScaled(t *testing.T) {
	buf, err := pixels.NewBuffer(4, 4)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, draw(w, buf, 8, 6))
	test.ExpectEquality(t, strings.Count(w.String(), upperHalf), 24)
	test.ExpectEquality(t, strings.Count(w.String(), "\r\n"), 3)
}

func TestDrawStatus(t *testing.T) {
	w := &test.CompareWriter{}
	test.DemandSuccess(t, drawStatus(w, "frame 10", 20))
	test.ExpectSuccess(t, w.Contains("frame 10"))
}
