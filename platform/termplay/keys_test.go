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
	"math"
	"testing"

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/test"
)

func TestDecode(t *testing.T) {
	keys, quit := decode([]byte("wz\x1b[C]"))
	test.ExpectEquality(t, quit, false)
	test.DemandEquality(t, len(keys), 4)
	test.ExpectEquality(t, keys[0], keyUp)
	test.ExpectEquality(t, keys[1], keyA)
	test.ExpectEquality(t, keys[2], keyRight)
	test.ExpectEquality(t, keys[3], keyRightShoulder)
}

func TestDecodeQuit(t *testing.T) {
	for _, b := range []string{"q", "\x03", "\x1b", "w\x1b"} {
		_, quit := decode([]byte(b))
		test.ExpectEquality(t, quit, true, b)
	}

	// an escape sequence is not a quit
	_, quit := decode([]byte("\x1b[A"))
	test.ExpectEquality(t, quit, false)
}

func TestKeyboardHold(t *testing.T) {
	var kb keyboard

	test.ExpectEquality(t, kb.raw().Connected, true)
	test.ExpectEquality(t, kb.raw().Buttons, input.ButtonMask(0))

	kb.tick()
	kb.feed([]byte("x"))
	test.ExpectEquality(t, kb.raw().Buttons, input.MaskB)

	for range holdFrames - 1 {
		kb.tick()
	}
	test.ExpectEquality(t, kb.raw().Buttons, input.MaskB)

	kb.tick()
	test.ExpectEquality(t, kb.raw().Buttons, input.ButtonMask(0))
}

func TestKeyboardStick(t *testing.T) {
	var kb keyboard

	kb.feed([]byte("wd"))
	r := kb.raw()
	test.ExpectEquality(t, r.StickX, int16(math.MaxInt16))
	test.ExpectEquality(t, r.StickY, int16(math.MaxInt16))

	// opposing directions cancel
	kb.feed([]byte("a"))
	r = kb.raw()
	test.ExpectEquality(t, r.StickX, int16(0))
	test.ExpectEquality(t, r.StickY, int16(math.MaxInt16))

	var kb2 keyboard
	kb2.feed([]byte("\x1b[B\x1b[D"))
	r = kb2.raw()
	test.ExpectEquality(t, r.StickX, int16(math.MinInt16))
	test.ExpectEquality(t, r.StickY, int16(math.MinInt16))
}
