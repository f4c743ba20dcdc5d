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

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
)

type key int

const (
	keyUp key = iota
	keyDown
	keyLeft
	keyRight
	keyA
	keyB
	keyX
	keyY
	keyLeftShoulder
	keyRightShoulder
	numKeys
)

var keyNames = [numKeys]string{"up", "down", "left", "right", "A", "B", "X", "Y", "LB", "RB"}

var keyMasks = [numKeys]input.ButtonMask{
	keyA:             input.MaskA,
	keyB:             input.MaskB,
	keyX:             input.MaskX,
	keyY:             input.MaskY,
	keyLeftShoulder:  input.MaskLeftShoulder,
	keyRightShoulder: input.MaskRightShoulder,
}

// the number of frames a key is held after it was last seen. long enough to
// cover the delay before the terminal's key repeat begins
const holdFrames = 30

const (
	ctrlC  = 0x03
	escape = 0x1b
)

// keyboard turns bytes from the terminal into the state of one controller
type keyboard struct {
	hold [numKeys]int
}

// decode the bytes read from the terminal. the quit return value is true if
// a quit key was seen
func decode(b []byte) (keys []key, quit bool) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case escape:
			if i+2 < len(b) && b[i+1] == '[' {
				switch b[i+2] {
				case 'A':
					keys = append(keys, keyUp)
				case 'B':
					keys = append(keys, keyDown)
				case 'C':
					keys = append(keys, keyRight)
				case 'D':
					keys = append(keys, keyLeft)
				}
				i += 2
				continue // for loop
			}
			quit = true
		case ctrlC, 'q', 'Q':
			quit = true
		case 'w', 'W':
			keys = append(keys, keyUp)
		case 's', 'S':
			keys = append(keys, keyDown)
		case 'a', 'A':
			keys = append(keys, keyLeft)
		case 'd', 'D':
			keys = append(keys, keyRight)
		case ' ', 'z', 'Z':
			keys = append(keys, keyA)
		case 'x', 'X':
			keys = append(keys, keyB)
		case 'c', 'C':
			keys = append(keys, keyX)
		case 'v', 'V':
			keys = append(keys, keyY)
		case '[':
			keys = append(keys, keyLeftShoulder)
		case ']':
			keys = append(keys, keyRightShoulder)
		}
	}
	return keys, quit
}

// tick should be called once per frame before feed()
func (kb *keyboard) tick() {
	for k := range numKeys {
		if kb.hold[k] > 0 {
			kb.hold[k]--
			if kb.hold[k] == 0 {
				logger.Logf(logger.Allow, "keyboard", "%s up", keyNames[k])
			}
		}
	}
}

func (kb *keyboard) feed(b []byte) (quit bool) {
	keys, quit := decode(b)
	for _, k := range keys {
		if kb.hold[k] == 0 {
			logger.Logf(logger.Allow, "keyboard", "%s down", keyNames[k])
		}
		kb.hold[k] = holdFrames
	}
	return quit
}

func (kb *keyboard) held(k key) bool {
	return kb.hold[k] > 0
}

// raw returns the state of the controller driven by the keyboard. the
// controller is always connected
func (kb *keyboard) raw() input.RawController {
	r := input.RawController{Connected: true}

	for k := keyA; k < numKeys; k++ {
		if kb.held(k) {
			r.Buttons |= keyMasks[k]
		}
	}

	if kb.held(keyLeft) != kb.held(keyRight) {
		if kb.held(keyLeft) {
			r.StickX = math.MinInt16
		} else {
			r.StickX = math.MaxInt16
		}
	}
	if kb.held(keyUp) != kb.held(keyDown) {
		if kb.held(keyDown) {
			r.StickY = math.MinInt16
		} else {
			r.StickY = math.MaxInt16
		}
	}

	return r
}
