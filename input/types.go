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

package input

// MaxControllers is the number of controller slots in a GameInput.
const MaxControllers = 4

// ButtonState is the state of a single button for one frame.
type ButtonState struct {
	// the number of up/down changes observed during the frame. with one
	// sample per frame this is 1 if IsDown differs from the previous frame
	// and 0 otherwise
	HalfTransitionCount int

	// whether the button is down at the end of the frame
	IsDown bool
}

// Pressed returns true if the button went down during the frame.
func (b ButtonState) Pressed() bool {
	return b.IsDown && b.HalfTransitionCount > 0
}

// Released returns true if the button came up during the frame.
func (b ButtonState) Released() bool {
	return !b.IsDown && b.HalfTransitionCount > 0
}

// StickInterval is the movement of one stick axis during a frame. All
// values are in the range -1.0 to 1.0.
type StickInterval struct {
	// the extremes reached during the frame
	Min float32
	Max float32

	// Start is the value at the end of the previous frame. Stop is the value
	// at the end of the current frame
	Start float32
	Stop  float32
}

// StickState is the state of both axes of a stick.
type StickState struct {
	X StickInterval
	Y StickInterval
}

// ControllerInput is the logical state of one controller for one frame.
//
// The zero value is the default state. A disconnected controller is always
// in the default state.
type ControllerInput struct {
	Connected bool
	Stick     StickState
	Buttons   [NumButtons]ButtonState
}

// Button returns the state of the button. An invalid Button returns the
// default state.
func (c ControllerInput) Button(b Button) ButtonState {
	if b < 0 || b >= NumButtons {
		return ButtonState{}
	}
	return c.Buttons[b]
}

// GameInput is the logical state of all controllers for one frame.
type GameInput struct {
	Controllers [MaxControllers]ControllerInput
}

// Pressed returns true if the button went down during the frame on any
// connected controller.
func (g *GameInput) Pressed(b Button) bool {
	for _, c := range g.Controllers {
		if c.Connected && c.Button(b).Pressed() {
			return true
		}
	}
	return false
}

// NumConnected returns the number of connected controllers.
func (g *GameInput) NumConnected() int {
	var n int
	for _, c := range g.Controllers {
		if c.Connected {
			n++
		}
	}
	return n
}
