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

package sdlpad

import (
	"github.com/jetsetilly/rawframe/input"
	"github.com/veandco/go-sdl2/sdl"
)

// the SDL button for each bit of the raw button mask
var buttonMapping = []struct {
	button sdl.GameControllerButton
	mask   input.ButtonMask
}{
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_UP), input.MaskDPadUp},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_DOWN), input.MaskDPadDown},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_LEFT), input.MaskDPadLeft},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_DPAD_RIGHT), input.MaskDPadRight},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_START), input.MaskStart},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_BACK), input.MaskBack},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_LEFTSTICK), input.MaskLeftThumb},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_RIGHTSTICK), input.MaskRightThumb},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_LEFTSHOULDER), input.MaskLeftShoulder},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER), input.MaskRightShoulder},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_A), input.MaskA},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_B), input.MaskB},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_X), input.MaskX},
	{sdl.GameControllerButton(sdl.CONTROLLER_BUTTON_Y), input.MaskY},
}
