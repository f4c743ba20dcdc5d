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

import (
	"fmt"
	"strings"
)

// ButtonMask is the bit layout of the digital buttons in a RawController.
type ButtonMask uint16

// List of valid ButtonMask bits.
const (
	MaskDPadUp        ButtonMask = 0x0001
	MaskDPadDown      ButtonMask = 0x0002
	MaskDPadLeft      ButtonMask = 0x0004
	MaskDPadRight     ButtonMask = 0x0008
	MaskStart         ButtonMask = 0x0010
	MaskBack          ButtonMask = 0x0020
	MaskLeftThumb     ButtonMask = 0x0040
	MaskRightThumb    ButtonMask = 0x0080
	MaskLeftShoulder  ButtonMask = 0x0100
	MaskRightShoulder ButtonMask = 0x0200
	MaskA             ButtonMask = 0x1000
	MaskB             ButtonMask = 0x2000
	MaskX             ButtonMask = 0x4000
	MaskY             ButtonMask = 0x8000
)

// Button identifies one of the tracked buttons of a controller.
type Button int

// List of tracked buttons. The list is fixed. Other bits in the ButtonMask
// are not tracked by the logical model.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder

	// NumButtons is the number of tracked buttons
	NumButtons
)

// the raw bit for each tracked button
var buttonMasks = [NumButtons]ButtonMask{
	ButtonA:             MaskA,
	ButtonB:             MaskB,
	ButtonX:             MaskX,
	ButtonY:             MaskY,
	ButtonLeftShoulder:  MaskLeftShoulder,
	ButtonRightShoulder: MaskRightShoulder,
}

var buttonNames = [NumButtons]string{
	ButtonA:             "A",
	ButtonB:             "B",
	ButtonX:             "X",
	ButtonY:             "Y",
	ButtonLeftShoulder:  "LeftShoulder",
	ButtonRightShoulder: "RightShoulder",
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// Mask returns the raw bit for the button.
func (b Button) Mask() ButtonMask {
	if b < 0 || b >= NumButtons {
		return 0
	}
	return buttonMasks[b]
}

// ParseButton returns the Button with the name. Names are case insensitive
// and the shoulder buttons can also be written as "LB" and "RB".
func ParseButton(name string) (Button, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "lb":
		return ButtonLeftShoulder, nil
	case "rb":
		return ButtonRightShoulder, nil
	}
	for b, s := range buttonNames {
		if strings.ToLower(s) == n {
			return Button(b), nil
		}
	}
	return 0, fmt.Errorf("input: unknown button %q", name)
}
