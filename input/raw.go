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

import "math"

// RawController is the state of a controller as reported by the controller
// driver.
type RawController struct {
	Connected bool
	Buttons   ButtonMask

	// signed axis values of the left stick. positive values are right and up
	StickX int16
	StickY int16
}

// Poller is implemented by anything that can report the raw state of the
// controllers. The controller argument is in the range 0 to MaxControllers-1.
//
// The Poller is an optional capability. A system without a controller driver
// uses NoPoller.
type Poller interface {
	Poll(controller int) RawController
}

// NoPoller reports every controller as disconnected.
type NoPoller struct{}

// Poll implements the Poller interface.
func (NoPoller) Poll(_ int) RawController {
	return RawController{}
}

// NormaliseAxis converts a raw axis value to the range -1.0 to 1.0. The
// range of a signed 16 bit value is asymmetric and so positive values are
// divided by 32767 and negative values by 32768.
func NormaliseAxis(v int16) float32 {
	if v < 0 {
		return float32(v) / -math.MinInt16
	}
	return float32(v) / math.MaxInt16
}

// InvertAxis negates an axis value. The value -32768 has no positive
// counterpart and is saturated to 32767.
func InvertAxis(v int16) int16 {
	if v == math.MinInt16 {
		return math.MaxInt16
	}
	return -v
}
