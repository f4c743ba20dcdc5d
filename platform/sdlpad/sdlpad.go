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

// Package sdlpad implements the input.Poller interface with the SDL game
// controller API.
//
// Controllers are assigned to the first free slot when they are opened. A
// slot is freed when its controller is removed. Controller hotplug events
// must be passed to HandleEvent() by whatever is servicing the SDL event
// queue.
//
// SDL's vertical axis is positive in the downwards direction. The value is
// inverted so that the raw state matches the convention of the input
// package, where up is positive.
package sdlpad

import (
	"fmt"

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Poller implements the input.Poller interface.
type Poller struct {
	pads [input.MaxControllers]*sdl.GameController
}

// NewPoller initialises the SDL game controller subsystem and opens every
// attached game controller. An error means that there is no controller
// support. The caller should continue without a Poller.
//
// Must be called from the main thread.
func NewPoller() (*Poller, error) {
	err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdlpad: %w", err)
	}

	p := &Poller{}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.open(i)
	}

	if p.Count() == 0 {
		logger.Log(logger.Allow, "sdlpad", "no controllers found")
	}

	return p, nil
}

// Destroy closes all controllers and the game controller subsystem.
func (p *Poller) Destroy() {
	for i, pad := range p.pads {
		if pad != nil {
			pad.Close()
			p.pads[i] = nil
		}
	}
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
}

// Count returns the number of open controllers.
func (p *Poller) Count() int {
	var n int
	for _, pad := range p.pads {
		if pad != nil {
			n++
		}
	}
	return n
}

// open the joystick device with the index as a game controller. devices
// that are not game controllers are ignored
func (p *Poller) open(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	pad := sdl.GameControllerOpen(index)
	if pad == nil || !pad.Attached() {
		return
	}

	// SDL sends an added event for controllers that were attached before
	// the subsystem was initialised. opening a controller a second time
	// returns the same controller with a raised reference count
	id := pad.Joystick().InstanceID()
	slot := -1
	for i, q := range p.pads {
		if q != nil && q.Joystick().InstanceID() == id {
			pad.Close()
			return
		}
		if q == nil && slot == -1 {
			slot = i
		}
	}
	if slot == -1 {
		logger.Logf(logger.Allow, "sdlpad", "no free slot for controller %d", index)
		pad.Close()
		return
	}

	p.pads[slot] = pad
	logger.Logf(logger.Allow, "sdlpad", "controller %d: %s", slot, pad.Name())
}

// close the controller with the instance ID
func (p *Poller) close(id sdl.JoystickID) {
	for i, pad := range p.pads {
		if pad != nil && pad.Joystick().InstanceID() == id {
			logger.Logf(logger.Allow, "sdlpad", "controller %d: removed", i)
			pad.Close()
			p.pads[i] = nil
			return
		}
	}
}

// HandleEvent opens and closes controllers in response to SDL hotplug
// events. It returns true if the event was a controller device event.
func (p *Poller) HandleEvent(ev sdl.Event) bool {
	dev, ok := ev.(*sdl.ControllerDeviceEvent)
	if !ok {
		return false
	}

	switch dev.GetType() {
	case sdl.CONTROLLERDEVICEADDED:
		// for added devices the Which field is the device index
		p.open(int(dev.Which))
	case sdl.CONTROLLERDEVICEREMOVED:
		// for removed devices the Which field is the instance ID
		p.close(dev.Which)
	}

	return true
}

// Poll implements the input.Poller interface.
func (p *Poller) Poll(controller int) input.RawController {
	if controller < 0 || controller >= len(p.pads) {
		return input.RawController{}
	}

	pad := p.pads[controller]
	if pad == nil || !pad.Attached() {
		return input.RawController{}
	}

	raw := input.RawController{
		Connected: true,
		StickX:    pad.Axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTX)),
		StickY:    input.InvertAxis(pad.Axis(sdl.GameControllerAxis(sdl.CONTROLLER_AXIS_LEFTY))),
	}

	for _, m := range buttonMapping {
		if pad.Button(m.button) != 0 {
			raw.Buttons |= m.mask
		}
	}

	return raw
}
