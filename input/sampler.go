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
	"github.com/jetsetilly/rawframe/logger"
)

// Sample returns a new GameInput from the raw state of every controller and
// the GameInput of the previous frame. The previous GameInput is not
// altered.
func Sample(raw [MaxControllers]RawController, prev *GameInput) GameInput {
	var g GameInput
	for i := range raw {
		g.Controllers[i] = sampleController(raw[i], &prev.Controllers[i])
	}
	return g
}

func sampleController(raw RawController, prev *ControllerInput) ControllerInput {
	if !raw.Connected {
		return ControllerInput{}
	}

	c := ControllerInput{
		Connected: true,
		Stick: StickState{
			X: sampleAxis(raw.StickX, prev.Stick.X),
			Y: sampleAxis(raw.StickY, prev.Stick.Y),
		},
	}

	for b := range NumButtons {
		down := raw.Buttons&buttonMasks[b] == buttonMasks[b]
		c.Buttons[b].IsDown = down
		if down != prev.Buttons[b].IsDown {
			c.Buttons[b].HalfTransitionCount = 1
		}
	}

	return c
}

// with one sample per frame the interval collapses to the sampled value
func sampleAxis(v int16, prev StickInterval) StickInterval {
	n := NormaliseAxis(v)
	return StickInterval{
		Min:   n,
		Max:   n,
		Start: prev.Stop,
		Stop:  n,
	}
}

// Sampler collects the raw state of every controller from a Poller.
type Sampler struct {
	poller Poller
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// A nil poller means there is no controller driver. In that case every
// controller is reported as disconnected.
func NewSampler(poller Poller) *Sampler {
	if poller == nil {
		logger.Log(logger.Allow, "input", "no controller driver: all controllers disconnected")
		poller = NoPoller{}
	}
	return &Sampler{poller: poller}
}

// Poll returns the raw state of every controller.
func (s *Sampler) Poll() [MaxControllers]RawController {
	var raw [MaxControllers]RawController
	for i := range raw {
		raw[i] = s.poller.Poll(i)
	}
	return raw
}

// Sample polls every controller and returns the new GameInput.
func (s *Sampler) Sample(prev *GameInput) GameInput {
	return Sample(s.Poll(), prev)
}
