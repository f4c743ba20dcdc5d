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

// Package sdlevents services the SDL event queue on behalf of the SDL based
// platforms.
//
// A quit event (closing the window or an interrupt signal, which SDL
// converts to a quit event) and the escape key both request that the frame
// loop stop. Changes in state of the movement keys are logged. Controller
// hotplug events are passed to the sdlpad.Poller if one has been set.
package sdlevents

import (
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/platform/sdlpad"
	"github.com/veandco/go-sdl2/sdl"
)

// the keys that are logged when they change state
var loggedKeys = map[sdl.Keycode]bool{
	sdl.K_w:     true,
	sdl.K_a:     true,
	sdl.K_s:     true,
	sdl.K_d:     true,
	sdl.K_q:     true,
	sdl.K_e:     true,
	sdl.K_UP:    true,
	sdl.K_DOWN:  true,
	sdl.K_LEFT:  true,
	sdl.K_RIGHT: true,
	sdl.K_SPACE: true,
}

// Pump drains the SDL event queue.
type Pump struct {
	pads *sdlpad.Poller

	// Handler is called for every event that is not handled by the Pump
	Handler func(ev sdl.Event)
}

// SetPoller sets the poller that receives controller hotplug events.
func (p *Pump) SetPoller(pads *sdlpad.Poller) {
	p.pads = pads
}

// Service implements the Service() function of the frameloop.Platform
// interface. Every pending event is serviced, even if a quit event is seen
// before the queue is empty.
//
// Must be called from the main thread.
func (p *Pump) Service() (quit bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			// held keys generate repeat events. we're only interested in
			// changes of state
			if ev.Repeat != 0 {
				continue // for loop
			}

			down := ev.Type == sdl.KEYDOWN
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if down {
					logger.Log(logger.Allow, "keyboard", "escape")
					quit = true
				}
				continue // for loop
			}

			if loggedKeys[ev.Keysym.Sym] {
				state := "up"
				if down {
					state = "down"
				}
				logger.Logf(logger.Allow, "keyboard", "%s %s", sdl.GetKeyName(ev.Keysym.Sym), state)
			}

		default:
			if p.pads != nil && p.pads.HandleEvent(ev) {
				continue // for loop
			}
			if p.Handler != nil {
				p.Handler(ev)
			}
		}
	}

	return quit
}
