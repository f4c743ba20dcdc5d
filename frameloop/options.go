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

package frameloop

import (
	"fmt"

	"github.com/jetsetilly/rawframe/frameclock"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/performance/limiter"
)

// Option is used to change the default behaviour of a Loop.
type Option func(l *Loop) error

// WithCancel stops the loop on the down edge of the button on any connected
// controller.
func WithCancel(b input.Button) Option {
	return func(l *Loop) error {
		if b < 0 || b >= input.NumButtons {
			return fmt.Errorf("frameloop: illegal cancel button (%v)", b)
		}
		l.cancel = b
		l.useCancel = true
		return nil
	}
}

// WithReporter adds a function that receives the Report for every completed
// frame. Reporters are called in the order they are added.
func WithReporter(f func(Report)) Option {
	return func(l *Loop) error {
		if f == nil {
			return fmt.Errorf("frameloop: nil reporter")
		}
		l.reporters = append(l.reporters, f)
		return nil
	}
}

// WithLimiter paces the loop to the number of frames per second.
func WithLimiter(framesPerSecond int) Option {
	return func(l *Loop) error {
		lim, err := limiter.NewFPSLimiter(framesPerSecond)
		if err != nil {
			return fmt.Errorf("frameloop: %w", err)
		}
		l.lim = lim
		return nil
	}
}

// WithClock replaces the default frame clock.
func WithClock(clk *frameclock.Clock) Option {
	return func(l *Loop) error {
		if clk == nil {
			return fmt.Errorf("frameloop: nil clock")
		}
		l.clk = clk
		return nil
	}
}

// WithLogPermission sets the permission used when logging frame reports. The
// default is logger.Allow.
func WithLogPermission(perm logger.Permission) Option {
	return func(l *Loop) error {
		l.logPerm = perm
		return nil
	}
}
