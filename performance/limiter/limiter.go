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

// Package limiter paces the frame loop to a fixed number of frames per
// second.
//
// The limiter is single threaded. Wait() sleeps until the deadline of the
// current frame and then moves the deadline forward by one frame period.
// Because the deadline moves by a fixed amount, oversleeping in one frame is
// recovered in the next and the average rate converges on the requested
// rate. If the loop falls more than one frame behind the deadline is reset,
// rather than running a burst of unpaced frames to catch up.
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter paces calls to Wait() to a fixed rate.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	// the time at which the current frame should end. zero until the first
	// call to Wait()
	deadline time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetTimeFunctions replaces the time source and the sleep function. Used in
// testing.
func (lim *FpsLimiter) SetTimeFunctions(now func() time.Time, sleep func(time.Duration)) {
	lim.now = now
	lim.sleep = sleep
	lim.deadline = time.Time{}
}

// SetLimit changes the number of frames per second. The new rate takes
// effect from the next call to Wait().
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: illegal frame rate (%d)", framesPerSecond)
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	return nil
}

// Limit returns the current number of frames per second.
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait until the end of the current frame period.
func (lim *FpsLimiter) Wait() {
	now := lim.now()

	// the first frame starts now
	if lim.deadline.IsZero() {
		lim.deadline = now.Add(lim.secondsPerFrame)
		return
	}

	if d := lim.deadline.Sub(now); d > 0 {
		lim.sleep(d)
		now = lim.now()
	}

	if now.Sub(lim.deadline) > lim.secondsPerFrame {
		lim.deadline = now.Add(lim.secondsPerFrame)
	} else {
		lim.deadline = lim.deadline.Add(lim.secondsPerFrame)
	}
}
