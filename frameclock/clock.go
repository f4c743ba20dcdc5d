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

// Package frameclock measures the time taken by each iteration of the frame
// loop.
//
// Time is measured with the monotonic clock reading carried by time.Time.
// Changes to the wall clock do not affect the measurement.
package frameclock

import (
	"fmt"
	"time"
)

// Source returns the current time. The default source is time.Now.
type Source func() time.Time

// Clock measures the time between successive calls to Tick().
type Clock struct {
	now  Source
	last time.Time
}

// NewClock is the preferred method of initialisation for the Clock type. The
// time of the first Tick() is measured from the time of this call.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a Clock with an alternative time source.
func NewClockWithSource(now Source) *Clock {
	return &Clock{
		now:  now,
		last: now(),
	}
}

// Tick returns the time elapsed since the previous call to Tick(). A
// non-monotonic source is clamped so that the elapsed time is never
// negative.
func (clk *Clock) Tick() time.Duration {
	t := clk.now()
	elapsed := t.Sub(clk.last)
	clk.last = t
	return max(elapsed, 0)
}

// Rate returns the number of frames per second for a frame that took the
// elapsed time. The rate is undefined for a zero duration and the boolean
// return value is false.
func Rate(elapsed time.Duration) (float64, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	return float64(time.Second) / float64(elapsed), true
}

// Milliseconds returns the duration as a floating point number of
// milliseconds.
func Milliseconds(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(time.Millisecond)
}

// FormatRate returns the rate as a string. An undefined rate is reported
// as such.
func FormatRate(elapsed time.Duration) string {
	r, ok := Rate(elapsed)
	if !ok {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", r)
}
