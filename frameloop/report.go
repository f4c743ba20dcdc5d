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
	"time"

	"github.com/jetsetilly/rawframe/frameclock"
	"github.com/jetsetilly/rawframe/input"
)

// Report is created at the end of every frame and given to every reporter
// added with WithReporter().
type Report struct {
	// frame number, starting at zero
	Frame int

	// time since the previous frame
	Elapsed time.Duration

	// frames per second. only meaningful if RateValid is true. the rate is
	// undefined for a frame of zero duration
	Rate      float64
	RateValid bool

	// the input snapshot that was given to the render callback
	Input input.GameInput
}

func newReport(frame int, elapsed time.Duration, inp input.GameInput) Report {
	r := Report{
		Frame:   frame,
		Elapsed: elapsed,
		Input:   inp,
	}
	r.Rate, r.RateValid = frameclock.Rate(elapsed)
	return r
}

func (r Report) String() string {
	if !r.RateValid {
		return fmt.Sprintf("%.3fms/f, undefined f/s", frameclock.Milliseconds(r.Elapsed))
	}
	return fmt.Sprintf("%.3fms/f, %.2ff/s", frameclock.Milliseconds(r.Elapsed), r.Rate)
}
