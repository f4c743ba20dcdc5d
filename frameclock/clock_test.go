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

package frameclock_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/rawframe/frameclock"
	"github.com/jetsetilly/rawframe/test"
)

// a time source that advances by a fixed list of steps
type steppedSource struct {
	t     time.Time
	steps []time.Duration
}

func (s *steppedSource) now() time.Time {
	if len(s.steps) > 0 {
		s.t = s.t.Add(s.steps[0])
		s.steps = s.steps[1:]
	}
	return s.t
}

func TestTick(t *testing.T) {
	src := &steppedSource{
		t:     time.Unix(0, 0),
		steps: []time.Duration{0, 16 * time.Millisecond, 17 * time.Millisecond, 0, -time.Millisecond},
	}

	clk := frameclock.NewClockWithSource(src.now)
	test.ExpectEquality(t, clk.Tick(), 16*time.Millisecond)
	test.ExpectEquality(t, clk.Tick(), 17*time.Millisecond)
	test.ExpectEquality(t, clk.Tick(), time.Duration(0))

	// backwards steps are clamped
	test.ExpectEquality(t, clk.Tick(), time.Duration(0))
}

func TestRealClock(t *testing.T) {
	clk := frameclock.NewClock()
	time.Sleep(time.Millisecond)
	test.ExpectSuccess(t, clk.Tick() >= time.Millisecond)
}

func TestRate(t *testing.T) {
	r, ok := frameclock.Rate(time.Second / 50)
	test.ExpectSuccess(t, ok)
	test.ExpectApproximate(t, r, 50.0, 0.0001)

	r, ok = frameclock.Rate(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, r, 0.0)

	test.ExpectEquality(t, frameclock.FormatRate(0), "undefined")
	test.ExpectEquality(t, frameclock.FormatRate(20*time.Millisecond), "50.00")
	test.ExpectEquality(t, frameclock.Milliseconds(1500*time.Microsecond), 1.5)
}
