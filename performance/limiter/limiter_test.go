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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/rawframe/performance/limiter"
	"github.com/jetsetilly/rawframe/test"
)

// fakeTime advances only when sleep() is called or when work() is called
// to simulate the time taken by a frame
type fakeTime struct {
	t     time.Time
	slept []time.Duration
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.t = f.t.Add(d)
}

func (f *fakeTime) work(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestIllegalLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(50)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 50)
}

func TestPacing(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(50)
	test.DemandSuccess(t, err)

	ft := &fakeTime{t: time.Unix(1000, 0)}
	lim.SetTimeFunctions(ft.now, ft.sleep)

	// first call sets the deadline and does not sleep
	lim.Wait()
	test.ExpectEquality(t, len(ft.slept), 0)

	// a frame that takes 5ms sleeps for the remaining 15ms
	ft.work(5 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(ft.slept), 1)
	test.ExpectEquality(t, ft.slept[0], 15*time.Millisecond)

	// a frame that overruns by 5ms is recovered in the next frame
	ft.work(25 * time.Millisecond)
	lim.Wait()
	test.ExpectEquality(t, len(ft.slept), 1)
	ft.work(5 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(ft.slept), 2)
	test.ExpectEquality(t, ft.slept[1], 10*time.Millisecond)
}

func TestFallingBehind(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)

	ft := &fakeTime{t: time.Unix(1000, 0)}
	lim.SetTimeFunctions(ft.now, ft.sleep)
	lim.Wait()

	// a very long frame resets the deadline rather than causing a burst of
	// unpaced frames
	ft.work(time.Second)
	lim.Wait()
	test.ExpectEquality(t, len(ft.slept), 0)

	ft.work(2 * time.Millisecond)
	lim.Wait()
	test.DemandEquality(t, len(ft.slept), 1)
	test.ExpectEquality(t, ft.slept[0], 8*time.Millisecond)
}
