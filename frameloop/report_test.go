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

package frameloop_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/rawframe/frameclock"
	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/test"
)

func TestReportString(t *testing.T) {
	steps := []time.Duration{20 * time.Millisecond, 40 * time.Millisecond}
	now := time.Unix(0, 0)
	clk := frameclock.NewClockWithSource(func() time.Time {
		return now
	})

	// the render callback advances the clock source
	plt := &fakePlatform{log: &events{}, quitOn: 3}
	rnd := frameloop.RenderFunc(func(*pixels.Buffer, input.GameInput) {
		now = now.Add(steps[0])
		steps = steps[1:]
	})

	var reports []string
	rep := func(r frameloop.Report) {
		reports = append(reports, r.String())
	}

	l, err := frameloop.NewLoop(plt, nil, rnd, newBuffer(t), frameloop.WithClock(clk), frameloop.WithReporter(rep), quietLoop())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, l.Run())

	test.DemandEquality(t, len(reports), 2)
	test.ExpectEquality(t, reports[0], "20.000ms/f, 50.00f/s")
	test.ExpectEquality(t, reports[1], "40.000ms/f, 25.00f/s")
}

func TestReportLogging(t *testing.T) {
	w := &test.CompareWriter{}
	logger.SetEcho(w)
	defer logger.SetEcho(nil)

	plt := &fakePlatform{log: &events{}, quitOn: 2}
	rnd := frameloop.RenderFunc(func(*pixels.Buffer, input.GameInput) {})

	l, err := frameloop.NewLoop(plt, nil, rnd, newBuffer(t))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, l.Run())

	lines := w.Lines()
	test.DemandSuccess(t, len(lines) >= 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[len(lines)-2], "frameloop: "))
	test.ExpectSuccess(t, strings.Contains(lines[len(lines)-2], "ms/f"))
	test.ExpectEquality(t, lines[len(lines)-1], "frameloop: stopped after 1 frames (quit)")
}
