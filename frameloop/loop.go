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
	"errors"
	"fmt"

	"github.com/jetsetilly/rawframe/frameclock"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/performance/limiter"
	"github.com/jetsetilly/rawframe/pixels"
)

// Sentinel errors returned by NewLoop().
var (
	ErrNoPlatform = errors.New("frameloop: no platform")
	ErrNoRenderer = errors.New("frameloop: no renderer")
	ErrNoBuffer   = errors.New("frameloop: no buffer")
)

// State of the loop.
type State int

// List of valid State values.
const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loop is the frame loop.
type Loop struct {
	plt     Platform
	sampler *input.Sampler
	rnd     Renderer
	buf     *pixels.Buffer
	clk     *frameclock.Clock
	lim     *limiter.FpsLimiter

	cancel    input.Button
	useCancel bool

	reporters []func(Report)
	logPerm   logger.Permission

	state State
	frame int

	// the two input snapshots. the render callback only ever sees a copy of
	// current
	previous input.GameInput
	current  input.GameInput
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// poller may be nil, in which case every controller is disconnected.
func NewLoop(plt Platform, poller input.Poller, rnd Renderer, buf *pixels.Buffer, opts ...Option) (*Loop, error) {
	if plt == nil {
		return nil, ErrNoPlatform
	}
	if rnd == nil {
		return nil, ErrNoRenderer
	}
	if buf == nil {
		return nil, ErrNoBuffer
	}

	l := &Loop{
		plt:     plt,
		sampler: input.NewSampler(poller),
		rnd:     rnd,
		buf:     buf,
		logPerm: logger.Allow,
		state:   Running,
	}

	for _, o := range opts {
		if err := o(l); err != nil {
			return nil, err
		}
	}

	if l.clk == nil {
		l.clk = frameclock.NewClock()
	}

	return l, nil
}

// State returns the current state of the loop.
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() int {
	return l.frame
}

// Input returns the input snapshot of the most recently completed frame.
func (l *Loop) Input() input.GameInput {
	return l.previous
}

func (l *Loop) stop(reason string) {
	l.state = Stopped
	logger.Logf(logger.Allow, "frameloop", "stopped after %d frames (%s)", l.frame, reason)
}

// Step runs one iteration of the loop. It does nothing if the loop has
// stopped.
//
// An error from the platform's Present() function stops the loop and is
// returned.
func (l *Loop) Step() error {
	if l.state == Stopped {
		return nil
	}

	if l.plt.Service() {
		l.stop("quit")
		return nil
	}

	l.current = l.sampler.Sample(&l.previous)
	if l.useCancel && l.current.Pressed(l.cancel) {
		l.stop(fmt.Sprintf("cancel button %s", l.cancel))
		return nil
	}

	l.rnd.Render(l.buf, l.current)

	w, h := l.plt.Extent()
	if err := l.plt.Present(l.buf, w, h); err != nil {
		l.stop("present failed")
		return fmt.Errorf("frameloop: %w", err)
	}

	if l.lim != nil {
		l.lim.Wait()
	}

	r := newReport(l.frame, l.clk.Tick(), l.current)
	logger.Log(l.logPerm, "frameloop", r)
	for _, f := range l.reporters {
		f(r)
	}

	l.previous = l.current
	l.frame++

	return nil
}

// Run the loop until it stops.
func (l *Loop) Run() error {
	for l.state == Running {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}
