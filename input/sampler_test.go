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

package input_test

import (
	"testing"

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/test"
)

func connected(buttons input.ButtonMask, x, y int16) input.RawController {
	return input.RawController{
		Connected: true,
		Buttons:   buttons,
		StickX:    x,
		StickY:    y,
	}
}

// five frames of the A button on controller 0: up, up, down, down, up
func TestButtonSequence(t *testing.T) {
	sequence := []input.ButtonMask{0, 0, input.MaskA, input.MaskA, 0}
	expectedDown := []bool{false, false, true, true, false}
	expectedTransitions := []int{0, 0, 1, 0, 1}

	var prev input.GameInput
	for i, m := range sequence {
		var raw [input.MaxControllers]input.RawController
		raw[0] = connected(m, 0, 0)

		curr := input.Sample(raw, &prev)
		a := curr.Controllers[0].Button(input.ButtonA)
		test.ExpectEquality(t, a.IsDown, expectedDown[i], "frame", i)
		test.ExpectEquality(t, a.HalfTransitionCount, expectedTransitions[i], "frame", i)

		prev = curr
	}
}

func TestEdgeCounting(t *testing.T) {
	var prev input.GameInput
	var raw [input.MaxControllers]input.RawController

	// every button pressed on every controller
	for i := range raw {
		raw[i] = connected(0xffff, 0, 0)
	}
	curr := input.Sample(raw, &prev)
	for c := range curr.Controllers {
		for b := range input.NumButtons {
			s := curr.Controllers[c].Button(b)
			test.ExpectSuccess(t, s.IsDown, c, b)
			test.ExpectEquality(t, s.HalfTransitionCount, 1, c, b)
			test.ExpectSuccess(t, s.Pressed(), c, b)
		}
	}

	// holding the buttons produces no transitions
	prev = curr
	curr = input.Sample(raw, &prev)
	for b := range input.NumButtons {
		s := curr.Controllers[0].Button(b)
		test.ExpectSuccess(t, s.IsDown, b)
		test.ExpectEquality(t, s.HalfTransitionCount, 0, b)
		test.ExpectFailure(t, s.Pressed(), b)
	}

	// releasing only the B button
	prev = curr
	raw[0] = connected(0xffff&^input.MaskB, 0, 0)
	curr = input.Sample(raw, &prev)
	test.ExpectSuccess(t, curr.Controllers[0].Button(input.ButtonB).Released())
	test.ExpectEquality(t, curr.Controllers[0].Button(input.ButtonA).HalfTransitionCount, 0)

	// the previous snapshot is never altered by sampling
	test.ExpectSuccess(t, prev.Controllers[0].Button(input.ButtonB).IsDown)
}

func TestUntrackedButtons(t *testing.T) {
	var prev input.GameInput
	var raw [input.MaxControllers]input.RawController
	raw[0] = connected(input.MaskStart|input.MaskBack|input.MaskDPadUp|input.MaskLeftThumb, 0, 0)

	curr := input.Sample(raw, &prev)
	for b := range input.NumButtons {
		test.ExpectFailure(t, curr.Controllers[0].Button(b).IsDown, b)
	}
}

func TestStickContinuity(t *testing.T) {
	samples := []int16{0, 16384, -32768, 32767, -1}

	var prev input.GameInput
	for i, v := range samples {
		var raw [input.MaxControllers]input.RawController
		raw[1] = connected(0, v, -v/2)

		curr := input.Sample(raw, &prev)
		x := curr.Controllers[1].Stick.X
		test.ExpectEquality(t, x.Start, prev.Controllers[1].Stick.X.Stop, "frame", i)
		test.ExpectEquality(t, x.Stop, input.NormaliseAxis(v), "frame", i)
		test.ExpectEquality(t, x.Min, x.Stop, "frame", i)
		test.ExpectEquality(t, x.Max, x.Stop, "frame", i)

		y := curr.Controllers[1].Stick.Y
		test.ExpectEquality(t, y.Start, prev.Controllers[1].Stick.Y.Stop, "frame", i)
		test.ExpectEquality(t, y.Stop, input.NormaliseAxis(-v/2), "frame", i)

		prev = curr
	}
}

func TestDisconnectReset(t *testing.T) {
	var prev input.GameInput
	var raw [input.MaxControllers]input.RawController
	raw[2] = connected(input.MaskA|input.MaskY, 20000, -20000)

	curr := input.Sample(raw, &prev)
	test.DemandSuccess(t, curr.Controllers[2].Connected)
	test.ExpectEquality(t, curr.NumConnected(), 1)

	// disconnecting resets to the default state whatever the previous state
	prev = curr
	raw[2] = input.RawController{Buttons: input.MaskA, StickX: 100}
	curr = input.Sample(raw, &prev)
	test.ExpectEquality(t, curr.Controllers[2], input.ControllerInput{})
	test.ExpectEquality(t, curr.NumConnected(), 0)

	// reconnecting starts from the default state
	prev = curr
	raw[2] = connected(input.MaskA, 0, 0)
	curr = input.Sample(raw, &prev)
	test.ExpectEquality(t, curr.Controllers[2].Button(input.ButtonA).HalfTransitionCount, 1)
	test.ExpectEquality(t, curr.Controllers[2].Stick.X.Start, float32(0.0))
}

func TestGameInputPressed(t *testing.T) {
	var prev input.GameInput
	var raw [input.MaxControllers]input.RawController
	raw[3] = connected(input.MaskRightShoulder, 0, 0)

	curr := input.Sample(raw, &prev)
	test.ExpectSuccess(t, curr.Pressed(input.ButtonRightShoulder))
	test.ExpectFailure(t, curr.Pressed(input.ButtonLeftShoulder))

	prev = curr
	curr = input.Sample(raw, &prev)
	test.ExpectFailure(t, curr.Pressed(input.ButtonRightShoulder))
}

type scriptedPoller struct {
	polled []int
	state  input.RawController
}

func (p *scriptedPoller) Poll(controller int) input.RawController {
	p.polled = append(p.polled, controller)
	if controller == 0 {
		return p.state
	}
	return input.RawController{}
}

func TestSampler(t *testing.T) {
	p := &scriptedPoller{state: connected(input.MaskX, 32767, 0)}
	s := input.NewSampler(p)

	var prev input.GameInput
	curr := s.Sample(&prev)
	test.ExpectEquality(t, len(p.polled), input.MaxControllers)
	test.ExpectSuccess(t, curr.Controllers[0].Button(input.ButtonX).IsDown)
	test.ExpectEquality(t, curr.Controllers[0].Stick.X.Stop, float32(1.0))
	test.ExpectFailure(t, curr.Controllers[1].Connected)
}

func TestNoPoller(t *testing.T) {
	logger.Clear()
	s := input.NewSampler(nil)

	// the missing driver is not an error but it is logged
	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectSuccess(t, w.Compare("input: no controller driver: all controllers disconnected\n"))

	var prev input.GameInput
	curr := s.Sample(&prev)
	test.ExpectEquality(t, curr, input.GameInput{})

	raw := s.Poll()
	for i := range raw {
		test.ExpectFailure(t, raw[i].Connected, i)
	}
}
