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

package game_test

import (
	"testing"

	"github.com/jetsetilly/rawframe/game"
	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/test"
)

func TestGradient(t *testing.T) {
	buf, err := pixels.NewBufferWithPitch(300, 260, 300*4+16)
	test.DemandSuccess(t, err)

	g := &game.Gradient{XOffset: 3, YOffset: 5}
	expected := &game.Gradient{XOffset: 3, YOffset: 5}

	g.Render(buf, input.GameInput{})

	for _, p := range [][2]int32{{0, 0}, {1, 0}, {0, 1}, {252, 250}, {299, 259}} {
		v, err := buf.At(p[0], p[1])
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, expected.Colour(p[0], p[1]), p)
	}

	// blue wraps every 256 pixels
	a, _ := buf.At(10, 0)
	b, _ := buf.At(266, 0)
	test.ExpectEquality(t, a, b)

	// the padding at the end of each row is untouched
	row := buf.Bytes()[300*4 : 300*4+16]
	for _, v := range row {
		test.ExpectEquality(t, v, uint8(0))
	}

	// no controllers, no movement
	test.ExpectEquality(t, g.XOffset, int32(3))
	test.ExpectEquality(t, g.YOffset, int32(5))
}

func TestGradientSteering(t *testing.T) {
	buf, err := pixels.NewBuffer(4, 4)
	test.DemandSuccess(t, err)

	var raw [input.MaxControllers]input.RawController
	raw[0] = input.RawController{Connected: true, StickX: 32767, StickY: -32768}
	raw[2] = input.RawController{Connected: true, StickX: 16384}
	var prev input.GameInput
	inp := input.Sample(raw, &prev)

	g := &game.Gradient{}
	g.Render(buf, inp)
	test.ExpectEquality(t, g.XOffset, int32(8+4))
	test.ExpectEquality(t, g.YOffset, int32(-8))

	// the stick moves the gradient in the same frame
	v, err := buf.At(0, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, pixels.Pack(0, 248, 12))
	test.ExpectEquality(t, v, g.Colour(0, 0))

	g = &game.Gradient{Drift: true}
	g.Render(buf, input.GameInput{})
	g.Render(buf, input.GameInput{})
	test.ExpectEquality(t, g.XOffset, int32(2))
	v, err = buf.At(0, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, pixels.Pack(0, 0, 2))
}
