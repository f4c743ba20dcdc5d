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

package pixels_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/test"
)

func TestNewBuffer(t *testing.T) {
	buf, err := pixels.NewBuffer(1280, 720)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Width(), int32(1280))
	test.ExpectEquality(t, buf.Height(), int32(720))
	test.ExpectEquality(t, buf.Pitch(), int32(1280*4))
	test.ExpectEquality(t, len(buf.Bytes()), 1280*720*4)
	test.ExpectEquality(t, buf.String(), "1280x720 (pitch 5120)")

	_, err = pixels.NewBuffer(0, 10)
	test.ExpectFailure(t, err)
	_, err = pixels.NewBuffer(10, -1)
	test.ExpectFailure(t, err)
	_, err = pixels.NewBufferWithPitch(10, 10, 39)
	test.ExpectFailure(t, err)
}

func TestByteLayout(t *testing.T) {
	buf, err := pixels.NewBuffer(4, 2)
	test.DemandSuccess(t, err)

	// low byte is blue, the next byte is green
	test.DemandSuccess(t, buf.Set(1, 1, 0x00002a7f))
	o := 1*int(buf.Pitch()) + 1*pixels.BytesPerPixel
	b := buf.Bytes()
	test.ExpectEquality(t, b[o], uint8(0x7f))
	test.ExpectEquality(t, b[o+1], uint8(0x2a))
	test.ExpectEquality(t, b[o+2], uint8(0x00))
	test.ExpectEquality(t, b[o+3], uint8(0x00))

	v, err := buf.At(1, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00002a7f))

	test.ExpectEquality(t, pixels.Pack(0x11, 0x2a, 0x7f), uint32(0x00112a7f))
	r, g, bl := pixels.Unpack(0xff112a7f)
	test.ExpectEquality(t, r, uint8(0x11))
	test.ExpectEquality(t, g, uint8(0x2a))
	test.ExpectEquality(t, bl, uint8(0x7f))
}

func TestBounds(t *testing.T) {
	buf, err := pixels.NewBuffer(4, 3)
	test.DemandSuccess(t, err)

	outside := [][2]int32{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}}
	for _, p := range outside {
		err := buf.Set(p[0], p[1], 0xffffff)
		test.ExpectSuccess(t, errors.Is(err, pixels.ErrOutOfBounds), p)
		_, err = buf.At(p[0], p[1])
		test.ExpectSuccess(t, errors.Is(err, pixels.ErrOutOfBounds), p)
	}

	// nothing was written by the rejected calls
	for _, v := range buf.Bytes() {
		test.DemandEquality(t, v, uint8(0))
	}

	test.ExpectSuccess(t, buf.Set(3, 2, 0xffffff))
}

func TestPitch(t *testing.T) {
	buf, err := pixels.NewBufferWithPitch(3, 2, 16)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Bytes()), 32)

	test.DemandSuccess(t, buf.Set(0, 1, 0x010203))
	b := buf.Bytes()
	test.ExpectEquality(t, b[16], uint8(0x03))

	// the padding at the end of the row is outside the view
	test.ExpectFailure(t, buf.Set(3, 0, 0))

	row, err := buf.Row(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(row), 12)
	test.ExpectEquality(t, row[0], uint8(0x03))

	_, err = buf.Row(2)
	test.ExpectFailure(t, err)

	buf.Clear()
	v, _ := buf.At(0, 1)
	test.ExpectEquality(t, v, uint32(0))
}

func TestOversizedBuffer(t *testing.T) {
	// width * BytesPerPixel does not fit in an int32
	_, err := pixels.NewBuffer(600000000, 1)
	test.ExpectFailure(t, err)

	// each row fits but the whole buffer does not
	_, err = pixels.NewBuffer(100000, 100000)
	test.ExpectFailure(t, err)

	_, err = pixels.NewBufferWithPitch(1, 2, pixels.MaxBytes)
	test.ExpectFailure(t, err)

	// the pitch comparison must not wrap
	_, err = pixels.NewBufferWithPitch(600000000, 1, -1894967296)
	test.ExpectFailure(t, err)
}
