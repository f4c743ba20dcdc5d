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

// Package pixels implements the back buffer that a render callback draws
// into and a platform presents.
//
// The buffer is row-major with an explicit pitch (the number of bytes
// between the start of consecutive rows). Each pixel is a 32 bit value
// stored in little-endian order. In the packed value, bits 0-7 are blue,
// bits 8-15 are green and bits 16-23 are red. Bits 24-31 are unused and
// should not be assumed to mean anything.
package pixels

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the size of each pixel in the buffer.
const BytesPerPixel = 4

// ErrOutOfBounds is returned when a pixel outside the buffer is accessed.
var ErrOutOfBounds = errors.New("pixels: out of bounds")

// MaxBytes is the largest amount of memory a buffer can use. The pitch and
// any offset into the buffer must fit in an int32.
const MaxBytes = math.MaxInt32

// Buffer is a bounds checked view of a block of pixel memory.
type Buffer struct {
	mem    []byte
	width  int32
	height int32
	pitch  int32
}

// NewBuffer creates a buffer of the given size. The pitch of the buffer is
// width * BytesPerPixel.
func NewBuffer(width int32, height int32) (*Buffer, error) {
	pitch := int64(width) * BytesPerPixel
	if pitch > MaxBytes {
		return nil, fmt.Errorf("pixels: illegal buffer size (%dx%d)", width, height)
	}
	return NewBufferWithPitch(width, height, int32(pitch))
}

// NewBufferWithPitch creates a buffer with an explicit pitch. The pitch must
// be at least width * BytesPerPixel and the buffer must be no larger than
// MaxBytes.
func NewBufferWithPitch(width int32, height int32, pitch int32) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixels: illegal buffer size (%dx%d)", width, height)
	}
	if int64(pitch) < int64(width)*BytesPerPixel {
		return nil, fmt.Errorf("pixels: pitch (%d) too small for width (%d)", pitch, width)
	}
	if int64(pitch)*int64(height) > MaxBytes {
		return nil, fmt.Errorf("pixels: buffer too large (%dx%d pitch %d)", width, height, pitch)
	}
	return &Buffer{
		mem:    make([]byte, int(pitch)*int(height)),
		width:  width,
		height: height,
		pitch:  pitch,
	}, nil
}

func (buf *Buffer) String() string {
	return fmt.Sprintf("%dx%d (pitch %d)", buf.width, buf.height, buf.pitch)
}

// Width of the buffer in pixels.
func (buf *Buffer) Width() int32 {
	return buf.width
}

// Height of the buffer in pixels.
func (buf *Buffer) Height() int32 {
	return buf.height
}

// Pitch of the buffer in bytes.
func (buf *Buffer) Pitch() int32 {
	return buf.pitch
}

// Bytes returns the underlying memory. It is intended for platforms that
// copy the buffer to a texture. The slice should not be retained.
func (buf *Buffer) Bytes() []byte {
	return buf.mem
}

func (buf *Buffer) offset(x int32, y int32) (int, error) {
	if x < 0 || y < 0 || x >= buf.width || y >= buf.height {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, buf.width, buf.height)
	}
	return int(y)*int(buf.pitch) + int(x)*BytesPerPixel, nil
}

// Set the pixel at x, y to the packed value. Writes outside the buffer are
// rejected.
func (buf *Buffer) Set(x int32, y int32, v uint32) error {
	o, err := buf.offset(x, y)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf.mem[o:], v)
	return nil
}

// At returns the packed value of the pixel at x, y.
func (buf *Buffer) At(x int32, y int32) (uint32, error) {
	o, err := buf.offset(x, y)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf.mem[o:]), nil
}

// Row returns the bytes of the visible part of a row. Padding at the end of
// the row, when pitch is greater than width * BytesPerPixel, is excluded.
func (buf *Buffer) Row(y int32) ([]byte, error) {
	o, err := buf.offset(0, y)
	if err != nil {
		return nil, err
	}
	return buf.mem[o : o+int(buf.width)*BytesPerPixel], nil
}

// Clear every pixel to zero.
func (buf *Buffer) Clear() {
	clear(buf.mem)
}

// Pack returns the packed value for the red, green and blue components.
func Pack(red uint8, green uint8, blue uint8) uint32 {
	return uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// Unpack is the inverse of Pack. The unused bits are ignored.
func Unpack(v uint32) (red uint8, green uint8, blue uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
