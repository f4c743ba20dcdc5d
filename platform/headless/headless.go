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

// Package headless implements the frameloop.Platform interface without a
// window. Input is taken from a Script and every presented frame is added to
// a chained SHA-1 digest, making the package useful for testing and for
// measuring the performance of a renderer.
package headless

import (
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/jetsetilly/rawframe/input"
	"github.com/jetsetilly/rawframe/pixels"
)

// Script is the raw input for successive frames. The first entry is used for
// the first frame and so on. Once the script is exhausted the final entry is
// used for every remaining frame.
type Script [][input.MaxControllers]input.RawController

// Platform implements the frameloop.Platform and input.Poller interfaces.
type Platform struct {
	width  int32
	height int32

	script Script

	// the loop is stopped when the number of serviced frames reaches the
	// limit. a limit of zero means there is no limit
	limit int

	// the loop is stopped if Service() is called after the deadline
	deadline time.Time

	// number of calls to Service() that did not request a quit
	serviced int

	// number of calls to Present()
	presented int

	digest [sha1.Size]byte
	chain  []byte
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The width and height are the values returned by Extent().
func NewPlatform(width int32, height int32) *Platform {
	return &Platform{
		width:  width,
		height: height,
	}
}

func (plt *Platform) String() string {
	return fmt.Sprintf("%d frames: %s", plt.presented, plt.Hash())
}

// SetScript sets the input script. Frames already serviced are not replayed.
func (plt *Platform) SetScript(script Script) {
	plt.script = script
}

// SetFrameLimit stops the loop once the number of frames have been
// rendered.
func (plt *Platform) SetFrameLimit(frames int) {
	plt.limit = max(frames, 0)
}

// StopAfter stops the loop once the duration has elapsed.
func (plt *Platform) StopAfter(d time.Duration) {
	plt.deadline = time.Now().Add(d)
}

// Service implements the frameloop.Platform interface.
func (plt *Platform) Service() bool {
	if plt.limit > 0 && plt.serviced >= plt.limit {
		return true
	}
	if !plt.deadline.IsZero() && time.Now().After(plt.deadline) {
		return true
	}
	plt.serviced++
	return false
}

// Poll implements the input.Poller interface. The script entry for the
// frame currently being serviced is returned.
func (plt *Platform) Poll(controller int) input.RawController {
	if len(plt.script) == 0 || controller < 0 || controller >= input.MaxControllers {
		return input.RawController{}
	}
	i := min(plt.serviced-1, len(plt.script)-1)
	if i < 0 {
		return input.RawController{}
	}
	return plt.script[i][controller]
}

// Extent implements the frameloop.Platform interface.
func (plt *Platform) Extent() (int32, int32) {
	return plt.width, plt.height
}

// Present implements the frameloop.Platform interface. The visible bytes of
// the buffer are added to the digest.
func (plt *Platform) Present(buf *pixels.Buffer, width int32, height int32) error {
	// the previous digest is at the head of the chain so that the digest of
	// every frame depends on every frame before it
	plt.chain = append(plt.chain[:0], plt.digest[:]...)
	for y := range buf.Height() {
		row, err := buf.Row(y)
		if err != nil {
			return fmt.Errorf("headless: %w", err)
		}
		plt.chain = append(plt.chain, row...)
	}
	plt.digest = sha1.Sum(plt.chain)
	plt.presented++
	return nil
}

// Presented returns the number of calls to Present().
func (plt *Platform) Presented() int {
	return plt.presented
}

// Hash returns the digest of every frame presented so far.
func (plt *Platform) Hash() string {
	return fmt.Sprintf("%x", plt.digest)
}

// ResetDigest clears the digest and the count of presented frames.
func (plt *Platform) ResetDigest() {
	clear(plt.digest[:])
	plt.presented = 0
}
