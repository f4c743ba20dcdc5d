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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/platform/headless"
)

// LeadTime is the period before measurement begins. It allows the frame rate
// to settle.
var LeadTime = 2 * time.Second

// Check the performance of the renderer.
//
// The renderer is run in a frame loop with a headless platform for the
// duration, after the lead time. A cpu profile, a memory profile, a trace
// (or a combination of those) are created as defined by the Profile
// argument.
//
// If fps is zero the frame loop is uncapped. The accuracy in the output is
// relative to the target, which should be the frame rate the renderer is
// expected to run at.
func Check(output io.Writer, profile Profile, rnd frameloop.Renderer, width int32, height int32, fps int, target int, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive (%v)", duration)
	}

	buf, err := pixels.NewBuffer(width, height)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	plt := headless.NewPlatform(width, height)

	var startFrame int
	var startTime time.Time
	var endFrame int
	var endTime time.Time

	leadEnd := time.Now().Add(LeadTime)
	measuring := false

	opts := []frameloop.Option{
		frameloop.WithLogPermission(logger.Deny),
		frameloop.WithReporter(func(r frameloop.Report) {
			now := time.Now()
			if !measuring {
				if now.Before(leadEnd) {
					return
				}
				measuring = true
				startFrame = r.Frame
				startTime = now
				plt.StopAfter(duration)
			}
			endFrame = r.Frame
			endTime = now
		}),
	}
	if fps > 0 {
		opts = append(opts, frameloop.WithLimiter(fps))
	}

	l, err := frameloop.NewLoop(plt, plt, rnd, buf, opts...)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = RunProfiler(profile, "performance", l.Run)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := endFrame - startFrame
	dur := endTime.Sub(startTime)
	rate, accuracy := CalcFPS(numFrames, dur.Seconds(), target)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", rate, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "digest: %s\n", plt.Hash())

	return nil
}
