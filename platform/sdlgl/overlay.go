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

package sdlgl

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/rawframe/frameloop"
	"github.com/jetsetilly/rawframe/input"
)

// overlay draws frame statistics with dear imgui
type overlay struct {
	context *imgui.Context
	font    gl21Texture

	// the most recent report and the range of frame times seen since the
	// overlay was last reset
	last    frameloop.Report
	fastest time.Duration
	slowest time.Duration
	since   time.Time
}

// how often the fastest and slowest frame times are reset
const overlayPeriod = time.Second

func newOverlay() *overlay {
	ovl := &overlay{
		context: imgui.CreateContext(nil),
	}

	io := imgui.CurrentIO()
	io.SetIniFilename("")

	fonts := io.Fonts()
	fonts.AddFontDefault()
	image := fonts.TextureDataRGBA32()

	ovl.font = newTexture(true)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, ovl.font.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	fonts.SetTextureID(imgui.TextureID(ovl.font.id))

	return ovl
}

func (ovl *overlay) destroy() {
	ovl.font.destroy()
	ovl.context.Destroy()
}

// Observe is a frameloop reporter. It records the frame statistics shown by
// the overlay.
func (plt *Platform) Observe(r frameloop.Report) {
	if plt.overlay == nil {
		return
	}

	ovl := plt.overlay
	ovl.last = r

	now := time.Now()
	if now.Sub(ovl.since) > overlayPeriod {
		ovl.since = now
		ovl.fastest = r.Elapsed
		ovl.slowest = r.Elapsed
		return
	}
	ovl.fastest = min(ovl.fastest, r.Elapsed)
	ovl.slowest = max(ovl.slowest, r.Elapsed)
}

func controllerSummary(c input.ControllerInput) string {
	if !c.Connected {
		return "disconnected"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("stick % .2f % .2f", c.Stick.X.Stop, c.Stick.Y.Stop))
	for b := range input.NumButtons {
		if c.Button(b).IsDown {
			s.WriteString(" ")
			s.WriteString(b.String())
		}
	}
	return s.String()
}

func (ovl *overlay) render(winw int32, winh int32, fbw int32, fbh int32) {
	io := imgui.CurrentIO()
	io.SetDisplaySize(imgui.Vec2{X: float32(winw), Y: float32(winh)})

	// imgui requires a positive delta time
	dt := float32(ovl.last.Elapsed.Seconds())
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	io.SetDeltaTime(dt)

	imgui.NewFrame()

	imgui.SetNextWindowPos(imgui.Vec2{X: 10, Y: 10})
	imgui.SetNextWindowBgAlpha(0.6)
	flags := imgui.WindowFlagsNoDecoration | imgui.WindowFlagsAlwaysAutoResize |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav
	if imgui.BeginV("##frameloop", nil, flags) {
		imgui.Text(fmt.Sprintf("frame %d", ovl.last.Frame))
		imgui.Text(ovl.last.String())
		imgui.Text(fmt.Sprintf("range %.2fms - %.2fms",
			float64(ovl.fastest)/float64(time.Millisecond),
			float64(ovl.slowest)/float64(time.Millisecond)))
		imgui.Separator()
		for i, c := range ovl.last.Input.Controllers {
			imgui.Text(fmt.Sprintf("%d: %s", i, controllerSummary(c)))
		}
	}
	imgui.End()

	imgui.Render()
	renderDrawData(imgui.RenderedDrawData(), winw, winh, fbw, fbh)
}
