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

// Package sdlplay implements the frameloop.Platform interface with an SDL
// window and an accelerated SDL renderer.
//
// The back buffer is copied to a streaming texture every frame and the
// texture is drawn scaled to the whole of the window.
package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/platform/sdlevents"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform implements the frameloop.Platform interface.
type Platform struct {
	sdlevents.Pump

	window   *sdl.Window
	renderer *sdl.Renderer

	// the texture is recreated if the size of the back buffer changes
	texture *sdl.Texture
	texW    int32
	texH    int32
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window is created with an initial size of the back buffer size
// multiplied by the scale.
//
// Must be called from the main thread.
func NewPlatform(title string, width int32, height int32, scale float32) (*Platform, error) {
	plt := &Platform{}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	if scale <= 0 {
		scale = 1.0
	}

	plt.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	plt.renderer, err = sdl.CreateRenderer(plt.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	if info, err := plt.renderer.GetInfo(); err == nil {
		logger.Logf(logger.Allow, "sdlplay", "renderer: %s", info.Name)
	}

	return plt, nil
}

// Destroy all SDL resources.
//
// Must be called from the main thread.
func (plt *Platform) Destroy() {
	if plt.texture != nil {
		plt.texture.Destroy()
		plt.texture = nil
	}
	if plt.renderer != nil {
		plt.renderer.Destroy()
		plt.renderer = nil
	}
	if plt.window != nil {
		plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}

// Extent implements the frameloop.Platform interface.
func (plt *Platform) Extent() (int32, int32) {
	return plt.window.GetSize()
}

func (plt *Platform) prepareTexture(buf *pixels.Buffer) error {
	if plt.texture != nil && plt.texW == buf.Width() && plt.texH == buf.Height() {
		return nil
	}

	if plt.texture != nil {
		plt.texture.Destroy()
		plt.texture = nil
	}

	// the packed pixel format of the back buffer is blue in the low byte,
	// green in the next and red in the next. the top byte is unused. in SDL
	// terms that is RGB888
	var err error
	plt.texture, err = plt.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888),
		int(sdl.TEXTUREACCESS_STREAMING),
		buf.Width(), buf.Height())
	if err != nil {
		return err
	}

	plt.texW = buf.Width()
	plt.texH = buf.Height()
	logger.Logf(logger.Allow, "sdlplay", "texture: %s", buf)

	return nil
}

// Present implements the frameloop.Platform interface.
//
// Must be called from the main thread.
func (plt *Platform) Present(buf *pixels.Buffer, width int32, height int32) error {
	if err := plt.prepareTexture(buf); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	tex, pitch, err := plt.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	// the texture pitch may differ from the back buffer pitch so copy row by
	// row
	for y := range buf.Height() {
		row, _ := buf.Row(y)
		copy(tex[int(y)*pitch:], row)
	}
	plt.texture.Unlock()

	if err := plt.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	err = plt.renderer.Copy(plt.texture, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	plt.renderer.Present()

	return nil
}
