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

// Package sdlgl implements the frameloop.Platform interface with an SDL
// window and an OpenGL 2.1 context.
//
// The back buffer is uploaded to a texture and drawn as a single quad that
// covers the window. A dear imgui overlay showing frame timing and the state
// of the controllers is drawn over the quad. The overlay receives its
// information through the Observe() function, which should be added to the
// frame loop as a reporter.
package sdlgl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/jetsetilly/rawframe/logger"
	"github.com/jetsetilly/rawframe/pixels"
	"github.com/jetsetilly/rawframe/platform/sdlevents"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform implements the frameloop.Platform interface.
type Platform struct {
	sdlevents.Pump

	window    *sdl.Window
	glContext sdl.GLContext

	// the texture that the back buffer is uploaded to
	screen gl21Texture

	overlay *overlay
}

// setAttributes requests an OpenGL 2.1 context. the version is required but
// double buffering is only a preference and a failure to set it is logged
func setAttributes(set func(attr sdl.GLattr, value int) error) error {
	if err := set(sdl.GL_CONTEXT_MAJOR_VERSION, 2); err != nil {
		return fmt.Errorf("sdlgl: %w", err)
	}
	if err := set(sdl.GL_CONTEXT_MINOR_VERSION, 1); err != nil {
		return fmt.Errorf("sdlgl: %w", err)
	}
	if err := set(sdl.GL_DOUBLEBUFFER, 1); err != nil {
		logger.Logf(logger.Allow, "sdlgl", "GL_DOUBLEBUFFER: %v", err)
	}
	return nil
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window is created with an initial size of the back buffer size
// multiplied by the scale.
//
// Must be called from the main thread.
func NewPlatform(title string, width int32, height int32, scale float32, showOverlay bool) (*Platform, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	err = setAttributes(sdl.GLSetAttribute)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	if scale <= 0 {
		scale = 1.0
	}

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(width)*scale), int32(float32(height)*scale),
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_SHOWN))
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	// presentation is paced by the frame loop's limiter, not by the
	// vertical retrace
	if err := sdl.GLSetSwapInterval(0); err != nil {
		logger.Logf(logger.Allow, "sdlgl", "GLSetSwapInterval(0): %v", err)
	}

	err = gl.Init()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	logger.Logf(logger.Allow, "sdlgl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "sdlgl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "sdlgl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	plt.screen = newTexture(false)

	if showOverlay {
		plt.overlay = newOverlay()
	}

	return plt, nil
}

// Destroy all SDL and OpenGL resources.
//
// Must be called from the main thread.
func (plt *Platform) Destroy() {
	if plt.overlay != nil {
		plt.overlay.destroy()
		plt.overlay = nil
	}
	if plt.screen.id != 0 {
		plt.screen.destroy()
	}
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
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

// Present implements the frameloop.Platform interface.
//
// Must be called from the main thread.
func (plt *Platform) Present(buf *pixels.Buffer, width int32, height int32) error {
	// the drawable size can differ from the window size on high DPI displays
	fbw, fbh := plt.window.GLGetDrawableSize()
	if fbw <= 0 || fbh <= 0 {
		return nil
	}

	gl.Viewport(0, 0, fbw, fbh)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	plt.screen.upload(buf)
	plt.screen.drawQuad(width, height)

	if plt.overlay != nil {
		plt.overlay.render(width, height, fbw, fbh)
	}

	plt.window.GLSwap()

	if err := gl.GetError(); err != gl.NO_ERROR {
		return fmt.Errorf("sdlgl: gl error %#x", err)
	}

	return nil
}
