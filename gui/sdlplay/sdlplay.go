// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is the SDL implementation of the gui.GUI interface used
// by the play mode. It also implements the screen.PixelRenderer interface:
// every frame forwarded to it is copied to a streaming texture and
// presented through the SDL renderer.
//
// Window creation and event servicing must happen on the main thread. The
// Service() function is called repeatedly from the main loop; feature
// requests arriving from other goroutines are queued on a channel and
// serviced there.
package sdlplay

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/chip8/video"
)

const windowTitle = "Gopher8"

// number of bytes per pixel in the texture
const pixelDepth = 4

// SdlPlay is the SDL implementation of the gui.GUI and
// screen.PixelRenderer interfaces.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before
	// applying it to the renderer. it is video.Width * video.Height *
	// pixelDepth in length
	pixels []byte

	// the amount of scaling applied to each framebuffer pixel
	scale float32

	// events are forwarded to this channel once it has been registered
	// with a ReqSetEventChan request
	events chan gui.Event

	// featureReq is served by the Service() function on the main thread
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		scale:      scale,
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
	}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window is created hidden. it is shown on a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(video.Width)*scale), int32(float32(video.Height)*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the framebuffer. scaling is applied by
	// the renderer in order to fit it in the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// use scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(video.Width) * scr.scale)
	h := int32(float32(video.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// NewFrame implements the screen.PixelRenderer interface. Note that this
// is called from the emulation goroutine, not the main thread.
func (scr *SdlPlay) NewFrame(frameNum int, pixels []bool) error {
	for i, p := range pixels {
		o := i * pixelDepth
		if p {
			scr.pixels[o] = 255
			scr.pixels[o+1] = 255
			scr.pixels[o+2] = 255
		} else {
			scr.pixels[o] = 0
			scr.pixels[o+1] = 0
			scr.pixels[o+2] = 0
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the screen.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

// Destroy cleans up the SDL resources used by the window. Errors are
// written to the output writer rather than returned.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
	}
}
