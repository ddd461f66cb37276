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

// Package screen carries the rendering chain between the chip8 machine
// and the host front-ends. The machine itself knows nothing about the
// attached renderers and mixers; the host loop reads the framebuffer and
// beep state out of the machine and forwards them through the Screen
// type to everything that has been attached.
//
// Implementations of PixelRenderer display or otherwise work with frames
// of the framebuffer. Implementations of AudioMixer work with the beep
// line; most probably playing it. Examples of implementations that do
// neither of those things literally are digest.Video, which fingerprints
// frames, and the wavwriter package, which records the beep line to disk.
package screen

// PixelRenderer implementations receive a copy of the framebuffer
// whenever the host forwards a new frame.
type PixelRenderer interface {
	// NewFrame is called with a copy of the framebuffer. row-major, with
	// a stride of video.Width
	NewFrame(frameNum int, pixels []bool) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. for simplicity, the PixelRenderer should be considered
	// unusable after EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations receive the state of the beep line whenever
// the host forwards it.
type AudioMixer interface {
	SetBeep(on bool) error

	// some mixers may need to conclude and/or dispose of resources
	// gently. for simplicity, the AudioMixer should be considered
	// unusable after EndMixing() has been called
	EndMixing() error
}

// Screen fans out frames and beep state to every attached PixelRenderer
// and AudioMixer.
type Screen struct {
	renderers []PixelRenderer
	mixers    []AudioMixer
	frameNum  int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		renderers: make([]PixelRenderer, 0),
		mixers:    make([]AudioMixer, 0),
	}
}

// AddPixelRenderer adds a renderer to the rendering chain.
func (scr *Screen) AddPixelRenderer(r PixelRenderer) {
	scr.renderers = append(scr.renderers, r)
}

// AddAudioMixer adds a mixer to the rendering chain.
func (scr *Screen) AddAudioMixer(m AudioMixer) {
	scr.mixers = append(scr.mixers, m)
}

// NewFrame forwards a framebuffer snapshot to every attached renderer.
// The frame number increases by one with every call.
func (scr *Screen) NewFrame(pixels []bool) error {
	scr.frameNum++
	for _, r := range scr.renderers {
		if err := r.NewFrame(scr.frameNum, pixels); err != nil {
			return err
		}
	}
	return nil
}

// SetBeep forwards the state of the beep line to every attached mixer.
func (scr *Screen) SetBeep(on bool) error {
	for _, m := range scr.mixers {
		if err := m.SetBeep(on); err != nil {
			return err
		}
	}
	return nil
}

// End concludes every attached renderer and mixer. The Screen should be
// considered unusable after End() has been called.
//
// The first error encountered is returned but ending continues for the
// remaining renderers and mixers regardless.
func (scr *Screen) End() error {
	var rerr error
	for _, r := range scr.renderers {
		if err := r.EndRendering(); err != nil && rerr == nil {
			rerr = err
		}
	}
	for _, m := range scr.mixers {
		if err := m.EndMixing(); err != nil && rerr == nil {
			rerr = err
		}
	}
	return rerr
}
