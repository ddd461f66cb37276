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

package screen_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/screen"
	"github.com/jetsetilly/gopher8/test"
)

type mockRenderer struct {
	frames    int
	lastFrame int
	ended     bool
}

func (r *mockRenderer) NewFrame(frameNum int, pixels []bool) error {
	r.frames++
	r.lastFrame = frameNum
	return nil
}

func (r *mockRenderer) EndRendering() error {
	r.ended = true
	return nil
}

type mockMixer struct {
	beeps int
	last  bool
	ended bool
}

func (m *mockMixer) SetBeep(on bool) error {
	m.beeps++
	m.last = on
	return nil
}

func (m *mockMixer) EndMixing() error {
	m.ended = true
	return nil
}

func TestFanOut(t *testing.T) {
	scr := screen.NewScreen()

	ra := &mockRenderer{}
	rb := &mockRenderer{}
	mx := &mockMixer{}

	scr.AddPixelRenderer(ra)
	scr.AddPixelRenderer(rb)
	scr.AddAudioMixer(mx)

	pixels := make([]bool, 2048)

	test.ExpectedSuccess(t, scr.NewFrame(pixels))
	test.ExpectedSuccess(t, scr.NewFrame(pixels))

	// every renderer sees every frame and frame numbers increase
	test.Equate(t, ra.frames, 2)
	test.Equate(t, rb.frames, 2)
	test.Equate(t, ra.lastFrame, 2)

	test.ExpectedSuccess(t, scr.SetBeep(true))
	test.Equate(t, mx.beeps, 1)
	test.Equate(t, mx.last, true)

	test.ExpectedSuccess(t, scr.SetBeep(false))
	test.Equate(t, mx.last, false)

	test.ExpectedSuccess(t, scr.End())
	test.Equate(t, ra.ended, true)
	test.Equate(t, rb.ended, true)
	test.Equate(t, mx.ended, true)
}
