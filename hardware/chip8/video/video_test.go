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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/chip8/video"
	"github.com/jetsetilly/gopher8/test"
)

// lit counts the number of set pixels in the framebuffer.
func lit(pixels []bool) int {
	n := 0
	for _, p := range pixels {
		if p {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	vid := video.NewVideo()

	collision := vid.Draw([]uint8{0x80}, 0, 0)
	test.Equate(t, collision, false)

	pixels := vid.Pixels()
	test.Equate(t, pixels[0], true)
	test.Equate(t, lit(pixels), 1)

	// drawing the same sprite again erases it and reports the collision
	collision = vid.Draw([]uint8{0x80}, 0, 0)
	test.Equate(t, collision, true)
	test.Equate(t, lit(vid.Pixels()), 0)
}

func TestDrawRowBits(t *testing.T) {
	vid := video.NewVideo()

	// the most significant bit of each sprite byte is the leftmost pixel
	vid.Draw([]uint8{0xa5}, 8, 3)

	pixels := vid.Pixels()
	row := pixels[3*video.Width:]
	expected := []bool{true, false, true, false, false, true, false, true}
	for i, e := range expected {
		test.Equate(t, row[8+i], e)
	}
}

func TestDrawPartialCollision(t *testing.T) {
	vid := video.NewVideo()

	vid.Draw([]uint8{0xf0}, 0, 0)

	// overlapping only part of the existing pixels still collides
	collision := vid.Draw([]uint8{0x3c}, 0, 0)
	test.Equate(t, collision, true)

	// XOR leaves the non-overlapping pixels of both sprites lit
	pixels := vid.Pixels()
	expected := []bool{true, true, false, false, true, true, false, false}
	for i, e := range expected {
		test.Equate(t, pixels[i], e)
	}
}

func TestDrawAnchorWraps(t *testing.T) {
	vid := video.NewVideo()

	// an anchor beyond the framebuffer wraps before drawing begins
	vid.Draw([]uint8{0x80}, video.Width, video.Height)
	test.Equate(t, vid.Pixels()[0], true)

	vid.Clear()
	vid.Draw([]uint8{0x80}, video.Width+2, 1)
	test.Equate(t, vid.Pixels()[video.Width+2], true)
}

func TestDrawClips(t *testing.T) {
	vid := video.NewVideo()

	// a sprite anchored inside the framebuffer clips at the right edge
	// rather than wrapping into the next row
	vid.Draw([]uint8{0xff}, video.Width-2, 0)

	pixels := vid.Pixels()
	test.Equate(t, pixels[video.Width-2], true)
	test.Equate(t, pixels[video.Width-1], true)
	test.Equate(t, lit(pixels), 2)

	// and at the bottom edge
	vid.Clear()
	vid.Draw([]uint8{0x80, 0x80, 0x80}, 0, video.Height-1)

	pixels = vid.Pixels()
	test.Equate(t, pixels[(video.Height-1)*video.Width], true)
	test.Equate(t, lit(pixels), 1)
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()
	vid.Draw([]uint8{0xff, 0xff}, 10, 10)
	vid.Clear()
	test.Equate(t, lit(vid.Pixels()), 0)
}

func TestPixelsSnapshot(t *testing.T) {
	vid := video.NewVideo()
	pixels := vid.Pixels()

	// the returned slice is a copy, unaffected by later drawing
	vid.Draw([]uint8{0x80}, 0, 0)
	test.Equate(t, pixels[0], false)
	test.Equate(t, vid.Pixels()[0], true)
}
