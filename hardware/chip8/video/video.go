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

// Package video implements the monochrome framebuffer of the CHIP-8
// machine. The framebuffer is a fixed grid of boolean pixels. Sprites are
// drawn onto the grid by XORing each sprite bit with the pixel underneath,
// meaning a second draw of the same sprite at the same position will erase
// the first.
//
// The video type knows nothing about the CPU. The collision result of the
// Draw() function is returned to the caller and it is the caller's
// responsibility to record it (the chip8 package records it in the VF
// register).
package video

// Width and Height are the dimensions of the framebuffer in pixels.
const (
	Width  = 64
	Height = 32
)

// Video is the pixel state of the CHIP-8 display. Pixels are stored
// row-major.
type Video struct {
	pixels [Width * Height]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Clear sets every pixel to off.
func (vid *Video) Clear() {
	for i := range vid.pixels {
		vid.pixels[i] = false
	}
}

// Pixels returns a copy of the framebuffer. The slice is row-major with a
// stride of Width. The copy is not affected by future Draw() or Clear()
// calls.
func (vid *Video) Pixels() []bool {
	pixels := make([]bool, len(vid.pixels))
	copy(pixels, vid.pixels[:])
	return pixels
}

// Draw the sprite onto the framebuffer with the top-left corner of the
// sprite at coordinates x and y. Each byte of the sprite is one row of
// eight pixels, most-significant bit leftmost.
//
// The anchor point wraps around the edges of the display but the body of
// the sprite does not. Rows and columns that fall past the bottom or right
// edge are clipped.
//
// Set sprite bits toggle the pixel underneath them. Returns true if any
// toggle turned an already-lit pixel off.
func (vid *Video) Draw(sprite []uint8, x uint8, y uint8) bool {
	anchorX := int(x) % Width
	anchorY := int(y) % Height

	collision := false

	for row, b := range sprite {
		py := anchorY + row
		if py >= Height {
			break
		}

		for col := 0; col < 8; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}

			px := anchorX + col
			if px >= Width {
				break
			}

			idx := py*Width + px
			if vid.pixels[idx] {
				collision = true
			}
			vid.pixels[idx] = !vid.pixels[idx]
		}
	}

	return collision
}
