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

// Package digest fingerprints the video output of the chip8 machine. The
// Video type is an implementation of the screen.PixelRenderer interface
// that folds every frame it receives into a chained SHA-1 value, without
// displaying the frame anywhere. Two runs of the same program that produce
// the same sequence of frames produce the same hash, which makes the type
// useful for asserting render stability in tests without a GUI.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/chip8/video"
)

// Video is an implementation of the screen.PixelRenderer interface. It
// generates a SHA-1 value of the framebuffer every frame.
type Video struct {
	digest   [sha1.Size]byte
	frame    []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// the head of the frame buffer contains the previous frame's
		// digest value, chaining the fingerprints
		frame: make([]byte, sha1.Size+video.Width*video.Height),
	}
}

// Hash returns the current digest value.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to zero.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// NewFrame implements the screen.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int, pixels []bool) error {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the frame data
	copy(dig.frame, dig.digest[:])

	for i, p := range pixels {
		if p {
			dig.frame[sha1.Size+i] = 1
		} else {
			dig.frame[sha1.Size+i] = 0
		}
	}

	dig.digest = sha1.Sum(dig.frame)
	dig.frameNum = frameNum

	return nil
}

// EndRendering implements the screen.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
