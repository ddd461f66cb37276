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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/chip8/video"
	"github.com/jetsetilly/gopher8/test"
)

func TestStability(t *testing.T) {
	pixels := make([]bool, video.Width*video.Height)
	pixels[0] = true
	pixels[100] = true

	// the same sequence of frames always produces the same hash
	a := digest.NewVideo()
	b := digest.NewVideo()

	test.ExpectedSuccess(t, a.NewFrame(1, pixels))
	test.ExpectedSuccess(t, b.NewFrame(1, pixels))
	test.Equate(t, a.Hash(), b.Hash())

	test.ExpectedSuccess(t, a.NewFrame(2, pixels))
	test.ExpectedSuccess(t, b.NewFrame(2, pixels))
	test.Equate(t, a.Hash(), b.Hash())
}

func TestChaining(t *testing.T) {
	pixels := make([]bool, video.Width*video.Height)

	dig := digest.NewVideo()

	test.ExpectedSuccess(t, dig.NewFrame(1, pixels))
	first := dig.Hash()

	// the digest of a repeated frame changes because the previous digest
	// is folded into the new one
	test.ExpectedSuccess(t, dig.NewFrame(2, pixels))
	if dig.Hash() == first {
		t.Error("expected chained hash to differ from first hash")
	}
}

func TestReset(t *testing.T) {
	pixels := make([]bool, video.Width*video.Height)
	pixels[42] = true

	dig := digest.NewVideo()
	test.ExpectedSuccess(t, dig.NewFrame(1, pixels))
	first := dig.Hash()

	dig.ResetDigest()

	test.ExpectedSuccess(t, dig.NewFrame(2, pixels))
	test.Equate(t, dig.Hash(), first)
}
