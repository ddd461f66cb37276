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

package userinput_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestDefaultKeyMap(t *testing.T) {
	km := userinput.DefaultKeyMap()

	pad, ok := km.Lookup("1")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0x1)

	pad, ok = km.Lookup("V")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0xf)

	pad, ok = km.Lookup("X")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0x0)

	_, ok = km.Lookup("P")
	test.ExpectedFailure(t, ok)
}

func writeKeyMapFile(t *testing.T, contents string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "keymap.toml")
	if err := os.WriteFile(fn, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadKeyMap(t *testing.T) {
	fn := writeKeyMapFile(t, `
[keys]
"P" = 5
"1" = 10
`)

	km, err := userinput.LoadKeyMap(fn)
	test.ExpectedSuccess(t, err)

	// new mapping added
	pad, ok := km.Lookup("P")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0x5)

	// default mapping overridden
	pad, ok = km.Lookup("1")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0xa)

	// unnamed keys keep their defaults
	pad, ok = km.Lookup("Q")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pad, 0x4)
}

func TestLoadKeyMapRange(t *testing.T) {
	fn := writeKeyMapFile(t, `
[keys]
"P" = 16
`)

	_, err := userinput.LoadKeyMap(fn)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, userinput.KeyMapRangeError))
}

func TestLoadKeyMapMissingFile(t *testing.T) {
	_, err := userinput.LoadKeyMap(filepath.Join(t.TempDir(), "no-such-file.toml"))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, userinput.KeyMapFileError))
}
