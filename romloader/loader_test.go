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

package romloader_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoad(t *testing.T) {
	rom := []byte{0x12, 0x00}
	fn := writeROM(t, "jump.ch8", rom)

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(ld.Data), 2)
	test.Equate(t, ld.ShortName(), "jump")

	// hash has been recorded and a second load with the recorded hash
	// succeeds
	test.ExpectedFailure(t, ld.Hash == "")

	ld2 := romloader.NewLoader(fn)
	ld2.Hash = ld.Hash
	test.ExpectedSuccess(t, ld2.Load())
}

func TestLoadHashMismatch(t *testing.T) {
	fn := writeROM(t, "jump.ch8", []byte{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.HashMismatch))
}

func TestLoadTooLarge(t *testing.T) {
	fn := writeROM(t, "big.ch8", make([]byte, 4096))

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.ProgramTooBig))
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no-such-rom.ch8"))
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.LoaderError))
}

func TestLoadZip(t *testing.T) {
	rom := []byte{0xa2, 0x00, 0x12, 0x02}

	fn := filepath.Join(t.TempDir(), "rom.zip")
	f, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("rom.ch8")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(rom); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, len(ld.Data), 4)
	test.Equate(t, ld.Data[0], uint8(0xa2))
}
