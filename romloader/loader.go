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

// Package romloader is responsible for loading ROM program data into
// the emulated machine. ROMs can be loaded from the local filesystem or
// over http. Zip files containing a single ROM are unpacked
// transparently.
package romloader

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/chip8"
)

// sentinal errors returned by the romloader package.
const (
	LoaderError   = "romloader: %v"
	TooManyFiles  = "romloader: zip archive contains more than one file: %s"
	ProgramTooBig = "romloader: program too large: %d bytes"
	HashMismatch  = "romloader: unexpected hash value"
)

// Loader abstracts the ROM loading process.
type Loader struct {
	Filename string

	// expected SHA-1 hash of the loaded data. if the field is empty at
	// the time of the Load() then it is filled with the hash of the
	// loaded data. if it is not empty then it is compared with the
	// hash of the loaded data, with a mismatch causing an error.
	Hash string

	// data is empty until Load() is called
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader
// type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the ROM filename, suitable
// for window titles and log messages.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the ROM data and verify the hash. The data is checked against
// the capacity of the machine's program space, meaning a Loader that
// loads without error is safe to hand to the hardware.
func (ld *Loader) Load() error {
	var data []byte
	var err error

	scheme := "file"
	if i := strings.Index(ld.Filename, "://"); i != -1 {
		scheme = ld.Filename[:i]
	}

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	default:
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
	}

	if filepath.Ext(ld.Filename) == ".zip" {
		data, err = unzip(ld.Filename, data)
		if err != nil {
			return err
		}
	}

	if len(data) > chip8.ProgramSpace {
		return curated.Errorf(ProgramTooBig, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash == "" {
		ld.Hash = hash
	} else if ld.Hash != hash {
		return curated.Errorf(HashMismatch)
	}

	ld.Data = data

	return nil
}

// unzip extracts the ROM from a zip archive. the archive must contain
// exactly one file.
func unzip(filename string, data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	if len(zr.File) != 1 {
		return nil, curated.Errorf(TooManyFiles, filename)
	}

	f, err := zr.File[0].Open()
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}
	defer f.Close()

	unzipped, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf(LoaderError, err)
	}

	return unzipped, nil
}
