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

// Package userinput maps host keyboard keys to the sixteen keys of the
// machine's keypad. The default layout maps the left-hand block of the
// keyboard onto the hexadecimal pad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The layout can be overridden with a TOML file. See LoadKeyMap().
package userinput

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jetsetilly/gopher8/curated"
)

// sentinal errors returned by LoadKeyMap().
const (
	KeyMapFileError  = "userinput: keymap: %v"
	KeyMapRangeError = "userinput: keymap: pad key out of range: %s = %d"
)

// KeyMap translates host key names (as reported by SDL) to keypad keys.
type KeyMap map[string]uint8

// DefaultKeyMap returns the default host key layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
		"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
		"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
		"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
	}
}

// the on disk format of the keymap file:
//
//	[keys]
//	"1" = 1
//	"Q" = 4
//	...
type keyMapFile struct {
	Keys map[string]int `toml:"keys"`
}

// LoadKeyMap reads a keymap TOML file. Entries override the default
// layout; host keys not named in the file keep their default mapping.
// Pad key values outside 0 to 15 are rejected.
func LoadKeyMap(filename string) (KeyMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(KeyMapFileError, err)
	}

	var kmf keyMapFile
	if err := toml.Unmarshal(data, &kmf); err != nil {
		return nil, curated.Errorf(KeyMapFileError, err)
	}

	km := DefaultKeyMap()
	for key, pad := range kmf.Keys {
		if pad < 0 || pad > 15 {
			return nil, curated.Errorf(KeyMapRangeError, key, pad)
		}
		km[key] = uint8(pad)
	}

	return km, nil
}

// Lookup the keypad key for a host key name. The second return value is
// false if the host key has no mapping.
func (km KeyMap) Lookup(key string) (uint8, bool) {
	pad, ok := km[key]
	return pad, ok
}
