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

// Package instructions decodes raw 16bit opcodes into a closed enumeration
// of instruction variants with extracted operands. The chip8 package
// executes the decoded form with an exhaustive switch over the Op field,
// rather than dispatching on raw nibble patterns.
//
// A word that matches no known pattern is an error at decode time. The
// chip8 package treats that error as fatal because a program containing
// such a word cannot be faithfully emulated.
package instructions
