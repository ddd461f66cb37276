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

// Package chip8 implements the CHIP-8 virtual machine: 4096 bytes of
// memory, sixteen 8bit registers, a 16bit index register and program
// counter, a call stack, two countdown timers, a sixteen key keypad and
// the framebuffer from the video package.
//
// The machine is driven entirely by the host. Step() executes one
// instruction, TickTimers() decrements the timers and SetKey() delivers
// keypad changes. The host owns all pacing: timers are expected to tick at
// 60Hz while instructions step at whatever rate the host chooses.
//
// Errors returned by Step() are fatal. They indicate either a malformed
// program (an unknown opcode, a return with an empty call stack, a memory
// access past the end of memory) and the machine should be abandoned. Bad
// host input (an oversized program image, a key outside the keypad) is
// rejected before any machine state changes.
package chip8
