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

package chip8

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/chip8/instructions"
	"github.com/jetsetilly/gopher8/hardware/chip8/video"
	"github.com/jetsetilly/gopher8/random"
)

// MemorySize is the amount of addressable memory in the machine.
const MemorySize = 4096

// ProgramOrigin is the address at which program images are loaded and
// where execution begins. Addresses below ProgramOrigin are reserved for
// the system, including the font glyphs.
const ProgramOrigin = 0x200

// ProgramSpace is the largest program image that can be loaded.
const ProgramSpace = MemorySize - ProgramOrigin

// NumKeys is the number of keys on the keypad. Key values are 0 to
// NumKeys-1.
const NumKeys = 16

// sentinal errors raised by the chip8 package. EmptyStack and MemoryFault
// indicate a malformed program that cannot be faithfully emulated and are
// fatal. ProgramTooLarge and KeyOutOfRange indicate bad input and are
// raised before any machine state is touched; KeyOutOfRange is raised both
// for host key events and for a skip-on-key instruction whose register
// holds a value above the keypad range.
const (
	EmptyStack      = "chip8: return with empty stack"
	MemoryFault     = "chip8: memory access out of range: %#04x"
	ProgramTooLarge = "chip8: program too large: %d bytes"
	KeyOutOfRange   = "chip8: key out of range: %d"
)

// RandSource supplies the bytes consumed by the random instruction. Tests
// substitute a deterministic implementation.
type RandSource interface {
	Byte() uint8
}

// Chip8 is the virtual machine. It is a pure state container: it consumes
// raw program bytes and key events, and the host reads the framebuffer and
// beep state back out. All I/O, pacing and rendering happens elsewhere.
//
// Not safe for concurrent use. One control thread drives Step(),
// TickTimers() and SetKey() in sequence.
type Chip8 struct {
	// the framebuffer. drawing happens through the draw instruction but
	// the host is free to read it at any time between Step() calls
	Video *video.Video

	mem   [MemorySize]uint8
	reg   [16]uint8
	index uint16
	pc    uint16
	stack []uint16

	delay uint8
	sound uint8

	keys [NumKeys]bool

	// the wait-for-key state. while waiting is true, Step() is a no-op.
	// the wait ends when SetKey() delivers a press, at which point the
	// key value is written to reg[waitReg]
	waiting bool
	waitReg uint8

	rnd RandSource
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
//
// The rnd argument can be nil, in which case a time-seeded source from the
// random package is used.
func NewChip8(rnd RandSource) *Chip8 {
	if rnd == nil {
		rnd = random.NewRandom()
	}

	ch8 := &Chip8{
		Video: video.NewVideo(),
		stack: make([]uint16, 0),
		rnd:   rnd,
	}

	for d := range glyphs {
		copy(ch8.mem[glyphBase+d*glyphSize:], glyphs[d][:])
	}

	return ch8
}

// Load the program image into memory at ProgramOrigin and point the
// program counter at the first byte. Returns the ProgramTooLarge error if
// the image does not fit, in which case memory is untouched.
func (ch8 *Chip8) Load(data []byte) error {
	if len(data) > ProgramSpace {
		return curated.Errorf(ProgramTooLarge, len(data))
	}

	copy(ch8.mem[ProgramOrigin:], data)
	ch8.pc = ProgramOrigin

	return nil
}

// Step fetches, decodes and executes a single instruction. A no-op while
// the machine is waiting for a key.
//
// Any error is fatal. The machine should not be stepped again after an
// error; behaviour is undefined if it is.
func (ch8 *Chip8) Step() error {
	if ch8.waiting {
		return nil
	}

	if int(ch8.pc)+1 >= MemorySize {
		return curated.Errorf(MemoryFault, ch8.pc)
	}

	opcode := uint16(ch8.mem[ch8.pc])<<8 | uint16(ch8.mem[ch8.pc+1])
	ch8.pc += 2

	ins, err := instructions.Decode(opcode)
	if err != nil {
		return curated.Errorf("chip8: %v", err)
	}

	return ch8.execute(ins)
}

// TickTimers decrements the delay and sound timers, flooring at zero. The
// host calls this at a fixed cadence (60Hz) independent of the instruction
// stepping rate.
func (ch8 *Chip8) TickTimers() {
	if ch8.delay > 0 {
		ch8.delay--
	}
	if ch8.sound > 0 {
		ch8.sound--
	}
}

// SetKey updates the state of one key on the keypad. Returns the
// KeyOutOfRange error for keys outside the keypad.
//
// If the machine is waiting for a key and pressed is true, the key value
// is written to the waiting instruction's target register and execution
// resumes. A key release never resumes execution.
func (ch8 *Chip8) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return curated.Errorf(KeyOutOfRange, key)
	}

	if ch8.waiting && pressed {
		ch8.reg[ch8.waitReg] = key
		ch8.waiting = false
	}

	ch8.keys[key] = pressed

	return nil
}

// ShouldBeep returns true if the sound timer is running. Purely
// observational.
func (ch8 *Chip8) ShouldBeep() bool {
	return ch8.sound > 0
}

// PC returns the current value of the program counter.
func (ch8 *Chip8) PC() uint16 {
	return ch8.pc
}

// IndexRegister returns the current value of the index register.
func (ch8 *Chip8) IndexRegister() uint16 {
	return ch8.index
}

// Register returns the current value of register V0 to VF. The register
// argument is masked to the valid range.
func (ch8 *Chip8) Register(r uint8) uint8 {
	return ch8.reg[r&0x0f]
}

// Peek returns the byte at the specified memory address.
func (ch8 *Chip8) Peek(address uint16) (uint8, error) {
	if int(address) >= MemorySize {
		return 0, curated.Errorf(MemoryFault, address)
	}
	return ch8.mem[address], nil
}

// execute a decoded instruction. no instruction is ever partially applied:
// memory range checks happen before any mutation.
func (ch8 *Chip8) execute(ins instructions.Instruction) error {
	switch ins.Op {
	case instructions.Clear:
		ch8.Video.Clear()

	case instructions.Return:
		if len(ch8.stack) == 0 {
			return curated.Errorf(EmptyStack)
		}
		ch8.pc = ch8.stack[len(ch8.stack)-1]
		ch8.stack = ch8.stack[:len(ch8.stack)-1]

	case instructions.Jump:
		ch8.pc = ins.NNN

	case instructions.Call:
		ch8.stack = append(ch8.stack, ch8.pc)
		ch8.pc = ins.NNN

	case instructions.SkipEqual:
		if ch8.reg[ins.X] == ins.KK {
			ch8.pc += 2
		}

	case instructions.SkipNotEqual:
		if ch8.reg[ins.X] != ins.KK {
			ch8.pc += 2
		}

	case instructions.SkipEqualReg:
		if ch8.reg[ins.X] == ch8.reg[ins.Y] {
			ch8.pc += 2
		}

	case instructions.Load:
		ch8.reg[ins.X] = ins.KK

	case instructions.Add:
		// 8bit modular arithmetic. no flag
		ch8.reg[ins.X] += ins.KK

	case instructions.Move:
		ch8.reg[ins.X] = ch8.reg[ins.Y]

	case instructions.Or:
		ch8.reg[ins.X] |= ch8.reg[ins.Y]

	case instructions.And:
		ch8.reg[ins.X] &= ch8.reg[ins.Y]

	case instructions.Xor:
		ch8.reg[ins.X] ^= ch8.reg[ins.Y]

	case instructions.AddReg:
		r := uint16(ch8.reg[ins.X]) + uint16(ch8.reg[ins.Y])
		ch8.reg[ins.X] = uint8(r)
		// flag write happens after the result write. VF is not protected
		// from being an operand
		if r > 0xff {
			ch8.reg[0xf] = 1
		} else {
			ch8.reg[0xf] = 0
		}

	case instructions.SubReg:
		noBorrow := ch8.reg[ins.X] >= ch8.reg[ins.Y]
		ch8.reg[ins.X] -= ch8.reg[ins.Y]
		if noBorrow {
			ch8.reg[0xf] = 1
		} else {
			ch8.reg[0xf] = 0
		}

	case instructions.ShiftRight:
		lsb := ch8.reg[ins.X] & 0x01
		ch8.reg[ins.X] >>= 1
		ch8.reg[0xf] = lsb

	case instructions.SubRev:
		noBorrow := ch8.reg[ins.Y] >= ch8.reg[ins.X]
		ch8.reg[ins.X] = ch8.reg[ins.Y] - ch8.reg[ins.X]
		if noBorrow {
			ch8.reg[0xf] = 1
		} else {
			ch8.reg[0xf] = 0
		}

	case instructions.ShiftLeft:
		msb := ch8.reg[ins.X] >> 7
		ch8.reg[ins.X] <<= 1
		ch8.reg[0xf] = msb

	case instructions.SkipNotEqualReg:
		if ch8.reg[ins.X] != ch8.reg[ins.Y] {
			ch8.pc += 2
		}

	case instructions.LoadIndex:
		ch8.index = ins.NNN

	case instructions.LoadIndexOffset:
		// loads the index register, not the program counter. this is a
		// deliberate deviation from the more common reading of the
		// instruction. programs written against this machine expect it
		ch8.index = ins.NNN + uint16(ch8.reg[0x0])

	case instructions.Random:
		ch8.reg[ins.X] = ch8.rnd.Byte() & ins.KK

	case instructions.Draw:
		// range check in int. the index register can be near the top of
		// its 16bit range (repeated add-index wraps) and uint16 addition
		// would wrap past the check
		end := int(ch8.index) + int(ins.N)
		if end > MemorySize {
			return curated.Errorf(MemoryFault, ch8.index)
		}
		collision := ch8.Video.Draw(ch8.mem[ch8.index:end], ch8.reg[ins.X], ch8.reg[ins.Y])
		if collision {
			ch8.reg[0xf] = 1
		} else {
			ch8.reg[0xf] = 0
		}

	case instructions.SkipPressed:
		if ch8.reg[ins.X] >= NumKeys {
			return curated.Errorf(KeyOutOfRange, ch8.reg[ins.X])
		}
		if ch8.keys[ch8.reg[ins.X]] {
			ch8.pc += 2
		}

	case instructions.SkipNotPressed:
		if ch8.reg[ins.X] >= NumKeys {
			return curated.Errorf(KeyOutOfRange, ch8.reg[ins.X])
		}
		if !ch8.keys[ch8.reg[ins.X]] {
			ch8.pc += 2
		}

	case instructions.LoadDelay:
		ch8.reg[ins.X] = ch8.delay

	case instructions.WaitKey:
		ch8.waiting = true
		ch8.waitReg = ins.X

	case instructions.SetDelay:
		ch8.delay = ch8.reg[ins.X]

	case instructions.SetSound:
		ch8.sound = ch8.reg[ins.X]

	case instructions.AddIndex:
		// 16bit modular arithmetic. no flag
		ch8.index += uint16(ch8.reg[ins.X])

	case instructions.LoadGlyph:
		ch8.index = glyphBase + glyphSize*uint16(ch8.reg[ins.X])

	case instructions.StoreBCD:
		if int(ch8.index)+2 >= MemorySize {
			return curated.Errorf(MemoryFault, ch8.index)
		}
		v := ch8.reg[ins.X]
		ch8.mem[ch8.index] = v / 100
		ch8.mem[ch8.index+1] = (v % 100) / 10
		ch8.mem[ch8.index+2] = v % 10

	case instructions.StoreRegs:
		if int(ch8.index)+int(ins.X) >= MemorySize {
			return curated.Errorf(MemoryFault, ch8.index)
		}
		for r := uint8(0); r <= ins.X; r++ {
			ch8.mem[ch8.index+uint16(r)] = ch8.reg[r]
		}

	case instructions.LoadRegs:
		if int(ch8.index)+int(ins.X) >= MemorySize {
			return curated.Errorf(MemoryFault, ch8.index)
		}
		for r := uint8(0); r <= ins.X; r++ {
			ch8.reg[r] = ch8.mem[ch8.index+uint16(r)]
		}
	}

	return nil
}
