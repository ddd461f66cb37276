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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnimplementedInstruction is the sentinal error returned by Decode() when
// the opcode matches no known instruction pattern.
const UnimplementedInstruction = "instructions: unimplemented instruction: %#04x"

// Op identifies one instruction variant in the CHIP-8 instruction set.
type Op int

// List of instruction variants. Every 16bit word that the chip8 package
// executes decodes to exactly one of these.
const (
	Clear Op = iota // 00E0
	Return          // 00EE
	Jump            // 1nnn
	Call            // 2nnn
	SkipEqual       // 3xkk
	SkipNotEqual    // 4xkk
	SkipEqualReg    // 5xy0
	Load            // 6xkk
	Add             // 7xkk
	Move            // 8xy0
	Or              // 8xy1
	And             // 8xy2
	Xor             // 8xy3
	AddReg          // 8xy4
	SubReg          // 8xy5
	ShiftRight      // 8xy6
	SubRev          // 8xy7
	ShiftLeft       // 8xyE
	SkipNotEqualReg // 9xy0
	LoadIndex       // Annn
	LoadIndexOffset // Bnnn
	Random          // Cxkk
	Draw            // Dxyn
	SkipPressed     // Ex9E
	SkipNotPressed  // ExA1
	LoadDelay       // Fx07
	WaitKey         // Fx0A
	SetDelay        // Fx15
	SetSound        // Fx18
	AddIndex        // Fx1E
	LoadGlyph       // Fx29
	StoreBCD        // Fx33
	StoreRegs       // Fx55
	LoadRegs        // Fx65
)

// Instruction is the result of decoding a 16bit opcode. The operand fields
// are extracted for every instruction even when the instruction does not
// use them.
type Instruction struct {
	Op Op

	// register operands from the second and third nibbles
	X uint8
	Y uint8

	// the low nibble, byte and 12bits of the opcode
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode the 16bit opcode into an Instruction. Returns the
// UnimplementedInstruction error if the opcode matches no known pattern.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		X:   uint8(opcode >> 8 & 0x0f),
		Y:   uint8(opcode >> 4 & 0x0f),
		N:   uint8(opcode & 0x000f),
		KK:  uint8(opcode & 0x00ff),
		NNN: opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00e0:
			ins.Op = Clear
		case 0x00ee:
			ins.Op = Return
		default:
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
	case 0x1:
		ins.Op = Jump
	case 0x2:
		ins.Op = Call
	case 0x3:
		ins.Op = SkipEqual
	case 0x4:
		ins.Op = SkipNotEqual
	case 0x5:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
		ins.Op = SkipEqualReg
	case 0x6:
		ins.Op = Load
	case 0x7:
		ins.Op = Add
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Op = Move
		case 0x1:
			ins.Op = Or
		case 0x2:
			ins.Op = And
		case 0x3:
			ins.Op = Xor
		case 0x4:
			ins.Op = AddReg
		case 0x5:
			ins.Op = SubReg
		case 0x6:
			ins.Op = ShiftRight
		case 0x7:
			ins.Op = SubRev
		case 0xe:
			ins.Op = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
	case 0x9:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
		ins.Op = SkipNotEqualReg
	case 0xa:
		ins.Op = LoadIndex
	case 0xb:
		ins.Op = LoadIndexOffset
	case 0xc:
		ins.Op = Random
	case 0xd:
		ins.Op = Draw
	case 0xe:
		switch ins.KK {
		case 0x9e:
			ins.Op = SkipPressed
		case 0xa1:
			ins.Op = SkipNotPressed
		default:
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
	case 0xf:
		switch ins.KK {
		case 0x07:
			ins.Op = LoadDelay
		case 0x0a:
			ins.Op = WaitKey
		case 0x15:
			ins.Op = SetDelay
		case 0x18:
			ins.Op = SetSound
		case 0x1e:
			ins.Op = AddIndex
		case 0x29:
			ins.Op = LoadGlyph
		case 0x33:
			ins.Op = StoreBCD
		case 0x55:
			ins.Op = StoreRegs
		case 0x65:
			ins.Op = LoadRegs
		default:
			return Instruction{}, curated.Errorf(UnimplementedInstruction, opcode)
		}
	}

	return ins, nil
}

// String returns the instruction rendered with conventional mnemonics. Used
// in log and error messages.
func (ins Instruction) String() string {
	switch ins.Op {
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP %#03x", ins.NNN)
	case Call:
		return fmt.Sprintf("CALL %#03x", ins.NNN)
	case SkipEqual:
		return fmt.Sprintf("SE V%X, %#02x", ins.X, ins.KK)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%X, %#02x", ins.X, ins.KK)
	case SkipEqualReg:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case Load:
		return fmt.Sprintf("LD V%X, %#02x", ins.X, ins.KK)
	case Add:
		return fmt.Sprintf("ADD V%X, %#02x", ins.X, ins.KK)
	case Move:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SubReg:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", ins.X)
	case SubRev:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SkipNotEqualReg:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I, %#03x", ins.NNN)
	case LoadIndexOffset:
		return fmt.Sprintf("LD I, %#03x+V0", ins.NNN)
	case Random:
		return fmt.Sprintf("RND V%X, %#02x", ins.X, ins.KK)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, %#x", ins.X, ins.Y, ins.N)
	case SkipPressed:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SkipNotPressed:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LoadDelay:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case SetDelay:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case SetSound:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LoadGlyph:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case StoreBCD:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case StoreRegs:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LoadRegs:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return "unknown instruction"
}
