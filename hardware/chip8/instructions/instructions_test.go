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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/chip8/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     instructions.Op
	}{
		{0x00e0, instructions.Clear},
		{0x00ee, instructions.Return},
		{0x1abc, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x3a12, instructions.SkipEqual},
		{0x4a12, instructions.SkipNotEqual},
		{0x5ab0, instructions.SkipEqualReg},
		{0x6a12, instructions.Load},
		{0x7a12, instructions.Add},
		{0x8ab0, instructions.Move},
		{0x8ab1, instructions.Or},
		{0x8ab2, instructions.And},
		{0x8ab3, instructions.Xor},
		{0x8ab4, instructions.AddReg},
		{0x8ab5, instructions.SubReg},
		{0x8ab6, instructions.ShiftRight},
		{0x8ab7, instructions.SubRev},
		{0x8abe, instructions.ShiftLeft},
		{0x9ab0, instructions.SkipNotEqualReg},
		{0xaabc, instructions.LoadIndex},
		{0xbabc, instructions.LoadIndexOffset},
		{0xca12, instructions.Random},
		{0xdab5, instructions.Draw},
		{0xea9e, instructions.SkipPressed},
		{0xeaa1, instructions.SkipNotPressed},
		{0xfa07, instructions.LoadDelay},
		{0xfa0a, instructions.WaitKey},
		{0xfa15, instructions.SetDelay},
		{0xfa18, instructions.SetSound},
		{0xfa1e, instructions.AddIndex},
		{0xfa29, instructions.LoadGlyph},
		{0xfa33, instructions.StoreBCD},
		{0xfa55, instructions.StoreRegs},
		{0xfa65, instructions.LoadRegs},
	}

	for _, tc := range tests {
		ins, err := instructions.Decode(tc.opcode)
		test.ExpectedSuccess(t, err)
		if ins.Op != tc.op {
			t.Errorf("opcode %#04x decoded to %s", tc.opcode, ins)
		}
	}
}

func TestDecodeOperands(t *testing.T) {
	ins, err := instructions.Decode(0xdab5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.X, 0x0a)
	test.Equate(t, ins.Y, 0x0b)
	test.Equate(t, ins.N, 0x05)

	ins, err = instructions.Decode(0x6a12)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.X, 0x0a)
	test.Equate(t, ins.KK, 0x12)

	ins, err = instructions.Decode(0x1abc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.NNN, 0x0abc)
}

func TestDecodeUnknown(t *testing.T) {
	unknown := []uint16{
		0x0000, 0x0123, 0x00e1, // only the two 0x0 opcodes exist
		0x5ab1,         // skip register variants require a zero nibble
		0x9ab1,         //
		0x8ab8, 0x8abf, // gaps in the arithmetic group
		0xea00, 0xeaff, // key skip group
		0xfa00, 0xfa16, 0xfaff, // timer and memory group
	}

	for _, opcode := range unknown {
		_, err := instructions.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, instructions.UnimplementedInstruction))
	}
}
