// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package x86

import "github.com/master-g/emux86/pkg/emu"

// Direction selects which ModR/M field is the instruction's destination.
type Direction int

const (
	RegSource Direction = 0
	RegDest   Direction = 1
)

// Width selects the operand size of an instruction.
type Width int

const (
	Byte Width = 0
	Word Width = 1
)

// Mode is the two-bit ModR/M addressing mode field.
type Mode int

const (
	ModeMem      Mode = 0
	ModeMemDisp8 Mode = 1
	ModeMemDisp  Mode = 2
	ModeReg      Mode = 3
)

// Operands is the uniform record every operand decoder produces (§3.3).
// Not every field is meaningful for every instruction; handlers document
// which they consume.
type Operands struct {
	Direction            Direction
	Width                Width
	Mode                 Mode
	RegIndex             int
	RmIndex              int
	Displacement         uint16
	Immediate            uint16
	InstructionSizeBytes int
	SignExtend           bool
}

// decodeStandard implements §4.3.1: `[opcode d w] [mod reg r/m] [disp...]`.
// byte1 has already been consumed by the caller; the cursor is positioned
// right after it.
func decodeStandard(c *cursor, byte1 byte) Operands {
	start := c.pos() - 1
	op := Operands{
		Direction: Direction((byte1 >> 1) & 0x01),
		Width:     Width(byte1 & 0x01),
	}
	modrm := c.readByte()
	op.Mode = Mode((modrm >> 6) & 0x03)
	op.RegIndex = int((modrm >> 3) & 0x07)
	op.RmIndex = int(modrm & 0x07)
	readDisplacement(c, &op)
	op.InstructionSizeBytes = c.pos() - start
	return op
}

// decodeImmediate implements §4.3.2: the 0x80-0x83 immediate-group family.
// `s` is bit 1 of byte1; the subopcode (byte2 bits 5:3) has already been
// used by the tag decoder and is otherwise ignored here.
func decodeImmediate(c *cursor, byte1 byte) Operands {
	start := c.pos() - 1
	s := (byte1 >> 1) & 0x01
	op := Operands{
		Width: Width(byte1 & 0x01),
	}
	modrm := c.readByte()
	op.Mode = Mode((modrm >> 6) & 0x03)
	op.RmIndex = int(modrm & 0x07)
	readDisplacement(c, &op)

	if s == 1 && op.Width == Word {
		raw := c.readByte()
		op.SignExtend = true
		op.Immediate = signExtend8(raw)
	} else if op.Width == Word {
		op.Immediate = c.readWord()
	} else {
		op.Immediate = uint16(c.readByte())
	}
	op.InstructionSizeBytes = c.pos() - start
	return op
}

// readDisplacement reads the displacement bytes (if any) called for by
// op.Mode and op.RmIndex, per §4.3.1's disp rules, including the
// mode=MEM/r-m=6 direct-address special case.
func readDisplacement(c *cursor, op *Operands) {
	switch op.Mode {
	case ModeMem:
		if op.RmIndex == 6 {
			op.Displacement = c.readWord()
		}
	case ModeMemDisp8:
		op.Displacement = signExtend8(c.readByte())
	case ModeMemDisp:
		op.Displacement = c.readWord()
	case ModeReg:
		// no displacement
	}
}

// signExtend8 widens a signed 8-bit value to an unsigned 16-bit cell
// carrying the same bit pattern a 16-bit two's-complement read would see.
func signExtend8(b byte) uint16 {
	return uint16(int16(int8(b)))
}

// effectiveAddress implements §4.3.4: the eight base expressions over
// BX/BP/SI/DI, with the mode=MEM & r/m=6 direct-address special case
// already folded into displacement by readDisplacement.
func effectiveAddress(regs *Registers, rmIndex int, mode Mode, displacement uint16) int {
	if mode == ModeMem && rmIndex == 6 {
		return int(displacement)
	}
	var base uint16
	switch rmIndex {
	case 0:
		base = regs.Word(RegBX) + regs.Word(RegSI)
	case 1:
		base = regs.Word(RegBX) + regs.Word(RegDI)
	case 2:
		base = regs.Word(RegBP) + regs.Word(RegSI)
	case 3:
		base = regs.Word(RegBP) + regs.Word(RegDI)
	case 4:
		base = regs.Word(RegSI)
	case 5:
		base = regs.Word(RegDI)
	case 6:
		base = regs.Word(RegBP)
	case 7:
		base = regs.Word(RegBX)
	}
	return int(base + displacement)
}

// readRM reads the r/m operand of op: a register when Mode==ModeReg,
// otherwise a memory cell at the computed effective address.
func readRM(regs *Registers, mem *emu.Memory, op Operands) uint16 {
	if op.Mode == ModeReg {
		if op.Width == Byte {
			return uint16(regs.Byte(op.RmIndex))
		}
		return regs.Word(op.RmIndex)
	}
	addr := effectiveAddress(regs, op.RmIndex, op.Mode, op.Displacement)
	if op.Width == Byte {
		return uint16(mem.ReadByte(addr))
	}
	return mem.ReadWord(addr)
}

// writeRM writes v into the r/m operand of op.
func writeRM(regs *Registers, mem *emu.Memory, op Operands, v uint16) {
	if op.Mode == ModeReg {
		if op.Width == Byte {
			regs.SetByte(op.RmIndex, uint8(v))
		} else {
			regs.SetWord(op.RmIndex, v)
		}
		return
	}
	addr := effectiveAddress(regs, op.RmIndex, op.Mode, op.Displacement)
	if op.Width == Byte {
		mem.WriteByte(addr, uint8(v))
	} else {
		mem.WriteWord(addr, v)
	}
}

// readReg reads the reg-field operand of op (always a register, never
// memory).
func readReg(regs *Registers, op Operands) uint16 {
	if op.Width == Byte {
		return uint16(regs.Byte(op.RegIndex))
	}
	return regs.Word(op.RegIndex)
}

// writeReg writes v into the reg-field operand of op.
func writeReg(regs *Registers, op Operands, v uint16) {
	if op.Width == Byte {
		regs.SetByte(op.RegIndex, uint8(v))
	} else {
		regs.SetWord(op.RegIndex, v)
	}
}
