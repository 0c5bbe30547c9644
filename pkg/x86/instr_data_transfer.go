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

import "strconv"

// decodeMoveImmediate implements the 0xC6/0xC7 encoding: `[opcode w]
// [mod 000 r/m] [disp...] [data]`. There is no sign-extend bit; the
// immediate width simply follows w.
func decodeMoveImmediate(c *cursor, byte1 byte) Operands {
	start := c.pos() - 1
	op := Operands{Width: Width(byte1 & 0x01)}
	modrm := c.readByte()
	op.Mode = Mode((modrm >> 6) & 0x03)
	op.RmIndex = int(modrm & 0x07)
	readDisplacement(c, &op)
	if op.Width == Word {
		op.Immediate = c.readWord()
	} else {
		op.Immediate = uint16(c.readByte())
	}
	op.InstructionSizeBytes = c.pos() - start
	return op
}

// handleMove implements MOVE: §4.5.1, reg/mem ↔ reg/mem, no flag effects.
func (e *Emulator) handleMove(c *cursor, byte1 byte) error {
	op := decodeStandard(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatStandard("mov", op))
		return nil
	}
	if op.Direction == RegDest {
		writeReg(e.Regs, op, readRM(e.Regs, e.Mem, op))
	} else {
		writeRM(e.Regs, e.Mem, op, readReg(e.Regs, op))
	}
	return nil
}

// handleMoveImmediate implements MOVE_IMMEDIATE: destination by ModR/M,
// width-typed immediate, no flags.
func (e *Emulator) handleMoveImmediate(c *cursor, byte1 byte) error {
	op := decodeMoveImmediate(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatImmediateToRM("mov", op))
		return nil
	}
	writeRM(e.Regs, e.Mem, op, op.Immediate)
	return nil
}

// handleMoveImmediateToRegister implements the 0xB0-0xBF compact form.
func (e *Emulator) handleMoveImmediateToRegister(c *cursor, byte1 byte) error {
	w := Width((byte1 >> 3) & 0x01)
	reg := int(byte1 & 0x07)
	var imm uint16
	if w == Word {
		imm = c.readWord()
	} else {
		imm = uint16(c.readByte())
	}
	op := Operands{Width: w, RegIndex: reg, Immediate: imm}
	if e.mode == ModeDisassemble {
		e.emit("mov " + regName(w, reg) + ", " + strconv.FormatUint(uint64(imm), 10))
		return nil
	}
	writeReg(e.Regs, op, imm)
	return nil
}

// handleMoveToAX implements 0xA0/0xA1: AL/AX ← [direct address].
func (e *Emulator) handleMoveToAX(c *cursor, byte1 byte) error {
	w := Width(byte1 & 0x01)
	addr := c.readWord()
	if e.mode == ModeDisassemble {
		e.emit("mov " + regName(w, RegAX) + ", [" + strconv.FormatUint(uint64(addr), 10) + "]")
		return nil
	}
	if w == Word {
		e.Regs.SetWord(RegAX, e.Mem.ReadWord(int(addr)))
	} else {
		e.Regs.SetByte(RegAL, e.Mem.ReadByte(int(addr)))
	}
	return nil
}

// handleMoveAX implements 0xA2/0xA3: [direct address] ← AL/AX.
func (e *Emulator) handleMoveAX(c *cursor, byte1 byte) error {
	w := Width(byte1 & 0x01)
	addr := c.readWord()
	if e.mode == ModeDisassemble {
		e.emit("mov [" + strconv.FormatUint(uint64(addr), 10) + "], " + regName(w, RegAX))
		return nil
	}
	if w == Word {
		e.Mem.WriteWord(int(addr), e.Regs.Word(RegAX))
	} else {
		e.Mem.WriteByte(int(addr), e.Regs.Byte(RegAL))
	}
	return nil
}

// handlePushRegister implements the 0x50-0x57 compact PUSH form.
func (e *Emulator) handlePushRegister(c *cursor, byte1 byte) error {
	reg := int(byte1 & 0x07)
	if e.mode == ModeDisassemble {
		e.emit("push " + WordName(reg))
		return nil
	}
	e.push(e.Regs.Word(reg))
	return nil
}

// handlePushRM implements the group-0xFF/subop-6 ModR/M form of PUSH.
func (e *Emulator) handlePushRM(c *cursor, byte1 byte) error {
	op := decodeModRMOnly(c, byte1|0x01) // push r/m is always word-width
	if e.mode == ModeDisassemble {
		e.emit("push " + destText(op))
		return nil
	}
	e.push(readRM(e.Regs, e.Mem, op))
	return nil
}

// handlePopRegister implements the 0x58-0x5F compact POP form.
func (e *Emulator) handlePopRegister(c *cursor, byte1 byte) error {
	reg := int(byte1 & 0x07)
	if e.mode == ModeDisassemble {
		e.emit("pop " + WordName(reg))
		return nil
	}
	e.Regs.SetWord(reg, e.pop())
	return nil
}

// handleXchg implements XCHG (reg/mem ↔ reg): swap, no flags.
func (e *Emulator) handleXchg(c *cursor, byte1 byte) error {
	op := decodeStandard(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit("xchg " + destText(op) + ", " + regText(op))
		return nil
	}
	a := readRM(e.Regs, e.Mem, op)
	b := readReg(e.Regs, op)
	writeRM(e.Regs, e.Mem, op, b)
	writeReg(e.Regs, op, a)
	return nil
}

// handleXchgAX implements the 0x90-0x97 compact XCHG-with-AX form (0x90
// itself swaps AX with AX, the conventional encoding of NOP).
func (e *Emulator) handleXchgAX(c *cursor, byte1 byte) error {
	reg := int(byte1 & 0x07)
	if e.mode == ModeDisassemble {
		if reg == RegAX {
			e.emit("nop")
		} else {
			e.emit("xchg " + WordName(reg) + ", ax")
		}
		return nil
	}
	a := e.Regs.Word(RegAX)
	b := e.Regs.Word(reg)
	e.Regs.SetWord(RegAX, b)
	e.Regs.SetWord(reg, a)
	return nil
}
