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

// arithOperator identifies which of the five ADD-family operations a
// shared handler is computing; the decode and flag-update machinery is
// otherwise identical across all five (§4.5.2).
type arithOperator int

const (
	arithAdd arithOperator = iota
	arithAdc
	arithSub
	arithSbb
	arithCmp
)

func negate8(v uint8) uint8   { return uint8(-int8(v)) }
func negate16(v uint16) uint16 { return uint16(-int16(v)) }

// computeArith8 returns the masked result, the right-hand operand as seen
// by the flag formulas (negated for subtraction, per §4.4's note that
// "subtraction uses the same widening rule on the two's complement"), and
// the pre-mask widened sum those formulas consume.
func (e *Emulator) computeArith8(op arithOperator, dest, src uint8) (result, rightForFlags uint8, widened uint16) {
	carry := uint8(0)
	if e.Regs.Test(FlagCF) {
		carry = 1
	}
	switch op {
	case arithAdd:
		rightForFlags = src
	case arithAdc:
		rightForFlags = src + carry
	case arithSub, arithCmp:
		rightForFlags = negate8(src)
	case arithSbb:
		rightForFlags = negate8(src + carry)
	}
	widened = uint16(dest) + uint16(rightForFlags)
	result = uint8(widened)
	return
}

// computeArith16 is the 16-bit counterpart of computeArith8.
func (e *Emulator) computeArith16(op arithOperator, dest, src uint16) (result, rightForFlags uint16, widened uint32) {
	carry := uint16(0)
	if e.Regs.Test(FlagCF) {
		carry = 1
	}
	switch op {
	case arithAdd:
		rightForFlags = src
	case arithAdc:
		rightForFlags = src + carry
	case arithSub, arithCmp:
		rightForFlags = negate16(src)
	case arithSbb:
		rightForFlags = negate16(src + carry)
	}
	widened = uint32(dest) + uint32(rightForFlags)
	result = uint16(widened)
	return
}

// operandValues resolves (destination value, source value, writeback) for
// a standard two-operand form, per op.Direction.
func (e *Emulator) operandValues(op Operands) (destVal, srcVal uint16, writeBack func(uint16)) {
	if op.Direction == RegDest {
		destVal = readReg(e.Regs, op)
		srcVal = readRM(e.Regs, e.Mem, op)
		writeBack = func(v uint16) { writeReg(e.Regs, op, v) }
	} else {
		destVal = readRM(e.Regs, e.Mem, op)
		srcVal = readReg(e.Regs, op)
		writeBack = func(v uint16) { writeRM(e.Regs, e.Mem, op, v) }
	}
	return
}

// applyArith runs operator over (destVal, srcVal) at the given width,
// updates the full arithmetic flag set, and returns the result — which the
// caller writes back unless operator is arithCmp.
func (e *Emulator) applyArith(operator arithOperator, width Width, destVal, srcVal uint16) uint16 {
	if width == Byte {
		result, rightForFlags, widened := e.computeArith8(operator, uint8(destVal), uint8(srcVal))
		e.Regs.UpdateArithmetic8(uint8(destVal), rightForFlags, widened)
		return uint16(result)
	}
	result, rightForFlags, widened := e.computeArith16(operator, destVal, srcVal)
	e.Regs.UpdateArithmetic16(destVal, rightForFlags, widened)
	return result
}

// handleArithmetic implements the standard reg/mem ↔ reg/mem form of
// ADD/ADC/SUB/SBB/CMP.
func (e *Emulator) handleArithmetic(c *cursor, byte1 byte, mnemonic string, operator arithOperator) error {
	op := decodeStandard(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatStandard(mnemonic, op))
		return nil
	}
	destVal, srcVal, writeBack := e.operandValues(op)
	result := e.applyArith(operator, op.Width, destVal, srcVal)
	if operator != arithCmp {
		writeBack(result)
	}
	return nil
}

// handleArithmeticImmediate implements the group 0x80-0x83 immediate form.
func (e *Emulator) handleArithmeticImmediate(c *cursor, byte1 byte, mnemonic string, operator arithOperator) error {
	op := decodeImmediate(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatImmediateToRM(mnemonic, op))
		return nil
	}
	destVal := readRM(e.Regs, e.Mem, op)
	result := e.applyArith(operator, op.Width, destVal, op.Immediate)
	if operator != arithCmp {
		writeRM(e.Regs, e.Mem, op, result)
	}
	return nil
}

// handleArithmeticImmediateToAX implements the 0x04/0x05-style compact
// forms: AL/AX op immediate, no ModR/M.
func (e *Emulator) handleArithmeticImmediateToAX(c *cursor, byte1 byte, mnemonic string, operator arithOperator) error {
	w := Width(byte1 & 0x01)
	var imm uint16
	if w == Word {
		imm = c.readWord()
	} else {
		imm = uint16(c.readByte())
	}
	if e.mode == ModeDisassemble {
		e.emit(mnemonic + " " + regName(w, RegAX) + ", " + strconv.FormatUint(uint64(imm), 10))
		return nil
	}
	var destVal uint16
	if w == Word {
		destVal = e.Regs.Word(RegAX)
	} else {
		destVal = uint16(e.Regs.Byte(RegAL))
	}
	result := e.applyArith(operator, w, destVal, imm)
	if operator != arithCmp {
		if w == Word {
			e.Regs.SetWord(RegAX, result)
		} else {
			e.Regs.SetByte(RegAL, uint8(result))
		}
	}
	return nil
}

// decodeModRMOnly reads a ModR/M byte plus its displacement (if any) and
// nothing else — the shape shared by the group 0xFE/0xFF INC/DEC/PUSH
// forms, none of which carry an immediate.
func decodeModRMOnly(c *cursor, byte1 byte) Operands {
	start := c.pos() - 1
	op := Operands{Width: Width(byte1 & 0x01)}
	modrm := c.readByte()
	op.Mode = Mode((modrm >> 6) & 0x03)
	op.RmIndex = int(modrm & 0x07)
	readDisplacement(c, &op)
	op.InstructionSizeBytes = c.pos() - start
	return op
}

// handleIncDecModRM implements the group 0xFE/0xFF ModR/M form of
// INC/DEC: updates OF, AF, ZF, SF, PF but leaves CF untouched (§4.5.2).
func (e *Emulator) handleIncDecModRM(c *cursor, byte1 byte, mnemonic string, delta int) error {
	op := decodeModRMOnly(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(mnemonic + " " + destTextWithWidth(op))
		return nil
	}
	destVal := readRM(e.Regs, e.Mem, op)
	result := e.applyIncDec(op.Width, destVal, delta)
	writeRM(e.Regs, e.Mem, op, result)
	return nil
}

// applyIncDec updates the INC/DEC flag subset and returns the new value.
func (e *Emulator) applyIncDec(width Width, destVal uint16, delta int) uint16 {
	if width == Byte {
		var right uint8
		if delta > 0 {
			right = 1
		} else {
			right = negate8(1)
		}
		widened := uint16(uint8(destVal)) + uint16(right)
		e.Regs.UpdateIncDec8(uint8(destVal), right, widened)
		return uint16(uint8(widened))
	}
	var right uint16
	if delta > 0 {
		right = 1
	} else {
		right = negate16(1)
	}
	widened := uint32(destVal) + uint32(right)
	e.Regs.UpdateIncDec16(destVal, right, widened)
	return uint16(widened)
}

// handleIncDecRegister implements the 0x40-0x4F compact INC/DEC form:
// always word-width, register index in bits 2:0.
func (e *Emulator) handleIncDecRegister(c *cursor, byte1 byte, mnemonic string, delta int) error {
	reg := int(byte1 & 0x07)
	if e.mode == ModeDisassemble {
		e.emit(mnemonic + " " + WordName(reg))
		return nil
	}
	result := e.applyIncDec(Word, e.Regs.Word(reg), delta)
	e.Regs.SetWord(reg, result)
	return nil
}
