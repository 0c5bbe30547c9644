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

// logicOperator identifies which bitwise operation a shared handler is
// computing (§4.5.3).
type logicOperator int

const (
	logicAnd logicOperator = iota
	logicOr
	logicXor
)

func applyLogic(operator logicOperator, a, b uint16) uint16 {
	switch operator {
	case logicAnd:
		return a & b
	case logicOr:
		return a | b
	default:
		return a ^ b
	}
}

// updateLogicFlags applies the AND/OR/XOR/TEST flag rule at the given
// width: CF and OF cleared, PF/ZF/SF set from the result, AF untouched.
func (e *Emulator) updateLogicFlags(width Width, result uint16) {
	if width == Byte {
		e.Regs.UpdateLogic8(uint8(result))
	} else {
		e.Regs.UpdateLogic16(result)
	}
}

// handleLogic implements the standard reg/mem ↔ reg/mem form of AND/OR/XOR.
func (e *Emulator) handleLogic(c *cursor, byte1 byte, mnemonic string, operator logicOperator) error {
	op := decodeStandard(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatStandard(mnemonic, op))
		return nil
	}
	destVal, srcVal, writeBack := e.operandValues(op)
	result := applyLogic(operator, destVal, srcVal)
	e.updateLogicFlags(op.Width, result)
	writeBack(result)
	return nil
}

// handleLogicImmediate implements the group 0x80-0x83 immediate form of
// AND/OR/XOR.
func (e *Emulator) handleLogicImmediate(c *cursor, byte1 byte, mnemonic string, operator logicOperator) error {
	op := decodeImmediate(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatImmediateToRM(mnemonic, op))
		return nil
	}
	destVal := readRM(e.Regs, e.Mem, op)
	result := applyLogic(operator, destVal, op.Immediate)
	e.updateLogicFlags(op.Width, result)
	writeRM(e.Regs, e.Mem, op, result)
	return nil
}

// handleLogicImmediateToAX implements the compact AL/AX form.
func (e *Emulator) handleLogicImmediateToAX(c *cursor, byte1 byte, mnemonic string, operator logicOperator) error {
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
	result := applyLogic(operator, destVal, imm)
	e.updateLogicFlags(w, result)
	if w == Word {
		e.Regs.SetWord(RegAX, result)
	} else {
		e.Regs.SetByte(RegAL, uint8(result))
	}
	return nil
}

// handleNot implements NOT: bitwise complement of destination, no flag
// effects (§4.5.3).
func (e *Emulator) handleNot(c *cursor, byte1 byte) error {
	op := decodeModRMOnly(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit("not " + destText(op))
		return nil
	}
	destVal := readRM(e.Regs, e.Mem, op)
	var result uint16
	if op.Width == Byte {
		result = uint16(^uint8(destVal))
	} else {
		result = ^destVal
	}
	writeRM(e.Regs, e.Mem, op, result)
	return nil
}

// handleTest implements the standard reg/mem ↔ reg form of TEST: AND's
// flag effect without writing the result back.
func (e *Emulator) handleTest(c *cursor, byte1 byte) error {
	op := decodeStandard(c, byte1)
	if e.mode == ModeDisassemble {
		e.emit(formatStandard("test", op))
		return nil
	}
	destVal, srcVal, _ := e.operandValues(op)
	e.updateLogicFlags(op.Width, applyLogic(logicAnd, destVal, srcVal))
	return nil
}

// handleTestImmediate implements the group 0xF6/0xF7, subop 0/1 form:
// AND's flag effect between the r/m operand and an immediate, discarded.
func (e *Emulator) handleTestImmediate(c *cursor, byte1 byte) error {
	op := decodeModRMOnly(c, byte1)
	if op.Width == Word {
		op.Immediate = c.readWord()
	} else {
		op.Immediate = uint16(c.readByte())
	}
	if e.mode == ModeDisassemble {
		e.emit(formatImmediateToRM("test", op))
		return nil
	}
	destVal := readRM(e.Regs, e.Mem, op)
	e.updateLogicFlags(op.Width, applyLogic(logicAnd, destVal, op.Immediate))
	return nil
}
