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

import (
	"fmt"
	"strconv"
)

// rmBaseExprs are the symbolic base expressions for the eight r/m values
// of a non-register ModR/M operand (§4.3.4). Index 6's entry is only used
// when mode ≠ MEM; the mode=MEM/r-m=6 direct-address case is handled
// separately in formatMem.
var rmBaseExprs = [8]string{
	"bx + si", "bx + di", "bp + si", "bp + di",
	"si", "di", "bp", "bx",
}

// regName returns the canonical register name for idx at the given width.
func regName(width Width, idx int) string {
	if width == Byte {
		return ByteName(idx)
	}
	return WordName(idx)
}

// formatMem renders the bracketed textual form of a memory operand (§6.1).
func formatMem(mode Mode, rmIndex int, displacement uint16) string {
	if mode == ModeMem && rmIndex == 6 {
		return fmt.Sprintf("[%d]", displacement)
	}
	base := rmBaseExprs[rmIndex]
	disp := int16(displacement)
	switch {
	case disp == 0:
		return "[" + base + "]"
	case disp > 0:
		return "[" + base + " + " + strconv.Itoa(int(disp)) + "]"
	default:
		return "[" + base + " - " + strconv.Itoa(-int(disp)) + "]"
	}
}

// destText renders the r/m operand of op as register or memory text,
// without any width prefix.
func destText(op Operands) string {
	if op.Mode == ModeReg {
		return regName(op.Width, op.RmIndex)
	}
	return formatMem(op.Mode, op.RmIndex, op.Displacement)
}

// destTextWithWidth renders the r/m operand of op, prefixing `byte ` or
// `word ` when it addresses memory — the only case where width would
// otherwise be ambiguous to a reader (§6.1).
func destTextWithWidth(op Operands) string {
	d := destText(op)
	if op.Mode == ModeReg {
		return d
	}
	if op.Width == Byte {
		return "byte " + d
	}
	return "word " + d
}

// regText renders the reg-field operand of op.
func regText(op Operands) string {
	return regName(op.Width, op.RegIndex)
}

// standardDestSrc resolves which of (reg, r/m) is destination vs. source
// per op.Direction, for the §4.3.1 standard two-operand form.
func standardDestSrc(op Operands) (dest, src string) {
	if op.Direction == RegDest {
		return regText(op), destText(op)
	}
	return destText(op), regText(op)
}

// formatStandard renders a two-operand `mnemonic dest, src` line for the
// standard reg/mem ↔ reg/mem encoding.
func formatStandard(mnemonic string, op Operands) string {
	dest, src := standardDestSrc(op)
	return mnemonic + " " + dest + ", " + src
}

// formatImmediateToRM renders `mnemonic dest, imm` for an instruction whose
// destination is the r/m operand and whose source is an immediate,
// applying the width prefix rule when the destination is memory.
func formatImmediateToRM(mnemonic string, op Operands) string {
	return mnemonic + " " + destTextWithWidth(op) + ", " + strconv.FormatUint(uint64(op.Immediate), 10)
}

// formatJumpTarget renders the NASM-style self-relative jump target: the
// signed 8-bit offset plus 2 (the instruction's own length), written as
// `$+N` or `$-N`.
func formatJumpTarget(offset int8) string {
	rel := int(offset) + 2
	if rel >= 0 {
		return fmt.Sprintf("$+%d", rel)
	}
	return fmt.Sprintf("$%d", rel)
}
