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

// condJumpInfo pairs each conditional-jump tag with its mnemonic and its
// one-expression predicate over the flag word (§4.5.4).
var condJumpInfo = map[Tag]struct {
	name      string
	predicate func(*Registers) bool
}{
	TagJE:   {"je", func(r *Registers) bool { return r.Test(FlagZF) }},
	TagJNE:  {"jne", func(r *Registers) bool { return !r.Test(FlagZF) }},
	TagJL:   {"jl", func(r *Registers) bool { return r.Test(FlagSF) != r.Test(FlagOF) }},
	TagJNL:  {"jge", func(r *Registers) bool { return r.Test(FlagSF) == r.Test(FlagOF) }},
	TagJLE:  {"jle", func(r *Registers) bool { return r.Test(FlagZF) || r.Test(FlagSF) != r.Test(FlagOF) }},
	TagJNLE: {"jg", func(r *Registers) bool { return !r.Test(FlagZF) && r.Test(FlagSF) == r.Test(FlagOF) }},
	TagJB:   {"jb", func(r *Registers) bool { return r.Test(FlagCF) }},
	TagJNB:  {"jae", func(r *Registers) bool { return !r.Test(FlagCF) }},
	TagJBE:  {"jbe", func(r *Registers) bool { return r.Test(FlagCF) || r.Test(FlagZF) }},
	TagJA:   {"ja", func(r *Registers) bool { return !r.Test(FlagCF) && !r.Test(FlagZF) }},
	TagJP:   {"jp", func(r *Registers) bool { return r.Test(FlagPF) }},
	TagJNP:  {"jnp", func(r *Registers) bool { return !r.Test(FlagPF) }},
	TagJO:   {"jo", func(r *Registers) bool { return r.Test(FlagOF) }},
	TagJNO:  {"jno", func(r *Registers) bool { return !r.Test(FlagOF) }},
	TagJS:   {"js", func(r *Registers) bool { return r.Test(FlagSF) }},
	TagJNS:  {"jns", func(r *Registers) bool { return !r.Test(FlagSF) }},
}

// handleConditionalJump implements every tag in condJumpInfo: a two-byte
// instruction (opcode + signed 8-bit offset), taken IP computed as
// (IP after fetch) + sign_extend(offset).
func (e *Emulator) handleConditionalJump(c *cursor, tag Tag) error {
	info := condJumpInfo[tag]
	offset := int8(c.readByte())
	if e.mode == ModeDisassemble {
		e.emit(info.name + " " + formatJumpTarget(offset))
		return nil
	}
	if info.predicate(e.Regs) {
		e.Regs.IP = uint16(c.pos() + int(offset))
		e.jumped = true
	}
	return nil
}

// loopName returns the mnemonic for a LOOP-family tag.
func loopName(tag Tag) string {
	switch tag {
	case TagLoop:
		return "loop"
	case TagLoopZ:
		return "loopz"
	case TagLoopNZ:
		return "loopnz"
	default:
		return "jcxz"
	}
}

// handleLoop implements LOOP/LOOPZ/LOOPNZ/JCXZ (§4.5.4). LOOP-family tags
// decrement CX before testing it; JCXZ only tests CX and never decrements.
func (e *Emulator) handleLoop(c *cursor, tag Tag) error {
	offset := int8(c.readByte())
	if e.mode == ModeDisassemble {
		e.emit(loopName(tag) + " " + formatJumpTarget(offset))
		return nil
	}
	var taken bool
	if tag == TagJCXZ {
		taken = e.Regs.Word(RegCX) == 0
	} else {
		e.Regs.SetWord(RegCX, e.Regs.Word(RegCX)-1)
		cxZero := e.Regs.Word(RegCX) == 0
		switch tag {
		case TagLoop:
			taken = !cxZero
		case TagLoopZ:
			taken = !cxZero && e.Regs.Test(FlagZF)
		case TagLoopNZ:
			taken = !cxZero && !e.Regs.Test(FlagZF)
		}
	}
	if taken {
		e.Regs.IP = uint16(c.pos() + int(offset))
		e.jumped = true
	}
	return nil
}

// handleJmpIndirect implements the group 0xFF/subop-4 near-indirect JMP:
// the new IP is read from the r/m operand.
func (e *Emulator) handleJmpIndirect(c *cursor, byte1 byte) error {
	op := decodeModRMOnly(c, byte1|0x01)
	if e.mode == ModeDisassemble {
		e.emit("jmp " + destText(op))
		return nil
	}
	e.Regs.IP = readRM(e.Regs, e.Mem, op)
	e.jumped = true
	return nil
}

// handleCallIndirect implements the group 0xFF/subop-2 near-indirect CALL:
// pushes the return address, then jumps to the r/m operand.
func (e *Emulator) handleCallIndirect(c *cursor, byte1 byte) error {
	op := decodeModRMOnly(c, byte1|0x01)
	if e.mode == ModeDisassemble {
		e.emit("call " + destText(op))
		return nil
	}
	target := readRM(e.Regs, e.Mem, op)
	e.push(uint16(c.pos()))
	e.Regs.IP = target
	e.jumped = true
	return nil
}
