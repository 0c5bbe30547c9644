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
	"errors"
	"strings"
	"testing"

	"github.com/master-g/emux86/pkg/emu"
)

func TestRegisterToRegisterMove(t *testing.T) {
	e := NewEmulator()
	e.Regs.SetWord(RegBX, 5)
	// mov cx, bx: 89 D9 (d=0 w=1, mod=11 reg=bx r/m=cx)
	if err := e.Run([]byte{0x89, 0xD9}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegCX); got != 5 {
		t.Fatalf("cx = %d, want 5", got)
	}
	if got := e.Regs.Word(RegBX); got != 5 {
		t.Fatalf("bx = %d, want 5", got)
	}
	if got := e.Regs.IP; got != emu.ProgramStart+3 {
		t.Fatalf("ip = %#04x, want %#04x", got, emu.ProgramStart+3)
	}
	if e.InstructionCount() != 1 {
		t.Fatalf("instructionCount = %d, want 1", e.InstructionCount())
	}
}

func TestImmediateThenAdd(t *testing.T) {
	e := NewEmulator()
	// mov cx, 5; add cx, 5: B9 05 00 83 C1 05
	program := []byte{0xB9, 0x05, 0x00, 0x83, 0xC1, 0x05}
	if err := e.Run(program, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegCX); got != 10 {
		t.Fatalf("cx = %d, want 10", got)
	}
	if e.Regs.Test(FlagZF) {
		t.Fatal("expected ZF clear, 10 != 0")
	}
	if e.InstructionCount() != 2 {
		t.Fatalf("instructionCount = %d, want 2", e.InstructionCount())
	}
}

func TestCmpJneCountdownLoop(t *testing.T) {
	e := NewEmulator()
	// mov dx, 6; mov si, 0
	// loop_start: add si, 2
	//             cmp si, dx
	//             jne loop_start
	program := []byte{
		0xBA, 0x06, 0x00, // mov dx, 6
		0xBE, 0x00, 0x00, // mov si, 0
		0x83, 0xC6, 0x02, // loop_start: add si, 2
		0x39, 0xD6, // cmp si, dx
		0x75, 0xF9, // jne loop_start ($-5)
	}
	if err := e.Run(program, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegSI); got != 6 {
		t.Fatalf("si = %d, want 6", got)
	}
	if got := e.Regs.Word(RegDX); got != 6 {
		t.Fatalf("dx = %d, want 6", got)
	}
	if !e.Regs.Test(FlagZF) {
		t.Fatal("expected ZF set, si == dx")
	}
	// 2 preamble moves + 3 loop passes of (add, cmp, jne); the third jne is
	// dispatched and counted even though it falls through rather than
	// branching.
	if e.InstructionCount() != 11 {
		t.Fatalf("instructionCount = %d, want 11", e.InstructionCount())
	}
}

func TestConditionalJumpDisassemblyTargetText(t *testing.T) {
	text, err := Disassemble([]byte{0x74, 0xFE}) // je $+0
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if strings.TrimSpace(text) != "je $+0" {
		t.Fatalf("disassembly = %q, want %q", text, "je $+0")
	}

	text, err = Disassemble([]byte{0x75, 0xF8}) // jne $-6
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}
	if strings.TrimSpace(text) != "jne $-6" {
		t.Fatalf("disassembly = %q, want %q", text, "jne $-6")
	}
}

func TestDirectAddressMemoryMove(t *testing.T) {
	e := NewEmulator()
	e.Regs.SetWord(RegAX, 0xBEEF)
	// mov [1000], ax: A3 E8 03
	if err := e.Run([]byte{0xA3, 0xE8, 0x03}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Mem.ReadWord(1000); got != 0xBEEF {
		t.Fatalf("mem[1000] = %#04x, want 0xBEEF", got)
	}
}

func TestClcClearsCarry(t *testing.T) {
	e := NewEmulator()
	e.Regs.Set(FlagCF)
	if err := e.Run([]byte{0xF8}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Regs.Test(FlagCF) {
		t.Fatal("expected CF clear after clc")
	}
}

func TestSignExtendedImmediateAndRegression(t *testing.T) {
	e := NewEmulator()
	e.Regs.SetWord(RegCX, 0xFFFF)
	// and cx, 0xFF80: 83 E1 80
	if err := e.Run([]byte{0x83, 0xE1, 0x80}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegCX); got != 0xFF80 {
		t.Fatalf("cx = %#04x, want 0xFF80", got)
	}
}

func TestCmpDoesNotWriteBackResult(t *testing.T) {
	e := NewEmulator()
	e.Regs.SetWord(RegAX, 5)
	e.Regs.SetWord(RegCX, 5)
	// cmp ax, cx: 39 C8 (d=0 w=1, reg=cx r/m=ax) -> standard form destination
	// is r/m (ax), source is reg (cx); result must not be written anywhere.
	if err := e.Run([]byte{0x39, 0xC8}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegAX); got != 5 {
		t.Fatalf("ax mutated by cmp: %d, want 5", got)
	}
	if got := e.Regs.Word(RegCX); got != 5 {
		t.Fatalf("cx mutated by cmp: %d, want 5", got)
	}
	if !e.Regs.Test(FlagZF) {
		t.Fatal("expected ZF set, operands are equal")
	}
}

func TestRunawayLoopGuardHalts(t *testing.T) {
	e := NewEmulator()
	// jne $+0, with ZF forced clear by the zeroed initial flag word, is
	// always taken: a tight self-loop that exercises the instruction-count
	// guard instead of running forever.
	program := []byte{0x75, 0xFE}
	if err := e.Run(program, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.InstructionCount() != MaxInstructions+1 {
		t.Fatalf("instructionCount = %d, want %d", e.InstructionCount(), MaxInstructions+1)
	}
}

func TestUnknownOpcodeReturnsError(t *testing.T) {
	e := NewEmulator()
	if err := e.Run([]byte{0x0F}, ModeEmulate); err == nil {
		t.Fatal("expected an error for an unclassifiable opcode")
	}
}

func TestInstructionNeedingBytesPastEndOfMemoryFailsOutOfBounds(t *testing.T) {
	e := NewEmulator()
	// group 1 opcode byte (83, ADD/OR/.../CMP r/m16, sign-extended imm8) placed at the
	// very last valid address with no ModR/M byte available to follow it;
	// its ModR/M and immediate bytes run off the end of the 64 KiB address
	// space, so decode must fail rather than quietly operate on zeros read
	// back past memory's edge.
	e.Regs.IP = uint16(MemorySize - 1)
	e.Mem.WriteByte(MemorySize-1, 0x83)
	halted, err := e.Step()
	if !halted {
		t.Fatal("expected the driver to halt on an out-of-bounds read")
	}
	if !errors.Is(err, emu.ErrOutOfBounds) {
		t.Fatalf("err = %v, want emu.ErrOutOfBounds", err)
	}
}

func TestListingAddressesEachInstruction(t *testing.T) {
	// mov ax, 5; add ax, 10
	program := []byte{0xB8, 0x05, 0x00, 0x05, 0x0A, 0x00}
	lines := Listing(program)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Addr != 0x100 || lines[0].Text != "mov ax, 5" {
		t.Fatalf("lines[0] = %+v, want {0x100 mov ax, 5}", lines[0])
	}
	if lines[1].Addr != 0x103 || lines[1].Text != "add ax, 10" {
		t.Fatalf("lines[1] = %+v, want {0x103 add ax, 10}", lines[1])
	}
}
