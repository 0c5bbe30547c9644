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
	"strings"

	"github.com/master-g/emux86/pkg/emu"
)

// Mode selects whether the driver mutates machine state or only emits a
// textual listing.
type RunMode int

const (
	ModeEmulate RunMode = iota
	ModeDisassemble
)

// MaxInstructions is the runaway-loop guard: the driver halts once the
// instruction counter exceeds this many dispatches, regardless of whether
// any individual instruction branches.
const MaxInstructions = 8192

// MaxOutputBytes bounds the disassembly text buffer. Once the bound is
// reached, decode continues to completion but further emits are dropped —
// a soft error that does not change the run's final status.
const MaxOutputBytes = 1 << 20

// MemorySize is the 8086's full 64 KiB flat address space.
const MemorySize = 1 << 16

// Emulator is a single-use 8086 machine: register file, flat memory, and
// the driver state the Run loop advances. Exclusively owned by its creator
// for its lifetime; no aliasing to the outside world is permitted.
type Emulator struct {
	Regs *Registers
	Mem  *emu.Memory

	mode             RunMode
	instructionCount int
	jumped           bool

	out          strings.Builder
	outOverflow  bool
}

// NewEmulator allocates a fresh 8086 machine: zeroed registers, zero-filled
// 64 KiB memory, IP 0 until Load or Run places a program at
// emu.ProgramStart.
func NewEmulator() *Emulator {
	return &Emulator{
		Regs: NewRegisters(),
		Mem:  emu.NewMemory(MemorySize),
	}
}

// InstructionCount returns the number of instructions dispatched so far in
// the current or most recently completed run.
func (e *Emulator) InstructionCount() int {
	return e.instructionCount
}

// Load zero-fills memory, places program at emu.ProgramStart, points IP at
// it, and clears the instruction count and output, ready for Step or Run to
// drive. The general, segment and flag registers keep their current values.
// Exposed separately from Run so a debugger can single step without
// re-loading between steps.
func (e *Emulator) Load(program []byte, mode RunMode) {
	e.Mem.Load(program)
	e.Regs.IP = emu.ProgramStart
	e.mode = mode
	e.instructionCount = 0
	e.out.Reset()
	e.outOverflow = false
}

// Step fetches, classifies, and dispatches exactly one instruction. halted
// reports whether the driver hit the end-of-program sentinel or the
// runaway-loop guard and should not be stepped further.
func (e *Emulator) Step() (halted bool, err error) {
	ipBefore := int(e.Regs.IP)
	c := newCursor(e.Mem, ipBefore)
	byte1 := c.readByte()

	if byte1 == 0 && ipBefore != emu.ProgramStart {
		e.Regs.IP = uint16(c.pos())
		return true, nil
	}

	byte2 := c.peekByte(0)
	tag := TagOf(byte1, byte2)

	e.instructionCount++
	if e.instructionCount > MaxInstructions {
		emu.Logf("runaway loop guard tripped at IP=%#04x", ipBefore)
		return true, nil
	}

	if tag == TagInvalid {
		return true, emu.ErrUnknownOpcode
	}

	e.jumped = false
	if err := e.dispatch(tag, c, byte1); err != nil {
		return true, err
	}
	if c.outOfBounds() {
		return true, emu.ErrOutOfBounds
	}
	if !e.jumped {
		e.Regs.IP = uint16(c.pos())
	}
	if e.mode == ModeDisassemble {
		e.emit("\n")
	}
	return false, nil
}

// Run loads program into memory at emu.ProgramStart and drives the
// fetch/classify/dispatch loop (§4.6) until the end-of-program sentinel,
// the runaway-loop guard, or a structural error stops it.
func (e *Emulator) Run(program []byte, mode RunMode) error {
	e.Load(program, mode)
	for {
		halted, err := e.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// emit appends s to the disassembly buffer, silently dropping the write
// once MaxOutputBytes has been reached (§7, output-buffer-full soft
// error). Decode continues regardless.
func (e *Emulator) emit(s string) {
	if e.outOverflow {
		return
	}
	if e.out.Len()+len(s) > MaxOutputBytes {
		e.outOverflow = true
		return
	}
	e.out.WriteString(s)
}

// push decrements SP by 2 and then writes v at SS:SP in the unified memory
// model, per design note §9 — the stack lives inside the same flat memory
// array, not a parallel one.
func (e *Emulator) push(v uint16) {
	e.Regs.SetWord(RegSP, e.Regs.Word(RegSP)-2)
	e.Mem.WriteWord(e.stackAddr(), v)
}

// pop reads the word at SS:SP and increments SP by 2.
func (e *Emulator) pop() uint16 {
	v := e.Mem.ReadWord(e.stackAddr())
	e.Regs.SetWord(RegSP, e.Regs.Word(RegSP)+2)
	return v
}

func (e *Emulator) stackAddr() int {
	return int(e.Regs.Segment(SegSS))<<4 + int(e.Regs.Word(RegSP))
}

// String renders a human-readable summary of the emulator's final state:
// every general register, the flag word broken into its named bits, and
// IP — the condensed form described in design note grounding (print
// registers/print flags).
func (e *Emulator) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ax=%04x cx=%04x dx=%04x bx=%04x sp=%04x bp=%04x si=%04x di=%04x ip=%04x\n",
		e.Regs.Word(RegAX), e.Regs.Word(RegCX), e.Regs.Word(RegDX), e.Regs.Word(RegBX),
		e.Regs.Word(RegSP), e.Regs.Word(RegBP), e.Regs.Word(RegSI), e.Regs.Word(RegDI), e.Regs.IP)
	fmt.Fprintf(&b, "flags=%s\n", e.flagString())
	fmt.Fprintf(&b, "instructions=%d\n", e.instructionCount)
	return b.String()
}

func (e *Emulator) flagString() string {
	set := func(mask uint16, name string) string {
		if e.Regs.Test(mask) {
			return name
		}
		return strings.ToLower(name)
	}
	return set(FlagCF, "C") + set(FlagPF, "P") + set(FlagAF, "A") +
		set(FlagZF, "Z") + set(FlagSF, "S") + set(FlagTF, "T") +
		set(FlagIF, "I") + set(FlagDF, "D") + set(FlagOF, "O")
}

// Disassemble decodes program into a textual assembly listing by driving a
// throwaway emulator in disassemble mode.
func Disassemble(program []byte) (string, error) {
	e := NewEmulator()
	if err := e.Run(program, ModeDisassemble); err != nil {
		return e.out.String(), err
	}
	return e.out.String(), nil
}

// ListingLine pairs one disassembled instruction with the address its
// first byte was fetched from, for debuggers that need to address lines
// individually rather than as one flat blob of text.
type ListingLine struct {
	Addr int
	Text string
}

// Listing disassembles program and returns one ListingLine per instruction,
// addressed by its starting byte offset. Decode errors truncate the
// listing at the failing instruction rather than discarding it.
func Listing(program []byte) []ListingLine {
	e := NewEmulator()
	e.Load(program, ModeDisassemble)
	var lines []ListingLine
	for {
		addr := int(e.Regs.IP)
		before := e.out.Len()
		halted, err := e.Step()
		text := strings.TrimSuffix(e.out.String()[before:], "\n")
		if text != "" {
			lines = append(lines, ListingLine{Addr: addr, Text: text})
		}
		if halted || err != nil {
			return lines
		}
	}
}
