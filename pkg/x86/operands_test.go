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
	"testing"

	"github.com/master-g/emux86/pkg/emu"
)

// TestDecodeImmediateSignExtendsByteImmediate pins the `and cx, 0xFF80`
// encoding (83 E1 80): s=1, w=1 selects an 8-bit immediate that must be
// sign-extended to 16 bits, not zero-extended.
func TestDecodeImmediateSignExtendsByteImmediate(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 8)
	mem.Load([]byte{0x83, 0xE1, 0x80})
	c := newCursor(mem, emu.ProgramStart)
	byte1 := c.readByte()
	op := decodeImmediate(c, byte1)

	if !op.SignExtend {
		t.Fatal("expected SignExtend true for s=1,w=1 byte immediate")
	}
	if op.Immediate != 0xFF80 {
		t.Fatalf("Immediate = %#04x, want 0xFF80", op.Immediate)
	}
	if op.Width != Word {
		t.Fatalf("Width = %v, want Word", op.Width)
	}
	if op.RmIndex != RegCX {
		t.Fatalf("RmIndex = %d, want RegCX", op.RmIndex)
	}
	if op.InstructionSizeBytes != 3 {
		t.Fatalf("InstructionSizeBytes = %d, want 3", op.InstructionSizeBytes)
	}
}

func TestDecodeStandardDirectAddressMode(t *testing.T) {
	// mov [1000], ax's sibling form: 89 06 E8 03 — mod=00, r/m=110 is the
	// direct-address special case: a 16-bit displacement follows in place
	// of a base-register expression.
	mem := emu.NewMemory(emu.ProgramStart + 8)
	mem.Load([]byte{0x89, 0x06, 0xE8, 0x03})
	c := newCursor(mem, emu.ProgramStart)
	byte1 := c.readByte()
	op := decodeStandard(c, byte1)

	if op.Mode != ModeMem || op.RmIndex != 6 {
		t.Fatalf("Mode/RmIndex = %v/%d, want ModeMem/6", op.Mode, op.RmIndex)
	}
	if op.Displacement != 1000 {
		t.Fatalf("Displacement = %d, want 1000", op.Displacement)
	}
}

func TestEffectiveAddressBaseExpressions(t *testing.T) {
	r := NewRegisters()
	r.SetWord(RegBX, 10)
	r.SetWord(RegSI, 5)
	if got := effectiveAddress(r, 0, ModeMemDisp8, 2); got != 17 {
		t.Fatalf("effectiveAddress(bx+si, disp=2) = %d, want 17", got)
	}
	// direct address: the displacement itself is the address.
	if got := effectiveAddress(r, 6, ModeMem, 1000); got != 1000 {
		t.Fatalf("effectiveAddress(direct) = %d, want 1000", got)
	}
}
