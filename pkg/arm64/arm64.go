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

// Package arm64 is an early-stage structural echo of the 8086 pipeline for
// the AArch64 instruction set: a two-level decode seam with exactly one
// instruction class wired up, registered alongside i8086 and rv64i so the
// CLI and debugger can already address it by name ahead of its buildout.
package arm64

import (
	"encoding/binary"
	"fmt"

	"github.com/master-g/emux86/pkg/emu"
)

func init() {
	emu.Register(&architecture{})
}

type architecture struct{}

func (architecture) Name() string { return "i386" }

// addImmediateMask/addImmediateFixed recognize the fixed bits of AArch64's
// 32-bit "ADD (immediate)" encoding (sf=1, op=0, S=0): bits 31:24 ==
// 1001 0001.
const (
	addImmediateMask  uint32 = 0xFF000000
	addImmediateFixed uint32 = 0x91000000
)

// Disassemble recognizes one instruction class — ADD (immediate), 64-bit —
// and reports every other word as unimplemented, matching the original's
// single-handler stub.
func (architecture) Disassemble(program []byte) (string, error) {
	var out []byte
	for i := 0; i+4 <= len(program); i += 4 {
		word := binary.LittleEndian.Uint32(program[i:])
		if word == 0 {
			break
		}
		if word&addImmediateMask != addImmediateFixed {
			return string(out), emu.ErrUnimplementedInstruction
		}
		imm12 := (word >> 10) & 0xFFF
		rn := (word >> 5) & 0x1F
		rd := word & 0x1F
		line := fmt.Sprintf("add x%d, x%d, #%d\n", rd, rn, imm12)
		out = append(out, line...)
	}
	return string(out), nil
}

// Emulate is not yet implemented for this architecture.
func (architecture) Emulate(program []byte) (string, error) {
	return "", emu.ErrUnimplementedInstruction
}
