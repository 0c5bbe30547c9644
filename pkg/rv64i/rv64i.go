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

// Package rv64i is an early-stage structural echo of the 8086 pipeline for
// the RISC-V RV64I base integer instruction set: a two-level decode seam
// with exactly one instruction class wired up, registered alongside i8086
// and i386 so the CLI and debugger can already address it by name ahead
// of its buildout.
package rv64i

import (
	"encoding/binary"
	"fmt"

	"github.com/master-g/emux86/pkg/emu"
)

func init() {
	emu.Register(&architecture{})
}

type architecture struct{}

func (architecture) Name() string { return "rv64i" }

// addiOpcode is the 7-bit opcode field identifying the OP-IMM major
// opcode; funct3 == 0 within that major opcode selects ADDI.
const addiOpcode uint32 = 0x13

// Disassemble recognizes one instruction class — ADDI, the I-type
// register-immediate add — and reports every other word as unimplemented.
func (architecture) Disassemble(program []byte) (string, error) {
	var out []byte
	for i := 0; i+4 <= len(program); i += 4 {
		word := binary.LittleEndian.Uint32(program[i:])
		if word == 0 {
			break
		}
		opcode := word & 0x7F
		funct3 := (word >> 12) & 0x07
		if opcode != addiOpcode || funct3 != 0 {
			return string(out), emu.ErrUnimplementedInstruction
		}
		rd := (word >> 7) & 0x1F
		rs1 := (word >> 15) & 0x1F
		imm := int32(word) >> 20
		line := fmt.Sprintf("addi x%d, x%d, %d\n", rd, rs1, imm)
		out = append(out, line...)
	}
	return string(out), nil
}

// Emulate is not yet implemented for this architecture.
func (architecture) Emulate(program []byte) (string, error) {
	return "", emu.ErrUnimplementedInstruction
}
