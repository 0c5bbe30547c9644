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

// Package x86 implements the Intel 8086 fetch/decode/execute pipeline: the
// two-level opcode classifier, the ModR/M operand machinery, the register
// and flag file, one handler per instruction class, and a driver that can
// run either as a disassembler or as an emulator.
package x86

import "github.com/master-g/emux86/pkg/emu"

func init() {
	emu.Register(&architecture{})
}

// architecture adapts the package's Disassemble/Run entrypoints to
// emu.Architecture so the CLI and debugger can address this ISA by name
// alongside arm64 and rv64i.
type architecture struct{}

func (architecture) Name() string { return "i8086" }

func (architecture) Disassemble(program []byte) (string, error) {
	return Disassemble(program)
}

func (architecture) Emulate(program []byte) (string, error) {
	e := NewEmulator()
	if err := e.Run(program, ModeEmulate); err != nil {
		return "", err
	}
	return e.String(), nil
}
