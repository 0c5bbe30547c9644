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

// Package emu holds the pieces shared across every architecture's emulator:
// the flat memory model, the result/error-code type, and the dispatch seam
// that lets a driver loop be written once and specialized per ISA.
package emu

// ProgramStart is the offset programs are loaded at in every supported
// architecture's memory. Leaving everything below it zeroed turns an
// accidental jump to a low address into a clean halt rather than executing
// garbage.
const ProgramStart = 0x100

// Memory is a flat, byte-addressable address space of fixed size,
// zero-initialized. It is the sole facility instructions use to read or
// write outside the register file; there are no memory-mapped peripherals.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zero-filled memory of the given size.
func NewMemory(size int) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the memory's total addressable byte count.
func (m *Memory) Size() int {
	return len(m.bytes)
}

// Reset zero-fills the entire memory.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// Load zero-fills the memory, then copies program starting at ProgramStart.
// It also zeroes the two bytes immediately past the program as an explicit
// end-of-program sentinel guard.
func (m *Memory) Load(program []byte) {
	m.Reset()
	end := ProgramStart + len(program)
	if end > len(m.bytes) {
		end = len(m.bytes)
		program = program[:end-ProgramStart]
	}
	copy(m.bytes[ProgramStart:end], program)
	for i := end; i < end+2 && i < len(m.bytes); i++ {
		m.bytes[i] = 0
	}
}

// ReadByte returns the byte at addr. addr is taken modulo the memory size
// as a defensive fallback for operand addresses, which are always formed
// from 16-bit register arithmetic and so never genuinely run off the end;
// the real out-of-bounds contract (spec §4.1) is enforced one layer up, by
// the byte-stream cursor checking InBounds before it ever reaches here.
func (m *Memory) ReadByte(addr int) byte {
	return m.bytes[addr%len(m.bytes)]
}

// WriteByte stores value at addr. Same bounds note as ReadByte.
func (m *Memory) WriteByte(addr int, value byte) {
	m.bytes[addr%len(m.bytes)] = value
}

// ReadWord reads a little-endian 16-bit value at addr.
func (m *Memory) ReadWord(addr int) uint16 {
	lo := uint16(m.ReadByte(addr))
	hi := uint16(m.ReadByte(addr + 1))
	return lo | hi<<8
}

// WriteWord stores a little-endian 16-bit value at addr.
func (m *Memory) WriteWord(addr int, value uint16) {
	m.WriteByte(addr, byte(value))
	m.WriteByte(addr+1, byte(value>>8))
}

// InBounds reports whether addr is a valid index into memory.
func (m *Memory) InBounds(addr int) bool {
	return addr >= 0 && addr < len(m.bytes)
}
