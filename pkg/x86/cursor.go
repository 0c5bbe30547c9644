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

import "github.com/master-g/emux86/pkg/emu"

// cursor reads the byte stream at and past IP. Two read paths are exposed,
// deliberately kept apart: peekByte is the tag decoder's one-byte
// lookahead and never faults, reading back zero past the end of memory so
// group-opcode classification stays total even one byte short of the end
// (mirrors the original decoder defaulting byte2 to 0 rather than
// failing); readByte/readWord consume the bytes an instruction's own
// encoding actually requires and set the cursor's out-of-bounds fault
// instead of silently returning zero, so the driver can tell a required
// read that ran past memory's end from ordinary one-byte lookahead
// (spec §4.1: read_byte()/read_word() fail once IP is at or past memory
// size).
type cursor struct {
	mem *emu.Memory
	ip  int
	oob bool
}

func newCursor(mem *emu.Memory, ip int) *cursor {
	return &cursor{mem: mem, ip: ip}
}

// peekByte returns the byte at offset bytes past the cursor without
// consuming it and without ever faulting.
func (c *cursor) peekByte(offset int) byte {
	addr := c.ip + offset
	if !c.mem.InBounds(addr) {
		return 0
	}
	return c.mem.ReadByte(addr)
}

// readByte consumes and returns the next byte. Past the end of memory it
// sets the cursor's out-of-bounds fault and returns 0.
func (c *cursor) readByte() byte {
	addr := c.ip
	c.ip++
	if !c.mem.InBounds(addr) {
		c.oob = true
		return 0
	}
	return c.mem.ReadByte(addr)
}

// readWord consumes and returns the next little-endian word.
func (c *cursor) readWord() uint16 {
	lo := uint16(c.readByte())
	hi := uint16(c.readByte())
	return lo | hi<<8
}

// pos returns the cursor's current absolute memory offset.
func (c *cursor) pos() int {
	return c.ip
}

// outOfBounds reports whether any readByte/readWord call since the cursor
// was created ran past the end of memory.
func (c *cursor) outOfBounds() bool {
	return c.oob
}
