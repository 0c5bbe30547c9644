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

func TestCursorReadByteAdvancesMonotonically(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 8)
	mem.Load([]byte{0x11, 0x22, 0x33, 0x44})
	c := newCursor(mem, emu.ProgramStart)

	want := []byte{0x11, 0x22, 0x33, 0x44}
	for i, w := range want {
		if pos := c.pos(); pos != emu.ProgramStart+i {
			t.Fatalf("pos before read %d = %d, want %d", i, pos, emu.ProgramStart+i)
		}
		if got := c.readByte(); got != w {
			t.Fatalf("readByte %d = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestCursorReadWordIsLittleEndian(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 8)
	mem.Load([]byte{0x34, 0x12})
	c := newCursor(mem, emu.ProgramStart)
	if got := c.readWord(); got != 0x1234 {
		t.Fatalf("readWord = %#04x, want 0x1234", got)
	}
}

func TestCursorPeekPastEndOfMemoryReadsZeroWithoutFault(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 2)
	mem.Load([]byte{0xAB})
	c := newCursor(mem, mem.Size()-1)
	c.readByte()
	if got := c.peekByte(0); got != 0 {
		t.Fatalf("peekByte past end = %#02x, want 0", got)
	}
	if c.outOfBounds() {
		t.Fatal("peekByte past end must not set the out-of-bounds fault")
	}
}

func TestCursorReadBytePastEndOfMemorySetsFault(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 1)
	c := newCursor(mem, mem.Size()-1)
	c.readByte()
	if c.outOfBounds() {
		t.Fatal("reading the last valid byte must not set the fault")
	}
	if got := c.readByte(); got != 0 {
		t.Fatalf("readByte past end = %#02x, want 0", got)
	}
	if !c.outOfBounds() {
		t.Fatal("readByte past end must set the out-of-bounds fault")
	}
}

func TestCursorReadWordPastEndOfMemorySetsFault(t *testing.T) {
	mem := emu.NewMemory(emu.ProgramStart + 1)
	c := newCursor(mem, mem.Size()-1)
	c.readWord()
	if !c.outOfBounds() {
		t.Fatal("readWord spanning past the end must set the out-of-bounds fault")
	}
}
