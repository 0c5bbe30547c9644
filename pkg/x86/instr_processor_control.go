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

// flagOpKind identifies which primitive CLC/STC/CMC applies to CF.
type flagOpKind int

const (
	flagOpClear flagOpKind = iota
	flagOpSet
	flagOpToggle
)

// handleFlagOp implements CLC/STC/CMC: clear/set/toggle CF, no other
// flags, no operand bytes (§4.5.5). byte1 has already been consumed by
// the driver; there is nothing further to read.
func (e *Emulator) handleFlagOp(c *cursor, name string, mask uint16, kind flagOpKind) error {
	if e.mode == ModeDisassemble {
		e.emit(name)
		return nil
	}
	switch kind {
	case flagOpClear:
		e.Regs.Clear(mask)
	case flagOpSet:
		e.Regs.Set(mask)
	case flagOpToggle:
		e.Regs.Toggle(mask)
	}
	return nil
}
