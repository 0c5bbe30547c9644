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

import "math/bits"

// Word register indices, in encoding order (§3.1).
const (
	RegAX = 0
	RegCX = 1
	RegDX = 2
	RegBX = 3
	RegSP = 4
	RegBP = 5
	RegSI = 6
	RegDI = 7
)

// Byte register indices, in encoding order (§4.4). The first four are low
// halves of AX/CX/DX/BX; the next four are the high halves of the same four
// word registers. SP/BP/SI/DI (word indices 4-7) have no byte-addressable
// form of their own.
const (
	RegAL = 0
	RegCL = 1
	RegDL = 2
	RegBL = 3
	RegAH = 4
	RegCH = 5
	RegDH = 6
	RegBH = 7
)

var wordRegNames = [8]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
var byteRegNames = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}

// Segment register indices.
const (
	SegES = 0
	SegCS = 1
	SegSS = 2
	SegDS = 3
)

var segRegNames = [4]string{"es", "cs", "ss", "ds"}

// Registers holds the 8086 general-purpose, segment, and flag state. The
// eight general registers are stored as 16-bit cells; byte access reads or
// writes a specific half so that a write to AL is immediately visible as
// the low byte of AX and vice versa (§3.1 invariant).
type Registers struct {
	word [8]uint16
	seg  [4]uint16
	IP   uint16
	Flags
}

// NewRegisters returns a zeroed register file.
func NewRegisters() *Registers {
	return &Registers{}
}

// Word returns the full 16-bit value of word register i (0..7).
func (r *Registers) Word(i int) uint16 {
	return r.word[i]
}

// SetWord stores v into word register i.
func (r *Registers) SetWord(i int, v uint16) {
	r.word[i] = v
}

// Byte returns the 8-bit value addressed by byte register i (0..7): 0-3 are
// low halves of AX/CX/DX/BX, 4-7 are the corresponding high halves.
func (r *Registers) Byte(i int) uint8 {
	if i < 4 {
		return uint8(r.word[i])
	}
	return uint8(r.word[i-4] >> 8)
}

// SetByte stores v into the 8-bit half addressed by byte register i,
// leaving the other half of the underlying word register untouched.
func (r *Registers) SetByte(i int, v uint8) {
	if i < 4 {
		r.word[i] = (r.word[i] & 0xFF00) | uint16(v)
		return
	}
	j := i - 4
	r.word[j] = (r.word[j] & 0x00FF) | uint16(v)<<8
}

// Segment returns the value of segment register i (0..3).
func (r *Registers) Segment(i int) uint16 {
	return r.seg[i]
}

// SetSegment stores v into segment register i.
func (r *Registers) SetSegment(i int, v uint16) {
	r.seg[i] = v
}

// WordName returns the canonical two-letter name of word register i.
func WordName(i int) string { return wordRegNames[i&7] }

// ByteName returns the canonical two-letter name of byte register i.
func ByteName(i int) string { return byteRegNames[i&7] }

// SegmentName returns the canonical two-letter name of segment register i.
func SegmentName(i int) string { return segRegNames[i&3] }

// Flag bit positions in the 16-bit flag word (§3.2).
const (
	FlagCF uint16 = 1 << 0
	FlagPF uint16 = 1 << 2
	FlagAF uint16 = 1 << 4
	FlagZF uint16 = 1 << 6
	FlagSF uint16 = 1 << 7
	FlagTF uint16 = 1 << 8
	FlagIF uint16 = 1 << 9
	FlagDF uint16 = 1 << 10
	FlagOF uint16 = 1 << 11
)

// Flags is the 16-bit condition flag word.
type Flags struct {
	Word uint16
}

// Set turns on every bit in mask.
func (f *Flags) Set(mask uint16) {
	f.Word |= mask
}

// Clear turns off every bit in mask.
func (f *Flags) Clear(mask uint16) {
	f.Word &^= mask
}

// Toggle flips every bit in mask.
func (f *Flags) Toggle(mask uint16) {
	f.Word ^= mask
}

// Test reports whether every bit in mask is set.
func (f *Flags) Test(mask uint16) bool {
	return f.Word&mask == mask
}

// assign sets or clears mask depending on cond, independent of any other
// flag — the primitive every *Update method below is built from.
func (f *Flags) assign(mask uint16, cond bool) {
	if cond {
		f.Set(mask)
	} else {
		f.Clear(mask)
	}
}

// UpdateZero sets ZF iff result == 0.
func (f *Flags) UpdateZero(result uint16) {
	f.assign(FlagZF, result == 0)
}

// UpdateSign8 sets SF from the top bit of an 8-bit result.
func (f *Flags) UpdateSign8(result uint8) {
	f.assign(FlagSF, result&0x80 != 0)
}

// UpdateSign16 sets SF from the top bit of a 16-bit result.
func (f *Flags) UpdateSign16(result uint16) {
	f.assign(FlagSF, result&0x8000 != 0)
}

// UpdateParity sets PF iff the low 8 bits of result have even population
// count.
func (f *Flags) UpdateParity(result uint16) {
	f.assign(FlagPF, bits.OnesCount8(uint8(result))%2 == 0)
}

// UpdateAuxCarry sets AF iff bit 3 of left XOR right XOR result is set
// (mask 0x08), per the XOR rule of §4.4.
func (f *Flags) UpdateAuxCarry(left, right, result uint16) {
	f.assign(FlagAF, (left^right^result)&0x08 != 0)
}

// UpdateCarry8 sets CF iff widened exceeds the unsigned range of a byte.
func (f *Flags) UpdateCarry8(widened uint16) {
	f.assign(FlagCF, widened > 0xFF)
}

// UpdateCarry16 sets CF iff widened exceeds the unsigned range of a word.
func (f *Flags) UpdateCarry16(widened uint32) {
	f.assign(FlagCF, widened > 0xFFFF)
}

// UpdateOverflow8 sets OF iff left and right share a sign and the result's
// sign differs from them (two's-complement addition overflow rule).
func (f *Flags) UpdateOverflow8(left, right, result uint8) {
	leftNeg := left&0x80 != 0
	rightNeg := right&0x80 != 0
	resultNeg := result&0x80 != 0
	f.assign(FlagOF, leftNeg == rightNeg && leftNeg != resultNeg)
}

// UpdateOverflow16 is the 16-bit counterpart of UpdateOverflow8.
func (f *Flags) UpdateOverflow16(left, right, result uint16) {
	leftNeg := left&0x8000 != 0
	rightNeg := right&0x8000 != 0
	resultNeg := result&0x8000 != 0
	f.assign(FlagOF, leftNeg == rightNeg && leftNeg != resultNeg)
}

// UpdateArithmetic8 applies the full ADD/SUB-style flag set (CF, OF, AF,
// ZF, SF, PF) for an 8-bit operation given the pre-widened result and the
// two (possibly already sign-adjusted, for subtraction) operands.
func (f *Flags) UpdateArithmetic8(left, right uint8, widened uint16) {
	result := uint8(widened)
	f.UpdateCarry8(widened)
	f.UpdateOverflow8(left, right, result)
	f.UpdateAuxCarry(uint16(left), uint16(right), uint16(result))
	f.UpdateParity(uint16(result))
	f.UpdateSign8(result)
	f.UpdateZero(uint16(result))
}

// UpdateArithmetic16 is the 16-bit counterpart of UpdateArithmetic8.
func (f *Flags) UpdateArithmetic16(left, right uint16, widened uint32) {
	result := uint16(widened)
	f.UpdateCarry16(widened)
	f.UpdateOverflow16(left, right, result)
	f.UpdateAuxCarry(left, right, result)
	f.UpdateParity(result)
	f.UpdateSign16(result)
	f.UpdateZero(result)
}

// UpdateLogic8 applies the AND/OR/XOR flag set for an 8-bit result: CF and
// OF are cleared, PF/ZF/SF are set from the result, AF is left unspecified
// (§4.5.3) so it is simply not touched here.
func (f *Flags) UpdateLogic8(result uint8) {
	f.Clear(FlagCF | FlagOF)
	f.UpdateParity(uint16(result))
	f.UpdateSign8(result)
	f.UpdateZero(uint16(result))
}

// UpdateLogic16 is the 16-bit counterpart of UpdateLogic8.
func (f *Flags) UpdateLogic16(result uint16) {
	f.Clear(FlagCF | FlagOF)
	f.UpdateParity(result)
	f.UpdateSign16(result)
	f.UpdateZero(result)
}

// UpdateIncDec8 applies the INC/DEC flag set for an 8-bit result: OF, AF,
// ZF, SF, PF are updated but CF is left untouched — the defining
// peculiarity versus ADD/SUB (§4.5.2).
func (f *Flags) UpdateIncDec8(left, right uint8, widened uint16) {
	result := uint8(widened)
	f.UpdateOverflow8(left, right, result)
	f.UpdateAuxCarry(uint16(left), uint16(right), uint16(result))
	f.UpdateParity(uint16(result))
	f.UpdateSign8(result)
	f.UpdateZero(uint16(result))
}

// UpdateIncDec16 is the 16-bit counterpart of UpdateIncDec8.
func (f *Flags) UpdateIncDec16(left, right uint16, widened uint32) {
	result := uint16(widened)
	f.UpdateOverflow16(left, right, result)
	f.UpdateAuxCarry(left, right, result)
	f.UpdateParity(result)
	f.UpdateSign16(result)
	f.UpdateZero(result)
}
