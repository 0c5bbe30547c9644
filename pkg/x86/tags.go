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

// Tag identifies an instruction's semantic class, independent of its raw
// byte encoding. It is the key the dispatch switch in instructions.go is
// built on.
type Tag int

const (
	TagInvalid Tag = iota

	// Data transfer
	TagMove
	TagMoveImmediate
	TagMoveImmediateToRegister
	TagMoveToAX
	TagMoveAX
	TagPushRegister
	TagPush
	TagPopRegister
	TagXchg
	TagXchgAX

	// Arithmetic
	TagAdd
	TagAddImmediate
	TagAddImmediateToAX
	TagAdc
	TagAdcImmediate
	TagAdcImmediateToAX
	TagSub
	TagSubImmediate
	TagSubImmediateToAX
	TagSbb
	TagSbbImmediate
	TagSbbImmediateToAX
	TagCmp
	TagCmpImmediate
	TagCmpImmediateToAX
	TagInc
	TagIncRegister
	TagDec
	TagDecRegister

	// Logic
	TagAnd
	TagAndImmediate
	TagAndImmediateToAX
	TagOr
	TagOrImmediate
	TagOrImmediateToAX
	TagXor
	TagXorImmediate
	TagXorImmediateToAX
	TagNot
	TagNeg
	TagMul
	TagImul
	TagDiv
	TagIdiv
	TagTest
	TagTestImmediate

	// Control transfer
	TagJE
	TagJNE
	TagJL
	TagJNL
	TagJLE
	TagJNLE
	TagJB
	TagJNB
	TagJBE
	TagJA
	TagJP
	TagJNP
	TagJO
	TagJNO
	TagJS
	TagJNS
	TagLoop
	TagLoopZ
	TagLoopNZ
	TagJCXZ
	TagJmpIndirect
	TagCallIndirect

	// Processor control
	TagCLC
	TagSTC
	TagCMC
)

// conditionalJumpOpcodes maps byte1 in 0x70..0x7F to its tag, in the order
// defined by the 8086 manual.
var conditionalJumpOpcodes = [16]Tag{
	TagJO, TagJNO, TagJB, TagJNB,
	TagJE, TagJNE, TagJBE, TagJA,
	TagJS, TagJNS, TagJP, TagJNP,
	TagJL, TagJNL, TagJLE, TagJNLE,
}

// group1Subop maps the 3-bit subopcode field of byte2 for the 0x80-0x83
// immediate-group family to its tag.
var group1Subop = [8]Tag{
	TagAddImmediate,
	TagOrImmediate,
	TagAdcImmediate,
	TagSbbImmediate,
	TagAndImmediate,
	TagSubImmediate,
	TagXorImmediate,
	TagCmpImmediate,
}

// subopField extracts bits 5:3 of b (the ModR/M reg/subopcode field).
func subopField(b byte) int {
	return int(b>>3) & 0x07
}

// TagOf classifies a two-byte opcode window into an instruction tag. byte2
// is consulted only for group opcodes; the resolver guarantees it is
// supplied as 0 when the cursor has run past the end of memory, so group
// lookups remain total.
func TagOf(byte1, byte2 byte) Tag {
	switch {
	case byte1 >= 0x88 && byte1 <= 0x8B:
		return TagMove
	case byte1 == 0xC6 || byte1 == 0xC7:
		return TagMoveImmediate
	case byte1 >= 0xB0 && byte1 <= 0xBF:
		return TagMoveImmediateToRegister
	case byte1 == 0xA0 || byte1 == 0xA1:
		return TagMoveToAX
	case byte1 == 0xA2 || byte1 == 0xA3:
		return TagMoveAX
	case byte1 >= 0x50 && byte1 <= 0x57:
		return TagPushRegister
	case byte1 >= 0x58 && byte1 <= 0x5F:
		return TagPopRegister
	case byte1 == 0x86 || byte1 == 0x87:
		return TagXchg
	case byte1 >= 0x90 && byte1 <= 0x97:
		return TagXchgAX

	case byte1 >= 0x00 && byte1 <= 0x03:
		return TagAdd
	case byte1 == 0x04 || byte1 == 0x05:
		return TagAddImmediateToAX
	case byte1 >= 0x10 && byte1 <= 0x13:
		return TagAdc
	case byte1 == 0x14 || byte1 == 0x15:
		return TagAdcImmediateToAX
	case byte1 >= 0x28 && byte1 <= 0x2B:
		return TagSub
	case byte1 == 0x2C || byte1 == 0x2D:
		return TagSubImmediateToAX
	case byte1 >= 0x18 && byte1 <= 0x1B:
		return TagSbb
	case byte1 == 0x1C || byte1 == 0x1D:
		return TagSbbImmediateToAX
	case byte1 >= 0x38 && byte1 <= 0x3B:
		return TagCmp
	case byte1 == 0x3C || byte1 == 0x3D:
		return TagCmpImmediateToAX
	case byte1 >= 0x40 && byte1 <= 0x47:
		return TagIncRegister
	case byte1 >= 0x48 && byte1 <= 0x4F:
		return TagDecRegister

	case byte1 >= 0x20 && byte1 <= 0x23:
		return TagAnd
	case byte1 == 0x24 || byte1 == 0x25:
		return TagAndImmediateToAX
	case byte1 >= 0x08 && byte1 <= 0x0B:
		return TagOr
	case byte1 == 0x0C || byte1 == 0x0D:
		return TagOrImmediateToAX
	case byte1 >= 0x30 && byte1 <= 0x33:
		return TagXor
	case byte1 == 0x34 || byte1 == 0x35:
		return TagXorImmediateToAX
	case byte1 == 0x84 || byte1 == 0x85:
		return TagTest

	case byte1 >= 0x70 && byte1 <= 0x7F:
		return conditionalJumpOpcodes[byte1-0x70]
	case byte1 == 0xE0:
		return TagLoopNZ
	case byte1 == 0xE1:
		return TagLoopZ
	case byte1 == 0xE2:
		return TagLoop
	case byte1 == 0xE3:
		return TagJCXZ

	case byte1 == 0xF5:
		return TagCMC
	case byte1 == 0xF8:
		return TagCLC
	case byte1 == 0xF9:
		return TagSTC

	case byte1 >= 0x80 && byte1 <= 0x83:
		return group1Subop[subopField(byte2)]

	case byte1 == 0xFE:
		switch subopField(byte2) {
		case 0:
			return TagInc
		case 1:
			return TagDec
		default:
			return TagInvalid
		}

	case byte1 == 0xFF:
		switch subopField(byte2) {
		case 0:
			return TagInc
		case 1:
			return TagDec
		case 2:
			return TagCallIndirect
		case 4:
			return TagJmpIndirect
		case 6:
			return TagPush
		default:
			return TagInvalid
		}

	case byte1 == 0xF6 || byte1 == 0xF7:
		switch subopField(byte2) {
		case 0, 1:
			return TagTestImmediate
		case 2:
			return TagNot
		case 3:
			return TagNeg
		case 4:
			return TagMul
		case 5:
			return TagImul
		case 6:
			return TagDiv
		case 7:
			return TagIdiv
		default:
			return TagInvalid
		}

	default:
		return TagInvalid
	}
}
