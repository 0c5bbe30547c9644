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

// dispatch routes a classified tag to its handler. Both the disassembler
// and the emulator walk through this single switch; each handler branches
// internally on e.mode to either emit text or mutate state, sharing the
// same decode step (design note: handler duplication between decode/emulate
// modes).
func (e *Emulator) dispatch(tag Tag, c *cursor, byte1 byte) error {
	switch tag {
	case TagMove:
		return e.handleMove(c, byte1)
	case TagMoveImmediate:
		return e.handleMoveImmediate(c, byte1)
	case TagMoveImmediateToRegister:
		return e.handleMoveImmediateToRegister(c, byte1)
	case TagMoveToAX:
		return e.handleMoveToAX(c, byte1)
	case TagMoveAX:
		return e.handleMoveAX(c, byte1)
	case TagPushRegister:
		return e.handlePushRegister(c, byte1)
	case TagPush:
		return e.handlePushRM(c, byte1)
	case TagPopRegister:
		return e.handlePopRegister(c, byte1)
	case TagXchg:
		return e.handleXchg(c, byte1)
	case TagXchgAX:
		return e.handleXchgAX(c, byte1)

	case TagAdd:
		return e.handleArithmetic(c, byte1, "add", arithAdd)
	case TagAddImmediate:
		return e.handleArithmeticImmediate(c, byte1, "add", arithAdd)
	case TagAddImmediateToAX:
		return e.handleArithmeticImmediateToAX(c, byte1, "add", arithAdd)
	case TagAdc:
		return e.handleArithmetic(c, byte1, "adc", arithAdc)
	case TagAdcImmediate:
		return e.handleArithmeticImmediate(c, byte1, "adc", arithAdc)
	case TagAdcImmediateToAX:
		return e.handleArithmeticImmediateToAX(c, byte1, "adc", arithAdc)
	case TagSub:
		return e.handleArithmetic(c, byte1, "sub", arithSub)
	case TagSubImmediate:
		return e.handleArithmeticImmediate(c, byte1, "sub", arithSub)
	case TagSubImmediateToAX:
		return e.handleArithmeticImmediateToAX(c, byte1, "sub", arithSub)
	case TagSbb:
		return e.handleArithmetic(c, byte1, "sbb", arithSbb)
	case TagSbbImmediate:
		return e.handleArithmeticImmediate(c, byte1, "sbb", arithSbb)
	case TagSbbImmediateToAX:
		return e.handleArithmeticImmediateToAX(c, byte1, "sbb", arithSbb)
	case TagCmp:
		return e.handleArithmetic(c, byte1, "cmp", arithCmp)
	case TagCmpImmediate:
		return e.handleArithmeticImmediate(c, byte1, "cmp", arithCmp)
	case TagCmpImmediateToAX:
		return e.handleArithmeticImmediateToAX(c, byte1, "cmp", arithCmp)
	case TagInc:
		return e.handleIncDecModRM(c, byte1, "inc", 1)
	case TagDec:
		return e.handleIncDecModRM(c, byte1, "dec", -1)
	case TagIncRegister:
		return e.handleIncDecRegister(c, byte1, "inc", 1)
	case TagDecRegister:
		return e.handleIncDecRegister(c, byte1, "dec", -1)

	case TagAnd:
		return e.handleLogic(c, byte1, "and", logicAnd)
	case TagAndImmediate:
		return e.handleLogicImmediate(c, byte1, "and", logicAnd)
	case TagAndImmediateToAX:
		return e.handleLogicImmediateToAX(c, byte1, "and", logicAnd)
	case TagOr:
		return e.handleLogic(c, byte1, "or", logicOr)
	case TagOrImmediate:
		return e.handleLogicImmediate(c, byte1, "or", logicOr)
	case TagOrImmediateToAX:
		return e.handleLogicImmediateToAX(c, byte1, "or", logicOr)
	case TagXor:
		return e.handleLogic(c, byte1, "xor", logicXor)
	case TagXorImmediate:
		return e.handleLogicImmediate(c, byte1, "xor", logicXor)
	case TagXorImmediateToAX:
		return e.handleLogicImmediateToAX(c, byte1, "xor", logicXor)
	case TagNot:
		return e.handleNot(c, byte1)
	case TagTest:
		return e.handleTest(c, byte1)
	case TagTestImmediate:
		return e.handleTestImmediate(c, byte1)

	case TagJE, TagJNE, TagJL, TagJNL, TagJLE, TagJNLE, TagJB, TagJNB,
		TagJBE, TagJA, TagJP, TagJNP, TagJO, TagJNO, TagJS, TagJNS:
		return e.handleConditionalJump(c, tag)
	case TagLoop, TagLoopZ, TagLoopNZ, TagJCXZ:
		return e.handleLoop(c, tag)
	case TagJmpIndirect:
		return e.handleJmpIndirect(c, byte1)
	case TagCallIndirect:
		return e.handleCallIndirect(c, byte1)

	case TagCLC:
		return e.handleFlagOp(c, "clc", FlagCF, flagOpClear)
	case TagSTC:
		return e.handleFlagOp(c, "stc", FlagCF, flagOpSet)
	case TagCMC:
		return e.handleFlagOp(c, "cmc", FlagCF, flagOpToggle)

	case TagNeg, TagMul, TagImul, TagDiv, TagIdiv:
		return emu.ErrUnimplementedInstruction

	default:
		return emu.ErrUnimplementedInstruction
	}
}
