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
	"math/bits"
	"testing"
)

func TestByteRegisterAliasesWord(t *testing.T) {
	r := NewRegisters()
	r.SetWord(RegAX, 0x1234)
	if got := r.Byte(RegAL); got != 0x34 {
		t.Fatalf("AL = %#02x, want 0x34", got)
	}
	if got := r.Byte(RegAH); got != 0x12 {
		t.Fatalf("AH = %#02x, want 0x12", got)
	}

	r.SetByte(RegAL, 0xFF)
	if got := r.Word(RegAX); got != 0x12FF {
		t.Fatalf("AX after SetByte(AL) = %#04x, want 0x12FF", got)
	}

	r.SetByte(RegAH, 0x00)
	if got := r.Word(RegAX); got != 0x00FF {
		t.Fatalf("AX after SetByte(AH) = %#04x, want 0x00FF", got)
	}
}

func TestRegisterNames(t *testing.T) {
	if WordName(RegCX) != "cx" {
		t.Fatalf("WordName(RegCX) = %q, want cx", WordName(RegCX))
	}
	if ByteName(RegDH) != "dh" {
		t.Fatalf("ByteName(RegDH) = %q, want dh", ByteName(RegDH))
	}
	if SegmentName(SegDS) != "ds" {
		t.Fatalf("SegmentName(SegDS) = %q, want ds", SegmentName(SegDS))
	}
}

func TestFlagMasksAreDisjoint(t *testing.T) {
	masks := []uint16{FlagCF, FlagPF, FlagAF, FlagZF, FlagSF, FlagTF, FlagIF, FlagDF, FlagOF}
	var union uint16
	var popcount int
	for _, m := range masks {
		if union&m != 0 {
			t.Fatalf("flag mask %#04x overlaps an earlier mask", m)
		}
		union |= m
		popcount += bits.OnesCount16(m)
	}
	if popcount != len(masks) {
		t.Fatalf("expected %d distinct single-bit masks, got %d", len(masks), popcount)
	}
}

func TestFlagsSetClearToggleTest(t *testing.T) {
	var f Flags
	f.Set(FlagCF | FlagZF)
	if !f.Test(FlagCF) || !f.Test(FlagZF) {
		t.Fatalf("expected CF and ZF set, flags=%#04x", f.Word)
	}
	f.Toggle(FlagCF)
	if f.Test(FlagCF) {
		t.Fatalf("expected CF cleared after toggle, flags=%#04x", f.Word)
	}
	f.Clear(FlagZF)
	if f.Test(FlagZF) {
		t.Fatalf("expected ZF cleared, flags=%#04x", f.Word)
	}
}

func TestUpdateArithmetic8CarryAndOverflow(t *testing.T) {
	var f Flags
	// 0xFF + 0x01 = 0x100: carry out, no signed overflow (adding a
	// positive one to a negative byte never overflows).
	f.UpdateArithmetic8(0xFF, 0x01, 0x0100)
	if !f.Test(FlagCF) {
		t.Fatal("expected CF set on unsigned byte overflow")
	}
	if f.Test(FlagOF) {
		t.Fatal("expected OF clear")
	}
	if !f.Test(FlagZF) {
		t.Fatal("expected ZF set, result is 0")
	}

	// 0x7F + 0x01 = 0x80: signed overflow (positive + positive = negative),
	// no unsigned carry.
	f.UpdateArithmetic8(0x7F, 0x01, 0x0080)
	if f.Test(FlagCF) {
		t.Fatal("expected CF clear")
	}
	if !f.Test(FlagOF) {
		t.Fatal("expected OF set on signed byte overflow")
	}
	if !f.Test(FlagSF) {
		t.Fatal("expected SF set, result's top bit is 1")
	}
}

func TestUpdateIncDecLeavesCarryUntouched(t *testing.T) {
	var f Flags
	f.Set(FlagCF)
	// INC 0xFF -> 0x00: would set CF under ADD's rule, but INC must not
	// touch it.
	f.UpdateIncDec8(0xFF, 1, 0x0100)
	if !f.Test(FlagCF) {
		t.Fatal("expected CF to remain set across UpdateIncDec8")
	}
	if !f.Test(FlagZF) {
		t.Fatal("expected ZF set, result is 0")
	}

	f.Clear(FlagCF)
	f.UpdateIncDec8(0xFF, 1, 0x0100)
	if f.Test(FlagCF) {
		t.Fatal("expected CF to remain clear across UpdateIncDec8")
	}
}

func TestUpdateParityEvenOddPopulationCount(t *testing.T) {
	var f Flags
	f.UpdateParity(0x03) // two bits set: even parity
	if !f.Test(FlagPF) {
		t.Fatal("expected PF set for 0x03 (even population count)")
	}
	f.UpdateParity(0x01) // one bit set: odd parity
	if f.Test(FlagPF) {
		t.Fatal("expected PF clear for 0x01 (odd population count)")
	}
}
