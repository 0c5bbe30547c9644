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

import "testing"

func TestTestDoesNotWriteBackResult(t *testing.T) {
	e := NewEmulator()
	e.Regs.SetWord(RegAX, 0x0F0F)
	e.Regs.SetWord(RegCX, 0x00FF)
	// test ax, cx: 85 C8 (standard form between ax and cx)
	if err := e.Run([]byte{0x85, 0xC8}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegAX); got != 0x0F0F {
		t.Fatalf("ax mutated by test: %#04x", got)
	}
	if got := e.Regs.Word(RegCX); got != 0x00FF {
		t.Fatalf("cx mutated by test: %#04x", got)
	}
	if e.Regs.Test(FlagZF) {
		t.Fatal("expected ZF clear, 0x0F0F & 0x00FF != 0")
	}
}

func TestNotHasNoFlagEffects(t *testing.T) {
	e := NewEmulator()
	e.Regs.Set(FlagZF | FlagCF)
	e.Regs.SetWord(RegAX, 0x00FF)
	// not ax: F7 D0 (group 0xF6/F7, subop=2, mod=11, r/m=ax)
	if err := e.Run([]byte{0xF7, 0xD0}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegAX); got != 0xFF00 {
		t.Fatalf("ax = %#04x, want 0xFF00", got)
	}
	if !e.Regs.Test(FlagZF) || !e.Regs.Test(FlagCF) {
		t.Fatal("expected NOT to leave pre-existing flags untouched")
	}
}

func TestAndImmediateToAXClearsOverflowAndCarry(t *testing.T) {
	e := NewEmulator()
	e.Regs.Set(FlagCF | FlagOF)
	e.Regs.SetWord(RegAX, 0xFFFF)
	// and ax, 0x0F0F: 25 0F 0F
	if err := e.Run([]byte{0x25, 0x0F, 0x0F}, ModeEmulate); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.Regs.Word(RegAX); got != 0x0F0F {
		t.Fatalf("ax = %#04x, want 0x0F0F", got)
	}
	if e.Regs.Test(FlagCF) || e.Regs.Test(FlagOF) {
		t.Fatal("expected CF and OF cleared by a logic op")
	}
}

func TestConditionalJumpPredicates(t *testing.T) {
	tests := []struct {
		name     string
		setFlags uint16
		tag      Tag
		taken    bool
	}{
		{"je taken on ZF", FlagZF, TagJE, true},
		{"je not taken without ZF", 0, TagJE, false},
		{"jl taken on SF!=OF", FlagSF, TagJL, true},
		{"jl not taken on SF==OF", FlagSF | FlagOF, TagJL, false},
		{"jbe taken on CF", FlagCF, TagJBE, true},
		{"ja not taken on CF", FlagCF, TagJA, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegisters()
			r.Set(tc.setFlags)
			got := condJumpInfo[tc.tag].predicate(r)
			if got != tc.taken {
				t.Errorf("predicate(%v) = %v, want %v", tc.tag, got, tc.taken)
			}
		})
	}
}
